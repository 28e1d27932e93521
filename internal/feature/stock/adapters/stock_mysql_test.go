package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	accountentity "stocktrack/internal/feature/account/domain/entity"
	commententity "stocktrack/internal/feature/comment/domain/entity"
	"stocktrack/internal/feature/stock/domain/entity"
	"stocktrack/internal/feature/stock/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&accountentity.User{}, &entity.Stock{}, &commententity.Comment{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func newStock(symbol, company string) *entity.Stock {
	return &entity.Stock{
		Symbol:      symbol,
		CompanyName: company,
		Purchase:    decimal.NewFromFloat(120.50),
		LastDiv:     decimal.NewFromFloat(1.5),
		Industry:    "Tech",
		MarketCap:   1000000,
	}
}

func TestStockMySQL_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)
	ctx := context.Background()

	created := newStock("IBM", "IBM")
	require.NoError(t, repo.Create(ctx, created))
	assert.NotZero(t, created.ID, "ID is not assigned")

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "IBM", got.Symbol)
	assert.Equal(t, "IBM", got.CompanyName)
	assert.True(t, decimal.NewFromFloat(120.50).Equal(got.Purchase), "purchase mismatch: %s", got.Purchase)
	assert.True(t, decimal.NewFromFloat(1.5).Equal(got.LastDiv), "last dividend mismatch: %s", got.LastDiv)
	assert.Equal(t, "Tech", got.Industry)
	assert.Equal(t, int64(1000000), got.MarketCap)
	assert.Empty(t, got.Comments, "a fresh stock has no comments")
}

func TestStockMySQL_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)

	_, err := repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, usecase.ErrStockNotFound)
}

func TestStockMySQL_FindByID_EagerComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)
	ctx := context.Background()

	stock := newStock("AAPL", "Apple")
	require.NoError(t, repo.Create(ctx, stock))

	author := &accountentity.User{Username: "alice", Email: "alice@x.com", Password: "hash"}
	require.NoError(t, db.Create(author).Error)

	comment := &commententity.Comment{
		Title:     "Solid pick",
		Content:   "Holding long term",
		CreatedOn: time.Now(),
		StockID:   &stock.ID,
		UserID:    &author.ID,
	}
	require.NoError(t, db.Create(comment).Error)

	got, err := repo.FindByID(ctx, stock.ID)
	require.NoError(t, err)

	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Solid pick", got.Comments[0].Title)
	require.NotNil(t, got.Comments[0].User, "author is not eagerly loaded")
	assert.Equal(t, "alice", got.Comments[0].User.Username)
}

func TestStockMySQL_FindBySymbol(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newStock("MSFT", "Microsoft")))

	t.Run("case-insensitive exact match", func(t *testing.T) {
		got, err := repo.FindBySymbol(ctx, "msft")
		require.NoError(t, err)
		assert.Equal(t, "MSFT", got.Symbol)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := repo.FindBySymbol(ctx, "TSLA")
		assert.ErrorIs(t, err, usecase.ErrStockNotFound)
	})
}

func TestStockMySQL_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)
	ctx := context.Background()

	stock := newStock("GOOG", "Alphabet")
	require.NoError(t, repo.Create(ctx, stock))

	exists, err := repo.Exists(ctx, stock.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, stock.ID+1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStockMySQL_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)
	ctx := context.Background()

	stock := newStock("IBM", "IBM")
	require.NoError(t, repo.Create(ctx, stock))

	upd := usecase.StockUpdate{
		Symbol:      "IBM",
		CompanyName: "International Business Machines",
		Purchase:    decimal.NewFromFloat(130.25),
		LastDiv:     decimal.NewFromFloat(1.7),
		Industry:    "Technology",
		MarketCap:   2000000,
	}

	got, err := repo.Update(ctx, stock.ID, upd)
	require.NoError(t, err)

	assert.Equal(t, stock.ID, got.ID, "id must not change through update")
	assert.Equal(t, "International Business Machines", got.CompanyName)
	assert.True(t, decimal.NewFromFloat(130.25).Equal(got.Purchase))
	assert.Equal(t, int64(2000000), got.MarketCap)

	t.Run("absent id", func(t *testing.T) {
		_, err := repo.Update(ctx, stock.ID+100, upd)
		assert.ErrorIs(t, err, usecase.ErrStockNotFound)
	})
}

func TestStockMySQL_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)
	ctx := context.Background()

	stock := newStock("AMZN", "Amazon")
	require.NoError(t, repo.Create(ctx, stock))

	removed, err := repo.Delete(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, "AMZN", removed.Symbol, "the removed record is echoed back")

	_, err = repo.FindByID(ctx, stock.ID)
	assert.ErrorIs(t, err, usecase.ErrStockNotFound)

	t.Run("absent id", func(t *testing.T) {
		_, err := repo.Delete(ctx, stock.ID)
		assert.ErrorIs(t, err, usecase.ErrStockNotFound)
	})
}

func TestStockMySQL_DeleteAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newStock("IBM", "IBM")))
	require.NoError(t, repo.Create(ctx, newStock("AAPL", "Apple")))

	require.NoError(t, repo.DeleteAll(ctx))

	stocks, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stocks)
}

func TestStockMySQL_ListAll_IDOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newStock("MSFT", "Microsoft")))
	require.NoError(t, repo.Create(ctx, newStock("AAPL", "Apple")))
	require.NoError(t, repo.Create(ctx, newStock("IBM", "IBM")))

	stocks, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, stocks, 3)

	for i := 1; i < len(stocks); i++ {
		assert.Less(t, stocks[i-1].ID, stocks[i].ID, "base order must be by id")
	}
}
