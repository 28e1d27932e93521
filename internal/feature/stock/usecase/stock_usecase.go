package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"stocktrack/internal/feature/stock/domain/entity"
)

// StockUpdate names the fields a stock update may change. The id and the
// stock's relations are immutable through updates.
type StockUpdate struct {
	Symbol      string
	CompanyName string
	Purchase    decimal.Decimal
	LastDiv     decimal.Decimal
	Industry    string
	MarketCap   int64
}

// StockRepository abstracts the persistence layer for stock entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type StockRepository interface {
	// ListAll returns every stock ordered by id, with comments and their
	// authors eagerly loaded.
	ListAll(ctx context.Context) ([]entity.Stock, error)

	// FindByID returns the stock with the given id, comments eagerly loaded.
	// It returns ErrStockNotFound when the id is absent.
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)

	// FindBySymbol returns the stock whose symbol matches case-insensitively.
	// It returns ErrStockNotFound when no such stock exists.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)

	// Exists reports whether a stock with the given id exists.
	Exists(ctx context.Context, id uint) (bool, error)

	// Create persists a new stock and assigns its id.
	Create(ctx context.Context, stock *entity.Stock) error

	// Update overwrites the mutable fields of an existing stock.
	// It returns ErrStockNotFound when the id is absent.
	Update(ctx context.Context, id uint, upd StockUpdate) (*entity.Stock, error)

	// Delete removes the stock with the given id and returns the removed
	// record, or ErrStockNotFound when the id is absent.
	Delete(ctx context.Context, id uint) (*entity.Stock, error)

	// DeleteAll removes every stock.
	DeleteAll(ctx context.Context) error
}

// StockUsecase provides the query and CRUD logic for stocks.
type StockUsecase struct {
	repo StockRepository
}

// NewStockUsecase creates a new StockUsecase with the given repository.
func NewStockUsecase(repo StockRepository) *StockUsecase {
	return &StockUsecase{repo: repo}
}

// List returns the stocks matching the query, sorted and paged.
// The query is validated before the repository is consulted.
func (u *StockUsecase) List(ctx context.Context, q StockQuery) ([]entity.Stock, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	stocks, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyQuery(stocks, q), nil
}

// Get returns a single stock by id with its comments.
func (u *StockUsecase) Get(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.repo.FindByID(ctx, id)
}

// Create persists a new stock and returns it with its assigned id.
func (u *StockUsecase) Create(ctx context.Context, stock *entity.Stock) error {
	return u.repo.Create(ctx, stock)
}

// Update overwrites the mutable fields of the stock with the given id.
func (u *StockUsecase) Update(ctx context.Context, id uint, upd StockUpdate) (*entity.Stock, error) {
	return u.repo.Update(ctx, id, upd)
}

// Delete removes the stock with the given id and returns the removed record.
func (u *StockUsecase) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.repo.Delete(ctx, id)
}

// DeleteAll removes every stock.
func (u *StockUsecase) DeleteAll(ctx context.Context) error {
	return u.repo.DeleteAll(ctx)
}
