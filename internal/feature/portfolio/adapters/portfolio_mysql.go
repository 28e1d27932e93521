// Package adapters provides the repository implementations for the portfolio feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"stocktrack/internal/feature/portfolio/domain/entity"
	"stocktrack/internal/feature/portfolio/usecase"
	stockentity "stocktrack/internal/feature/stock/domain/entity"
)

// portfolioMySQL is the MySQL implementation of the HoldingRepository interface.
// It uses GORM for database operations.
type portfolioMySQL struct {
	db *gorm.DB
}

// Compile-time check that portfolioMySQL implements HoldingRepository.
var _ usecase.HoldingRepository = (*portfolioMySQL)(nil)

// NewPortfolioMySQL creates a new portfolioMySQL instance with the given gorm.DB connection.
func NewPortfolioMySQL(db *gorm.DB) *portfolioMySQL {
	return &portfolioMySQL{db: db}
}

// ListStocks projects the user's holdings through to the full stock records.
func (r *portfolioMySQL) ListStocks(ctx context.Context, userID uint) ([]stockentity.Stock, error) {
	var stocks []stockentity.Stock
	if err := r.db.WithContext(ctx).
		Model(&entity.Holding{}).
		Select("stocks.id, stocks.symbol, stocks.company_name, stocks.purchase, stocks.last_div, stocks.industry, stocks.market_cap").
		Joins("JOIN stocks ON stocks.id = holdings.stock_id").
		Where("holdings.user_id = ?", userID).
		Order("stocks.id ASC").
		Scan(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// Create persists a new holding. A duplicate (user, stock) pair surfaces as
// usecase.ErrAlreadyHeld: the composite primary key turns the concurrent
// duplicate-add race into a store-level duplicate-key error.
func (r *portfolioMySQL) Create(ctx context.Context, holding *entity.Holding) error {
	if err := r.db.WithContext(ctx).Create(holding).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrAlreadyHeld
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyHeld
		}
		return err
	}
	return nil
}

// Delete removes the holding for the given (user, stock) pair.
// It returns usecase.ErrNotHeld when no row was removed.
func (r *portfolioMySQL) Delete(ctx context.Context, userID, stockID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND stock_id = ?", userID, stockID).
		Delete(&entity.Holding{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotHeld
	}
	return nil
}
