// Package adapters provides the repository implementations for the stock feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stocktrack/internal/feature/stock/domain/entity"
	"stocktrack/internal/feature/stock/usecase"
)

// stockMySQL is the MySQL implementation of the StockRepository interface.
// It uses GORM for database operations.
type stockMySQL struct {
	db *gorm.DB
}

// Compile-time check that stockMySQL implements StockRepository.
var _ usecase.StockRepository = (*stockMySQL)(nil)

// NewStockMySQL creates a new stockMySQL instance with the given gorm.DB connection.
func NewStockMySQL(db *gorm.DB) *stockMySQL {
	return &stockMySQL{db: db}
}

// ListAll returns every stock ordered by id, with comments and their authors
// eagerly loaded. The id order keeps pagination deterministic when no sort
// field is requested.
func (r *stockMySQL) ListAll(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Preload("Comments").
		Preload("Comments.User").
		Order("id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByID retrieves a stock by id with its comments and their authors.
// It returns usecase.ErrStockNotFound when the id is absent.
func (r *stockMySQL) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).
		Preload("Comments").
		Preload("Comments.User").
		Where("id = ?", id).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindBySymbol retrieves a stock by its symbol, matched case-insensitively.
// It returns usecase.ErrStockNotFound when no such stock exists.
func (r *stockMySQL) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).
		Where("LOWER(symbol) = LOWER(?)", symbol).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Exists reports whether a stock with the given id exists.
func (r *stockMySQL) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a new stock and assigns its id.
func (r *stockMySQL) Create(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

// Update overwrites exactly the mutable fields of an existing stock.
// It returns usecase.ErrStockNotFound when the id is absent.
func (r *stockMySQL) Update(ctx context.Context, id uint, upd usecase.StockUpdate) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}

	s.Symbol = upd.Symbol
	s.CompanyName = upd.CompanyName
	s.Purchase = upd.Purchase
	s.LastDiv = upd.LastDiv
	s.Industry = upd.Industry
	s.MarketCap = upd.MarketCap

	if err := r.db.WithContext(ctx).Save(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the stock with the given id and returns the removed record
// so the handler can echo it. It returns usecase.ErrStockNotFound when the
// id is absent.
func (r *stockMySQL) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	var s entity.Stock
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteAll removes every stock in a single bulk delete.
func (r *stockMySQL) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entity.Stock{}).Error
}
