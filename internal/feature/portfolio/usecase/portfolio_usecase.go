// Package usecase implements the business logic for the portfolio feature.
package usecase

import (
	"context"
	"errors"
	"strings"

	"stocktrack/internal/feature/portfolio/domain/entity"
	stockentity "stocktrack/internal/feature/stock/domain/entity"
	stockusecase "stocktrack/internal/feature/stock/usecase"
)

// HoldingRepository abstracts the persistence layer for the user-stock
// association. Following Go convention: interfaces are defined by the
// consumer (usecase), not the provider (adapters).
type HoldingRepository interface {
	// ListStocks projects the user's holdings through to the full stock
	// records, ordered by stock id.
	ListStocks(ctx context.Context, userID uint) ([]stockentity.Stock, error)

	// Create persists a new holding. It returns ErrAlreadyHeld when the
	// (user, stock) pair already exists.
	Create(ctx context.Context, holding *entity.Holding) error

	// Delete removes the holding for the given pair.
	// It returns ErrNotHeld when no such holding exists.
	Delete(ctx context.Context, userID, stockID uint) error
}

// StockFinder resolves a stock by its symbol. It is the slice of the stock
// store the portfolio feature depends on.
type StockFinder interface {
	FindBySymbol(ctx context.Context, symbol string) (*stockentity.Stock, error)
}

// PortfolioUsecase manages the user-stock holding association with
// case-insensitive uniqueness per symbol.
type PortfolioUsecase struct {
	repo   HoldingRepository
	stocks StockFinder
}

// NewPortfolioUsecase creates a new PortfolioUsecase with the given dependencies.
func NewPortfolioUsecase(repo HoldingRepository, stocks StockFinder) *PortfolioUsecase {
	return &PortfolioUsecase{repo: repo, stocks: stocks}
}

// ListHoldings returns the full stock records for the user's holdings.
func (u *PortfolioUsecase) ListHoldings(ctx context.Context, userID uint) ([]stockentity.Stock, error) {
	return u.repo.ListStocks(ctx, userID)
}

// AddHolding adds the stock with the given symbol to the user's portfolio.
// The symbol resolves case-insensitively; an unknown symbol returns
// ErrStockNotFound and a symbol the user already holds (in any casing)
// returns ErrAlreadyHeld. The store's composite key backstops the held-check
// against concurrent adds of the same pair.
func (u *PortfolioUsecase) AddHolding(ctx context.Context, userID uint, symbol string) (*entity.Holding, error) {
	stock, err := u.stocks.FindBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, stockusecase.ErrStockNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, err
	}

	held, err := u.repo.ListStocks(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, h := range held {
		if strings.EqualFold(h.Symbol, symbol) {
			return nil, ErrAlreadyHeld
		}
	}

	holding := &entity.Holding{UserID: userID, StockID: stock.ID}
	if err := u.repo.Create(ctx, holding); err != nil {
		return nil, err
	}
	return holding, nil
}

// RemoveHolding removes the holding matching the symbol case-insensitively.
// Any match count other than exactly one returns ErrNotHeld; the uniqueness
// invariant makes more than one match impossible, but this does not rely on it.
func (u *PortfolioUsecase) RemoveHolding(ctx context.Context, userID uint, symbol string) error {
	held, err := u.repo.ListStocks(ctx, userID)
	if err != nil {
		return err
	}

	var matches []stockentity.Stock
	for _, h := range held {
		if strings.EqualFold(h.Symbol, symbol) {
			matches = append(matches, h)
		}
	}
	if len(matches) != 1 {
		return ErrNotHeld
	}

	return u.repo.Delete(ctx, userID, matches[0].ID)
}
