// Package usecase implements the business logic for the portfolio feature.
package usecase

import "errors"

var (
	// ErrStockNotFound is returned when the requested symbol resolves to no stock.
	ErrStockNotFound = errors.New("stock not found")

	// ErrAlreadyHeld is returned when the user already holds the requested
	// stock; the symbol comparison is case-insensitive.
	ErrAlreadyHeld = errors.New("stock already in portfolio")

	// ErrNotHeld is returned when a removal matches no current holding.
	ErrNotHeld = errors.New("stock not in portfolio")
)
