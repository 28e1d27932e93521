// Package usecase implements the business logic for the stock feature.
package usecase

import "errors"

var (
	// ErrStockNotFound is returned when no stock exists with the requested id or symbol.
	ErrStockNotFound = errors.New("stock not found")

	// ErrInvalidQuery is returned when a listing query carries an unusable page
	// number or page size. The query is rejected before the store is touched.
	ErrInvalidQuery = errors.New("invalid stock query")
)
