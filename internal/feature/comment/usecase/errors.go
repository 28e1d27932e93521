// Package usecase implements the business logic for the comment feature.
package usecase

import "errors"

var (
	// ErrCommentNotFound is returned when no comment exists with the requested id.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrStockNotFound is returned by Create when the referenced stock does not
	// exist. The check runs before any comment row is written.
	ErrStockNotFound = errors.New("stock does not exist")
)
