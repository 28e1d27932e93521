// Package entity defines the domain entities for the comment feature.
package entity

import (
	"time"

	accountentity "stocktrack/internal/feature/account/domain/entity"
)

// Comment represents a remark attached to a stock, optionally authored by a user.
type Comment struct {
	// ID is the unique identifier for the comment.
	ID uint `gorm:"primaryKey"`

	// Title is a short heading for the comment.
	Title string `gorm:"size:255;not null"`

	// Content is the comment body.
	Content string `gorm:"type:text;not null"`

	// CreatedOn is stamped when the comment is inserted and never changes afterwards.
	CreatedOn time.Time `gorm:"not null"`

	// StockID references the stock this comment belongs to.
	// The referenced stock must exist when the comment is created.
	StockID *uint `gorm:"index"`

	// UserID references the authoring user, when the comment was created
	// through an authenticated request.
	UserID *uint `gorm:"index"`

	// User is the authoring user, eagerly loaded so responses can carry the username.
	User *accountentity.User `gorm:"foreignKey:UserID"`
}
