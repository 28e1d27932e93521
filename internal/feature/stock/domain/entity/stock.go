// Package entity defines the domain entities for the stock feature.
package entity

import (
	"github.com/shopspring/decimal"

	commententity "stocktrack/internal/feature/comment/domain/entity"
)

// Stock represents a tradable security tracked by the system.
// It is the root entity: comments and portfolio holdings reference it by id.
type Stock struct {
	// ID is the unique identifier, assigned on creation.
	ID uint `gorm:"primaryKey"`

	// Symbol is the ticker symbol, e.g. "IBM".
	Symbol string `gorm:"size:20;not null;index"`

	// CompanyName is the issuing company's name.
	CompanyName string `gorm:"size:255;not null"`

	// Purchase is the purchase price. Stored as a fixed-point decimal
	// so money values do not accumulate float drift.
	Purchase decimal.Decimal `gorm:"type:decimal(18,2)"`

	// LastDiv is the last dividend paid.
	LastDiv decimal.Decimal `gorm:"type:decimal(18,2)"`

	// Industry is the industry sector, e.g. "Tech".
	Industry string `gorm:"size:255"`

	// MarketCap is the market capitalization.
	MarketCap int64

	// Comments are the comments attached to this stock, eagerly loaded on reads.
	Comments []commententity.Comment `gorm:"foreignKey:StockID"`
}
