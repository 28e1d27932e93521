// Package entity defines the domain entities for the portfolio feature.
package entity

// Holding links one user to one stock they hold.
//
// The composite primary key makes the (user, stock) pair unique at the store
// level, so two concurrent adds of the same pair cannot both commit: the
// loser gets a duplicate-key error instead of creating a second row.
type Holding struct {
	// UserID references the holding user.
	UserID uint `gorm:"primaryKey;autoIncrement:false"`

	// StockID references the held stock.
	StockID uint `gorm:"primaryKey;autoIncrement:false"`
}
