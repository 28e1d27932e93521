// Package entity defines the domain entities for the account feature.
package entity

import "time"

// DefaultRole is assigned to every user at registration.
const DefaultRole = "User"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the unique login name chosen at registration.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address, unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role is the authorization role, e.g. "User".
	Role string `gorm:"size:50;not null;default:''"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
