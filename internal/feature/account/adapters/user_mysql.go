// Package adapters provides the repository implementations for the account feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"stocktrack/internal/feature/account/domain/entity"
	"stocktrack/internal/feature/account/usecase"
)

// ErrDuplicateUser is returned when a user with the same username or email
// already exists.
var ErrDuplicateUser = errors.New("username or email already exists")

// userMySQL is the MySQL implementation of the UserRepository interface.
// It uses GORM for database operations.
type userMySQL struct {
	db *gorm.DB
}

// Compile-time check that userMySQL implements UserRepository.
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a new userMySQL instance with the given gorm.DB connection.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create adds the user to the database.
// It returns ErrDuplicateUser when the username or email is already taken.
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateUser
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// AssignRole updates the user's role column and the in-memory entity.
func (r *userMySQL) AssignRole(ctx context.Context, u *entity.User, role string) error {
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", u.ID).
		Update("role", role).Error; err != nil {
		return err
	}
	u.Role = role
	return nil
}

// FindByUsername retrieves a user by username.
// It returns usecase.ErrUserNotFound when no such user exists; any other
// error is a store failure and passes through untranslated.
func (r *userMySQL) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
