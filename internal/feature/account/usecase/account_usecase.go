// Package usecase implements the business logic for the account feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"stocktrack/internal/feature/account/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It fails when a user with the same
	// username or email already exists.
	Create(ctx context.Context, user *entity.User) error

	// AssignRole grants the given role to an existing user.
	AssignRole(ctx context.Context, user *entity.User, role string) error

	// FindByUsername returns the user with the given username. It returns
	// ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenGenerator issues signed bearer tokens for authenticated users.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken creates a signed JWT for the given user.
	GenerateToken(userID uint, username, email string) (string, error)
}

// NewUser is the result of a successful register or login: the user's
// public identity plus a freshly issued bearer token.
type NewUser struct {
	Username string
	Email    string
	Token    string
}

// accountUsecase implements registration and login.
type accountUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAccountUsecase creates a new accountUsecase with the given dependencies.
func NewAccountUsecase(users UserRepository, tokens TokenGenerator) *accountUsecase {
	return &accountUsecase{users: users, tokens: tokens}
}

// Register creates a new user with a hashed password, assigns the default
// role and issues a token for the new user.
//
// Persistence failures surface as ErrUserCreationFailed; a failure to assign
// the default role after the user exists surfaces as ErrRoleAssignmentFailed
// so the two cases can be attributed separately.
func (u *accountUsecase) Register(ctx context.Context, username, email, password string) (*NewUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUserCreationFailed, err)
	}

	if err := u.users.AssignRole(ctx, user, entity.DefaultRole); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRoleAssignmentFailed, err)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &NewUser{Username: user.Username, Email: user.Email, Token: token}, nil
}

// Login authenticates a user by username and password and issues a token.
//
// An unknown username returns ErrInvalidUsername, a wrong password returns
// ErrInvalidPassword. The distinction is intentional (see errors.go). A store
// failure during the lookup is neither: it propagates as a plain error.
func (u *accountUsecase) Login(ctx context.Context, username, password string) (*NewUser, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidUsername
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &NewUser{Username: user.Username, Email: user.Email, Token: token}, nil
}
