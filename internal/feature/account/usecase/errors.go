// Package usecase implements the business logic for the account feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned by the repository when no user exists with
	// the given username. Login maps it to ErrInvalidUsername; any other
	// lookup failure is a store error and propagates as such.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUsername is returned by Login when no user exists with the given username.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword is returned by Login when the password does not match.
	// It is deliberately distinct from ErrInvalidUsername so the caller gets a
	// precise reason, mirroring the differentiated API messages.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserCreationFailed is returned by Register when the user record cannot
	// be persisted (e.g. duplicate username or email).
	ErrUserCreationFailed = errors.New("user creation failed")

	// ErrRoleAssignmentFailed is returned by Register when the user was created
	// but the default role could not be assigned. It maps to the same HTTP
	// category as ErrUserCreationFailed but is logged and attributed separately.
	ErrRoleAssignmentFailed = errors.New("role assignment failed")
)
