// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"minbar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when creating a user whose email is taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for back-office account operations.
type UserRepository interface {
	// CreateUser persists a new account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByEmail retrieves an account by its login email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUserByID retrieves an account by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// IsAdmin reports whether the account currently holds the admin role.
	// This is the privileged capability lookup used by the authenticator.
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}
