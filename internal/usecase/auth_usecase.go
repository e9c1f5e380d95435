// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"minbar/internal/domain/entity"
)

// LoginResult carries the issued token pair after a successful login.
type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// AuthUsecase defines back-office authentication use cases.
type AuthUsecase interface {
	// Login verifies the credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Register creates a new back-office account. The first account of a
	// fresh deployment is typically created through this path by an operator.
	Register(ctx context.Context, email, password, role string) (*entity.User, error)
}
