// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"minbar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device-token persistence.
var (
	// ErrTokenNotFound is returned when a device token is not found.
	ErrTokenNotFound = errors.New("device token not found")
	// ErrDuplicateToken is returned when registering a token that already exists.
	ErrDuplicateToken = errors.New("device token already exists")
)

// TokenFilter narrows eligible-target resolution. Zero values mean "no filter";
// Enabled-only filtering is always applied by the implementation.
type TokenFilter struct {
	// Platforms restricts results to the given platforms. Empty means all.
	Platforms []string
	// DeviceID restricts results to tokens registered by one client device.
	DeviceID string
	// TokenID restricts results to one exact token.
	TokenID *uuid.UUID
}

// DeviceRepository defines the interface for device-token database operations.
type DeviceRepository interface {
	// CreateToken persists a newly registered device token.
	CreateToken(ctx context.Context, token *entity.DeviceToken) error

	// FindTokenByID retrieves a token by its unique ID, enabled or not.
	FindTokenByID(ctx context.Context, id uuid.UUID) (*entity.DeviceToken, error)

	// FindEligibleTokens retrieves enabled tokens matching the filter, in
	// registration order. Disabled tokens never appear in the result.
	FindEligibleTokens(ctx context.Context, filter TokenFilter) ([]*entity.DeviceToken, error)

	// ListTokens retrieves all tokens (including disabled) for diagnostics.
	ListTokens(ctx context.Context, limit, offset int) ([]*entity.DeviceToken, error)

	// DisableToken clears the enabled flag. Disabling an already-disabled
	// token is a no-op, not an error.
	DisableToken(ctx context.Context, id uuid.UUID) error
}
