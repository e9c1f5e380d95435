// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"minbar/internal/domain/entity"

	"github.com/google/uuid"
)

// OutcomeRepository is the append-only delivery ledger. Rows are immutable
// once written; there are deliberately no update or delete operations.
type OutcomeRepository interface {
	// CreateOutcome appends one outcome row.
	CreateOutcome(ctx context.Context, outcome *entity.DeliveryOutcome) error

	// ListOutcomesByNotification retrieves the ledger rows for one
	// notification in write order, for the admin diagnostics view.
	ListOutcomesByNotification(ctx context.Context, notificationID uuid.UUID, limit, offset int) ([]*entity.DeliveryOutcome, error)
}
