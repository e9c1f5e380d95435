// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery outcome statuses.
const (
	OutcomeStatusSent   = "sent"
	OutcomeStatusFailed = "failed"
)

// DeliveryOutcome is one append-only ledger row per attempted
// (notification, token) pair. Rows are immutable once written and are the
// sole durable record of per-target delivery results.
type DeliveryOutcome struct {
	ID                uuid.UUID `json:"id"`                  // The Global Unique Identifier (GUID) for the ledger row.
	NotificationID    uuid.UUID `json:"notification_id"`     // The notification this outcome belongs to.
	TokenID           uuid.UUID `json:"token_id"`            // The device token that was attempted.
	Platform          string    `json:"platform"`            // Platform of the attempted token.
	Status            string    `json:"status"`              // Outcome status (sent, failed).
	ProviderMessageID string    `json:"provider_message_id"` // Acknowledgment identifier returned by the push provider.
	ErrorCode         string    `json:"error_code"`          // Coarse classification (http_410, timeout, ...) when failed.
	ErrorMessage      string    `json:"error_message"`       // Raw error text when failed.
	Endpoint          string    `json:"endpoint"`            // Push service endpoint URL (web targets).
	EndpointHost      string    `json:"endpoint_host"`       // Host portion of the endpoint, for provenance.
	Browser           string    `json:"browser"`             // Best-effort browser label inferred from the endpoint host.
	Stage             string    `json:"stage"`               // Processing stage that produced the outcome.
	CreatedAt         time.Time `json:"created_at"`          // Timestamp of when the row was written.
}
