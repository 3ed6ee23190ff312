// Package audit holds the append-only audit and notification log records.
// Writes are best-effort: callers log failures and continue.
package audit

import (
	"context"
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

// Log is one audit trail entry for a state-changing operation
type Log struct {
	shared.BaseEntity
	Actor      string // user email, api key name, or "system"
	Action     string // e.g. "webhook.completed", "payment.created"
	EntityType string
	EntityID   string
	Detail     string // free-form context, typically a payload digest
}

// NewLog creates an audit entry
func NewLog(actor, action, entityType, entityID, detail string) *Log {
	return &Log{
		BaseEntity: shared.NewBaseEntity(),
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}
}

// NotificationStatus is the delivery outcome of a notification attempt
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// NotificationLog records one outbound notification attempt
type NotificationLog struct {
	shared.BaseEntity
	Recipient string
	Template  string
	Status    NotificationStatus
	Error     string
	SentAt    time.Time
}

// LogRepository defines persistence operations for audit logs
type LogRepository interface {
	Append(ctx context.Context, l *Log) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]Log, error)
}

// NotificationLogRepository defines persistence operations for notification logs
type NotificationLogRepository interface {
	Append(ctx context.Context, l *NotificationLog) error
	ListByRecipient(ctx context.Context, recipient string) ([]NotificationLog, error)
}
