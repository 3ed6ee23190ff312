package billing

import (
	"context"

	"github.com/google/uuid"
)

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByExternalID(ctx context.Context, externalPaymentID string) (*Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) ([]Payment, error)
	// Create persists a new payment; a duplicate external payment id surfaces
	// as shared.ErrDuplicatePayment via the table's unique index.
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
}
