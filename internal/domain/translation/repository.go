package translation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TransactionFilter narrows individual transaction queries
type TransactionFilter struct {
	UserEmail *string
	Status    *TransactionStatus
	FromDate  *time.Time
	ToDate    *time.Time
	Page      int
	PageSize  int
}

// TransactionRepository defines persistence operations for individual transactions
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)
	FindByUserEmail(ctx context.Context, email string, filter TransactionFilter) ([]Transaction, error)
	Save(ctx context.Context, t *Transaction) error
	// CompleteDelivery atomically applies the webhook outcome to the one row
	// matching transactionID. Returns shared.ErrNotFound when no row matches.
	// Re-applying the same update converges to the same final record state.
	CompleteDelivery(ctx context.Context, transactionID string, update DeliveryUpdate) (*Transaction, error)
}

// DeliveryUpdate is the full webhook outcome applied in a single UPDATE
type DeliveryUpdate struct {
	Status        TransactionStatus
	TranslatedURL string
	PaymentID     string
}
