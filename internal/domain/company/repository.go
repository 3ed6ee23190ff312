package company

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for companies
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByName(ctx context.Context, name string) (*Company, error)
	Save(ctx context.Context, c *Company) error
	List(ctx context.Context) ([]Company, error)
}

// TransactionFilter narrows company transaction queries
type TransactionFilter struct {
	Status   *TransactionStatus
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	PageSize int
}

// TransactionRepository defines persistence operations for company transactions
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)
	// FindByCompany returns only transactions whose stored company reference
	// equals the given id. Rows lacking a company reference cannot exist by
	// construction and are never returned.
	FindByCompany(ctx context.Context, companyID uuid.UUID, filter TransactionFilter) ([]Transaction, error)
	CountByCompany(ctx context.Context, companyID uuid.UUID, filter TransactionFilter) (int64, error)
	Save(ctx context.Context, t *Transaction) error
	// CompleteDelivery atomically applies the webhook outcome to the one row
	// matching transactionID. Returns shared.ErrNotFound when no row matches.
	CompleteDelivery(ctx context.Context, transactionID string, update DeliveryUpdate) (*Transaction, error)
}

// DeliveryUpdate is the full webhook outcome applied in a single UPDATE
type DeliveryUpdate struct {
	Status        TransactionStatus
	TranslatedURL string
	PaymentID     string
}
