package company

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus tracks a company translation job through its lifecycle
type TransactionStatus string

const (
	StatusStarted    TransactionStatus = "started"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
)

// PaymentStatus tracks the payment side of a transaction
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// RefundStatus is the state of an individual refund record
type RefundStatus string

const (
	RefundPending   RefundStatus = "pending"
	RefundCompleted RefundStatus = "completed"
	RefundFailed    RefundStatus = "failed"
)

// Refund is a single refund against a company transaction. Immutable once created.
// The monetary field is named "amount" on this record kind; the individual
// transaction's refund uses "amount_cents". Existing consumers depend on each
// name, so the divergence is kept.
type Refund struct {
	RefundID       string       `json:"refund_id"`
	Amount         int64        `json:"amount"` // minor currency units
	Currency       string       `json:"currency"`
	Status         RefundStatus `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	IdempotencyKey string       `json:"idempotency_key"`
	Reason         string       `json:"reason,omitempty"`
}

// Refunds is a slice of Refund that implements GORM Scanner/Valuer for JSONB storage
type Refunds []Refund

// Value implements driver.Valuer for JSONB storage
func (r Refunds) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB reads
func (r *Refunds) Scan(value interface{}) error {
	if value == nil {
		*r = Refunds{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan Refunds: unsupported type")
	}

	if len(bytes) == 0 {
		*r = Refunds{}
		return nil
	}

	return json.Unmarshal(bytes, r)
}

// Transaction is a company-scoped translation job and its payment lifecycle.
// The company reference is mandatory: the single authoritative creation path
// verifies the company exists before a row is ever written, so queries can
// filter on the canonical UUID without a null escape hatch.
type Transaction struct {
	shared.BaseEntity
	TransactionID  string
	CompanyID      uuid.UUID
	CompanyName    string
	DocumentURL    string
	TranslatedURL  string
	NumberOfUnits  int
	UnitType       string
	CostPerUnit    decimal.Decimal
	SourceLanguage string
	TargetLanguage string
	Status         TransactionStatus
	Amount         int64 // minor currency units
	Currency       string
	PaymentStatus  PaymentStatus
	PaymentID      string // external payment identifier
	Refunds        Refunds
	PaymentDate    *time.Time
}

// NewTransactionInput carries the fields needed to open a company transaction
type NewTransactionInput struct {
	TransactionID  string
	CompanyID      uuid.UUID
	CompanyName    string
	DocumentURL    string
	NumberOfUnits  int
	UnitType       string
	CostPerUnit    decimal.Decimal
	SourceLanguage string
	TargetLanguage string
	Currency       string
}

// NewTransaction opens a company transaction in the started state
func NewTransaction(in NewTransactionInput) (*Transaction, error) {
	if strings.TrimSpace(in.TransactionID) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction id is required")
	}
	if in.CompanyID == uuid.Nil {
		return nil, shared.ErrCompanyNotFound
	}
	if in.NumberOfUnits <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Number of units must be positive")
	}
	if in.CostPerUnit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Cost per unit must not be negative")
	}

	total := in.CostPerUnit.Mul(decimal.NewFromInt(int64(in.NumberOfUnits)))

	return &Transaction{
		BaseEntity:     shared.NewBaseEntity(),
		TransactionID:  strings.TrimSpace(in.TransactionID),
		CompanyID:      in.CompanyID,
		CompanyName:    in.CompanyName,
		DocumentURL:    in.DocumentURL,
		NumberOfUnits:  in.NumberOfUnits,
		UnitType:       in.UnitType,
		CostPerUnit:    in.CostPerUnit,
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
		Status:         StatusStarted,
		Amount:         total.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency:       defaultCurrency(in.Currency),
		PaymentStatus:  PaymentPending,
		Refunds:        Refunds{},
	}, nil
}

// FindRefund returns the refund recorded under an idempotency key, if any
func (t *Transaction) FindRefund(idempotencyKey string) *Refund {
	for i := range t.Refunds {
		if t.Refunds[i].IdempotencyKey == idempotencyKey {
			return &t.Refunds[i]
		}
	}
	return nil
}

// AddRefund appends an immutable refund record. A duplicate idempotency key
// is rejected; callers treat the previously recorded refund as the result.
func (t *Transaction) AddRefund(refund Refund) error {
	if refund.IdempotencyKey == "" {
		return shared.NewDomainError("INVALID_INPUT", "Refund requires an idempotency key")
	}
	if refund.Amount <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Refund amount must be positive")
	}
	if t.FindRefund(refund.IdempotencyKey) != nil {
		return shared.ErrAlreadyExists
	}

	t.Refunds = append(t.Refunds, refund)
	t.PaymentStatus = PaymentRefunded
	t.Touch()
	return nil
}

// RefundedAmount sums all recorded refunds in minor units
func (t *Transaction) RefundedAmount() int64 {
	var sum int64
	for _, r := range t.Refunds {
		sum += r.Amount
	}
	return sum
}

func defaultCurrency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return "USD"
	}
	return c
}
