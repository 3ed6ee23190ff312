// Package translation holds individual translation transactions: one record
// per translation job requested by a non-corporate user, carrying both the
// document lifecycle and the payment lifecycle.
package translation

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionStatus tracks a translation job through its lifecycle
type TransactionStatus string

const (
	StatusStarted    TransactionStatus = "started"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
)

// IsTerminal reports whether no further status transitions are expected
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

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

// Refund is a single refund against an individual transaction. Immutable once
// created. The monetary field is named "amount_cents" on this record kind;
// the company-scoped refund uses "amount". The divergence is deliberate.
type Refund struct {
	RefundID       string       `json:"refund_id"`
	AmountCents    int64        `json:"amount_cents"`
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

// Transaction is one individual translation job and its payment lifecycle.
// Individual transactions carry no company reference by definition.
type Transaction struct {
	shared.BaseEntity
	TransactionID  string
	UserName       string
	UserEmail      string
	DocumentURL    string
	TranslatedURL  string
	NumberOfUnits  int
	UnitType       string
	CostPerUnit    decimal.Decimal
	SourceLanguage string
	TargetLanguage string
	Date           time.Time
	Status         TransactionStatus
	TotalCost      decimal.Decimal
	PaymentID      string // external (Square) payment identifier
	AmountCents    int64
	Currency       string
	PaymentStatus  PaymentStatus
	Refunds        Refunds
	PaymentDate    *time.Time
}

// NewTransactionInput carries the fields needed to open an individual transaction
type NewTransactionInput struct {
	TransactionID  string
	UserName       string
	UserEmail      string
	DocumentURL    string
	NumberOfUnits  int
	UnitType       string
	CostPerUnit    decimal.Decimal
	SourceLanguage string
	TargetLanguage string
	Currency       string
}

// NewTransaction opens an individual transaction in the started state
func NewTransaction(in NewTransactionInput) (*Transaction, error) {
	if strings.TrimSpace(in.TransactionID) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction id is required")
	}
	if strings.TrimSpace(in.UserEmail) == "" {
		return nil, shared.ErrMissingIdentity
	}
	if in.NumberOfUnits <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Number of units must be positive")
	}
	if in.CostPerUnit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Cost per unit must not be negative")
	}

	total := in.CostPerUnit.Mul(decimal.NewFromInt(int64(in.NumberOfUnits)))
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}

	return &Transaction{
		BaseEntity:     shared.NewBaseEntity(),
		TransactionID:  strings.TrimSpace(in.TransactionID),
		UserName:       strings.TrimSpace(in.UserName),
		UserEmail:      strings.ToLower(strings.TrimSpace(in.UserEmail)),
		DocumentURL:    in.DocumentURL,
		NumberOfUnits:  in.NumberOfUnits,
		UnitType:       in.UnitType,
		CostPerUnit:    in.CostPerUnit,
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
		Date:           time.Now(),
		Status:         StatusStarted,
		TotalCost:      total,
		AmountCents:    total.Mul(decimal.NewFromInt(100)).IntPart(),
		Currency:       currency,
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
	if refund.AmountCents <= 0 {
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

// RefundedCents sums all recorded refunds in minor units
func (t *Transaction) RefundedCents() int64 {
	var sum int64
	for _, r := range t.Refunds {
		sum += r.AmountCents
	}
	return sum
}
