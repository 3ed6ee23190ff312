// Package billing holds payment intents and the subscription/invoice records
// that round out the billing collections. Settlement itself happens at the
// external gateway; this side only tracks intents and their reported outcomes.
package billing

import (
	"strings"
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

// PaymentStatus is the gateway-reported state of a payment intent
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records one payment intent created at the gateway for a transaction.
// The external payment id is unique across the table; a gateway retry that
// reuses the id is rejected at the storage layer.
type Payment struct {
	shared.BaseEntity
	ExternalPaymentID string
	TransactionID     string
	AmountCents       int64
	Currency          string
	Status            PaymentStatus
	PaymentDate       *time.Time
}

// NewPayment records a freshly created payment intent
func NewPayment(externalPaymentID, transactionID string, amountCents int64, currency string) (*Payment, error) {
	if strings.TrimSpace(externalPaymentID) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "External payment id is required")
	}
	if strings.TrimSpace(transactionID) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction id is required")
	}
	if amountCents <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment amount must be positive")
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}

	return &Payment{
		BaseEntity:        shared.NewBaseEntity(),
		ExternalPaymentID: strings.TrimSpace(externalPaymentID),
		TransactionID:     strings.TrimSpace(transactionID),
		AmountCents:       amountCents,
		Currency:          currency,
		Status:            PaymentPending,
	}, nil
}

// MarkCompleted records gateway-confirmed settlement
func (p *Payment) MarkCompleted(at time.Time) {
	p.Status = PaymentCompleted
	p.PaymentDate = &at
	p.Touch()
}

// MarkFailed records gateway-reported failure
func (p *Payment) MarkFailed() {
	p.Status = PaymentFailed
	p.Touch()
}
