package billing

import (
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// SubscriptionStatus is the lifecycle state of a company subscription
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription is a company's recurring billing arrangement.
// Settlement is stubbed; the record exists so the billing collection set and
// its indexes are complete.
type Subscription struct {
	shared.BaseEntity
	CompanyID   uuid.UUID
	Plan        string
	Status      SubscriptionStatus
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceOpen InvoiceStatus = "open"
	InvoicePaid InvoiceStatus = "paid"
	InvoiceVoid InvoiceStatus = "void"
)

// Invoice is a billing document issued against a company for a period
type Invoice struct {
	shared.BaseEntity
	CompanyID   uuid.UUID
	Number      string
	AmountCents int64
	Currency    string
	Status      InvoiceStatus
	IssuedAt    time.Time
	DueAt       *time.Time
	PaidAt      *time.Time
}
