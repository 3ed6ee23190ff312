package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
)

// PaymentModel is the persistence model for the Payment domain entity.
// The unique index on the external payment id is the storage-level guard
// against duplicate intents.
type PaymentModel struct {
	BaseModel
	ExternalPaymentID string                `gorm:"type:varchar(100);not null;uniqueIndex"`
	TransactionID     string                `gorm:"type:varchar(100);not null;index"`
	AmountCents       int64                 `gorm:"not null"`
	Currency          string                `gorm:"type:varchar(3);not null;default:'USD'"`
	Status            billing.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentDate       *time.Time
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseEntity:        m.BaseModel.ToDomain(),
		ExternalPaymentID: m.ExternalPaymentID,
		TransactionID:     m.TransactionID,
		AmountCents:       m.AmountCents,
		Currency:          m.Currency,
		Status:            m.Status,
		PaymentDate:       m.PaymentDate,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.ExternalPaymentID = p.ExternalPaymentID
	m.TransactionID = p.TransactionID
	m.AmountCents = p.AmountCents
	m.Currency = p.Currency
	m.Status = p.Status
	m.PaymentDate = p.PaymentDate
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// SubscriptionModel is the persistence model for the Subscription domain entity.
type SubscriptionModel struct {
	BaseModel
	CompanyID   uuid.UUID                  `gorm:"type:uuid;not null;index"`
	Plan        string                     `gorm:"type:varchar(50);not null"`
	Status      billing.SubscriptionStatus `gorm:"type:varchar(20);not null;default:'active'"`
	PeriodStart time.Time                  `gorm:"not null"`
	PeriodEnd   time.Time                  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToDomain converts the persistence model to a domain Subscription entity.
func (m *SubscriptionModel) ToDomain() *billing.Subscription {
	return &billing.Subscription{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyID:   m.CompanyID,
		Plan:        m.Plan,
		Status:      m.Status,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
	}
}

// FromDomain populates the persistence model from a domain Subscription entity.
func (m *SubscriptionModel) FromDomain(s *billing.Subscription) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.CompanyID = s.CompanyID
	m.Plan = s.Plan
	m.Status = s.Status
	m.PeriodStart = s.PeriodStart
	m.PeriodEnd = s.PeriodEnd
}

// InvoiceModel is the persistence model for the Invoice domain entity.
type InvoiceModel struct {
	BaseModel
	CompanyID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	Number      string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	AmountCents int64                 `gorm:"not null"`
	Currency    string                `gorm:"type:varchar(3);not null;default:'USD'"`
	Status      billing.InvoiceStatus `gorm:"type:varchar(20);not null;default:'open'"`
	IssuedAt    time.Time             `gorm:"not null"`
	DueAt       *time.Time
	PaidAt      *time.Time
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyID:   m.CompanyID,
		Number:      m.Number,
		AmountCents: m.AmountCents,
		Currency:    m.Currency,
		Status:      m.Status,
		IssuedAt:    m.IssuedAt,
		DueAt:       m.DueAt,
		PaidAt:      m.PaidAt,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *billing.Invoice) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.CompanyID = i.CompanyID
	m.Number = i.Number
	m.AmountCents = i.AmountCents
	m.Currency = i.Currency
	m.Status = i.Status
	m.IssuedAt = i.IssuedAt
	m.DueAt = i.DueAt
	m.PaidAt = i.PaidAt
}
