package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

// TranslationTransactionModel is the persistence model for individual
// translation transactions. The gateway identifier columns keep their
// historical names (square_transaction_id, square_payment_id); consumers
// of the exported data depend on them.
type TranslationTransactionModel struct {
	BaseModel
	TransactionID  string                        `gorm:"column:square_transaction_id;type:varchar(100);not null;uniqueIndex"`
	UserName       string                        `gorm:"type:varchar(200)"`
	UserEmail      string                        `gorm:"type:varchar(200);not null;index"`
	DocumentURL    string                        `gorm:"type:varchar(1000)"`
	TranslatedURL  string                        `gorm:"type:varchar(1000)"`
	NumberOfUnits  int                           `gorm:"not null"`
	UnitType       string                        `gorm:"type:varchar(20)"`
	CostPerUnit    decimal.Decimal               `gorm:"type:decimal(12,4);not null"`
	SourceLanguage string                        `gorm:"type:varchar(16)"`
	TargetLanguage string                        `gorm:"type:varchar(16)"`
	Date           time.Time                     `gorm:"not null;index"`
	Status         translation.TransactionStatus `gorm:"type:varchar(20);not null;default:'started'"`
	TotalCost      decimal.Decimal               `gorm:"type:decimal(12,4);not null"`
	PaymentID      string                        `gorm:"column:square_payment_id;type:varchar(100);index"`
	AmountCents    int64                         `gorm:"not null"`
	Currency       string                        `gorm:"type:varchar(3);not null;default:'USD'"`
	PaymentStatus  translation.PaymentStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	Refunds        translation.Refunds           `gorm:"type:jsonb;not null;default:'[]'"`
	PaymentDate    *time.Time
}

// TableName returns the table name for GORM
func (TranslationTransactionModel) TableName() string {
	return "translation_transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *TranslationTransactionModel) ToDomain() *translation.Transaction {
	refunds := m.Refunds
	if refunds == nil {
		refunds = translation.Refunds{}
	}
	return &translation.Transaction{
		BaseEntity:     m.BaseModel.ToDomain(),
		TransactionID:  m.TransactionID,
		UserName:       m.UserName,
		UserEmail:      m.UserEmail,
		DocumentURL:    m.DocumentURL,
		TranslatedURL:  m.TranslatedURL,
		NumberOfUnits:  m.NumberOfUnits,
		UnitType:       m.UnitType,
		CostPerUnit:    m.CostPerUnit,
		SourceLanguage: m.SourceLanguage,
		TargetLanguage: m.TargetLanguage,
		Date:           m.Date,
		Status:         m.Status,
		TotalCost:      m.TotalCost,
		PaymentID:      m.PaymentID,
		AmountCents:    m.AmountCents,
		Currency:       m.Currency,
		PaymentStatus:  m.PaymentStatus,
		Refunds:        refunds,
		PaymentDate:    m.PaymentDate,
	}
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *TranslationTransactionModel) FromDomain(t *translation.Transaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.TransactionID = t.TransactionID
	m.UserName = t.UserName
	m.UserEmail = t.UserEmail
	m.DocumentURL = t.DocumentURL
	m.TranslatedURL = t.TranslatedURL
	m.NumberOfUnits = t.NumberOfUnits
	m.UnitType = t.UnitType
	m.CostPerUnit = t.CostPerUnit
	m.SourceLanguage = t.SourceLanguage
	m.TargetLanguage = t.TargetLanguage
	m.Date = t.Date
	m.Status = t.Status
	m.TotalCost = t.TotalCost
	m.PaymentID = t.PaymentID
	m.AmountCents = t.AmountCents
	m.Currency = t.Currency
	m.PaymentStatus = t.PaymentStatus
	m.Refunds = t.Refunds
	m.PaymentDate = t.PaymentDate
}

// TranslationTransactionModelFromDomain creates a new persistence model from a domain Transaction.
func TranslationTransactionModelFromDomain(t *translation.Transaction) *TranslationTransactionModel {
	m := &TranslationTransactionModel{}
	m.FromDomain(t)
	return m
}
