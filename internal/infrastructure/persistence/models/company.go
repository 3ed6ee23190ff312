package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
)

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	BaseModel
	Name           string `gorm:"type:varchar(200);not null;uniqueIndex"`
	LineOfBusiness string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *company.Company {
	return &company.Company{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		LineOfBusiness: m.LineOfBusiness,
	}
}

// FromDomain populates the persistence model from a domain Company entity.
func (m *CompanyModel) FromDomain(c *company.Company) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.LineOfBusiness = c.LineOfBusiness
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *company.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// CompanyTransactionModel is the persistence model for company-scoped transactions.
// The company reference is a non-null UUID column; it is the only form the
// reference is ever stored in.
type CompanyTransactionModel struct {
	BaseModel
	TransactionID  string                    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CompanyID      uuid.UUID                 `gorm:"type:uuid;not null;index:idx_company_transactions_company_date,priority:1"`
	CompanyName    string                    `gorm:"type:varchar(200);not null"`
	DocumentURL    string                    `gorm:"type:varchar(1000)"`
	TranslatedURL  string                    `gorm:"type:varchar(1000)"`
	NumberOfUnits  int                       `gorm:"not null"`
	UnitType       string                    `gorm:"type:varchar(20)"`
	CostPerUnit    decimal.Decimal           `gorm:"type:decimal(12,4);not null"`
	SourceLanguage string                    `gorm:"type:varchar(16)"`
	TargetLanguage string                    `gorm:"type:varchar(16)"`
	Status         company.TransactionStatus `gorm:"type:varchar(20);not null;default:'started'"`
	Amount         int64                     `gorm:"not null"`
	Currency       string                    `gorm:"type:varchar(3);not null;default:'USD'"`
	PaymentStatus  company.PaymentStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentID      string                    `gorm:"type:varchar(100);index"`
	Refunds        company.Refunds           `gorm:"type:jsonb;not null;default:'[]'"`
	PaymentDate    *time.Time                `gorm:"index:idx_company_transactions_company_date,priority:2"`
}

// TableName returns the table name for GORM
func (CompanyTransactionModel) TableName() string {
	return "company_transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *CompanyTransactionModel) ToDomain() *company.Transaction {
	refunds := m.Refunds
	if refunds == nil {
		refunds = company.Refunds{}
	}
	return &company.Transaction{
		BaseEntity:     m.BaseModel.ToDomain(),
		TransactionID:  m.TransactionID,
		CompanyID:      m.CompanyID,
		CompanyName:    m.CompanyName,
		DocumentURL:    m.DocumentURL,
		TranslatedURL:  m.TranslatedURL,
		NumberOfUnits:  m.NumberOfUnits,
		UnitType:       m.UnitType,
		CostPerUnit:    m.CostPerUnit,
		SourceLanguage: m.SourceLanguage,
		TargetLanguage: m.TargetLanguage,
		Status:         m.Status,
		Amount:         m.Amount,
		Currency:       m.Currency,
		PaymentStatus:  m.PaymentStatus,
		PaymentID:      m.PaymentID,
		Refunds:        refunds,
		PaymentDate:    m.PaymentDate,
	}
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *CompanyTransactionModel) FromDomain(t *company.Transaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.TransactionID = t.TransactionID
	m.CompanyID = t.CompanyID
	m.CompanyName = t.CompanyName
	m.DocumentURL = t.DocumentURL
	m.TranslatedURL = t.TranslatedURL
	m.NumberOfUnits = t.NumberOfUnits
	m.UnitType = t.UnitType
	m.CostPerUnit = t.CostPerUnit
	m.SourceLanguage = t.SourceLanguage
	m.TargetLanguage = t.TargetLanguage
	m.Status = t.Status
	m.Amount = t.Amount
	m.Currency = t.Currency
	m.PaymentStatus = t.PaymentStatus
	m.PaymentID = t.PaymentID
	m.Refunds = t.Refunds
	m.PaymentDate = t.PaymentDate
}

// CompanyTransactionModelFromDomain creates a new persistence model from a domain Transaction.
func CompanyTransactionModelFromDomain(t *company.Transaction) *CompanyTransactionModel {
	m := &CompanyTransactionModel{}
	m.FromDomain(t)
	return m
}
