package handler

import (
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

// CreateTransactionRequest opens a translation transaction. A company
// reference (id or name) makes it company-scoped.
type CreateTransactionRequest struct {
	TransactionID  string  `json:"transaction_id" binding:"required"`
	UserName       string  `json:"user_name"`
	UserEmail      string  `json:"user_email"`
	CompanyID      string  `json:"company_id" binding:"omitempty,uuid"`
	CompanyName    string  `json:"company_name"`
	DocumentURL    string  `json:"document_url"`
	NumberOfUnits  int     `json:"number_of_units" binding:"required,min=1"`
	UnitType       string  `json:"unit_type" binding:"required"`
	CostPerUnit    float64 `json:"cost_per_unit" binding:"required,gt=0"`
	SourceLanguage string  `json:"source_language" binding:"required,language"`
	TargetLanguage string  `json:"target_language" binding:"required,language"`
	Currency       string  `json:"currency"`
}

// RefundResponse mirrors the individual record's refund shape (amount_cents)
type RefundResponse struct {
	RefundID       string    `json:"refund_id"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	IdempotencyKey string    `json:"idempotency_key"`
	Reason         string    `json:"reason,omitempty"`
}

// CompanyRefundResponse mirrors the company record's refund shape (amount)
type CompanyRefundResponse struct {
	RefundID       string    `json:"refund_id"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	IdempotencyKey string    `json:"idempotency_key"`
	Reason         string    `json:"reason,omitempty"`
}

// IndividualTransactionResponse is the individual record's published shape.
// Monetary refund entries use amount_cents; the company-scoped record uses
// amount. The divergence is contractual and preserved exactly.
type IndividualTransactionResponse struct {
	UserName            string           `json:"user_name"`
	UserEmail           string           `json:"user_email"`
	DocumentURL         string           `json:"document_url"`
	TranslatedURL       string           `json:"translated_url"`
	NumberOfUnits       int              `json:"number_of_units"`
	UnitType            string           `json:"unit_type"`
	CostPerUnit         float64          `json:"cost_per_unit"`
	SourceLanguage      string           `json:"source_language"`
	TargetLanguage      string           `json:"target_language"`
	SquareTransactionID string           `json:"square_transaction_id"`
	Date                time.Time        `json:"date"`
	Status              string           `json:"status"`
	TotalCost           float64          `json:"total_cost"`
	SquarePaymentID     string           `json:"square_payment_id"`
	AmountCents         int64            `json:"amount_cents"`
	Currency            string           `json:"currency"`
	PaymentStatus       string           `json:"payment_status"`
	Refunds             []RefundResponse `json:"refunds"`
	PaymentDate         *time.Time       `json:"payment_date"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// CompanyTransactionResponse is the company-scoped record's published shape
type CompanyTransactionResponse struct {
	TransactionID  string                  `json:"transaction_id"`
	CompanyID      string                  `json:"company_id"`
	CompanyName    string                  `json:"company_name"`
	DocumentURL    string                  `json:"document_url"`
	TranslatedURL  string                  `json:"translated_url"`
	NumberOfUnits  int                     `json:"number_of_units"`
	UnitType       string                  `json:"unit_type"`
	CostPerUnit    float64                 `json:"cost_per_unit"`
	SourceLanguage string                  `json:"source_language"`
	TargetLanguage string                  `json:"target_language"`
	Status         string                  `json:"status"`
	Amount         int64                   `json:"amount"`
	Currency       string                  `json:"currency"`
	PaymentStatus  string                  `json:"payment_status"`
	PaymentID      string                  `json:"payment_id"`
	Refunds        []CompanyRefundResponse `json:"refunds"`
	PaymentDate    *time.Time              `json:"payment_date"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// IndividualTransactionFromDomain maps a domain record to its response shape
func IndividualTransactionFromDomain(t *translation.Transaction) IndividualTransactionResponse {
	refunds := make([]RefundResponse, len(t.Refunds))
	for i := range t.Refunds {
		refunds[i] = individualRefund(&t.Refunds[i])
	}

	return IndividualTransactionResponse{
		UserName:            t.UserName,
		UserEmail:           t.UserEmail,
		DocumentURL:         t.DocumentURL,
		TranslatedURL:       t.TranslatedURL,
		NumberOfUnits:       t.NumberOfUnits,
		UnitType:            t.UnitType,
		CostPerUnit:         t.CostPerUnit.InexactFloat64(),
		SourceLanguage:      t.SourceLanguage,
		TargetLanguage:      t.TargetLanguage,
		SquareTransactionID: t.TransactionID,
		Date:                t.Date,
		Status:              string(t.Status),
		TotalCost:           t.TotalCost.InexactFloat64(),
		SquarePaymentID:     t.PaymentID,
		AmountCents:         t.AmountCents,
		Currency:            t.Currency,
		PaymentStatus:       string(t.PaymentStatus),
		Refunds:             refunds,
		PaymentDate:         t.PaymentDate,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

// CompanyTransactionFromDomain maps a domain record to its response shape
func CompanyTransactionFromDomain(t *company.Transaction) CompanyTransactionResponse {
	refunds := make([]CompanyRefundResponse, len(t.Refunds))
	for i := range t.Refunds {
		refunds[i] = companyRefund(&t.Refunds[i])
	}

	return CompanyTransactionResponse{
		TransactionID:  t.TransactionID,
		CompanyID:      t.CompanyID.String(),
		CompanyName:    t.CompanyName,
		DocumentURL:    t.DocumentURL,
		TranslatedURL:  t.TranslatedURL,
		NumberOfUnits:  t.NumberOfUnits,
		UnitType:       t.UnitType,
		CostPerUnit:    t.CostPerUnit.InexactFloat64(),
		SourceLanguage: t.SourceLanguage,
		TargetLanguage: t.TargetLanguage,
		Status:         string(t.Status),
		Amount:         t.Amount,
		Currency:       t.Currency,
		PaymentStatus:  string(t.PaymentStatus),
		PaymentID:      t.PaymentID,
		Refunds:        refunds,
		PaymentDate:    t.PaymentDate,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
