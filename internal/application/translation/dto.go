package translation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

// TransactionKind distinguishes the two independently schemed record kinds
type TransactionKind string

const (
	KindIndividual TransactionKind = "individual"
	KindCompany    TransactionKind = "company"
)

// CreateTransactionInput carries a translation request. A company reference
// (id or name) makes the transaction company-scoped; its absence explicitly
// tags the transaction individual.
type CreateTransactionInput struct {
	TransactionID  string
	UserName       string
	UserEmail      string
	CompanyID      *uuid.UUID
	CompanyName    string
	DocumentURL    string
	NumberOfUnits  int
	UnitType       string
	CostPerUnit    decimal.Decimal
	SourceLanguage string
	TargetLanguage string
	Currency       string
}

// CreateTransactionResult carries the created record of either kind
type CreateTransactionResult struct {
	Kind       TransactionKind
	Individual *translation.Transaction
	Company    *company.Transaction
}

// WebhookInput is the inbound completion callback payload
type WebhookInput struct {
	DeliveryID    string // optional sender-assigned id for duplicate suppression
	TransactionID string
	FileName      string
	FileURL       string
	UserEmail     string
	MetadataEmail string // metadata.customer_email fallback
	CompanyName   string
	Failed        bool
	PaymentID     string
}

// CustomerEmail returns the identity carried by the payload, top level first
func (in WebhookInput) CustomerEmail() string {
	if in.UserEmail != "" {
		return in.UserEmail
	}
	return in.MetadataEmail
}

// WebhookResult describes the applied reconciliation outcome
type WebhookResult struct {
	Kind          TransactionKind
	TransactionID string
	Status        string
	TranslatedURL string
	FirstDelivery bool
}

// UploadInput registers upload metadata for a document
type UploadInput struct {
	FileName       string
	ContentType    string
	SizeBytes      int64
	SourceLanguage string
	TargetLanguage string
	UserEmail      string
}

// UploadResult carries the presigned upload grant
type UploadResult struct {
	StorageKey  string
	UploadURL   string
	DocumentURL string
	ExpiresAt   time.Time
}
