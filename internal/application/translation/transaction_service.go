// Package translation implements the transaction lifecycle: the single
// authoritative creation path for both record kinds, upload metadata
// registration, and webhook reconciliation.
package translation

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/language"

	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

// TransactionService is the only code path that creates transaction records.
// Company references are resolved and verified here, at write time, so stored
// rows always carry a valid canonical company UUID or none at all.
type TransactionService struct {
	individual translation.TransactionRepository
	companyTxn company.TransactionRepository
	companies  company.Repository
	logger     *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	individual translation.TransactionRepository,
	companyTxn company.TransactionRepository,
	companies company.Repository,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		individual: individual,
		companyTxn: companyTxn,
		companies:  companies,
		logger:     logger,
	}
}

// Create opens a transaction. A company reference makes it company-scoped and
// must resolve to an existing company; no reference tags it individual.
func (s *TransactionService) Create(ctx context.Context, in CreateTransactionInput) (*CreateTransactionResult, error) {
	if err := ValidateLanguagePair(in.SourceLanguage, in.TargetLanguage); err != nil {
		return nil, err
	}

	if in.CompanyID != nil || strings.TrimSpace(in.CompanyName) != "" {
		return s.createCompanyScoped(ctx, in)
	}
	return s.createIndividual(ctx, in)
}

func (s *TransactionService) createIndividual(ctx context.Context, in CreateTransactionInput) (*CreateTransactionResult, error) {
	txn, err := translation.NewTransaction(translation.NewTransactionInput{
		TransactionID:  in.TransactionID,
		UserName:       in.UserName,
		UserEmail:      in.UserEmail,
		DocumentURL:    in.DocumentURL,
		NumberOfUnits:  in.NumberOfUnits,
		UnitType:       in.UnitType,
		CostPerUnit:    in.CostPerUnit,
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
		Currency:       in.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := s.individual.Save(ctx, txn); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrAlreadyExists
		}
		s.logger.Error("failed to save individual transaction",
			zap.String("transaction_id", txn.TransactionID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create transaction")
	}

	s.logger.Info("individual transaction created",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("user_email", txn.UserEmail),
		zap.Int64("amount_cents", txn.AmountCents),
	)
	return &CreateTransactionResult{Kind: KindIndividual, Individual: txn}, nil
}

func (s *TransactionService) createCompanyScoped(ctx context.Context, in CreateTransactionInput) (*CreateTransactionResult, error) {
	c, err := s.resolveCompany(ctx, in)
	if err != nil {
		return nil, err
	}

	txn, err := company.NewTransaction(company.NewTransactionInput{
		TransactionID:  in.TransactionID,
		CompanyID:      c.ID,
		CompanyName:    c.Name,
		DocumentURL:    in.DocumentURL,
		NumberOfUnits:  in.NumberOfUnits,
		UnitType:       in.UnitType,
		CostPerUnit:    in.CostPerUnit,
		SourceLanguage: in.SourceLanguage,
		TargetLanguage: in.TargetLanguage,
		Currency:       in.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := s.companyTxn.Save(ctx, txn); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrAlreadyExists
		}
		s.logger.Error("failed to save company transaction",
			zap.String("transaction_id", txn.TransactionID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create transaction")
	}

	s.logger.Info("company transaction created",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("company_id", c.ID.String()),
		zap.Int64("amount", txn.Amount),
	)
	return &CreateTransactionResult{Kind: KindCompany, Company: txn}, nil
}

// resolveCompany verifies the referenced company exists, preferring the id
func (s *TransactionService) resolveCompany(ctx context.Context, in CreateTransactionInput) (*company.Company, error) {
	if in.CompanyID != nil {
		return s.companies.FindByID(ctx, *in.CompanyID)
	}
	return s.companies.FindByName(ctx, strings.TrimSpace(in.CompanyName))
}

// GetIndividual returns an individual transaction by its transaction id
func (s *TransactionService) GetIndividual(ctx context.Context, transactionID string) (*translation.Transaction, error) {
	return s.individual.FindByTransactionID(ctx, transactionID)
}

// GetCompanyScoped returns a company transaction by its transaction id
func (s *TransactionService) GetCompanyScoped(ctx context.Context, transactionID string) (*company.Transaction, error) {
	return s.companyTxn.FindByTransactionID(ctx, transactionID)
}

// ListByUser returns a user's individual transactions, newest first
func (s *TransactionService) ListByUser(ctx context.Context, email string, filter translation.TransactionFilter) ([]translation.Transaction, error) {
	return s.individual.FindByUserEmail(ctx, email, filter)
}

// ValidateLanguagePair checks both BCP 47 language codes
func ValidateLanguagePair(source, target string) error {
	for _, code := range []string{source, target} {
		if strings.TrimSpace(code) == "" {
			return shared.ErrInvalidLanguage
		}
		if _, err := language.Parse(code); err != nil {
			return shared.ErrInvalidLanguage
		}
	}
	if strings.EqualFold(source, target) {
		return shared.NewDomainError("INVALID_INPUT", "Source and target language must differ")
	}
	return nil
}
