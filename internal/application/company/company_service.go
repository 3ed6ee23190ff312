// Package company implements company management and company-scoped
// transaction queries.
package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

// Service handles company CRUD and transaction listings
type Service struct {
	companies    company.Repository
	transactions company.TransactionRepository
	logger       *zap.Logger
}

// NewService creates a new company Service
func NewService(
	companies company.Repository,
	transactions company.TransactionRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		companies:    companies,
		transactions: transactions,
		logger:       logger,
	}
}

// Create registers a new company
func (s *Service) Create(ctx context.Context, name, lineOfBusiness string) (*company.Company, error) {
	c, err := company.NewCompany(name, lineOfBusiness)
	if err != nil {
		return nil, err
	}
	if err := s.companies.Save(ctx, c); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrAlreadyExists
		}
		s.logger.Error("failed to save company", zap.String("name", name), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create company")
	}

	s.logger.Info("company created", zap.String("name", c.Name), zap.String("id", c.ID.String()))
	return c, nil
}

// Get returns a company by id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// GetByName returns a company by exact name
func (s *Service) GetByName(ctx context.Context, name string) (*company.Company, error) {
	return s.companies.FindByName(ctx, name)
}

// List returns all companies ordered by name
func (s *Service) List(ctx context.Context) ([]company.Company, error) {
	return s.companies.List(ctx)
}

// ListTransactions returns a page of the company's transactions plus the total
// count. The company must exist; a lookup for an unknown company fails rather
// than returning an empty page.
func (s *Service) ListTransactions(ctx context.Context, companyID uuid.UUID, filter company.TransactionFilter) ([]company.Transaction, int64, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, 0, err
	}

	txns, err := s.transactions.FindByCompany(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("failed to list company transactions",
			zap.String("company_id", companyID.String()), zap.Error(err))
		return nil, 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to list transactions")
	}

	total, err := s.transactions.CountByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to count transactions")
	}
	return txns, total, nil
}
