package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/persistence/models"
)

// GormCompanyTransactionRepository implements company.TransactionRepository using GORM
type GormCompanyTransactionRepository struct {
	db *gorm.DB
}

// NewGormCompanyTransactionRepository creates a new GormCompanyTransactionRepository
func NewGormCompanyTransactionRepository(db *gorm.DB) *GormCompanyTransactionRepository {
	return &GormCompanyTransactionRepository{db: db}
}

// FindByID finds a company transaction by primary key
func (r *GormCompanyTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Transaction, error) {
	var model models.CompanyTransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTransactionID finds a company transaction by its business transaction id
func (r *GormCompanyTransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*company.Transaction, error) {
	var model models.CompanyTransactionModel
	if err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCompany returns transactions whose stored company id equals companyID.
// The filter is a single equality on the canonical UUID column.
func (r *GormCompanyTransactionRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, filter company.TransactionFilter) ([]company.Transaction, error) {
	var txModels []models.CompanyTransactionModel

	query := r.db.WithContext(ctx).
		Model(&models.CompanyTransactionModel{}).
		Where("company_id = ?", companyID)
	query = r.applyFilter(query, filter)

	if err := query.Order("created_at DESC").Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]company.Transaction, len(txModels))
	for i, model := range txModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions, nil
}

// CountByCompany counts transactions for a company matching the filter
func (r *GormCompanyTransactionRepository) CountByCompany(ctx context.Context, companyID uuid.UUID, filter company.TransactionFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.CompanyTransactionModel{}).
		Where("company_id = ?", companyID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save upserts a company transaction keyed by primary key
func (r *GormCompanyTransactionRepository) Save(ctx context.Context, t *company.Transaction) error {
	model := models.CompanyTransactionModelFromDomain(t)
	return r.db.WithContext(ctx).Save(model).Error
}

// CompleteDelivery applies the webhook outcome in a single UPDATE against the
// row matching transactionID, then reloads the row. Reapplying the same
// update leaves the record in the same final state.
func (r *GormCompanyTransactionRepository) CompleteDelivery(ctx context.Context, transactionID string, update company.DeliveryUpdate) (*company.Transaction, error) {
	changes := map[string]any{
		"status":     update.Status,
		"updated_at": time.Now(),
	}
	if update.TranslatedURL != "" {
		changes["translated_url"] = update.TranslatedURL
	}
	if update.PaymentID != "" {
		changes["payment_id"] = update.PaymentID
	}

	result := r.db.WithContext(ctx).
		Model(&models.CompanyTransactionModel{}).
		Where("transaction_id = ?", transactionID).
		Updates(changes)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	return r.FindByTransactionID(ctx, transactionID)
}

func (r *GormCompanyTransactionRepository) applyFilter(query *gorm.DB, filter company.TransactionFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

func (r *GormCompanyTransactionRepository) applyFilterWithoutPagination(query *gorm.DB, filter company.TransactionFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("created_at <= ?", *filter.ToDate)
	}
	return query
}

var _ company.TransactionRepository = (*GormCompanyTransactionRepository)(nil)
