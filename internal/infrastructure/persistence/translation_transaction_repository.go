package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/persistence/models"
)

// GormTranslationTransactionRepository implements translation.TransactionRepository using GORM
type GormTranslationTransactionRepository struct {
	db *gorm.DB
}

// NewGormTranslationTransactionRepository creates a new GormTranslationTransactionRepository
func NewGormTranslationTransactionRepository(db *gorm.DB) *GormTranslationTransactionRepository {
	return &GormTranslationTransactionRepository{db: db}
}

// FindByID finds an individual transaction by primary key
func (r *GormTranslationTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*translation.Transaction, error) {
	var model models.TranslationTransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTransactionID finds an individual transaction by its business transaction id
func (r *GormTranslationTransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*translation.Transaction, error) {
	var model models.TranslationTransactionModel
	if err := r.db.WithContext(ctx).
		Where("square_transaction_id = ?", transactionID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserEmail returns a user's transactions, newest first
func (r *GormTranslationTransactionRepository) FindByUserEmail(ctx context.Context, email string, filter translation.TransactionFilter) ([]translation.Transaction, error) {
	var txModels []models.TranslationTransactionModel

	query := r.db.WithContext(ctx).
		Model(&models.TranslationTransactionModel{}).
		Where("user_email = ?", identity.NormalizeEmail(email))

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("date <= ?", *filter.ToDate)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("date DESC").Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]translation.Transaction, len(txModels))
	for i, model := range txModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions, nil
}

// Save upserts an individual transaction keyed by primary key
func (r *GormTranslationTransactionRepository) Save(ctx context.Context, t *translation.Transaction) error {
	model := models.TranslationTransactionModelFromDomain(t)
	return r.db.WithContext(ctx).Save(model).Error
}

// CompleteDelivery applies the webhook outcome in a single UPDATE against the
// row matching transactionID, then reloads the row. Reapplying the same
// update leaves the record in the same final state.
func (r *GormTranslationTransactionRepository) CompleteDelivery(ctx context.Context, transactionID string, update translation.DeliveryUpdate) (*translation.Transaction, error) {
	changes := map[string]any{
		"status":     update.Status,
		"updated_at": time.Now(),
	}
	if update.TranslatedURL != "" {
		changes["translated_url"] = update.TranslatedURL
	}
	if update.PaymentID != "" {
		changes["square_payment_id"] = update.PaymentID
	}

	result := r.db.WithContext(ctx).
		Model(&models.TranslationTransactionModel{}).
		Where("square_transaction_id = ?", transactionID).
		Updates(changes)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	return r.FindByTransactionID(ctx, transactionID)
}

var _ translation.TransactionRepository = (*GormTranslationTransactionRepository)(nil)
