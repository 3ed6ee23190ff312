package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/persistence/models"
)

// GormAPIKeyRepository implements identity.APIKeyRepository using GORM
type GormAPIKeyRepository struct {
	db *gorm.DB
}

// NewGormAPIKeyRepository creates a new GormAPIKeyRepository
func NewGormAPIKeyRepository(db *gorm.DB) *GormAPIKeyRepository {
	return &GormAPIKeyRepository{db: db}
}

// FindByID finds an API key by ID
func (r *GormAPIKeyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.APIKey, error) {
	var model models.APIKeyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPrefix finds an API key by its lookup prefix
func (r *GormAPIKeyRepository) FindByPrefix(ctx context.Context, prefix string) (*identity.APIKey, error) {
	var model models.APIKeyModel
	if err := r.db.WithContext(ctx).
		Where("prefix = ?", prefix).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists an API key
func (r *GormAPIKeyRepository) Save(ctx context.Context, key *identity.APIKey) error {
	model := models.APIKeyModelFromDomain(key)
	return r.db.WithContext(ctx).Save(model).Error
}

// List returns all API keys, newest first
func (r *GormAPIKeyRepository) List(ctx context.Context) ([]identity.APIKey, error) {
	var keyModels []models.APIKeyModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&keyModels).Error; err != nil {
		return nil, err
	}

	keys := make([]identity.APIKey, len(keyModels))
	for i, model := range keyModels {
		keys[i] = *model.ToDomain()
	}
	return keys, nil
}

var _ identity.APIKeyRepository = (*GormAPIKeyRepository)(nil)
