package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/appconfig"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/persistence/models"
)

// GormAppConfigRepository implements appconfig.Repository using GORM
type GormAppConfigRepository struct {
	db *gorm.DB
}

// NewGormAppConfigRepository creates a new GormAppConfigRepository
func NewGormAppConfigRepository(db *gorm.DB) *GormAppConfigRepository {
	return &GormAppConfigRepository{db: db}
}

// FindByKey finds a config entry by its unique key
func (r *GormAppConfigRepository) FindByKey(ctx context.Context, key string) (*appconfig.Entry, error) {
	var model models.AppConfigModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save upserts a config entry keyed by primary key
func (r *GormAppConfigRepository) Save(ctx context.Context, e *appconfig.Entry) error {
	model := models.AppConfigModelFromDomain(e)
	return r.db.WithContext(ctx).Save(model).Error
}

// List returns all config entries ordered by key
func (r *GormAppConfigRepository) List(ctx context.Context) ([]appconfig.Entry, error) {
	var entryModels []models.AppConfigModel
	if err := r.db.WithContext(ctx).
		Order("key ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]appconfig.Entry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// Delete removes a config entry by key
func (r *GormAppConfigRepository) Delete(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).Delete(&models.AppConfigModel{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ appconfig.Repository = (*GormAppConfigRepository)(nil)
