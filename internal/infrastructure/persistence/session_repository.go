package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/persistence/models"
)

// GormSessionRepository implements identity.SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// FindByTokenID finds a session by its token id (JWT jti)
func (r *GormSessionRepository) FindByTokenID(ctx context.Context, tokenID string) (*identity.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a session
func (r *GormSessionRepository) Save(ctx context.Context, session *identity.Session) error {
	model := models.SessionModelFromDomain(session)
	return r.db.WithContext(ctx).Save(model).Error
}

// Revoke deactivates the session with the given token id
func (r *GormSessionRepository) Revoke(ctx context.Context, tokenID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("token_id = ? AND active", tokenID).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ identity.SessionRepository = (*GormSessionRepository)(nil)
