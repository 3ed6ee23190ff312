package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/audit"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/persistence/models"
)

// GormAuditLogRepository implements audit.LogRepository using GORM
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append writes one audit log entry
func (r *GormAuditLogRepository) Append(ctx context.Context, l *audit.Log) error {
	model := models.AuditLogModelFromDomain(l)
	return r.db.WithContext(ctx).Create(model).Error
}

// ListByEntity returns audit entries for an entity, newest first
func (r *GormAuditLogRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]audit.Log, error) {
	var logModels []models.AuditLogModel
	if err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]audit.Log, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

var _ audit.LogRepository = (*GormAuditLogRepository)(nil)

// GormNotificationLogRepository implements audit.NotificationLogRepository using GORM
type GormNotificationLogRepository struct {
	db *gorm.DB
}

// NewGormNotificationLogRepository creates a new GormNotificationLogRepository
func NewGormNotificationLogRepository(db *gorm.DB) *GormNotificationLogRepository {
	return &GormNotificationLogRepository{db: db}
}

// Append writes one notification log entry
func (r *GormNotificationLogRepository) Append(ctx context.Context, l *audit.NotificationLog) error {
	model := models.NotificationLogModelFromDomain(l)
	return r.db.WithContext(ctx).Create(model).Error
}

// ListByRecipient returns notification entries for a recipient, newest first
func (r *GormNotificationLogRepository) ListByRecipient(ctx context.Context, recipient string) ([]audit.NotificationLog, error) {
	var logModels []models.NotificationLogModel
	if err := r.db.WithContext(ctx).
		Where("recipient = ?", recipient).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]audit.NotificationLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

var _ audit.NotificationLogRepository = (*GormNotificationLogRepository)(nil)
