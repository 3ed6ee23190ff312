package models

import (
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/audit"
)

// AuditLogModel is the persistence model for audit log entries.
type AuditLogModel struct {
	BaseModel
	Actor      string `gorm:"type:varchar(200);not null"`
	Action     string `gorm:"type:varchar(100);not null;index"`
	EntityType string `gorm:"type:varchar(50);not null;index:idx_audit_logs_entity,priority:1"`
	EntityID   string `gorm:"type:varchar(100);not null;index:idx_audit_logs_entity,priority:2"`
	Detail     string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts the persistence model to a domain Log entity.
func (m *AuditLogModel) ToDomain() *audit.Log {
	return &audit.Log{
		BaseEntity: m.BaseModel.ToDomain(),
		Actor:      m.Actor,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Detail:     m.Detail,
	}
}

// FromDomain populates the persistence model from a domain Log entity.
func (m *AuditLogModel) FromDomain(l *audit.Log) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.Actor = l.Actor
	m.Action = l.Action
	m.EntityType = l.EntityType
	m.EntityID = l.EntityID
	m.Detail = l.Detail
}

// AuditLogModelFromDomain creates a new persistence model from a domain Log entity.
func AuditLogModelFromDomain(l *audit.Log) *AuditLogModel {
	m := &AuditLogModel{}
	m.FromDomain(l)
	return m
}

// NotificationLogModel is the persistence model for notification log entries.
type NotificationLogModel struct {
	BaseModel
	Recipient string                   `gorm:"type:varchar(200);not null;index"`
	Template  string                   `gorm:"type:varchar(100);not null"`
	Status    audit.NotificationStatus `gorm:"type:varchar(20);not null"`
	Error     string                   `gorm:"type:text"`
	SentAt    time.Time                `gorm:"not null"`
}

// TableName returns the table name for GORM
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

// ToDomain converts the persistence model to a domain NotificationLog entity.
func (m *NotificationLogModel) ToDomain() *audit.NotificationLog {
	return &audit.NotificationLog{
		BaseEntity: m.BaseModel.ToDomain(),
		Recipient:  m.Recipient,
		Template:   m.Template,
		Status:     m.Status,
		Error:      m.Error,
		SentAt:     m.SentAt,
	}
}

// FromDomain populates the persistence model from a domain NotificationLog entity.
func (m *NotificationLogModel) FromDomain(l *audit.NotificationLog) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.Recipient = l.Recipient
	m.Template = l.Template
	m.Status = l.Status
	m.Error = l.Error
	m.SentAt = l.SentAt
}

// NotificationLogModelFromDomain creates a new persistence model from a domain NotificationLog.
func NotificationLogModelFromDomain(l *audit.NotificationLog) *NotificationLogModel {
	m := &NotificationLogModel{}
	m.FromDomain(l)
	return m
}
