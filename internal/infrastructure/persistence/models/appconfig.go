package models

import (
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/appconfig"
)

// AppConfigModel is the persistence model for runtime config entries.
type AppConfigModel struct {
	BaseModel
	Key         string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value       string `gorm:"type:text;not null"`
	Description string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (AppConfigModel) TableName() string {
	return "app_config"
}

// ToDomain converts the persistence model to a domain Entry entity.
func (m *AppConfigModel) ToDomain() *appconfig.Entry {
	return &appconfig.Entry{
		BaseEntity:  m.BaseModel.ToDomain(),
		Key:         m.Key,
		Value:       m.Value,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Entry entity.
func (m *AppConfigModel) FromDomain(e *appconfig.Entry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Key = e.Key
	m.Value = e.Value
	m.Description = e.Description
}

// AppConfigModelFromDomain creates a new persistence model from a domain Entry entity.
func AppConfigModelFromDomain(e *appconfig.Entry) *AppConfigModel {
	m := &AppConfigModel{}
	m.FromDomain(e)
	return m
}
