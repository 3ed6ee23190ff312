package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Email       string            `gorm:"type:varchar(200);not null;uniqueIndex"`
	FullName    string            `gorm:"type:varchar(200);not null"`
	Type        identity.UserType `gorm:"type:varchar(20);not null;default:'individual'"`
	LastLoginAt *time.Time        `gorm:"index"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:  m.BaseModel.ToDomain(),
		Email:       m.Email,
		FullName:    m.FullName,
		Type:        m.Type,
		LastLoginAt: m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Email = u.Email
	m.FullName = u.FullName
	m.Type = u.Type
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// SessionModel is the persistence model for the Session domain entity.
type SessionModel struct {
	BaseModel
	TokenID   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	Active    bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts the persistence model to a domain Session entity.
func (m *SessionModel) ToDomain() *identity.Session {
	return &identity.Session{
		BaseEntity: m.BaseModel.ToDomain(),
		TokenID:    m.TokenID,
		UserID:     m.UserID,
		IssuedAt:   m.IssuedAt,
		ExpiresAt:  m.ExpiresAt,
		Active:     m.Active,
	}
}

// FromDomain populates the persistence model from a domain Session entity.
func (m *SessionModel) FromDomain(s *identity.Session) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.TokenID = s.TokenID
	m.UserID = s.UserID
	m.IssuedAt = s.IssuedAt
	m.ExpiresAt = s.ExpiresAt
	m.Active = s.Active
}

// SessionModelFromDomain creates a new persistence model from a domain Session entity.
func SessionModelFromDomain(s *identity.Session) *SessionModel {
	m := &SessionModel{}
	m.FromDomain(s)
	return m
}

// APIKeyModel is the persistence model for the APIKey domain entity.
type APIKeyModel struct {
	BaseModel
	Name       string     `gorm:"type:varchar(100);not null"`
	Prefix     string     `gorm:"type:varchar(16);not null;uniqueIndex"`
	SecretHash string     `gorm:"type:varchar(100);not null"`
	LastUsedAt *time.Time
	RevokedAt  *time.Time
}

// TableName returns the table name for GORM
func (APIKeyModel) TableName() string {
	return "api_keys"
}

// ToDomain converts the persistence model to a domain APIKey entity.
func (m *APIKeyModel) ToDomain() *identity.APIKey {
	return &identity.APIKey{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Prefix:     m.Prefix,
		SecretHash: m.SecretHash,
		LastUsedAt: m.LastUsedAt,
		RevokedAt:  m.RevokedAt,
	}
}

// FromDomain populates the persistence model from a domain APIKey entity.
func (m *APIKeyModel) FromDomain(k *identity.APIKey) {
	m.FromDomainBaseEntity(k.BaseEntity)
	m.Name = k.Name
	m.Prefix = k.Prefix
	m.SecretHash = k.SecretHash
	m.LastUsedAt = k.LastUsedAt
	m.RevokedAt = k.RevokedAt
}

// APIKeyModelFromDomain creates a new persistence model from a domain APIKey entity.
func APIKeyModelFromDomain(k *identity.APIKey) *APIKeyModel {
	m := &APIKeyModel{}
	m.FromDomain(k)
	return m
}

// AdminModel is the persistence model for the Admin domain entity.
type AdminModel struct {
	BaseModel
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	FullName     string     `gorm:"type:varchar(200);not null"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admins"
}

// ToDomain converts the persistence model to a domain Admin entity.
func (m *AdminModel) ToDomain() *identity.Admin {
	return &identity.Admin{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain Admin entity.
func (m *AdminModel) FromDomain(a *identity.Admin) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Email = a.Email
	m.FullName = a.FullName
	m.PasswordHash = a.PasswordHash
	m.LastLoginAt = a.LastLoginAt
}
