package identity

import (
	"strings"
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Admin is an operator account for the back-office surface. Admin login is a
// separate path from customer login and is password protected.
type Admin struct {
	shared.BaseEntity
	Email        string
	FullName     string
	PasswordHash string
	LastLoginAt  *time.Time
}

// NewAdmin creates an admin with a bcrypt-hashed password
func NewAdmin(email, fullName, password string) (*Admin, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Full name must not be empty")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to hash password")
	}

	return &Admin{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
	}, nil
}

// CheckPassword verifies a candidate password against the stored hash
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}
