package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

// UserType distinguishes individual customers from corporate accounts
type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeCorporate  UserType = "corporate"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a customer identified by email.
// A user record is created on first login and refreshed on each subsequent login.
type User struct {
	shared.BaseEntity
	Email       string
	FullName    string
	Type        UserType
	LastLoginAt *time.Time
}

// NewUser creates a new user with a validated email and non-empty name
func NewUser(email, fullName string, userType UserType) (*User, error) {
	email = NormalizeEmail(email)
	fullName = strings.TrimSpace(fullName)

	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Full name must not be empty")
	}
	if userType == "" {
		userType = UserTypeIndividual
	}

	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		FullName:   fullName,
		Type:       userType,
	}, nil
}

// RecordLogin refreshes the display name and last-login time on a repeat login
func (u *User) RecordLogin(fullName string, at time.Time) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("INVALID_INPUT", "Full name must not be empty")
	}
	u.FullName = fullName
	u.LastLoginAt = &at
	u.Touch()
	return nil
}

// ValidateEmail checks that an email address is well formed
func ValidateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_INPUT", "Email is required")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_INPUT", "Email is not a valid address")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address.
// All stored and queried emails go through this so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
