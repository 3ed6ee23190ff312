package identity

import (
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
)

// LoginInput carries a login request
type LoginInput struct {
	Email    string
	FullName string
	UserType identity.UserType
}

// LoginResult carries the issued session and the user it belongs to
type LoginResult struct {
	Token     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	User      *identity.User
}

// CreateAPIKeyResult carries a freshly created key and its one-time plaintext
type CreateAPIKeyResult struct {
	Key       *identity.APIKey
	Plaintext string
}
