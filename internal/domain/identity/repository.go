package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}

// SessionRepository defines persistence operations for sessions
type SessionRepository interface {
	FindByTokenID(ctx context.Context, tokenID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Revoke(ctx context.Context, tokenID string) error
}

// APIKeyRepository defines persistence operations for API keys
type APIKeyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*APIKey, error)
	FindByPrefix(ctx context.Context, prefix string) (*APIKey, error)
	Save(ctx context.Context, key *APIKey) error
	List(ctx context.Context) ([]APIKey, error)
}
