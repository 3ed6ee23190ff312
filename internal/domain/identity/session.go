package identity

import (
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// SessionDuration is the fixed validity window for every session token
const SessionDuration = 8 * time.Hour

// Session is an issued auth token window for a user.
// Sessions are immutable after creation; they become invalid by expiry
// or by flipping the active flag off (revocation).
type Session struct {
	shared.BaseEntity
	TokenID   string // JWT jti; unique per session
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
	Active    bool
}

// NewSession creates a session for a user with the fixed 8 hour window
func NewSession(userID uuid.UUID, tokenID string, issuedAt time.Time) (*Session, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Session requires a user id")
	}
	if tokenID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Session requires a token id")
	}

	return &Session{
		BaseEntity: shared.NewBaseEntity(),
		TokenID:    tokenID,
		UserID:     userID,
		IssuedAt:   issuedAt,
		ExpiresAt:  issuedAt.Add(SessionDuration),
		Active:     true,
	}, nil
}

// IsValid reports whether the session is active and unexpired at the given time
func (s *Session) IsValid(at time.Time) bool {
	return s.Active && at.Before(s.ExpiresAt)
}
