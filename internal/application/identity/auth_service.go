// Package identity implements login, session validation, and API key management.
package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/auth"
)

// AuthService handles login and session lifecycle.
// Login is create-or-update: the first login for an email creates the user,
// later logins refresh the display name and last-login time on the same row.
type AuthService struct {
	users    identity.UserRepository
	sessions identity.SessionRepository
	tokens   *auth.TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users identity.UserRepository,
	sessions identity.SessionRepository,
	tokens *auth.TokenService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login authenticates by email, upserting the user and issuing a session token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := identity.NormalizeEmail(input.Email)
	if err := identity.ValidateEmail(email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if err := user.RecordLogin(input.FullName, now); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		user, err = identity.NewUser(email, input.FullName, input.UserType)
		if err != nil {
			return nil, err
		}
		loginAt := now
		user.LastLoginAt = &loginAt
	default:
		s.logger.Error("failed to look up user for login", zap.String("email", email), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Login failed")
	}

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Error("failed to save user at login", zap.String("email", email), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Login failed")
	}

	issued, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to issue auth token", zap.String("email", email), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Login failed")
	}

	session, err := identity.NewSession(user.ID, issued.TokenID, issued.IssuedAt)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("failed to persist session", zap.String("email", email), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Login failed")
	}

	s.logger.Info("user logged in",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", session.ExpiresAt),
	)

	return &LoginResult{
		Token:     issued.Token,
		TokenID:   issued.TokenID,
		IssuedAt:  issued.IssuedAt,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

// Logout revokes the session for a token id
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if err := s.sessions.Revoke(ctx, tokenID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		s.logger.Error("failed to revoke session", zap.String("token_id", tokenID), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Logout failed")
	}
	return nil
}

// ValidateSession checks that a token's session is active and unexpired,
// returning the user it belongs to
func (s *AuthService) ValidateSession(ctx context.Context, tokenID string) (*identity.User, error) {
	session, err := s.sessions.FindByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	if !session.IsValid(time.Now().UTC()) {
		return nil, shared.ErrSessionExpired
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
