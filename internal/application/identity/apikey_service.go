package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

// APIKeyService manages service credentials for machine callers
type APIKeyService struct {
	keys   identity.APIKeyRepository
	logger *zap.Logger
}

// NewAPIKeyService creates a new APIKeyService
func NewAPIKeyService(keys identity.APIKeyRepository, logger *zap.Logger) *APIKeyService {
	return &APIKeyService{keys: keys, logger: logger}
}

// Create issues a new API key. The plaintext is returned once and never stored.
func (s *APIKeyService) Create(ctx context.Context, name string) (*CreateAPIKeyResult, error) {
	key, plaintext, err := identity.NewAPIKey(name)
	if err != nil {
		return nil, err
	}
	if err := s.keys.Save(ctx, key); err != nil {
		s.logger.Error("failed to save api key", zap.String("name", name), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create API key")
	}

	s.logger.Info("api key created", zap.String("name", name), zap.String("prefix", key.Prefix))
	return &CreateAPIKeyResult{Key: key, Plaintext: plaintext}, nil
}

// Verify authenticates a presented plaintext key and records its use
func (s *APIKeyService) Verify(ctx context.Context, plaintext string) (*identity.APIKey, error) {
	prefix, secret, err := identity.SplitAPIKey(plaintext)
	if err != nil {
		return nil, err
	}

	key, err := s.keys.FindByPrefix(ctx, prefix)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	if !key.Verify(secret) {
		return nil, shared.ErrUnauthorized
	}

	key.MarkUsed(time.Now().UTC())
	if err := s.keys.Save(ctx, key); err != nil {
		// Verification already succeeded; losing the last-used stamp is not fatal
		s.logger.Warn("failed to record api key use", zap.String("prefix", prefix), zap.Error(err))
	}
	return key, nil
}

// Revoke permanently disables a key
func (s *APIKeyService) Revoke(ctx context.Context, id uuid.UUID) error {
	key, err := s.keys.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := key.Revoke(time.Now().UTC()); err != nil {
		return err
	}
	if err := s.keys.Save(ctx, key); err != nil {
		s.logger.Error("failed to save revoked api key", zap.String("id", id.String()), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke API key")
	}
	return nil
}

// List returns all keys, newest first
func (s *APIKeyService) List(ctx context.Context) ([]identity.APIKey, error) {
	return s.keys.List(ctx)
}
