// Package appconfig manages runtime key/value settings stored in the
// database, edited through the admin API rather than redeploys.
package appconfig

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/appconfig"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

// Service exposes runtime configuration operations
type Service struct {
	entries appconfig.Repository
	logger  *zap.Logger
}

// NewService creates a new Service
func NewService(entries appconfig.Repository, logger *zap.Logger) *Service {
	return &Service{entries: entries, logger: logger}
}

// Get returns the entry stored under key
func (s *Service) Get(ctx context.Context, key string) (*appconfig.Entry, error) {
	return s.entries.FindByKey(ctx, key)
}

// List returns all entries
func (s *Service) List(ctx context.Context) ([]appconfig.Entry, error) {
	return s.entries.List(ctx)
}

// Set creates the entry or updates its value in place
func (s *Service) Set(ctx context.Context, key, value, description string) (*appconfig.Entry, error) {
	entry, err := s.entries.FindByKey(ctx, key)
	switch {
	case err == nil:
		entry.SetValue(value)
		if description != "" {
			entry.Description = description
		}
	case errors.Is(err, shared.ErrNotFound):
		entry, err = appconfig.NewEntry(key, value, description)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.entries.Save(ctx, entry); err != nil {
		s.logger.Error("failed to save config entry", zap.String("key", key), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save config entry")
	}

	s.logger.Info("config entry updated", zap.String("key", key))
	return entry, nil
}

// Delete removes the entry stored under key
func (s *Service) Delete(ctx context.Context, key string) error {
	return s.entries.Delete(ctx, key)
}
