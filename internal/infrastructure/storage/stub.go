package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	translationapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/translation"
)

// StubObjectStorage is an in-memory implementation of ObjectStorageService.
// It tracks keys so move/delete behave consistently in development and tests.
type StubObjectStorage struct {
	// BaseURL is the base URL for generated upload/download URLs
	BaseURL string

	mu   sync.Mutex
	keys map[string]bool
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		keys:    make(map[string]bool),
	}
}

// Ensure StubObjectStorage implements ObjectStorageService
var _ translationapp.ObjectStorageService = (*StubObjectStorage)(nil)

// GenerateUploadURL generates a stub presigned URL for uploading a file.
// The key is recorded as existing so later move/exists calls succeed.
func (s *StubObjectStorage) GenerateUploadURL(
	ctx context.Context,
	storageKey, contentType string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}

	s.mu.Lock()
	s.keys[storageKey] = true
	s.mu.Unlock()

	expiresAt := time.Now().Add(expiresIn)
	url := s.BaseURL + "/upload/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339)

	return url, expiresAt, nil
}

// GenerateDownloadURL generates a stub presigned URL for downloading a file
func (s *StubObjectStorage) GenerateDownloadURL(
	ctx context.Context,
	storageKey string,
	expiresIn time.Duration,
) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}

	expiresAt := time.Now().Add(expiresIn)
	url := s.BaseURL + "/download/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339)

	return url, expiresAt, nil
}

// MoveObject re-keys a tracked object
func (s *StubObjectStorage) MoveObject(ctx context.Context, fromKey, toKey string) error {
	if fromKey == "" || toKey == "" {
		return errors.New("storage keys are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.keys, fromKey)
	s.keys[toKey] = true
	return nil
}

// DeleteObject removes a tracked object
func (s *StubObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	delete(s.keys, storageKey)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether a key was uploaded or moved into place
func (s *StubObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[storageKey], nil
}
