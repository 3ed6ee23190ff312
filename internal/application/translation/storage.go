package translation

import (
	"context"
	"time"
)

// ObjectStorageService abstracts the object storage backend used for
// document uploads and finalized translations.
type ObjectStorageService interface {
	// GenerateUploadURL returns a presigned URL for uploading a file
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned URL for downloading a file
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// MoveObject copies an object to a new key and removes the original.
	// Used to promote documents from the temporary to the finalized area.
	MoveObject(ctx context.Context, fromKey, toKey string) error

	// DeleteObject removes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}
