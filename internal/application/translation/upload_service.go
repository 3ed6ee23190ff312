package translation

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

const maxUploadBytes = 100 << 20 // 100 MiB

// StorageLayout names the object-store areas a document moves through:
// new uploads land under TempPrefix and completed translations under
// FinalPrefix. Zero values fall back to the defaults.
type StorageLayout struct {
	TempPrefix  string
	FinalPrefix string
}

func (l StorageLayout) normalized() StorageLayout {
	if l.TempPrefix == "" {
		l.TempPrefix = "uploads/tmp"
	}
	if l.FinalPrefix == "" {
		l.FinalPrefix = "translated"
	}
	return l
}

// UploadService registers upload metadata and grants presigned upload URLs.
// Files land in the temporary area; the webhook flow promotes them to the
// finalized area once translation completes.
type UploadService struct {
	storage          ObjectStorageService
	layout           StorageLayout
	presignExpiresIn time.Duration
	logger           *zap.Logger
}

// NewUploadService creates a new UploadService
func NewUploadService(storage ObjectStorageService, layout StorageLayout, presignExpiresIn time.Duration, logger *zap.Logger) *UploadService {
	return &UploadService{
		storage:          storage,
		layout:           layout.normalized(),
		presignExpiresIn: presignExpiresIn,
		logger:           logger,
	}
}

// Register validates upload metadata and returns a presigned upload grant
func (s *UploadService) Register(ctx context.Context, in UploadInput) (*UploadResult, error) {
	fileName := sanitizeFileName(in.FileName)
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "File name is required")
	}
	if in.SizeBytes <= 0 || in.SizeBytes > maxUploadBytes {
		return nil, shared.NewDomainError("INVALID_INPUT", "File size must be positive and at most 100 MiB")
	}
	if err := ValidateLanguagePair(in.SourceLanguage, in.TargetLanguage); err != nil {
		return nil, err
	}

	key := path.Join(s.layout.TempPrefix, uuid.New().String(), fileName)
	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, in.ContentType, s.presignExpiresIn)
	if err != nil {
		s.logger.Error("failed to presign upload",
			zap.String("key", key), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create upload URL")
	}

	s.logger.Info("upload registered",
		zap.String("key", key),
		zap.String("user_email", in.UserEmail),
		zap.Int64("size_bytes", in.SizeBytes),
	)

	return &UploadResult{
		StorageKey:  key,
		UploadURL:   uploadURL,
		DocumentURL: fmt.Sprintf("s3://%s", key),
		ExpiresAt:   expiresAt,
	}, nil
}

// sanitizeFileName strips any path components from a client-supplied name
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
