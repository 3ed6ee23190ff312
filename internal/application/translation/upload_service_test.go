package translation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUploadFixture() (*UploadService, *fakeStorage) {
	storage := &fakeStorage{}
	return NewUploadService(storage, StorageLayout{}, 15*time.Minute, zap.NewNop()), storage
}

func validUploadInput() UploadInput {
	return UploadInput{
		FileName:       "contract.pdf",
		ContentType:    "application/pdf",
		SizeBytes:      2048,
		SourceLanguage: "en",
		TargetLanguage: "ja",
		UserEmail:      "user@example.com",
	}
}

func TestRegister_GrantsPresignedUploadInTempArea(t *testing.T) {
	svc, _ := newUploadFixture()

	result, err := svc.Register(context.Background(), validUploadInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.StorageKey, "uploads/tmp/"))
	assert.True(t, strings.HasSuffix(result.StorageKey, "/contract.pdf"))
	assert.Contains(t, result.UploadURL, result.StorageKey)
	assert.Equal(t, "s3://"+result.StorageKey, result.DocumentURL)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), result.ExpiresAt, 5*time.Second)
}

func TestRegister_UsesConfiguredTempPrefix(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewUploadService(storage, StorageLayout{TempPrefix: "inbox/raw"}, 15*time.Minute, zap.NewNop())

	result, err := svc.Register(context.Background(), validUploadInput())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.StorageKey, "inbox/raw/"))
}

func TestRegister_StripsClientPathComponents(t *testing.T) {
	svc, _ := newUploadFixture()

	in := validUploadInput()
	in.FileName = "../../etc/passwd"

	result, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.StorageKey, "/passwd"))
	assert.NotContains(t, result.StorageKey, "..")
}

func TestRegister_RejectsInvalidMetadata(t *testing.T) {
	svc, _ := newUploadFixture()

	tests := []struct {
		name   string
		mutate func(*UploadInput)
	}{
		{"empty file name", func(in *UploadInput) { in.FileName = "  " }},
		{"zero size", func(in *UploadInput) { in.SizeBytes = 0 }},
		{"oversize", func(in *UploadInput) { in.SizeBytes = maxUploadBytes + 1 }},
		{"bad language", func(in *UploadInput) { in.TargetLanguage = "!!" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validUploadInput()
			tt.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			assert.Error(t, err)
		})
	}
}
