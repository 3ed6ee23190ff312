package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/audit"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/config"
)

type recordingNotificationLogs struct {
	entries []*audit.NotificationLog
}

func (r *recordingNotificationLogs) Append(ctx context.Context, l *audit.NotificationLog) error {
	r.entries = append(r.entries, l)
	return nil
}

func (r *recordingNotificationLogs) ListByRecipient(ctx context.Context, recipient string) ([]audit.NotificationLog, error) {
	var out []audit.NotificationLog
	for _, e := range r.entries {
		if e.Recipient == recipient {
			out = append(out, *e)
		}
	}
	return out, nil
}

func TestLoggingNotifier_Send(t *testing.T) {
	logs := &recordingNotificationLogs{}
	n := NewLoggingNotifier(config.NotificationConfig{
		Enabled:     true,
		FromAddress: "noreply@example.com",
	}, logs, zap.NewNop())

	err := n.Send(context.Background(), "user@example.com", TemplateTranslationReady, map[string]string{
		"document_url": "https://files.example.com/translated/doc.pdf",
	})
	require.NoError(t, err)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, "user@example.com", entry.Recipient)
	assert.Equal(t, TemplateTranslationReady, entry.Template)
	assert.Equal(t, audit.NotificationSent, entry.Status)
	assert.NotEqual(t, "", entry.ID.String())
	assert.False(t, entry.SentAt.IsZero())
}

func TestLoggingNotifier_Disabled(t *testing.T) {
	logs := &recordingNotificationLogs{}
	n := NewLoggingNotifier(config.NotificationConfig{Enabled: false}, logs, zap.NewNop())

	err := n.Send(context.Background(), "user@example.com", TemplatePaymentReceipt, nil)
	require.NoError(t, err)
	assert.Empty(t, logs.entries)
}
