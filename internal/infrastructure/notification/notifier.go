// Package notification sends customer-facing notifications. Delivery is
// best-effort: failures are recorded and never fail the triggering operation.
package notification

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/audit"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/config"
)

const (
	// TemplateTranslationReady notifies a customer that a translated
	// document is available for download.
	TemplateTranslationReady = "translation_ready"
	// TemplatePaymentReceipt confirms a completed payment.
	TemplatePaymentReceipt = "payment_receipt"
	// TemplateRefundIssued confirms an issued refund.
	TemplateRefundIssued = "refund_issued"
)

// Notifier sends a templated notification to a recipient
type Notifier interface {
	Send(ctx context.Context, recipient, template string, data map[string]string) error
}

// LoggingNotifier records notification attempts without sending real email.
// It stands in for an SMTP or provider-backed sender in development and
// keeps the notification_logs trail identical to production.
type LoggingNotifier struct {
	cfg    config.NotificationConfig
	logs   audit.NotificationLogRepository
	logger *zap.Logger
}

// NewLoggingNotifier creates a LoggingNotifier
func NewLoggingNotifier(cfg config.NotificationConfig, logs audit.NotificationLogRepository, logger *zap.Logger) *LoggingNotifier {
	return &LoggingNotifier{cfg: cfg, logs: logs, logger: logger}
}

// Send logs the notification and appends a notification_logs row
func (n *LoggingNotifier) Send(ctx context.Context, recipient, template string, data map[string]string) error {
	if !n.cfg.Enabled {
		n.logger.Debug("notification suppressed",
			zap.String("recipient", recipient),
			zap.String("template", template),
		)
		return nil
	}

	entry := &audit.NotificationLog{
		BaseEntity: shared.NewBaseEntity(),
		Recipient:  recipient,
		Template:   template,
		Status:     audit.NotificationSent,
		SentAt:     time.Now().UTC(),
	}

	n.logger.Info("notification sent",
		zap.String("recipient", recipient),
		zap.String("template", template),
		zap.String("from", n.cfg.FromAddress),
		zap.Any("data", data),
	)

	if err := n.logs.Append(ctx, entry); err != nil {
		n.logger.Warn("failed to record notification log", zap.Error(err))
	}
	return nil
}

var _ Notifier = (*LoggingNotifier)(nil)
