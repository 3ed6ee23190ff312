package translation

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/audit"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/notification"
)

const deliveryDedupeTTL = 24 * time.Hour

// WebhookService reconciles inbound completion callbacks against stored
// transactions. The status update is one atomic UPDATE on the matching row;
// everything after it (notification, file promotion, audit trail) is
// best-effort and never fails the callback.
type WebhookService struct {
	individual  translation.TransactionRepository
	companyTxn  company.TransactionRepository
	idempotency shared.IdempotencyStore
	storage     ObjectStorageService
	layout      StorageLayout
	notifier    notification.Notifier
	auditLogs   audit.LogRepository
	logger      *zap.Logger
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(
	individual translation.TransactionRepository,
	companyTxn company.TransactionRepository,
	idempotency shared.IdempotencyStore,
	storage ObjectStorageService,
	layout StorageLayout,
	notifier notification.Notifier,
	auditLogs audit.LogRepository,
	logger *zap.Logger,
) *WebhookService {
	return &WebhookService{
		individual:  individual,
		companyTxn:  companyTxn,
		idempotency: idempotency,
		storage:     storage,
		layout:      layout.normalized(),
		notifier:    notifier,
		auditLogs:   auditLogs,
		logger:      logger,
	}
}

// Process applies one completion callback. Contract:
// a payload with no customer email fails validation with zero mutation; an
// unknown transaction id is not-found with zero mutation (the record must
// already exist); otherwise the matching row gets a single atomic update and
// duplicate deliveries converge to the same final state.
func (s *WebhookService) Process(ctx context.Context, in WebhookInput) (*WebhookResult, error) {
	email := identity.NormalizeEmail(in.CustomerEmail())
	if email == "" {
		return nil, shared.ErrMissingIdentity
	}
	if in.TransactionID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction id is required")
	}

	status := translation.StatusCompleted
	if in.Failed {
		status = translation.StatusFailed
	}

	result, documentURL, err := s.applyUpdate(ctx, in, status)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		// Full payload goes to the log for manual replay; the sender retries.
		s.logger.Error("webhook update failed",
			zap.String("transaction_id", in.TransactionID),
			zap.Any("payload", in),
			zap.Error(err),
		)
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to apply webhook update")
	}

	result.FirstDelivery = s.markDelivered(ctx, in)
	if result.FirstDelivery {
		s.runSideEffects(ctx, in, email, documentURL, result)
	}
	return result, nil
}

// applyUpdate locates the transaction, individual kind first, and applies the
// outcome in one UPDATE against the matching row. The stored document URL is
// returned alongside so file promotion can target the key the upload minted.
func (s *WebhookService) applyUpdate(ctx context.Context, in WebhookInput, status translation.TransactionStatus) (*WebhookResult, string, error) {
	txn, err := s.individual.CompleteDelivery(ctx, in.TransactionID, translation.DeliveryUpdate{
		Status:        status,
		TranslatedURL: in.FileURL,
		PaymentID:     in.PaymentID,
	})
	if err == nil {
		return &WebhookResult{
			Kind:          KindIndividual,
			TransactionID: txn.TransactionID,
			Status:        string(txn.Status),
			TranslatedURL: txn.TranslatedURL,
		}, txn.DocumentURL, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, "", err
	}

	ctxn, err := s.companyTxn.CompleteDelivery(ctx, in.TransactionID, company.DeliveryUpdate{
		Status:        company.TransactionStatus(status),
		TranslatedURL: in.FileURL,
		PaymentID:     in.PaymentID,
	})
	if err != nil {
		return nil, "", err
	}
	return &WebhookResult{
		Kind:          KindCompany,
		TransactionID: ctxn.TransactionID,
		Status:        string(ctxn.Status),
		TranslatedURL: ctxn.TranslatedURL,
	}, ctxn.DocumentURL, nil
}

// sourceKey resolves the temporary object key to promote. The key minted at
// upload time is recorded on the transaction as an s3:// document URL; the
// callback's file name is a fallback for records created without one.
func (s *WebhookService) sourceKey(documentURL, fileName string) string {
	if key, ok := strings.CutPrefix(documentURL, "s3://"); ok && key != "" {
		return key
	}
	if fileName == "" {
		return ""
	}
	return path.Join(s.layout.TempPrefix, fileName)
}

// markDelivered records the delivery for duplicate suppression. The atomic
// update above is the authoritative idempotency guarantee; this only gates
// the side effects, so a dedupe store failure degrades to re-running them.
func (s *WebhookService) markDelivered(ctx context.Context, in WebhookInput) bool {
	deliveryID := in.DeliveryID
	if deliveryID == "" {
		deliveryID = in.TransactionID
	}

	first, err := s.idempotency.MarkProcessed(ctx, deliveryID, deliveryDedupeTTL)
	if err != nil {
		s.logger.Warn("delivery dedupe store unavailable",
			zap.String("delivery_id", deliveryID), zap.Error(err))
		return true
	}
	return first
}

func (s *WebhookService) runSideEffects(ctx context.Context, in WebhookInput, email, documentURL string, result *WebhookResult) {
	if fromKey := s.sourceKey(documentURL, in.FileName); fromKey != "" && !in.Failed {
		toKey := path.Join(s.layout.FinalPrefix, path.Base(fromKey))
		if err := s.storage.MoveObject(ctx, fromKey, toKey); err != nil {
			s.logger.Warn("failed to promote translated file",
				zap.String("from", fromKey),
				zap.String("to", toKey),
				zap.Error(err),
			)
		}
	}

	if !in.Failed {
		if err := s.notifier.Send(ctx, email, notification.TemplateTranslationReady, map[string]string{
			"transaction_id": result.TransactionID,
			"document_url":   result.TranslatedURL,
		}); err != nil {
			s.logger.Warn("failed to send completion notification",
				zap.String("recipient", email), zap.Error(err))
		}
	}

	action := "webhook.completed"
	if in.Failed {
		action = "webhook.failed"
	}
	entityType := "translation_transaction"
	if result.Kind == KindCompany {
		entityType = "company_transaction"
	}
	entry := audit.NewLog("system", action, entityType, result.TransactionID,
		fmt.Sprintf("file=%s url=%s email=%s", in.FileName, in.FileURL, email))
	if err := s.auditLogs.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to append audit log",
			zap.String("transaction_id", result.TransactionID), zap.Error(err))
	}
}
