package billing

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

// RefundInput requests a refund against a transaction
type RefundInput struct {
	TransactionID  string
	AmountCents    int64
	Currency       string
	Reason         string
	IdempotencyKey string
}

// RefundService appends immutable refund records to transactions of either
// kind. The caller-supplied idempotency key makes the operation single-shot:
// a key that was already applied returns the recorded refund unchanged.
type RefundService struct {
	individual translation.TransactionRepository
	companyTxn company.TransactionRepository
	gateway    billing.Gateway
	logger     *zap.Logger
}

// NewRefundService creates a new RefundService
func NewRefundService(
	individual translation.TransactionRepository,
	companyTxn company.TransactionRepository,
	gateway billing.Gateway,
	logger *zap.Logger,
) *RefundService {
	return &RefundService{
		individual: individual,
		companyTxn: companyTxn,
		gateway:    gateway,
		logger:     logger,
	}
}

// RefundIndividual refunds an individual transaction, appending to its
// refund list. Amounts use the record kind's amount_cents naming.
func (s *RefundService) RefundIndividual(ctx context.Context, in RefundInput) (*translation.Refund, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	txn, err := s.individual.FindByTransactionID(ctx, in.TransactionID)
	if err != nil {
		return nil, err
	}

	// An already-applied key returns the recorded refund without appending
	if existing := txn.FindRefund(in.IdempotencyKey); existing != nil {
		return existing, nil
	}

	if txn.PaymentID == "" || txn.PaymentStatus == translation.PaymentPending {
		return nil, shared.ErrRefundNotAllowed
	}
	if txn.RefundedCents()+in.AmountCents > txn.AmountCents {
		return nil, shared.ErrRefundNotAllowed
	}

	resp, err := s.gateway.CreateRefund(ctx, &billing.CreateRefundRequest{
		PaymentID:      txn.PaymentID,
		AmountCents:    in.AmountCents,
		Currency:       s.currencyOr(in.Currency, txn.Currency),
		Reason:         in.Reason,
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		return nil, s.mapGatewayError(in.TransactionID, err)
	}

	refund := translation.Refund{
		RefundID:       resp.RefundID,
		AmountCents:    in.AmountCents,
		Currency:       s.currencyOr(in.Currency, txn.Currency),
		Status:         translation.RefundStatus(normalizeRefundStatus(resp.Status)),
		CreatedAt:      time.Now().UTC(),
		IdempotencyKey: in.IdempotencyKey,
		Reason:         in.Reason,
	}
	if err := txn.AddRefund(refund); err != nil {
		return nil, err
	}
	if err := s.individual.Save(ctx, txn); err != nil {
		s.logger.Error("failed to persist refund",
			zap.String("transaction_id", in.TransactionID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record refund")
	}

	s.logger.Info("refund recorded",
		zap.String("transaction_id", in.TransactionID),
		zap.String("refund_id", refund.RefundID),
		zap.Int64("amount_cents", refund.AmountCents),
	)
	return &refund, nil
}

// RefundCompany refunds a company transaction. Amounts use the record kind's
// plain amount naming.
func (s *RefundService) RefundCompany(ctx context.Context, in RefundInput) (*company.Refund, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	txn, err := s.companyTxn.FindByTransactionID(ctx, in.TransactionID)
	if err != nil {
		return nil, err
	}

	if existing := txn.FindRefund(in.IdempotencyKey); existing != nil {
		return existing, nil
	}

	if txn.PaymentID == "" || txn.PaymentStatus == company.PaymentPending {
		return nil, shared.ErrRefundNotAllowed
	}
	if txn.RefundedAmount()+in.AmountCents > txn.Amount {
		return nil, shared.ErrRefundNotAllowed
	}

	resp, err := s.gateway.CreateRefund(ctx, &billing.CreateRefundRequest{
		PaymentID:      txn.PaymentID,
		AmountCents:    in.AmountCents,
		Currency:       s.currencyOr(in.Currency, txn.Currency),
		Reason:         in.Reason,
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		return nil, s.mapGatewayError(in.TransactionID, err)
	}

	refund := company.Refund{
		RefundID:       resp.RefundID,
		Amount:         in.AmountCents,
		Currency:       s.currencyOr(in.Currency, txn.Currency),
		Status:         company.RefundStatus(normalizeRefundStatus(resp.Status)),
		CreatedAt:      time.Now().UTC(),
		IdempotencyKey: in.IdempotencyKey,
		Reason:         in.Reason,
	}
	if err := txn.AddRefund(refund); err != nil {
		return nil, err
	}
	if err := s.companyTxn.Save(ctx, txn); err != nil {
		s.logger.Error("failed to persist refund",
			zap.String("transaction_id", in.TransactionID), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record refund")
	}

	s.logger.Info("refund recorded",
		zap.String("transaction_id", in.TransactionID),
		zap.String("refund_id", refund.RefundID),
		zap.Int64("amount", refund.Amount),
	)
	return &refund, nil
}

func (s *RefundService) validate(in RefundInput) error {
	if in.TransactionID == "" {
		return shared.NewDomainError("INVALID_INPUT", "Transaction id is required")
	}
	if in.IdempotencyKey == "" {
		return shared.NewDomainError("INVALID_INPUT", "Idempotency key is required")
	}
	if in.AmountCents <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Refund amount must be positive")
	}
	return nil
}

func (s *RefundService) currencyOr(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}

func (s *RefundService) mapGatewayError(transactionID string, err error) error {
	if errors.Is(err, billing.ErrGatewayDeclined) {
		return shared.ErrRefundNotAllowed
	}
	s.logger.Error("refund gateway call failed",
		zap.String("transaction_id", transactionID), zap.Error(err))
	return shared.NewDomainError("INTERNAL_ERROR", "Refund failed at the gateway")
}

func normalizeRefundStatus(status string) string {
	switch status {
	case "COMPLETED", "APPROVED":
		return "completed"
	case "FAILED", "REJECTED":
		return "failed"
	default:
		return "pending"
	}
}
