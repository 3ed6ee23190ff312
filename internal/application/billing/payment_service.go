// Package billing implements payment intent creation and refunds against
// the gateway adapter and the payment/transaction stores.
package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

// PaymentService creates payment intents for transactions of either kind
// and records their gateway outcomes
type PaymentService struct {
	payments   billing.PaymentRepository
	individual translation.TransactionRepository
	companyTxn company.TransactionRepository
	gateway    billing.Gateway
	logger     *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	payments billing.PaymentRepository,
	individual translation.TransactionRepository,
	companyTxn company.TransactionRepository,
	gateway billing.Gateway,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		payments:   payments,
		individual: individual,
		companyTxn: companyTxn,
		gateway:    gateway,
		logger:     logger,
	}
}

// CreateIntentInput identifies the transaction to charge
type CreateIntentInput struct {
	TransactionID  string
	IdempotencyKey string
	Note           string
}

// CreateIntent charges a transaction's total at the gateway and persists the
// resulting payment. The external payment id is unique; a gateway retry that
// reuses one is rejected by the store, not double-recorded.
func (s *PaymentService) CreateIntent(ctx context.Context, in CreateIntentInput) (*billing.Payment, error) {
	if in.TransactionID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction id is required")
	}
	if in.IdempotencyKey == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Idempotency key is required")
	}

	amountCents, currency, err := s.lookupCharge(ctx, in.TransactionID)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.CreatePayment(ctx, &billing.CreatePaymentRequest{
		TransactionID:  in.TransactionID,
		AmountCents:    amountCents,
		Currency:       currency,
		Note:           in.Note,
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		return nil, s.mapGatewayError(in.TransactionID, err)
	}

	payment, err := billing.NewPayment(resp.PaymentID, in.TransactionID, resp.AmountCents, resp.Currency)
	if err != nil {
		return nil, err
	}
	if isSettled(resp.Status) {
		payment.MarkCompleted(time.Now().UTC())
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		if errors.Is(err, shared.ErrDuplicatePayment) {
			// The gateway replayed an id we already recorded; hand back ours.
			return s.payments.FindByExternalID(ctx, resp.PaymentID)
		}
		s.logger.Error("failed to persist payment",
			zap.String("transaction_id", in.TransactionID),
			zap.String("external_payment_id", resp.PaymentID),
			zap.Error(err),
		)
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record payment")
	}

	s.logger.Info("payment intent created",
		zap.String("transaction_id", in.TransactionID),
		zap.String("external_payment_id", payment.ExternalPaymentID),
		zap.Int64("amount_cents", payment.AmountCents),
		zap.String("status", string(payment.Status)),
	)
	return payment, nil
}

// lookupCharge resolves the charge amount from the owning transaction,
// individual kind first
func (s *PaymentService) lookupCharge(ctx context.Context, transactionID string) (int64, string, error) {
	txn, err := s.individual.FindByTransactionID(ctx, transactionID)
	if err == nil {
		return txn.AmountCents, txn.Currency, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return 0, "", err
	}

	ctxn, err := s.companyTxn.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return 0, "", err
	}
	return ctxn.Amount, ctxn.Currency, nil
}

// GetByExternalID returns a payment by its gateway identifier
func (s *PaymentService) GetByExternalID(ctx context.Context, externalPaymentID string) (*billing.Payment, error) {
	return s.payments.FindByExternalID(ctx, externalPaymentID)
}

// ListForTransaction returns all payments recorded for a transaction
func (s *PaymentService) ListForTransaction(ctx context.Context, transactionID string) ([]billing.Payment, error) {
	return s.payments.FindByTransactionID(ctx, transactionID)
}

func (s *PaymentService) mapGatewayError(transactionID string, err error) error {
	switch {
	case errors.Is(err, billing.ErrGatewayDeclined):
		return shared.NewDomainError("PAYMENT_DECLINED", "Payment was declined by the gateway")
	case errors.Is(err, billing.ErrGatewayUnavailable):
		s.logger.Error("payment gateway unavailable",
			zap.String("transaction_id", transactionID), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Payment gateway is unavailable")
	default:
		s.logger.Error("payment gateway call failed",
			zap.String("transaction_id", transactionID), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", fmt.Sprintf("Payment failed for transaction %s", transactionID))
	}
}

func isSettled(status string) bool {
	return status == "COMPLETED" || status == "APPROVED"
}
