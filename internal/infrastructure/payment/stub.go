package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
)

// StubGateway is an in-process implementation of billing.Gateway for
// development and tests. It honors idempotency keys the way the real
// gateway does: a repeated key returns the original result.
type StubGateway struct {
	mu       sync.Mutex
	payments map[string]*billing.CreatePaymentResponse
	refunds  map[string]*billing.CreateRefundResponse
}

// NewStubGateway creates a new StubGateway
func NewStubGateway() *StubGateway {
	return &StubGateway{
		payments: make(map[string]*billing.CreatePaymentResponse),
		refunds:  make(map[string]*billing.CreateRefundResponse),
	}
}

// CreatePayment returns a synthetic completed payment
func (g *StubGateway) CreatePayment(ctx context.Context, req *billing.CreatePaymentRequest) (*billing.CreatePaymentResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.payments[req.IdempotencyKey]; ok {
		return existing, nil
	}

	resp := &billing.CreatePaymentResponse{
		PaymentID:   fmt.Sprintf("stub-pay-%s", uuid.New().String()[:8]),
		Status:      "COMPLETED",
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		CreatedAt:   time.Now().UTC(),
	}
	g.payments[req.IdempotencyKey] = resp
	return resp, nil
}

// CreateRefund returns a synthetic completed refund
func (g *StubGateway) CreateRefund(ctx context.Context, req *billing.CreateRefundRequest) (*billing.CreateRefundResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.refunds[req.IdempotencyKey]; ok {
		return existing, nil
	}

	resp := &billing.CreateRefundResponse{
		RefundID:    fmt.Sprintf("stub-ref-%s", uuid.New().String()[:8]),
		PaymentID:   req.PaymentID,
		Status:      "COMPLETED",
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		CreatedAt:   time.Now().UTC(),
	}
	g.refunds[req.IdempotencyKey] = resp
	return resp, nil
}

var _ billing.Gateway = (*StubGateway)(nil)
