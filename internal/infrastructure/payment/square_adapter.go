// Package payment contains payment gateway adapters.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/config"
)

const (
	squarePaymentsPath = "/v2/payments"
	squareRefundsPath  = "/v2/refunds"
	squareTimeLayout   = time.RFC3339
)

// SquareAdapter implements billing.Gateway against a Square-style payments API
type SquareAdapter struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewSquareAdapter creates a new adapter from gateway configuration
func NewSquareAdapter(cfg config.GatewayConfig) *SquareAdapter {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &SquareAdapter{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreatePayment creates a payment at the gateway
func (a *SquareAdapter) CreatePayment(ctx context.Context, req *billing.CreatePaymentRequest) (*billing.CreatePaymentResponse, error) {
	body := squareCreatePaymentRequest{
		IdempotencyKey: req.IdempotencyKey,
		SourceID:       "EXTERNAL",
		AmountMoney: squareMoney{
			Amount:   req.AmountCents,
			Currency: req.Currency,
		},
		ReferenceID: req.TransactionID,
		Note:        req.Note,
	}

	var resp squareCreatePaymentResponse
	if err := a.post(ctx, squarePaymentsPath, body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", billing.ErrGatewayDeclined, resp.Errors[0].Code)
	}
	if resp.Payment == nil {
		return nil, billing.ErrGatewayInvalidResponse
	}

	createdAt, _ := time.Parse(squareTimeLayout, resp.Payment.CreatedAt)

	return &billing.CreatePaymentResponse{
		PaymentID:   resp.Payment.ID,
		Status:      resp.Payment.Status,
		AmountCents: resp.Payment.AmountMoney.Amount,
		Currency:    resp.Payment.AmountMoney.Currency,
		CreatedAt:   createdAt,
	}, nil
}

// CreateRefund initiates a refund for a completed payment
func (a *SquareAdapter) CreateRefund(ctx context.Context, req *billing.CreateRefundRequest) (*billing.CreateRefundResponse, error) {
	body := squareCreateRefundRequest{
		IdempotencyKey: req.IdempotencyKey,
		PaymentID:      req.PaymentID,
		AmountMoney: squareMoney{
			Amount:   req.AmountCents,
			Currency: req.Currency,
		},
		Reason: req.Reason,
	}

	var resp squareCreateRefundResponse
	if err := a.post(ctx, squareRefundsPath, body, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", billing.ErrGatewayDeclined, resp.Errors[0].Code)
	}
	if resp.Refund == nil {
		return nil, billing.ErrGatewayInvalidResponse
	}

	createdAt, _ := time.Parse(squareTimeLayout, resp.Refund.CreatedAt)

	return &billing.CreateRefundResponse{
		RefundID:    resp.Refund.ID,
		PaymentID:   resp.Refund.PaymentID,
		Status:      resp.Refund.Status,
		AmountCents: resp.Refund.AmountMoney.Amount,
		Currency:    resp.Refund.AmountMoney.Currency,
		CreatedAt:   createdAt,
	}, nil
}

func (a *SquareAdapter) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", billing.ErrGatewayRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", billing.ErrGatewayRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.accessToken)

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", billing.ErrGatewayUnavailable, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", billing.ErrGatewayInvalidResponse, err)
	}

	if httpResp.StatusCode >= http.StatusInternalServerError {
		return billing.ErrGatewayUnavailable
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", billing.ErrGatewayInvalidResponse, err)
	}

	return nil
}

var _ billing.Gateway = (*SquareAdapter)(nil)
