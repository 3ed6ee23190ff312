package billing

import (
	"context"
	"errors"
	"time"
)

// Gateway errors
var (
	ErrGatewayUnavailable     = errors.New("payment: gateway temporarily unavailable")
	ErrGatewayRequestFailed   = errors.New("payment: gateway request failed")
	ErrGatewayInvalidResponse = errors.New("payment: invalid gateway response")
	ErrGatewayDeclined        = errors.New("payment: gateway declined the request")
)

// CreatePaymentRequest is the input for creating a payment intent at the gateway
type CreatePaymentRequest struct {
	TransactionID  string
	AmountCents    int64
	Currency       string
	Note           string
	IdempotencyKey string
}

// CreatePaymentResponse carries the gateway's identifiers for a new payment
type CreatePaymentResponse struct {
	PaymentID   string
	Status      string
	AmountCents int64
	Currency    string
	CreatedAt   time.Time
}

// CreateRefundRequest is the input for refunding a settled payment
type CreateRefundRequest struct {
	PaymentID      string
	AmountCents    int64
	Currency       string
	Reason         string
	IdempotencyKey string
}

// CreateRefundResponse carries the gateway's identifiers for a refund
type CreateRefundResponse struct {
	RefundID    string
	PaymentID   string
	Status      string
	AmountCents int64
	Currency    string
	CreatedAt   time.Time
}

// Gateway is the payment processor boundary. Settlement happens on the
// gateway's side; this interface only creates intents and refunds.
type Gateway interface {
	// CreatePayment creates a new payment at the gateway
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*CreatePaymentResponse, error)

	// CreateRefund initiates a refund for a completed payment
	CreateRefund(ctx context.Context, req *CreateRefundRequest) (*CreateRefundResponse, error)
}
