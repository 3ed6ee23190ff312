package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	billingapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/billing"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
)

// CreatePaymentRequest charges a transaction's full amount at the gateway
type CreatePaymentRequest struct {
	TransactionID  string `json:"transaction_id" binding:"required"`
	IdempotencyKey string `json:"idempotency_key" binding:"required"`
	Note           string `json:"note"`
}

// PaymentResponse is the recorded payment
type PaymentResponse struct {
	ID                string     `json:"id"`
	ExternalPaymentID string     `json:"external_payment_id"`
	TransactionID     string     `json:"transaction_id"`
	AmountCents       int64      `json:"amount_cents"`
	Currency          string     `json:"currency"`
	Status            string     `json:"status"`
	PaymentDate       *time.Time `json:"payment_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func paymentFromDomain(p *billing.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID.String(),
		ExternalPaymentID: p.ExternalPaymentID,
		TransactionID:     p.TransactionID,
		AmountCents:       p.AmountCents,
		Currency:          p.Currency,
		Status:            string(p.Status),
		PaymentDate:       p.PaymentDate,
		CreatedAt:         p.CreatedAt,
	}
}

// PaymentHandler exposes payment creation and lookup
type PaymentHandler struct {
	BaseHandler
	payments *billingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments *billingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Create handles POST /api/v1/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid payment request: "+err.Error())
		return
	}

	payment, err := h.payments.CreateIntent(c.Request.Context(), billingapp.CreateIntentInput{
		TransactionID:  req.TransactionID,
		IdempotencyKey: req.IdempotencyKey,
		Note:           req.Note,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, paymentFromDomain(payment))
}

// Get handles GET /api/v1/payments/:payment_id by external payment id
func (h *PaymentHandler) Get(c *gin.Context) {
	externalID := c.Param("payment_id")
	payment, err := h.payments.GetByExternalID(c.Request.Context(), externalID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, paymentFromDomain(payment))
}

// ListForTransaction handles GET /api/v1/transactions/:transaction_id/payments
func (h *PaymentHandler) ListForTransaction(c *gin.Context) {
	payments, err := h.payments.ListForTransaction(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentFromDomain(&payments[i]))
	}
	h.Success(c, out)
}
