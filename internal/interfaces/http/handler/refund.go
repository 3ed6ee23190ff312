package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/billing"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

// RefundRequest appends a refund to a paid transaction. The idempotency key
// makes retries single-shot: a repeated key returns the recorded refund.
type RefundRequest struct {
	AmountCents    int64  `json:"amount_cents" binding:"required,gt=0"`
	Currency       string `json:"currency"`
	Reason         string `json:"reason"`
	IdempotencyKey string `json:"idempotency_key" binding:"required"`
}

// RefundHandler exposes refund operations for both transaction kinds
type RefundHandler struct {
	BaseHandler
	refunds *billingapp.RefundService
}

// NewRefundHandler creates a new RefundHandler
func NewRefundHandler(refunds *billingapp.RefundService) *RefundHandler {
	return &RefundHandler{refunds: refunds}
}

// RefundIndividual handles POST /api/v1/transactions/:transaction_id/refunds
func (h *RefundHandler) RefundIndividual(c *gin.Context) {
	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid refund request: "+err.Error())
		return
	}

	refund, err := h.refunds.RefundIndividual(c.Request.Context(), billingapp.RefundInput{
		TransactionID:  c.Param("transaction_id"),
		AmountCents:    req.AmountCents,
		Currency:       req.Currency,
		Reason:         req.Reason,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, individualRefund(refund))
}

// RefundCompany handles POST /api/v1/company-transactions/:transaction_id/refunds
func (h *RefundHandler) RefundCompany(c *gin.Context) {
	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid refund request: "+err.Error())
		return
	}

	refund, err := h.refunds.RefundCompany(c.Request.Context(), billingapp.RefundInput{
		TransactionID:  c.Param("transaction_id"),
		AmountCents:    req.AmountCents,
		Currency:       req.Currency,
		Reason:         req.Reason,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, companyRefund(refund))
}

func individualRefund(r *translation.Refund) RefundResponse {
	return RefundResponse{
		RefundID:       r.RefundID,
		AmountCents:    r.AmountCents,
		Currency:       r.Currency,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		IdempotencyKey: r.IdempotencyKey,
		Reason:         r.Reason,
	}
}

func companyRefund(r *company.Refund) CompanyRefundResponse {
	return CompanyRefundResponse{
		RefundID:       r.RefundID,
		Amount:         r.Amount,
		Currency:       r.Currency,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		IdempotencyKey: r.IdempotencyKey,
		Reason:         r.Reason,
	}
}
