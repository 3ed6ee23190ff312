package handler

import (
	"github.com/gin-gonic/gin"

	translationapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/translation"
)

// WebhookRequest is the inbound completion callback. The customer email may
// arrive top level or inside the metadata object.
type WebhookRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	FileName      string `json:"file_name"`
	FileURL       string `json:"file_url"`
	UserEmail     string `json:"user_email"`
	CompanyName   string `json:"company_name"`
	Status        string `json:"status"`
	PaymentID     string `json:"payment_id"`
	DeliveryID    string `json:"delivery_id"`
	Metadata      struct {
		CustomerEmail string `json:"customer_email"`
	} `json:"metadata"`
}

// WebhookResponse reports the applied outcome
type WebhookResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	TranslatedURL string `json:"translated_url,omitempty"`
}

// WebhookHandler handles the translation completion callback
type WebhookHandler struct {
	BaseHandler
	webhooks *translationapp.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhooks *translationapp.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Submit handles POST /api/v1/webhooks/translation
func (h *WebhookHandler) Submit(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid webhook payload: "+err.Error())
		return
	}

	result, err := h.webhooks.Process(c.Request.Context(), translationapp.WebhookInput{
		DeliveryID:    req.DeliveryID,
		TransactionID: req.TransactionID,
		FileName:      req.FileName,
		FileURL:       req.FileURL,
		UserEmail:     req.UserEmail,
		MetadataEmail: req.Metadata.CustomerEmail,
		CompanyName:   req.CompanyName,
		Failed:        req.Status == "failed",
		PaymentID:     req.PaymentID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, WebhookResponse{
		TransactionID: result.TransactionID,
		Status:        result.Status,
		TranslatedURL: result.TranslatedURL,
	})
}
