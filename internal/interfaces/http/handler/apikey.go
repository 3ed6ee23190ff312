package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
)

// CreateAPIKeyRequest names a new service key
type CreateAPIKeyRequest struct {
	Name string `json:"name" binding:"required"`
}

// APIKeyResponse describes a key without its secret. The plaintext is only
// present in the creation response and is never recoverable afterwards.
type APIKeyResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Plaintext  string     `json:"key,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func apiKeyFromDomain(k *identity.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:         k.ID.String(),
		Name:       k.Name,
		Prefix:     k.Prefix,
		LastUsedAt: k.LastUsedAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
	}
}

// APIKeyHandler manages service keys for webhook callers
type APIKeyHandler struct {
	BaseHandler
	keys *identityapp.APIKeyService
}

// NewAPIKeyHandler creates a new APIKeyHandler
func NewAPIKeyHandler(keys *identityapp.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{keys: keys}
}

// Create handles POST /api/v1/api-keys
func (h *APIKeyHandler) Create(c *gin.Context) {
	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid API key request: "+err.Error())
		return
	}

	result, err := h.keys.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := apiKeyFromDomain(result.Key)
	resp.Plaintext = result.Plaintext
	h.Created(c, resp)
}

// List handles GET /api/v1/api-keys
func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.keys.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]APIKeyResponse, 0, len(keys))
	for i := range keys {
		out = append(out, apiKeyFromDomain(&keys[i]))
	}
	h.Success(c, out)
}

// Revoke handles DELETE /api/v1/api-keys/:key_id
func (h *APIKeyHandler) Revoke(c *gin.Context) {
	id, err := uuid.Parse(c.Param("key_id"))
	if err != nil {
		h.BadRequest(c, "Key id must be a UUID")
		return
	}

	if err := h.keys.Revoke(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
