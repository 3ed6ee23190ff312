package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appconfigapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/appconfig"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/appconfig"
)

// SetConfigRequest creates or updates a runtime config entry
type SetConfigRequest struct {
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}

// ConfigEntryResponse is the published config entry shape
type ConfigEntryResponse struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func configEntryFromDomain(e *appconfig.Entry) ConfigEntryResponse {
	return ConfigEntryResponse{
		Key:         e.Key,
		Value:       e.Value,
		Description: e.Description,
		UpdatedAt:   e.UpdatedAt,
	}
}

// AppConfigHandler manages runtime configuration entries
type AppConfigHandler struct {
	BaseHandler
	configs *appconfigapp.Service
}

// NewAppConfigHandler creates a new AppConfigHandler
func NewAppConfigHandler(configs *appconfigapp.Service) *AppConfigHandler {
	return &AppConfigHandler{configs: configs}
}

// List handles GET /api/v1/config
func (h *AppConfigHandler) List(c *gin.Context) {
	entries, err := h.configs.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]ConfigEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, configEntryFromDomain(&entries[i]))
	}
	h.Success(c, out)
}

// Get handles GET /api/v1/config/:key
func (h *AppConfigHandler) Get(c *gin.Context) {
	entry, err := h.configs.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, configEntryFromDomain(entry))
}

// Set handles PUT /api/v1/config/:key
func (h *AppConfigHandler) Set(c *gin.Context) {
	var req SetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid config request: "+err.Error())
		return
	}

	entry, err := h.configs.Set(c.Request.Context(), c.Param("key"), req.Value, req.Description)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, configEntryFromDomain(entry))
}

// Delete handles DELETE /api/v1/config/:key
func (h *AppConfigHandler) Delete(c *gin.Context) {
	if err := h.configs.Delete(c.Request.Context(), c.Param("key")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
