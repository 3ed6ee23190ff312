package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	translationapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/translation"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/middleware"
)

// UploadRequest registers a document for upload and requests a presigned URL
type UploadRequest struct {
	FileName       string `json:"file_name" binding:"required"`
	ContentType    string `json:"content_type"`
	SizeBytes      int64  `json:"size_bytes" binding:"required,gt=0"`
	SourceLanguage string `json:"source_language" binding:"required,language"`
	TargetLanguage string `json:"target_language" binding:"required,language"`
}

// UploadResponse carries the grant the client uploads against
type UploadResponse struct {
	StorageKey  string    `json:"storage_key"`
	UploadURL   string    `json:"upload_url"`
	DocumentURL string    `json:"document_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UploadHandler exposes presigned document uploads
type UploadHandler struct {
	BaseHandler
	uploads *translationapp.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploads *translationapp.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Register handles POST /api/v1/files
func (h *UploadHandler) Register(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid upload request: "+err.Error())
		return
	}

	user, ok := middleware.GetAuthUser(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.uploads.Register(c.Request.Context(), translationapp.UploadInput{
		FileName:       req.FileName,
		ContentType:    req.ContentType,
		SizeBytes:      req.SizeBytes,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		UserEmail:      user.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, UploadResponse{
		StorageKey:  result.StorageKey,
		UploadURL:   result.UploadURL,
		DocumentURL: result.DocumentURL,
		ExpiresAt:   result.ExpiresAt,
	})
}
