package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/middleware"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	BaseHandler
	auth *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Email and full name are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), identityapp.LoginInput{
		Email:    req.Email,
		FullName: req.FullName,
		UserType: identity.UserType(req.UserType),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMessage(c, "Login successful", LoginData{
		AuthToken: result.Token,
		TokenType: "Bearer",
		ExpiresIn: int64(identity.SessionDuration.Seconds()),
		ExpiresAt: result.ExpiresAt,
		User: LoginUser{
			FullName: result.User.FullName,
			Email:    result.User.Email,
		},
		LoginDateTime: result.IssuedAt,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := middleware.GetAuthTokenID(c)
	if tokenID == "" {
		h.Unauthorized(c, "Authorization required")
		return
	}

	if err := h.auth.Logout(c.Request.Context(), tokenID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Logged out", nil)
}
