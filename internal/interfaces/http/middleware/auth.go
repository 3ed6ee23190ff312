package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	identityapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/auth"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/dto"
)

const (
	// ContextUserKey is the gin context key holding the authenticated user
	ContextUserKey = "auth_user"
	// ContextTokenIDKey is the gin context key holding the session token id
	ContextTokenIDKey = "auth_token_id"
	// ContextAPIKeyKey is the gin context key holding the verified API key
	ContextAPIKeyKey = "auth_api_key"

	apiKeyHeader = "X-API-Key"
)

// RequireSession validates the Bearer token and its backing session.
// A syntactically valid token whose session was revoked or expired is
// rejected; the session row is the source of truth.
func RequireSession(tokens *auth.TokenService, sessions *identityapp.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authorization required")
			return
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			code := dto.ErrCodeTokenInvalid
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrCodeTokenExpired
			}
			abortUnauthorized(c, code, "Invalid or expired token")
			return
		}

		user, err := sessions.ValidateSession(c.Request.Context(), claims.ID)
		if err != nil {
			code := dto.ErrCodeUnauthorized
			if errors.Is(err, shared.ErrSessionExpired) {
				code = dto.ErrCodeTokenExpired
			}
			abortUnauthorized(c, code, "Session is no longer valid")
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenIDKey, claims.ID)
		c.Next()
	}
}

// RequireAPIKey authenticates machine callers on the webhook surface
func RequireAPIKey(keys *identityapp.APIKeyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(apiKeyHeader)
		if presented == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "API key required")
			return
		}

		key, err := keys.Verify(c.Request.Context(), presented)
		if err != nil {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Invalid API key")
			return
		}

		c.Set(ContextAPIKeyKey, key)
		c.Next()
	}
}

// GetAuthUser returns the authenticated user set by RequireSession
func GetAuthUser(c *gin.Context) (*identity.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*identity.User)
	return user, ok
}

// GetAuthTokenID returns the session token id set by RequireSession
func GetAuthTokenID(c *gin.Context) string {
	return c.GetString(ContextTokenIDKey)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}
