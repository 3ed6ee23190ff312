package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	identityapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/auth"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/config"
)

type guardUserRepo struct {
	byEmail map[string]*identity.User
}

func (r *guardUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *guardUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	if u, ok := r.byEmail[identity.NormalizeEmail(email)]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func (r *guardUserRepo) Save(ctx context.Context, user *identity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

type guardSessionRepo struct {
	byTokenID map[string]*identity.Session
}

func (r *guardSessionRepo) FindByTokenID(ctx context.Context, tokenID string) (*identity.Session, error) {
	if s, ok := r.byTokenID[tokenID]; ok {
		return s, nil
	}
	return nil, shared.ErrNotFound
}

func (r *guardSessionRepo) Save(ctx context.Context, session *identity.Session) error {
	r.byTokenID[session.TokenID] = session
	return nil
}

func (r *guardSessionRepo) Revoke(ctx context.Context, tokenID string) error {
	s, ok := r.byTokenID[tokenID]
	if !ok || !s.Active {
		return shared.ErrNotFound
	}
	s.Active = false
	return nil
}

type guardAPIKeyRepo struct {
	byPrefix map[string]*identity.APIKey
}

func (r *guardAPIKeyRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.APIKey, error) {
	for _, k := range r.byPrefix {
		if k.ID == id {
			return k, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *guardAPIKeyRepo) FindByPrefix(ctx context.Context, prefix string) (*identity.APIKey, error) {
	if k, ok := r.byPrefix[prefix]; ok {
		return k, nil
	}
	return nil, shared.ErrNotFound
}

func (r *guardAPIKeyRepo) Save(ctx context.Context, key *identity.APIKey) error {
	r.byPrefix[key.Prefix] = key
	return nil
}

func (r *guardAPIKeyRepo) List(ctx context.Context) ([]identity.APIKey, error) {
	return nil, nil
}

func newSessionGuardRouter(t *testing.T) (*gin.Engine, *identityapp.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService(config.AuthConfig{
		Secret: "test-secret-at-least-32-characters!!",
		Issuer: "translator-test",
	})
	authSvc := identityapp.NewAuthService(
		&guardUserRepo{byEmail: map[string]*identity.User{}},
		&guardSessionRepo{byTokenID: map[string]*identity.Session{}},
		tokens,
		zap.NewNop(),
	)

	router := gin.New()
	router.GET("/protected", RequireSession(tokens, authSvc), func(c *gin.Context) {
		user, ok := GetAuthUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return router, authSvc
}

func getWithAuth(r http.Handler, path, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp.Error.Code
}

func TestRequireSession_MissingHeaderIsUnauthorized(t *testing.T) {
	router, _ := newSessionGuardRouter(t)

	w := getWithAuth(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_UNAUTHORIZED", decodeErrorCode(t, w))
}

func TestRequireSession_MalformedTokenIsUnauthorized(t *testing.T) {
	router, _ := newSessionGuardRouter(t)

	w := getWithAuth(router, "/protected", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_TOKEN_INVALID", decodeErrorCode(t, w))
}

func TestRequireSession_ValidSessionPassesUserThrough(t *testing.T) {
	router, authSvc := newSessionGuardRouter(t)

	login, err := authSvc.Login(context.Background(), identityapp.LoginInput{
		Email:    "alice@example.com",
		FullName: "Alice Chen",
	})
	require.NoError(t, err)

	w := getWithAuth(router, "/protected", "Bearer "+login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestRequireSession_RevokedSessionIsRejected(t *testing.T) {
	router, authSvc := newSessionGuardRouter(t)

	login, err := authSvc.Login(context.Background(), identityapp.LoginInput{
		Email:    "bob@example.com",
		FullName: "Bob Reyes",
	})
	require.NoError(t, err)
	require.NoError(t, authSvc.Logout(context.Background(), login.TokenID))

	w := getWithAuth(router, "/protected", "Bearer "+login.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_TOKEN_EXPIRED", decodeErrorCode(t, w))
}

func newAPIKeyGuardRouter(t *testing.T) (*gin.Engine, *identityapp.APIKeyService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	keySvc := identityapp.NewAPIKeyService(
		&guardAPIKeyRepo{byPrefix: map[string]*identity.APIKey{}},
		zap.NewNop(),
	)

	router := gin.New()
	router.POST("/hook", RequireAPIKey(keySvc), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, keySvc
}

func postWithAPIKey(r http.Handler, path, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAPIKey_MissingKeyIsUnauthorized(t *testing.T) {
	router, _ := newAPIKeyGuardRouter(t)

	w := postWithAPIKey(router, "/hook", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_UNAUTHORIZED", decodeErrorCode(t, w))
}

func TestRequireAPIKey_UnknownKeyIsUnauthorized(t *testing.T) {
	router, _ := newAPIKeyGuardRouter(t)

	w := postWithAPIKey(router, "/hook", "ffffffff.deadbeef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_UNAUTHORIZED", decodeErrorCode(t, w))
}

func TestRequireAPIKey_IssuedKeyIsAccepted(t *testing.T) {
	router, keySvc := newAPIKeyGuardRouter(t)

	created, err := keySvc.Create(context.Background(), "translation-callback")
	require.NoError(t, err)

	w := postWithAPIKey(router, "/hook", created.Plaintext)
	assert.Equal(t, http.StatusOK, w.Code)
}
