package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainidentity "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/auth"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/config"
)

type fakeUserRepo struct {
	byEmail map[string]*domainidentity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domainidentity.User)}
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domainidentity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domainidentity.User, error) {
	if u, ok := r.byEmail[domainidentity.NormalizeEmail(email)]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) Save(ctx context.Context, user *domainidentity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

type fakeSessionRepo struct {
	byTokenID map[string]*domainidentity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byTokenID: make(map[string]*domainidentity.Session)}
}

func (r *fakeSessionRepo) FindByTokenID(ctx context.Context, tokenID string) (*domainidentity.Session, error) {
	if s, ok := r.byTokenID[tokenID]; ok {
		return s, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSessionRepo) Save(ctx context.Context, session *domainidentity.Session) error {
	r.byTokenID[session.TokenID] = session
	return nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, tokenID string) error {
	s, ok := r.byTokenID[tokenID]
	if !ok || !s.Active {
		return shared.ErrNotFound
	}
	s.Active = false
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *fakeSessionRepo) {
	t.Helper()
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	tokens := auth.NewTokenService(config.AuthConfig{
		Secret: "test-secret-at-least-32-characters!!",
		Issuer: "translator-test",
	})
	return NewAuthService(users, sessions, tokens, zap.NewNop()), users, sessions
}

func TestLogin_FirstLoginCreatesUser(t *testing.T) {
	svc, users, sessions := newTestAuthService(t)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "Alice@Example.com",
		FullName: "Alice Chen",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Equal(t, "Alice Chen", result.User.FullName)
	require.NotNil(t, result.User.LastLoginAt)

	assert.WithinDuration(t,
		result.IssuedAt.Add(domainidentity.SessionDuration),
		result.ExpiresAt,
		time.Second,
	)

	_, err = users.FindByEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)

	session, err := sessions.FindByTokenID(context.Background(), result.TokenID)
	require.NoError(t, err)
	assert.True(t, session.IsValid(time.Now()))
}

func TestLogin_RepeatLoginUpdatesExistingUser(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	first, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", FullName: "Bob"})
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), LoginInput{Email: "BOB@example.com", FullName: "Robert"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "Robert", second.User.FullName)
	assert.Len(t, users.byEmail, 1)
}

func TestLogin_InvalidEmailRejected(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{Email: "not-an-email", FullName: "X"})
	require.Error(t, err)
	assert.Empty(t, users.byEmail)
}

func TestValidateSession(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)

	result, err := svc.Login(context.Background(), LoginInput{Email: "carol@example.com", FullName: "Carol"})
	require.NoError(t, err)

	user, err := svc.ValidateSession(context.Background(), result.TokenID)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", user.Email)

	// Unknown token ids are unauthorized
	_, err = svc.ValidateSession(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, shared.ErrUnauthorized)

	// Expired sessions are rejected
	sessions.byTokenID[result.TokenID].ExpiresAt = time.Now().Add(-time.Minute)
	_, err = svc.ValidateSession(context.Background(), result.TokenID)
	assert.ErrorIs(t, err, shared.ErrSessionExpired)
}

func TestLogout(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	result, err := svc.Login(context.Background(), LoginInput{Email: "dave@example.com", FullName: "Dave"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.TokenID))

	_, err = svc.ValidateSession(context.Background(), result.TokenID)
	assert.ErrorIs(t, err, shared.ErrSessionExpired)

	// A second logout finds no active session
	assert.ErrorIs(t, svc.Logout(context.Background(), result.TokenID), shared.ErrNotFound)
}
