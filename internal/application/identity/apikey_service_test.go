package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainidentity "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/identity"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

type fakeAPIKeyRepo struct {
	byPrefix map[string]*domainidentity.APIKey
}

func newFakeAPIKeyRepo() *fakeAPIKeyRepo {
	return &fakeAPIKeyRepo{byPrefix: make(map[string]*domainidentity.APIKey)}
}

func (r *fakeAPIKeyRepo) FindByID(ctx context.Context, id uuid.UUID) (*domainidentity.APIKey, error) {
	for _, k := range r.byPrefix {
		if k.ID == id {
			return k, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAPIKeyRepo) FindByPrefix(ctx context.Context, prefix string) (*domainidentity.APIKey, error) {
	if k, ok := r.byPrefix[prefix]; ok {
		return k, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAPIKeyRepo) Save(ctx context.Context, key *domainidentity.APIKey) error {
	r.byPrefix[key.Prefix] = key
	return nil
}

func (r *fakeAPIKeyRepo) List(ctx context.Context) ([]domainidentity.APIKey, error) {
	var out []domainidentity.APIKey
	for _, k := range r.byPrefix {
		out = append(out, *k)
	}
	return out, nil
}

func newTestAPIKeyService() (*APIKeyService, *fakeAPIKeyRepo) {
	repo := newFakeAPIKeyRepo()
	return NewAPIKeyService(repo, zap.NewNop()), repo
}

func TestVerify_AcceptsIssuedKeyAndStampsUse(t *testing.T) {
	svc, _ := newTestAPIKeyService()

	created, err := svc.Create(context.Background(), "translation-callback")
	require.NoError(t, err)
	require.NotEmpty(t, created.Plaintext)

	key, err := svc.Verify(context.Background(), created.Plaintext)
	require.NoError(t, err)

	assert.Equal(t, created.Key.ID, key.ID)
	assert.NotNil(t, key.LastUsedAt)
}

func TestVerify_RejectsBadKeys(t *testing.T) {
	svc, _ := newTestAPIKeyService()

	created, err := svc.Create(context.Background(), "translation-callback")
	require.NoError(t, err)

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.Verify(context.Background(), "no-separator")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := svc.Verify(context.Background(), "ffffffff.deadbeef")
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.Verify(context.Background(), created.Key.Prefix+".wrong-secret")
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})
}

func TestVerify_RejectsRevokedKey(t *testing.T) {
	svc, _ := newTestAPIKeyService()

	created, err := svc.Create(context.Background(), "translation-callback")
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(context.Background(), created.Key.ID))

	_, err = svc.Verify(context.Background(), created.Plaintext)
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestRevoke_SecondRevokeIsInvalidState(t *testing.T) {
	svc, _ := newTestAPIKeyService()

	created, err := svc.Create(context.Background(), "translation-callback")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), created.Key.ID))
	err = svc.Revoke(context.Background(), created.Key.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}
