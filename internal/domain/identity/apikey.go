package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

const (
	apiKeyPrefixLen = 8
	apiKeySecretLen = 24
	bcryptCost      = 12
)

// APIKey is a service credential for machine callers (webhook senders, admin tools).
// Only the bcrypt hash of the secret is stored; the plaintext is shown once at creation.
type APIKey struct {
	shared.BaseEntity
	Name       string
	Prefix     string // First segment of the key, used for lookup
	SecretHash string
	LastUsedAt *time.Time
	RevokedAt  *time.Time
}

// NewAPIKey creates a key and returns the entity together with the one-time plaintext
func NewAPIKey(name string) (*APIKey, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", shared.NewDomainError("INVALID_INPUT", "API key name must not be empty")
	}

	prefix, err := randomHex(apiKeyPrefixLen)
	if err != nil {
		return nil, "", err
	}
	secret, err := randomHex(apiKeySecretLen)
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return nil, "", shared.NewDomainError("INTERNAL_ERROR", "Failed to hash API key secret")
	}

	key := &APIKey{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Prefix:     prefix,
		SecretHash: string(hash),
	}
	return key, fmt.Sprintf("%s.%s", prefix, secret), nil
}

// SplitAPIKey separates a presented key into its prefix and secret parts
func SplitAPIKey(plaintext string) (prefix, secret string, err error) {
	parts := strings.SplitN(plaintext, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", shared.NewDomainError("UNAUTHORIZED", "Malformed API key")
	}
	return parts[0], parts[1], nil
}

// Verify checks a presented secret against the stored hash
func (k *APIKey) Verify(secret string) bool {
	if k.RevokedAt != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(k.SecretHash), []byte(secret)) == nil
}

// MarkUsed records the verification time
func (k *APIKey) MarkUsed(at time.Time) {
	k.LastUsedAt = &at
	k.Touch()
}

// Revoke permanently disables the key
func (k *APIKey) Revoke(at time.Time) error {
	if k.RevokedAt != nil {
		return shared.ErrInvalidState
	}
	k.RevokedAt = &at
	k.Touch()
	return nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n/2)
	if _, err := rand.Read(buf); err != nil {
		return "", shared.NewDomainError("INTERNAL_ERROR", "Failed to generate random key material")
	}
	return hex.EncodeToString(buf), nil
}
