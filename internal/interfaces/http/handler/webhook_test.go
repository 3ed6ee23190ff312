package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	translationapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/translation"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/audit"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

type stubIndividualRepo struct {
	byTxnID map[string]*translation.Transaction
}

func (r *stubIndividualRepo) FindByID(ctx context.Context, id uuid.UUID) (*translation.Transaction, error) {
	return nil, shared.ErrNotFound
}

func (r *stubIndividualRepo) FindByTransactionID(ctx context.Context, transactionID string) (*translation.Transaction, error) {
	if t, ok := r.byTxnID[transactionID]; ok {
		return t, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubIndividualRepo) FindByUserEmail(ctx context.Context, email string, filter translation.TransactionFilter) ([]translation.Transaction, error) {
	return nil, nil
}

func (r *stubIndividualRepo) Save(ctx context.Context, t *translation.Transaction) error {
	r.byTxnID[t.TransactionID] = t
	return nil
}

func (r *stubIndividualRepo) CompleteDelivery(ctx context.Context, transactionID string, update translation.DeliveryUpdate) (*translation.Transaction, error) {
	t, ok := r.byTxnID[transactionID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	t.Status = update.Status
	if update.TranslatedURL != "" {
		t.TranslatedURL = update.TranslatedURL
	}
	return t, nil
}

type stubCompanyTxnRepo struct{}

func (r *stubCompanyTxnRepo) FindByID(ctx context.Context, id uuid.UUID) (*company.Transaction, error) {
	return nil, shared.ErrNotFound
}

func (r *stubCompanyTxnRepo) FindByTransactionID(ctx context.Context, transactionID string) (*company.Transaction, error) {
	return nil, shared.ErrNotFound
}

func (r *stubCompanyTxnRepo) FindByCompany(ctx context.Context, companyID uuid.UUID, filter company.TransactionFilter) ([]company.Transaction, error) {
	return nil, nil
}

func (r *stubCompanyTxnRepo) CountByCompany(ctx context.Context, companyID uuid.UUID, filter company.TransactionFilter) (int64, error) {
	return 0, nil
}

func (r *stubCompanyTxnRepo) Save(ctx context.Context, t *company.Transaction) error { return nil }

func (r *stubCompanyTxnRepo) CompleteDelivery(ctx context.Context, transactionID string, update company.DeliveryUpdate) (*company.Transaction, error) {
	return nil, shared.ErrNotFound
}

type nopStorage struct{}

func (nopStorage) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	return "https://storage.example.com/upload/" + key, time.Now().Add(expiresIn), nil
}

func (nopStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	return "https://storage.example.com/download/" + key, time.Now().Add(expiresIn), nil
}

func (nopStorage) MoveObject(ctx context.Context, fromKey, toKey string) error { return nil }

func (nopStorage) DeleteObject(ctx context.Context, key string) error { return nil }

func (nopStorage) ObjectExists(ctx context.Context, key string) (bool, error) { return true, nil }

type nopNotifier struct{}

func (nopNotifier) Send(ctx context.Context, recipient, template string, data map[string]string) error {
	return nil
}

type memIdemStore struct {
	seen map[string]bool
}

func (s *memIdemStore) MarkProcessed(ctx context.Context, deliveryID string, ttl time.Duration) (bool, error) {
	if s.seen[deliveryID] {
		return false, nil
	}
	s.seen[deliveryID] = true
	return true, nil
}

func (s *memIdemStore) IsProcessed(ctx context.Context, deliveryID string) (bool, error) {
	return s.seen[deliveryID], nil
}

func (s *memIdemStore) Close() error { return nil }

type nopAuditRepo struct{}

func (nopAuditRepo) Append(ctx context.Context, l *audit.Log) error { return nil }

func (nopAuditRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]audit.Log, error) {
	return nil, nil
}

func newWebhookRouter(t *testing.T) (*gin.Engine, *stubIndividualRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	individual := &stubIndividualRepo{byTxnID: map[string]*translation.Transaction{}}
	svc := translationapp.NewWebhookService(
		individual,
		&stubCompanyTxnRepo{},
		&memIdemStore{seen: map[string]bool{}},
		nopStorage{},
		translationapp.StorageLayout{},
		nopNotifier{},
		nopAuditRepo{},
		zap.NewNop(),
	)
	h := NewWebhookHandler(svc)

	router := gin.New()
	router.POST("/api/v1/webhooks/translation", h.Submit)
	return router, individual
}

func seedWebhookTransaction(t *testing.T, repo *stubIndividualRepo, txnID, email string) *translation.Transaction {
	t.Helper()
	txn, err := translation.NewTransaction(translation.NewTransactionInput{
		TransactionID:  txnID,
		UserName:       "Test User",
		UserEmail:      email,
		DocumentURL:    "s3://uploads/tmp/doc.pdf",
		NumberOfUnits:  3,
		UnitType:       "page",
		CostPerUnit:    decimal.NewFromFloat(4.00),
		SourceLanguage: "en",
		TargetLanguage: "es",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), txn))
	return txn
}

func postWebhook(t *testing.T, router *gin.Engine, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/translation", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
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

func TestWebhookEndpoint_CompletesTransaction(t *testing.T) {
	router, repo := newWebhookRouter(t)
	txn := seedWebhookTransaction(t, repo, "txn-1", "user@example.com")

	w := postWebhook(t, router, map[string]any{
		"transaction_id": "txn-1",
		"file_name":      "doc.pdf",
		"file_url":       "https://files.example.com/translated/doc.pdf",
		"user_email":     "user@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TransactionID string `json:"transaction_id"`
			Status        string `json:"status"`
			TranslatedURL string `json:"translated_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "txn-1", resp.Data.TransactionID)
	assert.Equal(t, "completed", resp.Data.Status)
	assert.Equal(t, "https://files.example.com/translated/doc.pdf", resp.Data.TranslatedURL)
	assert.Equal(t, translation.StatusCompleted, txn.Status)
}

func TestWebhookEndpoint_MetadataEmailAccepted(t *testing.T) {
	router, repo := newWebhookRouter(t)
	seedWebhookTransaction(t, repo, "txn-1", "user@example.com")

	w := postWebhook(t, router, map[string]any{
		"transaction_id": "txn-1",
		"file_url":       "https://files.example.com/translated/doc.pdf",
		"metadata":       map[string]any{"customer_email": "user@example.com"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookEndpoint_MissingEmailIsBadRequest(t *testing.T) {
	router, repo := newWebhookRouter(t)
	txn := seedWebhookTransaction(t, repo, "txn-1", "user@example.com")

	w := postWebhook(t, router, map[string]any{
		"transaction_id": "txn-1",
		"file_url":       "https://files.example.com/translated/doc.pdf",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_MISSING_IDENTITY", decodeError(t, w))
	assert.Equal(t, translation.StatusStarted, txn.Status)
}

func TestWebhookEndpoint_UnknownTransactionIsNotFound(t *testing.T) {
	router, repo := newWebhookRouter(t)

	w := postWebhook(t, router, map[string]any{
		"transaction_id": "no-such-txn",
		"user_email":     "user@example.com",
		"file_url":       "https://files.example.com/translated/doc.pdf",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", decodeError(t, w))
	assert.Empty(t, repo.byTxnID)
}

func TestWebhookEndpoint_FailedStatusRecorded(t *testing.T) {
	router, repo := newWebhookRouter(t)
	txn := seedWebhookTransaction(t, repo, "txn-1", "user@example.com")

	w := postWebhook(t, router, map[string]any{
		"transaction_id": "txn-1",
		"user_email":     "user@example.com",
		"status":         "failed",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, translation.StatusFailed, txn.Status)
}
