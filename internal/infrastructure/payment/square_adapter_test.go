package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/infrastructure/config"
)

func newTestAdapter(serverURL string) *SquareAdapter {
	return NewSquareAdapter(config.GatewayConfig{
		BaseURL:     serverURL,
		AccessToken: "test-token",
		Timeout:     5 * time.Second,
	})
}

func TestSquareAdapter_CreatePayment(t *testing.T) {
	t.Run("creates a payment and maps the response", func(t *testing.T) {
		var gotAuth string
		var gotReq squareCreatePaymentRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, squarePaymentsPath, r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			json.NewEncoder(w).Encode(squareCreatePaymentResponse{
				Payment: &squarePayment{
					ID:          "pay-123",
					Status:      "COMPLETED",
					AmountMoney: squareMoney{Amount: 2500, Currency: "USD"},
					ReferenceID: gotReq.ReferenceID,
					CreatedAt:   time.Now().UTC().Format(time.RFC3339),
				},
			})
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		resp, err := adapter.CreatePayment(context.Background(), &billing.CreatePaymentRequest{
			TransactionID:  "txn-001",
			AmountCents:    2500,
			Currency:       "USD",
			Note:           "document translation",
			IdempotencyKey: "idem-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "pay-123", resp.PaymentID)
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.Equal(t, int64(2500), resp.AmountCents)
		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t, "idem-1", gotReq.IdempotencyKey)
		assert.Equal(t, "txn-001", gotReq.ReferenceID)
	})

	t.Run("maps gateway errors to a declined error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(squareCreatePaymentResponse{
				Errors: []squareError{{Category: "PAYMENT_METHOD_ERROR", Code: "CARD_DECLINED"}},
			})
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		_, err := adapter.CreatePayment(context.Background(), &billing.CreatePaymentRequest{
			TransactionID:  "txn-002",
			AmountCents:    100,
			Currency:       "USD",
			IdempotencyKey: "idem-2",
		})

		assert.ErrorIs(t, err, billing.ErrGatewayDeclined)
		assert.Contains(t, err.Error(), "CARD_DECLINED")
	})

	t.Run("reports server failures as unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		_, err := adapter.CreatePayment(context.Background(), &billing.CreatePaymentRequest{
			TransactionID:  "txn-003",
			AmountCents:    100,
			Currency:       "USD",
			IdempotencyKey: "idem-3",
		})

		assert.ErrorIs(t, err, billing.ErrGatewayUnavailable)
	})
}

func TestSquareAdapter_CreateRefund(t *testing.T) {
	t.Run("creates a refund and maps the response", func(t *testing.T) {
		var gotReq squareCreateRefundRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, squareRefundsPath, r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			json.NewEncoder(w).Encode(squareCreateRefundResponse{
				Refund: &squareRefund{
					ID:          "ref-9",
					Status:      "COMPLETED",
					PaymentID:   gotReq.PaymentID,
					AmountMoney: gotReq.AmountMoney,
					CreatedAt:   time.Now().UTC().Format(time.RFC3339),
				},
			})
		}))
		defer server.Close()

		adapter := newTestAdapter(server.URL)
		resp, err := adapter.CreateRefund(context.Background(), &billing.CreateRefundRequest{
			PaymentID:      "pay-123",
			AmountCents:    500,
			Currency:       "USD",
			Reason:         "partial delivery",
			IdempotencyKey: "idem-refund-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "ref-9", resp.RefundID)
		assert.Equal(t, "pay-123", resp.PaymentID)
		assert.Equal(t, int64(500), resp.AmountCents)
		assert.Equal(t, "idem-refund-1", gotReq.IdempotencyKey)
	})
}
