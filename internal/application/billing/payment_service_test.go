package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/billing"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
)

type fakePaymentRepo struct {
	byExternalID map[string]*billing.Payment
}

func (r *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	return nil, shared.ErrNotFound
}

func (r *fakePaymentRepo) FindByExternalID(ctx context.Context, externalPaymentID string) (*billing.Payment, error) {
	if p, ok := r.byExternalID[externalPaymentID]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakePaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) ([]billing.Payment, error) {
	var out []billing.Payment
	for _, p := range r.byExternalID {
		if p.TransactionID == transactionID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *billing.Payment) error {
	if _, ok := r.byExternalID[p.ExternalPaymentID]; ok {
		return shared.ErrDuplicatePayment
	}
	r.byExternalID[p.ExternalPaymentID] = p
	return nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, p *billing.Payment) error {
	r.byExternalID[p.ExternalPaymentID] = p
	return nil
}

func newPaymentFixture(t *testing.T) (*PaymentService, *fakePaymentRepo, *fakeIndividualRepo, *fakeGateway) {
	t.Helper()
	payments := &fakePaymentRepo{byExternalID: make(map[string]*billing.Payment)}
	individual := &fakeIndividualRepo{byTxnID: make(map[string]*translation.Transaction)}
	companyTxn := &fakeCompanyTxnRepo{byTxnID: make(map[string]*company.Transaction)}
	gateway := &fakeGateway{}
	svc := NewPaymentService(payments, individual, companyTxn, gateway, zap.NewNop())
	return svc, payments, individual, gateway
}

func TestCreateIntent_ChargesTransactionTotal(t *testing.T) {
	svc, payments, individual, _ := newPaymentFixture(t)
	seedPaidIndividual(t, individual, "txn-1") // 2500 cents

	payment, err := svc.CreateIntent(context.Background(), CreateIntentInput{
		TransactionID:  "txn-1",
		IdempotencyKey: "intent-key-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "sq-pay-txn-1", payment.ExternalPaymentID)
	assert.Equal(t, int64(2500), payment.AmountCents)
	assert.Equal(t, billing.PaymentCompleted, payment.Status)
	require.NotNil(t, payment.PaymentDate)
	assert.Len(t, payments.byExternalID, 1)
}

func TestCreateIntent_DuplicateExternalIDReturnsRecordedPayment(t *testing.T) {
	svc, payments, individual, _ := newPaymentFixture(t)
	seedPaidIndividual(t, individual, "txn-1")

	first, err := svc.CreateIntent(context.Background(), CreateIntentInput{
		TransactionID:  "txn-1",
		IdempotencyKey: "intent-key-1",
	})
	require.NoError(t, err)

	// The fake gateway reuses the payment id per transaction, so the second
	// call replays the same external id
	replay, err := svc.CreateIntent(context.Background(), CreateIntentInput{
		TransactionID:  "txn-1",
		IdempotencyKey: "intent-key-2",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ExternalPaymentID, replay.ExternalPaymentID)
	assert.Equal(t, first.ID, replay.ID)
	assert.Len(t, payments.byExternalID, 1)
}

func TestCreateIntent_UnknownTransactionIsNotFound(t *testing.T) {
	svc, payments, _, _ := newPaymentFixture(t)

	_, err := svc.CreateIntent(context.Background(), CreateIntentInput{
		TransactionID:  "missing",
		IdempotencyKey: "k",
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Empty(t, payments.byExternalID)
}

func TestCreateIntent_RequiresIdempotencyKey(t *testing.T) {
	svc, _, individual, _ := newPaymentFixture(t)
	seedPaidIndividual(t, individual, "txn-1")

	_, err := svc.CreateIntent(context.Background(), CreateIntentInput{TransactionID: "txn-1"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestCreateIntent_CompanyTransactionAmount(t *testing.T) {
	payments := &fakePaymentRepo{byExternalID: make(map[string]*billing.Payment)}
	individual := &fakeIndividualRepo{byTxnID: make(map[string]*translation.Transaction)}
	companyTxn := &fakeCompanyTxnRepo{byTxnID: make(map[string]*company.Transaction)}
	svc := NewPaymentService(payments, individual, companyTxn, &fakeGateway{}, zap.NewNop())
	seedPaidCompanyTxn(t, companyTxn, "ctxn-1") // 4000 cents

	payment, err := svc.CreateIntent(context.Background(), CreateIntentInput{
		TransactionID:  "ctxn-1",
		IdempotencyKey: "intent-key-9",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), payment.AmountCents)
}
