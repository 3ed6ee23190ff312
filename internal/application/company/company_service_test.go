package company

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

type fakeCompanyRepo struct {
	byID map[uuid.UUID]*company.Company
}

func (r *fakeCompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	if c, ok := r.byID[id]; ok {
		return c, nil
	}
	return nil, shared.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) FindByName(ctx context.Context, name string) (*company.Company, error) {
	for _, c := range r.byID {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, shared.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) Save(ctx context.Context, c *company.Company) error {
	for _, existing := range r.byID {
		if existing.Name == c.Name && existing.ID != c.ID {
			return shared.ErrAlreadyExists
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]company.Company, error) {
	var out []company.Company
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

type fakeTxnRepo struct {
	byTxnID map[string]*company.Transaction
}

func (r *fakeTxnRepo) FindByID(ctx context.Context, id uuid.UUID) (*company.Transaction, error) {
	return nil, shared.ErrNotFound
}

func (r *fakeTxnRepo) FindByTransactionID(ctx context.Context, transactionID string) (*company.Transaction, error) {
	if t, ok := r.byTxnID[transactionID]; ok {
		return t, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeTxnRepo) FindByCompany(ctx context.Context, companyID uuid.UUID, filter company.TransactionFilter) ([]company.Transaction, error) {
	var out []company.Transaction
	for _, t := range r.byTxnID {
		if t.CompanyID == companyID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTxnRepo) CountByCompany(ctx context.Context, companyID uuid.UUID, filter company.TransactionFilter) (int64, error) {
	txns, _ := r.FindByCompany(ctx, companyID, filter)
	return int64(len(txns)), nil
}

func (r *fakeTxnRepo) Save(ctx context.Context, t *company.Transaction) error {
	r.byTxnID[t.TransactionID] = t
	return nil
}

func (r *fakeTxnRepo) CompleteDelivery(ctx context.Context, transactionID string, update company.DeliveryUpdate) (*company.Transaction, error) {
	return nil, shared.ErrNotFound
}

func newServiceFixture() (*Service, *fakeCompanyRepo, *fakeTxnRepo) {
	companies := &fakeCompanyRepo{byID: make(map[uuid.UUID]*company.Company)}
	txns := &fakeTxnRepo{byTxnID: make(map[string]*company.Transaction)}
	return NewService(companies, txns, zap.NewNop()), companies, txns
}

func TestCreateCompany(t *testing.T) {
	svc, companies, _ := newServiceFixture()

	c, err := svc.Create(context.Background(), "Acme Legal", "legal services")
	require.NoError(t, err)
	assert.Equal(t, "Acme Legal", c.Name)
	assert.Len(t, companies.byID, 1)

	// Duplicate names are rejected
	_, err = svc.Create(context.Background(), "Acme Legal", "other")
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)

	// Blank names are rejected
	_, err = svc.Create(context.Background(), "  ", "x")
	assert.Error(t, err)
}

func TestListTransactions_RequiresExistingCompany(t *testing.T) {
	svc, _, _ := newServiceFixture()

	_, _, err := svc.ListTransactions(context.Background(), uuid.New(), company.TransactionFilter{})
	assert.ErrorIs(t, err, shared.ErrCompanyNotFound)
}

func TestListTransactions_ReturnsOnlyThatCompany(t *testing.T) {
	svc, companies, txns := newServiceFixture()

	acme, err := company.NewCompany("Acme Legal", "legal")
	require.NoError(t, err)
	require.NoError(t, companies.Save(context.Background(), acme))
	globex, err := company.NewCompany("Globex", "manufacturing")
	require.NoError(t, err)
	require.NoError(t, companies.Save(context.Background(), globex))

	for i, owner := range []*company.Company{acme, acme, globex} {
		txn, err := company.NewTransaction(company.NewTransactionInput{
			TransactionID:  string(rune('a'+i)) + "-txn",
			CompanyID:      owner.ID,
			CompanyName:    owner.Name,
			NumberOfUnits:  1,
			UnitType:       "document",
			CostPerUnit:    decimal.NewFromInt(10),
			SourceLanguage: "en",
			TargetLanguage: "fr",
		})
		require.NoError(t, err)
		require.NoError(t, txns.Save(context.Background(), txn))
	}

	list, total, err := svc.ListTransactions(context.Background(), acme.ID, company.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, txn := range list {
		assert.Equal(t, acme.ID, txn.CompanyID)
	}
}
