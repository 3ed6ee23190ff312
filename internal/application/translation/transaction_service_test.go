package translation

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

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: make(map[uuid.UUID]*company.Company)}
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

func newTransactionFixture(t *testing.T) (*TransactionService, *fakeIndividualRepo, *fakeCompanyTxnRepo, *fakeCompanyRepo) {
	t.Helper()
	individual := newFakeIndividualRepo()
	companyTxn := newFakeCompanyTxnRepo()
	companies := newFakeCompanyRepo()
	svc := NewTransactionService(individual, companyTxn, companies, zap.NewNop())
	return svc, individual, companyTxn, companies
}

func validCreateInput() CreateTransactionInput {
	return CreateTransactionInput{
		TransactionID:  "txn-100",
		UserName:       "Alice Chen",
		UserEmail:      "alice@example.com",
		DocumentURL:    "s3://uploads/tmp/doc.pdf",
		NumberOfUnits:  8,
		UnitType:       "page",
		CostPerUnit:    decimal.NewFromFloat(3.25),
		SourceLanguage: "en",
		TargetLanguage: "es",
	}
}

func TestCreate_WithoutCompanyReferenceIsIndividual(t *testing.T) {
	svc, individual, companyTxn, _ := newTransactionFixture(t)

	result, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, KindIndividual, result.Kind)
	require.NotNil(t, result.Individual)
	assert.Nil(t, result.Company)
	assert.Equal(t, int64(2600), result.Individual.AmountCents) // 8 * 3.25 in cents

	assert.Len(t, individual.byTxnID, 1)
	assert.Empty(t, companyTxn.byTxnID)
}

func TestCreate_CompanyReferenceMustResolve(t *testing.T) {
	svc, individual, companyTxn, _ := newTransactionFixture(t)

	in := validCreateInput()
	in.CompanyName = "No Such Company"

	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, shared.ErrCompanyNotFound)

	// A failed company resolution writes nothing anywhere
	assert.Empty(t, individual.byTxnID)
	assert.Empty(t, companyTxn.byTxnID)
}

func TestCreate_CompanyScopedStoresCanonicalUUID(t *testing.T) {
	svc, _, companyTxn, companies := newTransactionFixture(t)

	c, err := company.NewCompany("Acme Legal", "legal services")
	require.NoError(t, err)
	require.NoError(t, companies.Save(context.Background(), c))

	in := validCreateInput()
	in.CompanyName = "Acme Legal"

	result, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, KindCompany, result.Kind)
	require.NotNil(t, result.Company)
	assert.Equal(t, c.ID, result.Company.CompanyID)
	assert.Equal(t, "Acme Legal", result.Company.CompanyName)
	assert.Len(t, companyTxn.byTxnID, 1)
}

func TestCreate_CompanyIDPreferredOverName(t *testing.T) {
	svc, _, _, companies := newTransactionFixture(t)

	c, err := company.NewCompany("Acme Legal", "legal services")
	require.NoError(t, err)
	require.NoError(t, companies.Save(context.Background(), c))

	in := validCreateInput()
	in.CompanyID = &c.ID
	in.CompanyName = "Stale Display Name"

	result, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, c.ID, result.Company.CompanyID)
	assert.Equal(t, "Acme Legal", result.Company.CompanyName)
}

func TestCreate_InvalidLanguageRejected(t *testing.T) {
	svc, individual, _, _ := newTransactionFixture(t)

	in := validCreateInput()
	in.TargetLanguage = "not-a-language-!!"

	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, shared.ErrInvalidLanguage)
	assert.Empty(t, individual.byTxnID)
}

func TestValidateLanguagePair(t *testing.T) {
	assert.NoError(t, ValidateLanguagePair("en", "fr"))
	assert.NoError(t, ValidateLanguagePair("zh-Hans", "en-US"))
	assert.Error(t, ValidateLanguagePair("", "fr"))
	assert.Error(t, ValidateLanguagePair("en", ""))
	assert.Error(t, ValidateLanguagePair("en", "EN")) // same language pair
}
