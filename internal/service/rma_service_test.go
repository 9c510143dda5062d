package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/rma-service/internal/domain"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

var testActor = &domain.User{
	PublicID:  "pub-1",
	Username:  "jdoe",
	FirstName: "Jane",
	LastName:  "Doe",
	Role:      domain.RoleStaff,
}

func newCaseService() (*CaseService, *fakeCaseRepo, *fakeCompanyRepo) {
	cases := newFakeCaseRepo()
	companies := newFakeCompanyRepo()
	svc := NewCaseService(cases, companies)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC) }
	return svc, cases, companies
}

func TestCreateCaseRequiresProblem(t *testing.T) {
	svc, cases, _ := newCaseService()

	_, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{Brand: "Acme", Model: "X1"})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, "you must specify a problem", domainErr.Message)
	assert.Equal(t, "problem", domainErr.Details["field"])
	assert.Empty(t, cases.cases)
}

func TestCreateCaseDefaults(t *testing.T) {
	svc, _, _ := newCaseService()

	rma, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X1", Problem: "won't boot",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusToBeRevised, rma.Status)
	assert.Equal(t, "N/A", rma.SerialNumber)
	assert.Equal(t, "N/A", rma.DistributionCompany)
	require.NotNil(t, rma.ToBeRevisedBy)
	assert.Equal(t, "Jane Doe", *rma.ToBeRevisedBy)
	require.NotNil(t, rma.ToBeRevisedDate)
	assert.Equal(t, "15-03-2024 14:30", *rma.ToBeRevisedDate)
}

func TestChangeStatusWalksLifecycle(t *testing.T) {
	svc, _, _ := newCaseService()
	rma, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X1", Problem: "won't boot",
	})
	require.NoError(t, err)

	rma, err = svc.ChangeStatus(context.Background(), rma.ID, domain.StatusToBeSent, testActor)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusToBeSent, rma.Status)
	require.NotNil(t, rma.SentBy)
	assert.Equal(t, "Jane Doe", *rma.SentBy)

	rma, err = svc.ChangeStatus(context.Background(), rma.ID, domain.StatusSent, testActor)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, rma.Status)
	require.NotNil(t, rma.ReturnedBy)

	rma, err = svc.ChangeStatus(context.Background(), rma.ID, domain.StatusResolved, testActor)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, rma.Status)

	// the persisted row matches what was returned
	stored, err := svc.GetCase(context.Background(), rma.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, stored.Status)
}

func TestChangeStatusNoOpDoesNotPersist(t *testing.T) {
	svc, cases, _ := newCaseService()
	rma, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X1", Problem: "won't boot",
	})
	require.NoError(t, err)

	// sent is not reachable from to_be_revised; the call still succeeds
	got, err := svc.ChangeStatus(context.Background(), rma.ID, domain.StatusSent, testActor)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusToBeRevised, got.Status)
	assert.Nil(t, got.SentDate)
	assert.Equal(t, domain.StatusToBeRevised, cases.cases[rma.ID].Status)
}

func TestChangeStatusUnknownStatus(t *testing.T) {
	svc, _, _ := newCaseService()
	rma, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X1", Problem: "won't boot",
	})
	require.NoError(t, err)

	_, err = svc.ChangeStatus(context.Background(), rma.ID, domain.CaseStatus("shipped"), testActor)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestChangeStatusMissingCase(t *testing.T) {
	svc, _, _ := newCaseService()

	_, err := svc.ChangeStatus(context.Background(), 42, domain.StatusResolved, testActor)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestUpdateCasePartialEdits(t *testing.T) {
	svc, _, _ := newCaseService()
	rma, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X1", Problem: "won't boot", SerialNumber: "SN-1",
	})
	require.NoError(t, err)

	problem := "won't boot after update"
	got, err := svc.UpdateCase(context.Background(), rma.ID, CaseUpdateInput{Problem: &problem})

	require.NoError(t, err)
	assert.Equal(t, "won't boot after update", got.Problem)
	assert.Equal(t, "SN-1", got.SerialNumber, "absent fields stay untouched")
	assert.Equal(t, domain.StatusToBeRevised, got.Status)
}

func TestListCasesByStatus(t *testing.T) {
	svc, _, _ := newCaseService()
	open, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X1", Problem: "won't boot",
	})
	require.NoError(t, err)
	second, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X2", Problem: "dead pixel",
	})
	require.NoError(t, err)
	_, err = svc.ChangeStatus(context.Background(), second.ID, domain.StatusResolved, testActor)
	require.NoError(t, err)

	status := domain.StatusToBeRevised
	listed, err := svc.ListCases(context.Background(), &status)

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, open.ID, listed[0].ID)
}

func TestCasesForCompany(t *testing.T) {
	svc, _, companies := newCaseService()
	require.NoError(t, companies.Create(context.Background(), &domain.DistributionCompany{Name: "TechParts"}))

	_, err := svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X1", Problem: "won't boot", DistributionCompany: "TechParts",
	})
	require.NoError(t, err)
	_, err = svc.CreateCase(context.Background(), testActor, CaseCreateInput{
		Brand: "Acme", Model: "X2", Problem: "dead pixel",
	})
	require.NoError(t, err)

	listed, err := svc.CasesForCompany(context.Background(), "TechParts")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = svc.CasesForCompany(context.Background(), "Nobody")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
