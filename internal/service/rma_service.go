package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/rma-service/internal/domain"
	"github.com/spec-kit/rma-service/internal/repository"
	"github.com/spec-kit/rma-service/internal/workflow"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// CaseService drives RMA cases through the repair workflow.
type CaseService struct {
	cases     repository.RMACaseRepository
	companies repository.DistCompanyRepository
	now       func() time.Time
}

// NewCaseService constructs the service.
func NewCaseService(cases repository.RMACaseRepository, companies repository.DistCompanyRepository) *CaseService {
	return &CaseService{cases: cases, companies: companies, now: time.Now}
}

// CaseCreateInput describes a new case. SerialNumber and DistributionCompany
// are optional and default to "N/A".
type CaseCreateInput struct {
	Brand               string
	Model               string
	Problem             string
	SerialNumber        string
	DistributionCompany string
}

// CaseUpdateInput carries the only fields editable outside the workflow.
// Status and stage fields are unreachable through this path.
type CaseUpdateInput struct {
	Problem             *string
	SerialNumber        *string
	DistributionCompany *string
}

// CreateCase opens a case at to_be_revised, stamping the opening actor.
func (s *CaseService) CreateCase(ctx context.Context, actor *domain.User, input CaseCreateInput) (*domain.RMACase, error) {
	if input.Brand == "" {
		return nil, apperrors.NewValidationError("you must specify a brand", map[string]any{"field": "brand"})
	}
	if input.Model == "" {
		return nil, apperrors.NewValidationError("you must specify a model", map[string]any{"field": "model"})
	}
	if input.Problem == "" {
		return nil, apperrors.NewValidationError("you must specify a problem", map[string]any{"field": "problem"})
	}

	rma := workflow.OpenCase(input.Brand, input.Model, input.Problem,
		input.SerialNumber, input.DistributionCompany, actor.DisplayName(), s.now())
	if err := s.cases.Create(ctx, rma); err != nil {
		return nil, err
	}
	return rma, nil
}

// ListCases returns cases, optionally narrowed to one status.
func (s *CaseService) ListCases(ctx context.Context, status *domain.CaseStatus) ([]domain.RMACase, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"field": "status"})
	}
	return s.cases.List(ctx, repository.CaseFilter{Status: status})
}

// GetCase fetches a case by id.
func (s *CaseService) GetCase(ctx context.Context, id int64) (*domain.RMACase, error) {
	rma, err := s.cases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("RMA case", nil)
		}
		return nil, err
	}
	return rma, nil
}

// UpdateCase applies partial edits to problem, serial number, and
// distribution company.
func (s *CaseService) UpdateCase(ctx context.Context, id int64, input CaseUpdateInput) (*domain.RMACase, error) {
	rma, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Problem != nil {
		rma.Problem = *input.Problem
	}
	if input.SerialNumber != nil {
		rma.SerialNumber = *input.SerialNumber
	}
	if input.DistributionCompany != nil {
		rma.DistributionCompany = *input.DistributionCompany
	}

	if err := s.cases.Update(ctx, rma); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("RMA case", nil)
		}
		return nil, err
	}
	return rma, nil
}

// ChangeStatus runs one workflow transition and persists the result. A
// transition the table does not allow returns the unchanged case without
// touching the store.
func (s *CaseService) ChangeStatus(ctx context.Context, id int64, requested domain.CaseStatus, actor *domain.User) (*domain.RMACase, error) {
	rma, err := s.GetCase(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := workflow.Apply(rma, requested, actor.DisplayName(), s.now())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"field": "status"})
	}
	if !changed {
		return rma, nil
	}

	if err := s.cases.Update(ctx, rma); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("RMA case", nil)
		}
		return nil, err
	}
	return rma, nil
}

// CasesForCompany returns a company's cases for the invoice exporter. The
// company must exist even when it has no cases.
func (s *CaseService) CasesForCompany(ctx context.Context, companyName string) ([]domain.RMACase, error) {
	if _, err := s.companies.GetByName(ctx, companyName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("distribution company", nil)
		}
		return nil, err
	}
	return s.cases.List(ctx, repository.CaseFilter{DistributionCompany: &companyName})
}
