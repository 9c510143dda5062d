package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rma-service/internal/domain"
)

// CaseFilter narrows case listings.
type CaseFilter struct {
	Status              *domain.CaseStatus
	DistributionCompany *string
}

// RMACaseRepository encapsulates RMA case persistence. Cases are never
// deleted; the record is the history.
type RMACaseRepository interface {
	Create(ctx context.Context, rma *domain.RMACase) error
	Update(ctx context.Context, rma *domain.RMACase) error
	GetByID(ctx context.Context, id int64) (*domain.RMACase, error)
	List(ctx context.Context, filter CaseFilter) ([]domain.RMACase, error)
}

type rmaCaseRepository struct {
	pool *pgxpool.Pool
}

// NewRMACaseRepository instantiates the repository.
func NewRMACaseRepository(pool *pgxpool.Pool) RMACaseRepository {
	return &rmaCaseRepository{pool: pool}
}

const rmaCaseColumns = `id, brand, model, problem, serial_number, distribution_company, status,
               to_be_revised_date, to_be_revised_by, to_be_sent_date, to_be_sent_by,
               sent_date, sent_by, returned_date, returned_by,
               resolved_date, resolved_by, unresolved_date, unresolved_by`

func (r *rmaCaseRepository) Create(ctx context.Context, rma *domain.RMACase) error {
	const query = `
        INSERT INTO rma_products (brand, model, problem, serial_number, distribution_company,
            status, to_be_revised_date, to_be_revised_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		rma.Brand,
		rma.Model,
		rma.Problem,
		rma.SerialNumber,
		rma.DistributionCompany,
		rma.Status,
		rma.ToBeRevisedDate,
		rma.ToBeRevisedBy,
	).Scan(&rma.ID)
}

func (r *rmaCaseRepository) Update(ctx context.Context, rma *domain.RMACase) error {
	const query = `
        UPDATE rma_products SET problem=$1, serial_number=$2, distribution_company=$3, status=$4,
            to_be_sent_date=$5, to_be_sent_by=$6, sent_date=$7, sent_by=$8,
            returned_date=$9, returned_by=$10, resolved_date=$11, resolved_by=$12,
            unresolved_date=$13, unresolved_by=$14
        WHERE id=$15`
	cmd, err := r.pool.Exec(ctx, query,
		rma.Problem,
		rma.SerialNumber,
		rma.DistributionCompany,
		rma.Status,
		rma.ToBeSentDate,
		rma.ToBeSentBy,
		rma.SentDate,
		rma.SentBy,
		rma.ReturnedDate,
		rma.ReturnedBy,
		rma.ResolvedDate,
		rma.ResolvedBy,
		rma.UnresolvedDate,
		rma.UnresolvedBy,
		rma.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rmaCaseRepository) GetByID(ctx context.Context, id int64) (*domain.RMACase, error) {
	var rma domain.RMACase
	if err := r.pool.QueryRow(ctx, `SELECT `+rmaCaseColumns+` FROM rma_products WHERE id=$1`, id).Scan(
		scanDest(&rma)...,
	); err != nil {
		return nil, err
	}
	return &rma, nil
}

func (r *rmaCaseRepository) List(ctx context.Context, filter CaseFilter) ([]domain.RMACase, error) {
	query := `SELECT ` + rmaCaseColumns + ` FROM rma_products`
	args := []any{}

	switch {
	case filter.Status != nil && filter.DistributionCompany != nil:
		query += ` WHERE status=$1 AND distribution_company=$2`
		args = append(args, *filter.Status, *filter.DistributionCompany)
	case filter.Status != nil:
		query += ` WHERE status=$1`
		args = append(args, *filter.Status)
	case filter.DistributionCompany != nil:
		query += ` WHERE distribution_company=$1`
		args = append(args, *filter.DistributionCompany)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RMACase
	for rows.Next() {
		var rma domain.RMACase
		if err := rows.Scan(scanDest(&rma)...); err != nil {
			return nil, err
		}
		result = append(result, rma)
	}
	return result, rows.Err()
}

func scanDest(rma *domain.RMACase) []any {
	return []any{
		&rma.ID,
		&rma.Brand,
		&rma.Model,
		&rma.Problem,
		&rma.SerialNumber,
		&rma.DistributionCompany,
		&rma.Status,
		&rma.ToBeRevisedDate,
		&rma.ToBeRevisedBy,
		&rma.ToBeSentDate,
		&rma.ToBeSentBy,
		&rma.SentDate,
		&rma.SentBy,
		&rma.ReturnedDate,
		&rma.ReturnedBy,
		&rma.ResolvedDate,
		&rma.ResolvedBy,
		&rma.UnresolvedDate,
		&rma.UnresolvedBy,
	}
}
