package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rma-service/internal/domain"
)

// DistCompanyRepository manages distribution-company persistence.
type DistCompanyRepository interface {
	Create(ctx context.Context, company *domain.DistributionCompany) error
	Update(ctx context.Context, company *domain.DistributionCompany) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.DistributionCompany, error)
	GetByName(ctx context.Context, name string) (*domain.DistributionCompany, error)
	List(ctx context.Context) ([]domain.DistributionCompany, error)
}

type distCompanyRepository struct {
	pool *pgxpool.Pool
}

// NewDistCompanyRepository builds the repository.
func NewDistCompanyRepository(pool *pgxpool.Pool) DistCompanyRepository {
	return &distCompanyRepository{pool: pool}
}

const distCompanyColumns = `id, name, email, address, hours, contact_name, phone`

func (r *distCompanyRepository) Create(ctx context.Context, company *domain.DistributionCompany) error {
	const query = `
        INSERT INTO dist_companies (name, email, address, hours, contact_name, phone)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		company.Name,
		company.Email,
		company.Address,
		company.Hours,
		company.ContactName,
		company.Phone,
	).Scan(&company.ID)
}

func (r *distCompanyRepository) Update(ctx context.Context, company *domain.DistributionCompany) error {
	const query = `
        UPDATE dist_companies SET name=$1, email=$2, address=$3, hours=$4, contact_name=$5, phone=$6
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		company.Name,
		company.Email,
		company.Address,
		company.Hours,
		company.ContactName,
		company.Phone,
		company.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *distCompanyRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM dist_companies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *distCompanyRepository) GetByID(ctx context.Context, id int64) (*domain.DistributionCompany, error) {
	return r.fetchSingle(ctx, `SELECT `+distCompanyColumns+` FROM dist_companies WHERE id=$1`, id)
}

func (r *distCompanyRepository) GetByName(ctx context.Context, name string) (*domain.DistributionCompany, error) {
	return r.fetchSingle(ctx, `SELECT `+distCompanyColumns+` FROM dist_companies WHERE name=$1`, name)
}

func (r *distCompanyRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.DistributionCompany, error) {
	var company domain.DistributionCompany
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&company.ID,
		&company.Name,
		&company.Email,
		&company.Address,
		&company.Hours,
		&company.ContactName,
		&company.Phone,
	); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *distCompanyRepository) List(ctx context.Context) ([]domain.DistributionCompany, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+distCompanyColumns+` FROM dist_companies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DistributionCompany
	for rows.Next() {
		var company domain.DistributionCompany
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Email,
			&company.Address,
			&company.Hours,
			&company.ContactName,
			&company.Phone,
		); err != nil {
			return nil, err
		}
		result = append(result, company)
	}
	return result, rows.Err()
}
