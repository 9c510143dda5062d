package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/rma-service/internal/domain"
)

// ProductRepository manages product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListByEAN(ctx context.Context, ean string) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository builds the repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `id, brand, model, description, stock, stock_under_control, distribution_company, ean`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (brand, model, description, stock, stock_under_control, distribution_company, ean)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		product.Brand,
		product.Model,
		product.Description,
		product.Stock,
		product.StockUnderControl,
		product.DistributionCompany,
		product.EAN,
	).Scan(&product.ID)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET brand=$1, model=$2, description=$3, stock=$4,
            stock_under_control=$5, distribution_company=$6, ean=$7
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		product.Brand,
		product.Model,
		product.Description,
		product.Stock,
		product.StockUnderControl,
		product.DistributionCompany,
		product.EAN,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id).Scan(
		&product.ID,
		&product.Brand,
		&product.Model,
		&product.Description,
		&product.Stock,
		&product.StockUnderControl,
		&product.DistributionCompany,
		&product.EAN,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListByEAN(ctx context.Context, ean string) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE ean=$1 ORDER BY id`, ean)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY brand, model`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Brand,
			&product.Model,
			&product.Description,
			&product.Stock,
			&product.StockUnderControl,
			&product.DistributionCompany,
			&product.EAN,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}
