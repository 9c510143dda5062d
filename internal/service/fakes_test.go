package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/rma-service/internal/domain"
	"github.com/spec-kit/rma-service/internal/repository"
)

// errDuplicate mimics what pgx surfaces on a unique-constraint violation.
var errDuplicate = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

type fakeUserRepo struct {
	users  map[string]domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return errDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.PublicID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.PublicID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.PublicID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, publicID string) error {
	if _, ok := r.users[publicID]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, publicID)
	return nil
}

func (r *fakeUserRepo) GetByPublicID(_ context.Context, publicID string) (*domain.User, error) {
	u, ok := r.users[publicID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeCompanyRepo struct {
	companies map[int64]domain.DistributionCompany
	nextID    int64
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[int64]domain.DistributionCompany{}}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *domain.DistributionCompany) error {
	for _, c := range r.companies {
		if c.Name == company.Name {
			return errDuplicate
		}
	}
	r.nextID++
	company.ID = r.nextID
	r.companies[company.ID] = *company
	return nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *domain.DistributionCompany) error {
	if _, ok := r.companies[company.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, c := range r.companies {
		if id != company.ID && c.Name == company.Name {
			return errDuplicate
		}
	}
	r.companies[company.ID] = *company
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.companies[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.companies, id)
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*domain.DistributionCompany, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (r *fakeCompanyRepo) GetByName(_ context.Context, name string) (*domain.DistributionCompany, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]domain.DistributionCompany, error) {
	var out []domain.DistributionCompany
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[int64]domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]domain.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	for _, p := range r.products {
		if p.Brand == product.Brand && p.Model == product.Model {
			return errDuplicate
		}
	}
	r.nextID++
	product.ID = r.nextID
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, p := range r.products {
		if id != product.ID && p.Brand == product.Brand && p.Model == product.Model {
			return errDuplicate
		}
	}
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (r *fakeProductRepo) ListByEAN(_ context.Context, ean string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.EAN == ean {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeCaseRepo struct {
	cases  map[int64]domain.RMACase
	nextID int64
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{cases: map[int64]domain.RMACase{}}
}

func (r *fakeCaseRepo) Create(_ context.Context, rma *domain.RMACase) error {
	r.nextID++
	rma.ID = r.nextID
	r.cases[rma.ID] = *rma
	return nil
}

func (r *fakeCaseRepo) Update(_ context.Context, rma *domain.RMACase) error {
	if _, ok := r.cases[rma.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.cases[rma.ID] = *rma
	return nil
}

func (r *fakeCaseRepo) GetByID(_ context.Context, id int64) (*domain.RMACase, error) {
	rma, ok := r.cases[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &rma, nil
}

func (r *fakeCaseRepo) List(_ context.Context, filter repository.CaseFilter) ([]domain.RMACase, error) {
	var out []domain.RMACase
	for _, rma := range r.cases {
		if filter.Status != nil && rma.Status != *filter.Status {
			continue
		}
		if filter.DistributionCompany != nil && rma.DistributionCompany != *filter.DistributionCompany {
			continue
		}
		out = append(out, rma)
	}
	return out, nil
}
