package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/rma-service/internal/domain"
	"github.com/spec-kit/rma-service/internal/persistence"
	"github.com/spec-kit/rma-service/internal/repository"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// CatalogService manages distribution companies and products. Barcode (EAN)
// lookups go through a best-effort Redis cache, invalidated on any product
// write, since scanning is the hot read path at the service desk.
type CatalogService struct {
	companies repository.DistCompanyRepository
	products  repository.ProductRepository
	cache     *persistence.Redis
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// CatalogDependencies bundles what the catalog needs.
type CatalogDependencies struct {
	CompanyRepo repository.DistCompanyRepository
	ProductRepo repository.ProductRepository
	Cache       *persistence.Redis
	CacheTTL    time.Duration
	Logger      *zap.Logger
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &CatalogService{
		companies: deps.CompanyRepo,
		products:  deps.ProductRepo,
		cache:     deps.Cache,
		cacheTTL:  deps.CacheTTL,
		logger:    deps.Logger,
	}
}

// CompanyInput carries all mutable distribution-company fields; create and
// update both replace the record as a whole.
type CompanyInput struct {
	Name        string
	Email       string
	Address     string
	Hours       string
	ContactName string
	Phone       string
}

// CreateCompany inserts a company; a duplicate name is a conflict and leaves
// the store unchanged.
func (s *CatalogService) CreateCompany(ctx context.Context, input CompanyInput) (*domain.DistributionCompany, error) {
	company := &domain.DistributionCompany{
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		Hours:       input.Hours,
		ContactName: input.ContactName,
		Phone:       input.Phone,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("distribution company already exists", nil)
		}
		return nil, err
	}
	return company, nil
}

// GetCompany fetches a company by id.
func (s *CatalogService) GetCompany(ctx context.Context, id int64) (*domain.DistributionCompany, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("distribution company", nil)
		}
		return nil, err
	}
	return company, nil
}

// ListCompanies returns all companies.
func (s *CatalogService) ListCompanies(ctx context.Context) ([]domain.DistributionCompany, error) {
	return s.companies.List(ctx)
}

// UpdateCompany atomically replaces every mutable field.
func (s *CatalogService) UpdateCompany(ctx context.Context, id int64, input CompanyInput) (*domain.DistributionCompany, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.Email = input.Email
	company.Address = input.Address
	company.Hours = input.Hours
	company.ContactName = input.ContactName
	company.Phone = input.Phone

	if err := s.companies.Update(ctx, company); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("distribution company already exists", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("distribution company", nil)
		}
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes a company; deleting an absent one reports not found.
func (s *CatalogService) DeleteCompany(ctx context.Context, id int64) error {
	if err := s.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("distribution company", nil)
		}
		return err
	}
	return nil
}

// ProductInput carries all mutable product fields.
type ProductInput struct {
	Brand               string
	Model               string
	Description         string
	Stock               int
	StockUnderControl   bool
	DistributionCompany string
	EAN                 string
}

// CreateProduct inserts a product; a duplicate (brand, model) pair is a
// conflict and leaves the store unchanged.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if input.Stock < 0 {
		return nil, apperrors.NewValidationError("stock must not be negative", map[string]any{"field": "stock"})
	}
	product := &domain.Product{
		Brand:               input.Brand,
		Model:               input.Model,
		Description:         input.Description,
		Stock:               input.Stock,
		StockUnderControl:   input.StockUnderControl,
		DistributionCompany: input.DistributionCompany,
		EAN:                 input.EAN,
	}
	if err := s.products.Create(ctx, product); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("product already exists", nil)
		}
		return nil, err
	}
	s.invalidateEAN(ctx, product.EAN)
	return product, nil
}

// GetProduct fetches a product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", nil)
		}
		return nil, err
	}
	return product, nil
}

// ListProducts returns all products.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// FindProductsByEAN returns every product sharing the barcode: zero, one, or
// many, since variants may share an EAN. Results are cached briefly.
func (s *CatalogService) FindProductsByEAN(ctx context.Context, ean string) ([]domain.Product, error) {
	key := eanCacheKey(ean)
	if raw := s.cache.GetString(ctx, key); raw != "" {
		var cached []domain.Product
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.products.ListByEAN(ctx, ean)
	if err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(products); err == nil {
		s.cache.SetString(ctx, key, string(buf), s.cacheTTL)
	}
	return products, nil
}

// UpdateProduct atomically replaces every mutable field.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*domain.Product, error) {
	if input.Stock < 0 {
		return nil, apperrors.NewValidationError("stock must not be negative", map[string]any{"field": "stock"})
	}
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	previousEAN := product.EAN

	product.Brand = input.Brand
	product.Model = input.Model
	product.Description = input.Description
	product.Stock = input.Stock
	product.StockUnderControl = input.StockUnderControl
	product.DistributionCompany = input.DistributionCompany
	product.EAN = input.EAN

	if err := s.products.Update(ctx, product); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("product already exists", nil)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", nil)
		}
		return nil, err
	}
	s.invalidateEAN(ctx, previousEAN, product.EAN)
	return product, nil
}

// DeleteProduct removes a product; deleting an absent one reports not found.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product", nil)
		}
		return err
	}
	s.invalidateEAN(ctx, product.EAN)
	return nil
}

func (s *CatalogService) invalidateEAN(ctx context.Context, eans ...string) {
	keys := make([]string, 0, len(eans))
	for _, ean := range eans {
		if ean != "" {
			keys = append(keys, eanCacheKey(ean))
		}
	}
	s.cache.Delete(ctx, keys...)
}

func eanCacheKey(ean string) string {
	return "product:ean:" + ean
}
