package dto

import "github.com/spec-kit/rma-service/internal/domain"

// DistCompanyRequest is used for both create and full-replace update.
type DistCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address"`
	Hours       string `json:"hours"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

// DistCompanyResponse mirrors the stored record.
type DistCompanyResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Hours       string `json:"hours"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

// NewDistCompanyResponse maps the domain model.
func NewDistCompanyResponse(company *domain.DistributionCompany) DistCompanyResponse {
	return DistCompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Email:       company.Email,
		Address:     company.Address,
		Hours:       company.Hours,
		ContactName: company.ContactName,
		Phone:       company.Phone,
	}
}

// NewDistCompanyResponses maps a slice.
func NewDistCompanyResponses(companies []domain.DistributionCompany) []DistCompanyResponse {
	out := make([]DistCompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, NewDistCompanyResponse(&companies[i]))
	}
	return out
}

// ProductRequest is used for both create and full-replace update.
type ProductRequest struct {
	Brand               string `json:"brand" validate:"required"`
	Model               string `json:"model" validate:"required"`
	Description         string `json:"description"`
	Stock               int    `json:"stock" validate:"gte=0"`
	StockUnderControl   bool   `json:"stock_under_control"`
	DistributionCompany string `json:"distribution_company"`
	EAN                 string `json:"ean"`
}

// ProductResponse mirrors the stored record.
type ProductResponse struct {
	ID                  int64  `json:"id"`
	Brand               string `json:"brand"`
	Model               string `json:"model"`
	Description         string `json:"description"`
	Stock               int    `json:"stock"`
	StockUnderControl   bool   `json:"stock_under_control"`
	DistributionCompany string `json:"distribution_company"`
	EAN                 string `json:"ean"`
}

// NewProductResponse maps the domain model.
func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:                  product.ID,
		Brand:               product.Brand,
		Model:               product.Model,
		Description:         product.Description,
		Stock:               product.Stock,
		StockUnderControl:   product.StockUnderControl,
		DistributionCompany: product.DistributionCompany,
		EAN:                 product.EAN,
	}
}

// NewProductResponses maps a slice.
func NewProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
