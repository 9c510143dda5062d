package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

func newCatalogService() (*CatalogService, *fakeCompanyRepo, *fakeProductRepo) {
	companies := newFakeCompanyRepo()
	products := newFakeProductRepo()
	svc := NewCatalogService(CatalogDependencies{
		CompanyRepo: companies,
		ProductRepo: products,
	})
	return svc, companies, products
}

func TestCreateCompanyDuplicateName(t *testing.T) {
	svc, companies, _ := newCatalogService()
	input := CompanyInput{Name: "TechParts", Email: "sales@techparts.example"}

	_, err := svc.CreateCompany(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.CreateCompany(context.Background(), input)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Len(t, companies.companies, 1, "store unchanged after conflict")
}

func TestDeleteCompany(t *testing.T) {
	svc, _, _ := newCatalogService()
	company, err := svc.CreateCompany(context.Background(), CompanyInput{Name: "TechParts"})
	require.NoError(t, err)

	// deleting an absent company is an error
	err = svc.DeleteCompany(context.Background(), company.ID+100)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)

	require.NoError(t, svc.DeleteCompany(context.Background(), company.ID))

	_, err = svc.GetCompany(context.Background(), company.ID)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestUpdateCompanyReplacesAllFields(t *testing.T) {
	svc, _, _ := newCatalogService()
	company, err := svc.CreateCompany(context.Background(), CompanyInput{
		Name: "TechParts", Email: "sales@techparts.example", Phone: "123",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCompany(context.Background(), company.ID, CompanyInput{
		Name: "TechParts Ltd", Email: "info@techparts.example",
	})

	require.NoError(t, err)
	assert.Equal(t, "TechParts Ltd", updated.Name)
	assert.Equal(t, "info@techparts.example", updated.Email)
	assert.Empty(t, updated.Phone, "update replaces the whole record")
}

func TestCreateProductDuplicateBrandModel(t *testing.T) {
	svc, _, products := newCatalogService()
	input := ProductInput{Brand: "Acme", Model: "X1", Stock: 5, EAN: "4006381333931"}

	_, err := svc.CreateProduct(context.Background(), input)
	require.NoError(t, err)

	input.EAN = "4006381333932"
	_, err = svc.CreateProduct(context.Background(), input)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Len(t, products.products, 1, "product count unchanged after conflict")
}

func TestCreateProductNegativeStock(t *testing.T) {
	svc, _, _ := newCatalogService()

	_, err := svc.CreateProduct(context.Background(), ProductInput{Brand: "Acme", Model: "X1", Stock: -1})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestFindProductsByEANShapes(t *testing.T) {
	svc, _, _ := newCatalogService()
	_, err := svc.CreateProduct(context.Background(), ProductInput{Brand: "Acme", Model: "X1", EAN: "111"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), ProductInput{Brand: "Acme", Model: "X1-rev2", EAN: "222"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), ProductInput{Brand: "Acme", Model: "X1-rev3", EAN: "222"})
	require.NoError(t, err)

	none, err := svc.FindProductsByEAN(context.Background(), "000")
	require.NoError(t, err)
	assert.Empty(t, none)

	one, err := svc.FindProductsByEAN(context.Background(), "111")
	require.NoError(t, err)
	assert.Len(t, one, 1)

	// variants may share one barcode
	many, err := svc.FindProductsByEAN(context.Background(), "222")
	require.NoError(t, err)
	assert.Len(t, many, 2)
}

func TestDeleteProductMissing(t *testing.T) {
	svc, _, _ := newCatalogService()

	err := svc.DeleteProduct(context.Background(), 7)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestUpdateProductIntoExistingPair(t *testing.T) {
	svc, _, _ := newCatalogService()
	_, err := svc.CreateProduct(context.Background(), ProductInput{Brand: "Acme", Model: "X1"})
	require.NoError(t, err)
	second, err := svc.CreateProduct(context.Background(), ProductInput{Brand: "Acme", Model: "X2"})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), second.ID, ProductInput{Brand: "Acme", Model: "X1"})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	unchanged, err := svc.GetProduct(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, "X2", unchanged.Model)
}
