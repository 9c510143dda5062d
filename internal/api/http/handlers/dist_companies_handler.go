package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rma-service/internal/api/dto"
	"github.com/spec-kit/rma-service/internal/service"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// DistCompaniesHandler exposes distribution-company CRUD.
type DistCompaniesHandler struct {
	catalog *service.CatalogService
}

// NewDistCompaniesHandler constructs handler.
func NewDistCompaniesHandler(catalogService *service.CatalogService) *DistCompaniesHandler {
	return &DistCompaniesHandler{catalog: catalogService}
}

// List handles GET /api/dist_companies.
func (h *DistCompaniesHandler) List(c *fiber.Ctx) error {
	companies, err := h.catalog.ListCompanies(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":        "ok",
		"dist_companies": dto.NewDistCompanyResponses(companies),
	})
}

// Create handles POST /api/dist_companies.
func (h *DistCompaniesHandler) Create(c *fiber.Ctx) error {
	var req dto.DistCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	company, err := h.catalog.CreateCompany(c.Context(), companyInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "new distribution company created",
		"dist_company": dto.NewDistCompanyResponse(company),
	})
}

// Get handles GET /api/dist_companies/:id.
func (h *DistCompaniesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	company, err := h.catalog.GetCompany(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":      "ok",
		"dist_company": dto.NewDistCompanyResponse(company),
	})
}

// Update handles PUT /api/dist_companies/:id, replacing the whole record.
func (h *DistCompaniesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.DistCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	company, err := h.catalog.UpdateCompany(c.Context(), id, companyInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":      "distribution company modified successfully",
		"dist_company": dto.NewDistCompanyResponse(company),
	})
}

// Delete handles DELETE /api/dist_companies/:id.
func (h *DistCompaniesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteCompany(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "distribution company deleted successfully"})
}

func companyInput(req dto.DistCompanyRequest) service.CompanyInput {
	return service.CompanyInput{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		Hours:       req.Hours,
		ContactName: req.ContactName,
		Phone:       req.Phone,
	}
}
