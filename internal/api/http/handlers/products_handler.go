package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rma-service/internal/api/dto"
	"github.com/spec-kit/rma-service/internal/service"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// ProductsHandler exposes product CRUD and barcode lookups.
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalogService *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalogService}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.catalog.ListProducts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":  "ok",
		"products": dto.NewProductResponses(products),
	})
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	product, err := h.catalog.CreateProduct(c.Context(), productInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "new product created",
		"product": dto.NewProductResponse(product),
	})
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := h.catalog.GetProduct(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "ok",
		"product": dto.NewProductResponse(product),
	})
}

// GetByEAN handles GET /api/products/ean/:ean. Variants may share a barcode,
// so the payload is a single product, a list, or a not-found depending on
// how many match.
func (h *ProductsHandler) GetByEAN(c *fiber.Ctx) error {
	products, err := h.catalog.FindProductsByEAN(c.Context(), c.Params("ean"))
	if err != nil {
		return err
	}

	switch len(products) {
	case 0:
		return apperrors.NewNotFound("product with that EAN", nil)
	case 1:
		return c.JSON(fiber.Map{
			"message": "ok",
			"product": dto.NewProductResponse(&products[0]),
		})
	default:
		return c.JSON(fiber.Map{
			"message":  "ok",
			"products": dto.NewProductResponses(products),
		})
	}
}

// Update handles PUT /api/products/:id, replacing the whole record.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	product, err := h.catalog.UpdateProduct(c.Context(), id, productInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "product modified successfully",
		"product": dto.NewProductResponse(product),
	})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.catalog.DeleteProduct(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "product deleted successfully"})
}

func productInput(req dto.ProductRequest) service.ProductInput {
	return service.ProductInput{
		Brand:               req.Brand,
		Model:               req.Model,
		Description:         req.Description,
		Stock:               req.Stock,
		StockUnderControl:   req.StockUnderControl,
		DistributionCompany: req.DistributionCompany,
		EAN:                 req.EAN,
	}
}
