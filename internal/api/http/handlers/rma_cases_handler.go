package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rma-service/internal/api/dto"
	"github.com/spec-kit/rma-service/internal/auth"
	"github.com/spec-kit/rma-service/internal/domain"
	"github.com/spec-kit/rma-service/internal/service"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

// RMACasesHandler exposes the case workflow over HTTP.
type RMACasesHandler struct {
	cases *service.CaseService
}

// NewRMACasesHandler constructs handler.
func NewRMACasesHandler(caseService *service.CaseService) *RMACasesHandler {
	return &RMACasesHandler{cases: caseService}
}

// List handles GET /api/rma_cases. An optional ?status= query narrows the
// result to one workflow state.
func (h *RMACasesHandler) List(c *fiber.Ctx) error {
	var status *domain.CaseStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.CaseStatus(raw)
		status = &s
	}

	cases, err := h.cases.ListCases(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":   "ok",
		"rma_cases": dto.NewCaseResponses(cases),
	})
}

// Create handles POST /api/rma_cases, opening a case at to_be_revised stamped
// with the authenticated user.
func (h *RMACasesHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("token is missing")
	}

	var req dto.CreateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rma, err := h.cases.CreateCase(c.Context(), actor, service.CaseCreateInput{
		Brand:               req.Brand,
		Model:               req.Model,
		Problem:             req.Problem,
		SerialNumber:        req.SerialNumber,
		DistributionCompany: req.DistributionCompany,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "new RMA case created",
		"rma_case": dto.NewCaseResponse(rma),
	})
}

// Get handles GET /api/rma_cases/:id.
func (h *RMACasesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	rma, err := h.cases.GetCase(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":  "ok",
		"rma_case": dto.NewCaseResponse(rma),
	})
}

// Update handles PUT /api/rma_cases/:id. Only problem, serial number, and
// distribution company are editable; status moves through ChangeStatus.
func (h *RMACasesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rma, err := h.cases.UpdateCase(c.Context(), id, service.CaseUpdateInput{
		Problem:             req.Problem,
		SerialNumber:        req.SerialNumber,
		DistributionCompany: req.DistributionCompany,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":  "RMA case modified successfully",
		"rma_case": dto.NewCaseResponse(rma),
	})
}

// ChangeStatus handles POST /api/rma_cases/:id/status/:new_status. A
// transition the workflow table does not list leaves the case untouched and
// still responds ok, so desk clients can fire requests without tracking state.
func (h *RMACasesHandler) ChangeStatus(c *fiber.Ctx) error {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("token is missing")
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	requested := domain.CaseStatus(c.Params("new_status"))
	rma, err := h.cases.ChangeStatus(c.Context(), id, requested, actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":  "ok",
		"rma_case": dto.NewCaseResponse(rma),
	})
}
