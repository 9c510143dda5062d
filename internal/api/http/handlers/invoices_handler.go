package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rma-service/internal/invoice"
	"github.com/spec-kit/rma-service/internal/service"
)

// InvoicesHandler renders per-company RMA invoices as PDF downloads.
type InvoicesHandler struct {
	cases  *service.CaseService
	banner string
	now    func() time.Time
}

// NewInvoicesHandler constructs handler. The banner is the company name
// printed at the top of every invoice.
func NewInvoicesHandler(caseService *service.CaseService, banner string) *InvoicesHandler {
	return &InvoicesHandler{cases: caseService, banner: banner, now: time.Now}
}

// Generate handles GET /api/invoices/dist_companies/:name and streams the
// rendered PDF. A company with no cases still gets an invoice with an empty
// table.
func (h *InvoicesHandler) Generate(c *fiber.Ctx) error {
	name := c.Params("name")
	cases, err := h.cases.CasesForCompany(c.Context(), name)
	if err != nil {
		return err
	}

	pdfBytes, err := invoice.Generate(cases, name, h.banner, h.now())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rma_invoice.pdf"`)
	return c.Send(pdfBytes)
}
