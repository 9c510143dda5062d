// Package invoice renders a distribution company's RMA cases into a
// printable PDF handed over with the physical shipment.
package invoice

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/spec-kit/rma-service/internal/domain"
)

var (
	columnWidths = []float64{15, 30, 40, 120, 60}
	columnAligns = []string{"C", "L", "L", "L", "C"}
	columnTitles = []string{"ID", "BRAND", "MODEL", "PROBLEM", "SERIAL NUMBER"}
)

// Generate renders a landscape A4 invoice: banner and date, one table row
// per case, the total count, and two blank signature blocks. Pure function
// of its inputs.
func Generate(cases []domain.RMACase, distCompany, banner string, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 14, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, banner, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "DATE: "+now.Format("02-01-06"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "RMA INVOICE - "+strings.ToUpper(distCompany), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Courier", "B", 9)
	for i, title := range columnTitles {
		pdf.CellFormat(columnWidths[i], 6, title, "B", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, rma := range cases {
		row := []string{
			strconv.FormatInt(rma.ID, 10),
			rma.Brand,
			rma.Model,
			rma.Problem,
			rma.SerialNumber,
		}
		for i, cell := range row {
			pdf.CellFormat(columnWidths[i], 6, cell, "1", 0, columnAligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total: %d", len(cases)), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	signatureBlocks(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// signatureBlocks draws the RECEIVES/DELIVERS hand-over boxes signed on
// paper by both parties.
func signatureBlocks(pdf *gofpdf.Fpdf) {
	const colWidth = 95.0

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(colWidth, 8, "RECEIVES", "", 0, "L", false, 0, "")
	pdf.CellFormat(colWidth, 8, "DELIVERS", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	rows := []struct {
		label  string
		height float64
	}{
		{"SIGNATURE:", 12},
		{"CLARIFICATION:", 7},
		{"ID:", 7},
	}
	for _, row := range rows {
		pdf.CellFormat(colWidth, row.height, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidth, row.height, row.label, "1", 1, "L", false, 0, "")
	}
}
