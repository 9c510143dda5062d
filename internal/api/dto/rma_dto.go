package dto

import "github.com/spec-kit/rma-service/internal/domain"

// CreateCaseRequest opens a case. Required-field checks live in the case
// service so the legacy field-naming messages stay intact; serial_number and
// distribution_company may be omitted.
type CreateCaseRequest struct {
	Brand               string `json:"brand"`
	Model               string `json:"model"`
	Problem             string `json:"problem"`
	SerialNumber        string `json:"serial_number"`
	DistributionCompany string `json:"distribution_company"`
}

// UpdateCaseRequest edits the free fields of a case. Pointer fields
// distinguish "absent" from "present but empty"; status is not editable here.
type UpdateCaseRequest struct {
	Problem             *string `json:"problem"`
	SerialNumber        *string `json:"serial_number"`
	DistributionCompany *string `json:"distribution_company"`
}

// CaseResponse exposes the full case including every stage pair; unstamped
// pairs serialize as null, matching the rows legacy clients already parse.
type CaseResponse struct {
	ID                  int64   `json:"id"`
	Brand               string  `json:"brand"`
	Model               string  `json:"model"`
	Problem             string  `json:"problem"`
	SerialNumber        string  `json:"serial_number"`
	DistributionCompany string  `json:"distribution_company"`
	Status              string  `json:"status"`
	ToBeRevisedDate     *string `json:"to_be_revised_date"`
	ToBeRevisedBy       *string `json:"to_be_revised_by"`
	ToBeSentDate        *string `json:"to_be_sent_date"`
	ToBeSentBy          *string `json:"to_be_sent_by"`
	SentDate            *string `json:"sent_date"`
	SentBy              *string `json:"sent_by"`
	ReturnedDate        *string `json:"returned_date"`
	ReturnedBy          *string `json:"returned_by"`
	ResolvedDate        *string `json:"resolved_date"`
	ResolvedBy          *string `json:"resolved_by"`
	UnresolvedDate      *string `json:"unresolved_date"`
	UnresolvedBy        *string `json:"unresolved_by"`
}

// NewCaseResponse maps the domain model.
func NewCaseResponse(rma *domain.RMACase) CaseResponse {
	return CaseResponse{
		ID:                  rma.ID,
		Brand:               rma.Brand,
		Model:               rma.Model,
		Problem:             rma.Problem,
		SerialNumber:        rma.SerialNumber,
		DistributionCompany: rma.DistributionCompany,
		Status:              string(rma.Status),
		ToBeRevisedDate:     rma.ToBeRevisedDate,
		ToBeRevisedBy:       rma.ToBeRevisedBy,
		ToBeSentDate:        rma.ToBeSentDate,
		ToBeSentBy:          rma.ToBeSentBy,
		SentDate:            rma.SentDate,
		SentBy:              rma.SentBy,
		ReturnedDate:        rma.ReturnedDate,
		ReturnedBy:          rma.ReturnedBy,
		ResolvedDate:        rma.ResolvedDate,
		ResolvedBy:          rma.ResolvedBy,
		UnresolvedDate:      rma.UnresolvedDate,
		UnresolvedBy:        rma.UnresolvedBy,
	}
}

// NewCaseResponses maps a slice.
func NewCaseResponses(cases []domain.RMACase) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for i := range cases {
		out = append(out, NewCaseResponse(&cases[i]))
	}
	return out
}
