package domain

// CaseStatus enumerates repair lifecycle states for an RMA case.
type CaseStatus string

const (
	StatusToBeRevised CaseStatus = "to_be_revised"
	StatusToBeSent    CaseStatus = "to_be_sent"
	StatusSent        CaseStatus = "sent"
	StatusReturned    CaseStatus = "returned"
	StatusResolved    CaseStatus = "resolved"
	StatusUnresolved  CaseStatus = "unresolved"
)

// Valid reports whether s is one of the known lifecycle states.
func (s CaseStatus) Valid() bool {
	switch s {
	case StatusToBeRevised, StatusToBeSent, StatusSent, StatusReturned, StatusResolved, StatusUnresolved:
		return true
	}
	return false
}

// StageDateLayout is the stored format for stage dates. Existing rows carry
// this exact format, so it is a data contract rather than a rendering choice.
const StageDateLayout = "02-01-2006 15:04"

// DefaultCaseField fills serial_number and distribution_company when a case
// is opened without them.
const DefaultCaseField = "N/A"

// RMACase is the workflow aggregate. Each stage keeps a (date, by) pair
// recording when that stage last happened and who performed it; a stamped
// pair is never cleared, even if the case later re-enters an earlier status.
// All six pairs are persisted although the engine only ever writes three of
// them (to_be_revised at creation, sent and returned on transitions).
type RMACase struct {
	ID                  int64
	Brand               string
	Model               string
	Problem             string
	SerialNumber        string
	DistributionCompany string
	Status              CaseStatus
	ToBeRevisedDate     *string
	ToBeRevisedBy       *string
	ToBeSentDate        *string
	ToBeSentBy          *string
	SentDate            *string
	SentBy              *string
	ReturnedDate        *string
	ReturnedBy          *string
	ResolvedDate        *string
	ResolvedBy          *string
	UnresolvedDate      *string
	UnresolvedBy        *string
}
