// Package workflow implements the RMA repair lifecycle state machine: which
// status moves are allowed from where, and which stage fields each one stamps.
package workflow

import (
	"fmt"
	"time"

	"github.com/spec-kit/rma-service/internal/domain"
)

// stage identifies which (date, by) pair a transition stamps.
type stage int

const (
	stageSent stage = iota
	stageReturned
)

// guarded maps a requested status to the current status it requires and the
// stage pair it stamps. Transitioning into to_be_sent stamps the sent pair:
// the stamped fields record when the next physical action happened, so they
// lag one step behind the status name. Persisted rows and client code depend
// on this mapping; it must not be renamed to match the status.
var guarded = map[domain.CaseStatus]struct {
	from   domain.CaseStatus
	stamps stage
}{
	domain.StatusToBeSent: {from: domain.StatusToBeRevised, stamps: stageSent},
	domain.StatusSent:     {from: domain.StatusToBeSent, stamps: stageReturned},
	domain.StatusReturned: {from: domain.StatusSent, stamps: stageReturned},
}

// OpenCase builds a new case at the head of the workflow, stamping the
// to_be_revised pair with the opening actor and time. Empty serial number or
// distribution company fall back to "N/A".
func OpenCase(brand, model, problem, serialNumber, distCompany, actor string, now time.Time) *domain.RMACase {
	if serialNumber == "" {
		serialNumber = domain.DefaultCaseField
	}
	if distCompany == "" {
		distCompany = domain.DefaultCaseField
	}
	date := now.Format(domain.StageDateLayout)
	return &domain.RMACase{
		Brand:               brand,
		Model:               model,
		Problem:             problem,
		SerialNumber:        serialNumber,
		DistributionCompany: distCompany,
		Status:              domain.StatusToBeRevised,
		ToBeRevisedDate:     &date,
		ToBeRevisedBy:       &actor,
	}
}

// Apply runs one transition against rma in place. It returns true when the
// case was mutated. A known status requested from a state the table does not
// allow leaves the case untouched and returns false; the HTTP surface still
// reports success for that shape, matching how deployed clients behave.
// resolved and unresolved are reachable from any state: staff can always
// force-close a case.
func Apply(rma *domain.RMACase, requested domain.CaseStatus, actor string, now time.Time) (bool, error) {
	if !requested.Valid() {
		return false, fmt.Errorf("unknown status %q", requested)
	}

	date := now.Format(domain.StageDateLayout)

	if requested == domain.StatusResolved || requested == domain.StatusUnresolved {
		rma.Status = requested
		setStage(rma, stageReturned, date, actor)
		return true, nil
	}

	t, ok := guarded[requested]
	if !ok || rma.Status != t.from {
		return false, nil
	}
	rma.Status = requested
	setStage(rma, t.stamps, date, actor)
	return true, nil
}

func setStage(rma *domain.RMACase, s stage, date, actor string) {
	switch s {
	case stageSent:
		rma.SentDate, rma.SentBy = &date, &actor
	case stageReturned:
		rma.ReturnedDate, rma.ReturnedBy = &date, &actor
	}
}
