package domain

import (
	"fmt"
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
)

// PlanStatus is the lifecycle state of a travel plan.
type PlanStatus string

const (
	PlanDraft     PlanStatus = "draft"
	PlanSubmitted PlanStatus = "submitted"
	PlanApproved  PlanStatus = "approved"
	PlanRejected  PlanStatus = "rejected"

	// Legacy statuses still present in stored data; treated as equivalent to
	// approved for reporting and overlap purposes.
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
)

// PlanEvent is a transition trigger on a travel plan.
type PlanEvent string

const (
	PlanEventSubmit  PlanEvent = "submit"
	PlanEventApprove PlanEvent = "approve"
	PlanEventReject  PlanEvent = "reject"
)

// planTransitions is the source-state x event -> target-state table. Anything not
// listed is rejected.
var planTransitions = map[PlanStatus]map[PlanEvent]PlanStatus{
	PlanDraft: {
		PlanEventSubmit: PlanSubmitted,
	},
	PlanSubmitted: {
		PlanEventApprove: PlanApproved,
		PlanEventReject:  PlanRejected,
	},
}

// Transition returns the status reached from s via event, or ErrInvalidState when the
// table does not permit it.
func (s PlanStatus) Transition(event PlanEvent) (PlanStatus, error) {
	if next, ok := planTransitions[s][event]; ok {
		return next, nil
	}
	return s, fmt.Errorf("%w: cannot %s a %s plan", apperrors.ErrInvalidState, event, s)
}

// IsOpen reports whether the plan counts against the one-open-plan-per-range
// invariant. Rejected is the only terminal status.
func (s PlanStatus) IsOpen() bool {
	switch s {
	case PlanDraft, PlanSubmitted, PlanApproved, PlanActive:
		return true
	}
	return false
}

// IsEditable reports whether entries may be freely added and edited.
func (s PlanStatus) IsEditable() bool {
	return s == PlanDraft
}

// AcceptsAdHocEntries reports whether new entries may still be added, stamped ad-hoc.
func (s PlanStatus) AcceptsAdHocEntries() bool {
	return s == PlanApproved || s == PlanActive
}

// TravelPlan is one planning horizon for one sales engineer. The date range is either
// explicit (StartDate/EndDate) or legacy monthly (Month/Year); monthly plans get their
// explicit range derived at creation so range checks apply uniformly.
type TravelPlan struct {
	PlanID          string     `json:"id"`
	SalesEngineerID string     `json:"salesEngineerId"`
	TeamLeaderID    string     `json:"teamLeaderId"`
	StartDate       string     `json:"startDate,omitempty"`
	EndDate         string     `json:"endDate,omitempty"`
	Month           time.Month `json:"month,omitempty"` // legacy monthly mode
	Year            int        `json:"year,omitempty"`
	Status          PlanStatus `json:"status"`

	SubmittedAt       *time.Time `json:"submittedAt,omitempty"`
	ApprovedAt        *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy        string     `json:"approvedBy,omitempty"`
	RejectedAt        *time.Time `json:"rejectedAt,omitempty"`
	RejectedBy        string     `json:"rejectedBy,omitempty"`
	RejectionComments string     `json:"rejectionComments,omitempty"`
	CommentedAt       *time.Time `json:"commentedAt,omitempty"`
	CommentedBy       string     `json:"commentedBy,omitempty"`
	Comments          string     `json:"comments,omitempty"`

	AuditFields
}

// MonthRange returns the first and last calendar day of a month.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// Range returns the plan's date bounds. ok is false when the plan has neither an
// explicit range nor a legacy month.
func (p *TravelPlan) Range() (start, end time.Time, ok bool) {
	startStr, endStr := p.StartDate, p.EndDate
	if startStr == "" || endStr == "" {
		if p.Year == 0 || p.Month == 0 {
			return time.Time{}, time.Time{}, false
		}
		startStr, endStr = MonthRange(p.Year, p.Month)
	}
	var err error
	if start, err = ParseDate(startStr); err != nil {
		return time.Time{}, time.Time{}, false
	}
	if end, err = ParseDate(endStr); err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Overlaps reports whether the two plans' date ranges intersect (inclusive bounds).
// Plans without a resolvable range never overlap anything.
func (p *TravelPlan) Overlaps(other *TravelPlan) bool {
	aStart, aEnd, ok := p.Range()
	if !ok {
		return false
	}
	bStart, bEnd, ok := other.Range()
	if !ok {
		return false
	}
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// ContainsDate reports whether a calendar day falls inside the plan's range. Plans
// without a resolvable range accept any date.
func (p *TravelPlan) ContainsDate(date string) bool {
	start, end, ok := p.Range()
	if !ok {
		return true
	}
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}
