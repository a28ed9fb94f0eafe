package domain

import "fmt"

// VisitOutcome is the engineer's assessment of a visit.
type VisitOutcome string

const (
	OutcomeSatisfied        VisitOutcome = "Satisfied"
	OutcomeDissatisfied     VisitOutcome = "Dissatisfied"
	OutcomeNeedsImprovement VisitOutcome = "Need for Improvement"
)

// Valid reports whether o is one of the known outcomes.
func (o VisitOutcome) Valid() bool {
	switch o {
	case OutcomeSatisfied, OutcomeDissatisfied, OutcomeNeedsImprovement:
		return true
	}
	return false
}

// ConvertStatus is the sales-pipeline stage of a visit report.
type ConvertStatus string

const (
	ConvertPreLead     ConvertStatus = "PreLead"
	ConvertEnquiry     ConvertStatus = "Enquiry"
	ConvertProposal    ConvertStatus = "Proposal"
	ConvertNegotiation ConvertStatus = "Negotiation"
	ConvertClosed      ConvertStatus = "Closed"
)

// Valid reports whether s is one of the known pipeline stages.
func (s ConvertStatus) Valid() bool {
	switch s {
	case ConvertPreLead, ConvertEnquiry, ConvertProposal, ConvertNegotiation, ConvertClosed:
		return true
	}
	return false
}

// Review statuses stored in VisitEntry.Status. The field is free-form in stored data,
// so it stays a plain string; these are the values the lifecycle writes.
const (
	VisitStatusOpen     = "Open"
	VisitStatusApproved = "Approved"
	VisitStatusRejected = "Rejected"
)

// ContactPerson is one customer-side contact on a visit report.
type ContactPerson struct {
	ContactID   string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Email       string `json:"email,omitempty"`
}

// VisitEntry is a standalone sales-visit report, optionally linked back to the travel
// plan entry it was converted from.
//
// SalesEngineerID is the explicit owner used for all filtering. VisitReportID is the
// legacy composite correlation string ("<userID>-<unixms>"); it is kept for display
// parity but nothing parses it.
type VisitEntry struct {
	VisitID         string `json:"id"`
	VisitReportID   string `json:"visitReportId"`
	SalesEngineerID string `json:"salesEngineerId"`
	SerialNumber    int    `json:"serialNumber"`

	DateOfVisit string `json:"dateOfVisit"`
	DayOfVisit  string `json:"dayOfVisit"`
	CompanyName string `json:"companyName"`
	Plant       string `json:"plant,omitempty"`
	CityArea    string `json:"cityArea"`
	State       string `json:"state"`

	ContactPersons []ContactPerson `json:"contactPersons"`

	PurposeOfMeeting string `json:"purposeOfMeeting"`
	DiscussionPoints string `json:"discussionPoints,omitempty"`
	ProductServices  string `json:"productServices,omitempty"`
	ActionStep       string `json:"actionStep,omitempty"`
	Remarks          string `json:"remarks,omitempty"`

	// Decimal-as-string; accepts locale grouping on input, stored canonical.
	PotentialSaleValue string `json:"potentialSaleValue,omitempty"`

	VisitOutcome  VisitOutcome  `json:"visitOutcome"`
	ConvertStatus ConvertStatus `json:"convertStatus"`
	Status        string        `json:"status"`
	Result        string        `json:"result,omitempty"`
	ClosureDate   string        `json:"closureDate,omitempty"`

	TravelPlanEntryID string `json:"travelPlanEntryId,omitempty"`
	IsFromPlan        bool   `json:"isFromPlan,omitempty"`

	AuditFields
}

// NewVisitReportID builds the legacy composite correlation string for a report.
func NewVisitReportID(salesEngineerID string, unixMilli int64) string {
	return fmt.Sprintf("%s-%d", salesEngineerID, unixMilli)
}
