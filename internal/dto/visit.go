package dto

import (
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// --- Visit Report DTOs ---

// ContactPersonRequest is one customer contact on a create/update request.
type ContactPersonRequest struct {
	ContactID   string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
}

// SaveVisitRequest defines data for creating or replacing a visit report. Required
// fields are checked in the service so all violations come back together.
type SaveVisitRequest struct {
	DateOfVisit        string                 `json:"dateOfVisit" binding:"omitempty,datetime=2006-01-02"`
	CompanyName        string                 `json:"companyName"`
	Plant              string                 `json:"plant"`
	CityArea           string                 `json:"cityArea"`
	State              string                 `json:"state"`
	ContactPersons     []ContactPersonRequest `json:"contactPersons"`
	PurposeOfMeeting   string                 `json:"purposeOfMeeting"`
	DiscussionPoints   string                 `json:"discussionPoints"`
	ProductServices    string                 `json:"productServices"`
	ActionStep         string                 `json:"actionStep"`
	Remarks            string                 `json:"remarks"`
	PotentialSaleValue string                 `json:"potentialSaleValue"`
	VisitOutcome       domain.VisitOutcome    `json:"visitOutcome"`
	ConvertStatus      domain.ConvertStatus   `json:"convertStatus"`
	Result             string                 `json:"result"`
	ClosureDate        string                 `json:"closureDate" binding:"omitempty,datetime=2006-01-02"`
}

// SetVisitStatusRequest carries a team leader's review decision.
type SetVisitStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}

// ContactPersonResponse is one customer contact on a response.
type ContactPersonResponse struct {
	ContactID   string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Email       string `json:"email,omitempty"`
}

// VisitResponse defines data returned for a visit report.
type VisitResponse struct {
	VisitID            string                  `json:"id"`
	VisitReportID      string                  `json:"visitReportId"`
	SalesEngineerID    string                  `json:"salesEngineerId"`
	SerialNumber       int                     `json:"serialNumber"`
	DateOfVisit        string                  `json:"dateOfVisit"`
	DayOfVisit         string                  `json:"dayOfVisit"`
	CompanyName        string                  `json:"companyName"`
	Plant              string                  `json:"plant,omitempty"`
	CityArea           string                  `json:"cityArea"`
	State              string                  `json:"state"`
	ContactPersons     []ContactPersonResponse `json:"contactPersons"`
	PurposeOfMeeting   string                  `json:"purposeOfMeeting"`
	DiscussionPoints   string                  `json:"discussionPoints,omitempty"`
	ProductServices    string                  `json:"productServices,omitempty"`
	ActionStep         string                  `json:"actionStep,omitempty"`
	Remarks            string                  `json:"remarks,omitempty"`
	PotentialSaleValue string                  `json:"potentialSaleValue,omitempty"`
	VisitOutcome       domain.VisitOutcome     `json:"visitOutcome"`
	ConvertStatus      domain.ConvertStatus    `json:"convertStatus"`
	Status             string                  `json:"status"`
	Result             string                  `json:"result,omitempty"`
	ClosureDate        string                  `json:"closureDate,omitempty"`
	TravelPlanEntryID  string                  `json:"travelPlanEntryId,omitempty"`
	IsFromPlan         bool                    `json:"isFromPlan,omitempty"`
	CreatedAt          time.Time               `json:"createdAt"`
}

// ToVisitResponse converts domain.VisitEntry to DTO.
func ToVisitResponse(v *domain.VisitEntry) VisitResponse {
	contacts := make([]ContactPersonResponse, len(v.ContactPersons))
	for i, c := range v.ContactPersons {
		contacts[i] = ContactPersonResponse{
			ContactID:   c.ContactID,
			Name:        c.Name,
			Designation: c.Designation,
			Mobile:      c.Mobile,
			Email:       c.Email,
		}
	}
	return VisitResponse{
		VisitID:            v.VisitID,
		VisitReportID:      v.VisitReportID,
		SalesEngineerID:    v.SalesEngineerID,
		SerialNumber:       v.SerialNumber,
		DateOfVisit:        v.DateOfVisit,
		DayOfVisit:         v.DayOfVisit,
		CompanyName:        v.CompanyName,
		Plant:              v.Plant,
		CityArea:           v.CityArea,
		State:              v.State,
		ContactPersons:     contacts,
		PurposeOfMeeting:   v.PurposeOfMeeting,
		DiscussionPoints:   v.DiscussionPoints,
		ProductServices:    v.ProductServices,
		ActionStep:         v.ActionStep,
		Remarks:            v.Remarks,
		PotentialSaleValue: v.PotentialSaleValue,
		VisitOutcome:       v.VisitOutcome,
		ConvertStatus:      v.ConvertStatus,
		Status:             v.Status,
		Result:             v.Result,
		ClosureDate:        v.ClosureDate,
		TravelPlanEntryID:  v.TravelPlanEntryID,
		IsFromPlan:         v.IsFromPlan,
		CreatedAt:          v.CreatedAt,
	}
}

// ListVisitsResponse wraps a list of visit reports.
type ListVisitsResponse struct {
	Visits []VisitResponse `json:"visits"`
}

// ToListVisitsResponse converts a slice of domain.VisitEntry to DTO.
func ToListVisitsResponse(vs []domain.VisitEntry) ListVisitsResponse {
	list := make([]VisitResponse, len(vs))
	for i, v := range vs {
		list[i] = ToVisitResponse(&v)
	}
	return ListVisitsResponse{Visits: list}
}
