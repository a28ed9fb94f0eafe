package dto

import (
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// --- Travel Plan DTOs ---

// CreatePlanRequest defines data for creating a travel plan. Either an explicit
// startDate/endDate pair or a legacy month+year must be supplied.
type CreatePlanRequest struct {
	StartDate string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Month     int    `json:"month" binding:"omitempty,min=1,max=12"`
	Year      int    `json:"year" binding:"omitempty,min=2000"`
}

// RejectPlanRequest carries the mandatory rejection reason.
type RejectPlanRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CommentPlanRequest carries a team leader's comment.
type CommentPlanRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// PlanResponse defines data returned for a travel plan.
type PlanResponse struct {
	PlanID            string            `json:"id"`
	SalesEngineerID   string            `json:"salesEngineerId"`
	TeamLeaderID      string            `json:"teamLeaderId"`
	StartDate         string            `json:"startDate,omitempty"`
	EndDate           string            `json:"endDate,omitempty"`
	Month             time.Month        `json:"month,omitempty"`
	Year              int               `json:"year,omitempty"`
	Status            domain.PlanStatus `json:"status"`
	SubmittedAt       *time.Time        `json:"submittedAt,omitempty"`
	ApprovedAt        *time.Time        `json:"approvedAt,omitempty"`
	ApprovedBy        string            `json:"approvedBy,omitempty"`
	RejectedAt        *time.Time        `json:"rejectedAt,omitempty"`
	RejectedBy        string            `json:"rejectedBy,omitempty"`
	RejectionComments string            `json:"rejectionComments,omitempty"`
	CommentedAt       *time.Time        `json:"commentedAt,omitempty"`
	CommentedBy       string            `json:"commentedBy,omitempty"`
	Comments          string            `json:"comments,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// ToPlanResponse converts domain.TravelPlan to DTO.
func ToPlanResponse(p *domain.TravelPlan) PlanResponse {
	return PlanResponse{
		PlanID:            p.PlanID,
		SalesEngineerID:   p.SalesEngineerID,
		TeamLeaderID:      p.TeamLeaderID,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Month:             p.Month,
		Year:              p.Year,
		Status:            p.Status,
		SubmittedAt:       p.SubmittedAt,
		ApprovedAt:        p.ApprovedAt,
		ApprovedBy:        p.ApprovedBy,
		RejectedAt:        p.RejectedAt,
		RejectedBy:        p.RejectedBy,
		RejectionComments: p.RejectionComments,
		CommentedAt:       p.CommentedAt,
		CommentedBy:       p.CommentedBy,
		Comments:          p.Comments,
		CreatedAt:         p.CreatedAt,
	}
}

// ListPlansResponse wraps a list of plans.
type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// ToListPlansResponse converts a slice of domain.TravelPlan to DTO.
func ToListPlansResponse(ps []domain.TravelPlan) ListPlansResponse {
	list := make([]PlanResponse, len(ps))
	for i, p := range ps {
		list[i] = ToPlanResponse(&p)
	}
	return ListPlansResponse{Plans: list}
}
