package services

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

// PlanSvcFacade defines the travel plan lifecycle operations.
type PlanSvcFacade interface {
	// CreatePlan creates a draft plan for the acting sales engineer.
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest, creatorUserID string) (*domain.TravelPlan, error)

	// SubmitPlan moves a draft to submitted, or straight to approved when the
	// system-wide approval requirement is off.
	SubmitPlan(ctx context.Context, planID, actingUserID string) (*domain.TravelPlan, error)

	// ApprovePlan moves a submitted plan to approved; assigned team leader only.
	ApprovePlan(ctx context.Context, planID, actingUserID string) (*domain.TravelPlan, error)

	// RejectPlan moves a submitted plan to rejected with a mandatory reason.
	RejectPlan(ctx context.Context, planID, actingUserID, reason string) (*domain.TravelPlan, error)

	// CommentOnPlan annotates a plan without changing its status; team leader only.
	CommentOnPlan(ctx context.Context, planID, actingUserID, comment string) (*domain.TravelPlan, error)

	// GetPlan retrieves a plan by ID.
	GetPlan(ctx context.Context, planID string) (*domain.TravelPlan, error)

	// ListPlansForUser returns the plans visible to the acting user: own plans for a
	// sales engineer, the team's plans for a team leader, everything for an admin.
	ListPlansForUser(ctx context.Context, actingUserID string) ([]domain.TravelPlan, error)
}
