package repositories

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// PlanReader defines read operations for travel plans.
type PlanReader interface {
	// FindPlanByID retrieves a specific plan by ID.
	FindPlanByID(ctx context.Context, planID string) (*domain.TravelPlan, error)

	// ListPlansByEngineer retrieves all plans owned by a sales engineer.
	ListPlansByEngineer(ctx context.Context, salesEngineerID string) ([]domain.TravelPlan, error)

	// ListPlansByTeamLeader retrieves all plans assigned to a team leader.
	ListPlansByTeamLeader(ctx context.Context, teamLeaderID string) ([]domain.TravelPlan, error)

	// ListPlans retrieves every plan in the collection.
	ListPlans(ctx context.Context) ([]domain.TravelPlan, error)
}

// PlanWriter defines write operations for travel plans.
type PlanWriter interface {
	// SavePlan upserts a plan by ID.
	SavePlan(ctx context.Context, plan domain.TravelPlan) error
}

// PlanRepositoryFacade combines all plan-related repository interfaces.
type PlanRepositoryFacade interface {
	PlanReader
	PlanWriter
}
