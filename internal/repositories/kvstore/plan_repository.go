package kvstore

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

const plansCollection = "travel_plans"

// PlanRepository stores travel plans.
type PlanRepository struct {
	plans *collection[domain.TravelPlan]
}

var _ portsrepo.PlanRepositoryFacade = (*PlanRepository)(nil)

// NewPlanRepository creates a plan repository backed by store.
func NewPlanRepository(store storage.BlobStore) *PlanRepository {
	return &PlanRepository{plans: newCollection[domain.TravelPlan](store, plansCollection)}
}

// FindPlanByID retrieves a specific plan by ID.
func (r *PlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.TravelPlan, error) {
	return r.plans.findOne(ctx, func(p domain.TravelPlan) bool { return p.PlanID == planID })
}

// ListPlansByEngineer retrieves all plans owned by a sales engineer.
func (r *PlanRepository) ListPlansByEngineer(ctx context.Context, salesEngineerID string) ([]domain.TravelPlan, error) {
	return r.plans.filter(ctx, func(p domain.TravelPlan) bool { return p.SalesEngineerID == salesEngineerID })
}

// ListPlansByTeamLeader retrieves all plans assigned to a team leader.
func (r *PlanRepository) ListPlansByTeamLeader(ctx context.Context, teamLeaderID string) ([]domain.TravelPlan, error) {
	return r.plans.filter(ctx, func(p domain.TravelPlan) bool { return p.TeamLeaderID == teamLeaderID })
}

// ListPlans retrieves every plan in the collection.
func (r *PlanRepository) ListPlans(ctx context.Context) ([]domain.TravelPlan, error) {
	return r.plans.load(ctx)
}

// SavePlan upserts a plan by ID.
func (r *PlanRepository) SavePlan(ctx context.Context, plan domain.TravelPlan) error {
	return r.plans.upsert(ctx, func(p domain.TravelPlan) bool { return p.PlanID == plan.PlanID }, plan)
}
