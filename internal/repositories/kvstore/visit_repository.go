package kvstore

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

const visitsCollection = "visit_entries"

// VisitRepository stores visit reports.
type VisitRepository struct {
	visits *collection[domain.VisitEntry]
}

var _ portsrepo.VisitRepositoryFacade = (*VisitRepository)(nil)

// NewVisitRepository creates a visit repository backed by store.
func NewVisitRepository(store storage.BlobStore) *VisitRepository {
	return &VisitRepository{visits: newCollection[domain.VisitEntry](store, visitsCollection)}
}

// FindVisitByID retrieves a specific visit report by ID.
func (r *VisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.VisitEntry, error) {
	return r.visits.findOne(ctx, func(v domain.VisitEntry) bool { return v.VisitID == visitID })
}

// ListVisitsByEngineer retrieves all visit reports owned by a sales engineer.
func (r *VisitRepository) ListVisitsByEngineer(ctx context.Context, salesEngineerID string) ([]domain.VisitEntry, error) {
	return r.visits.filter(ctx, func(v domain.VisitEntry) bool { return v.SalesEngineerID == salesEngineerID })
}

// ListVisits retrieves every visit report in the collection.
func (r *VisitRepository) ListVisits(ctx context.Context) ([]domain.VisitEntry, error) {
	return r.visits.load(ctx)
}

// CountVisits returns the number of stored visit reports.
func (r *VisitRepository) CountVisits(ctx context.Context) (int, error) {
	visits, err := r.visits.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(visits), nil
}

// SaveVisit upserts a visit report by ID.
func (r *VisitRepository) SaveVisit(ctx context.Context, visit domain.VisitEntry) error {
	return r.visits.upsert(ctx, func(v domain.VisitEntry) bool { return v.VisitID == visit.VisitID }, visit)
}

// DeleteVisit removes a visit report from the collection.
func (r *VisitRepository) DeleteVisit(ctx context.Context, visitID string) error {
	return r.visits.remove(ctx, func(v domain.VisitEntry) bool { return v.VisitID == visitID })
}
