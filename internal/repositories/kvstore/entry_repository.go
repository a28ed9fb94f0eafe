package kvstore

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

const entriesCollection = "travel_plan_entries"

// EntryRepository stores travel plan entries.
type EntryRepository struct {
	entries *collection[domain.TravelPlanEntry]
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

// NewEntryRepository creates an entry repository backed by store.
func NewEntryRepository(store storage.BlobStore) *EntryRepository {
	return &EntryRepository{entries: newCollection[domain.TravelPlanEntry](store, entriesCollection)}
}

// FindEntryByID retrieves a specific entry by ID.
func (r *EntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TravelPlanEntry, error) {
	return r.entries.findOne(ctx, func(e domain.TravelPlanEntry) bool { return e.EntryID == entryID })
}

// ListEntriesByPlan retrieves all entries belonging to a plan.
func (r *EntryRepository) ListEntriesByPlan(ctx context.Context, planID string) ([]domain.TravelPlanEntry, error) {
	return r.entries.filter(ctx, func(e domain.TravelPlanEntry) bool { return e.TravelPlanID == planID })
}

// ListEntries retrieves every entry in the collection.
func (r *EntryRepository) ListEntries(ctx context.Context) ([]domain.TravelPlanEntry, error) {
	return r.entries.load(ctx)
}

// SaveEntry upserts an entry by ID.
func (r *EntryRepository) SaveEntry(ctx context.Context, entry domain.TravelPlanEntry) error {
	return r.entries.upsert(ctx, func(e domain.TravelPlanEntry) bool { return e.EntryID == entry.EntryID }, entry)
}
