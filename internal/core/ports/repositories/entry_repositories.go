package repositories

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// EntryReader defines read operations for travel plan entries.
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by ID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.TravelPlanEntry, error)

	// ListEntriesByPlan retrieves all entries belonging to a plan.
	ListEntriesByPlan(ctx context.Context, planID string) ([]domain.TravelPlanEntry, error)

	// ListEntries retrieves every entry in the collection.
	ListEntries(ctx context.Context) ([]domain.TravelPlanEntry, error)
}

// EntryWriter defines write operations for travel plan entries.
type EntryWriter interface {
	// SaveEntry upserts an entry by ID.
	SaveEntry(ctx context.Context, entry domain.TravelPlanEntry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
