package services

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

// PlanEntrySvcFacade defines the per-day entry engine operations.
type PlanEntrySvcFacade interface {
	// AddEntry inserts or updates (by id) an entry on a plan.
	AddEntry(ctx context.Context, planID string, req dto.SaveEntryRequest, actingUserID string) (*domain.TravelPlanEntry, error)

	// BulkAddEntries applies AddEntry per row; bad rows are counted, not fatal.
	BulkAddEntries(ctx context.Context, planID string, rows []dto.SaveEntryRequest, actingUserID string) (dto.BulkAddResult, error)

	// RecordCheckIn stamps the actual check-in time; a planned entry auto-advances
	// to in-progress.
	RecordCheckIn(ctx context.Context, entryID, timeOfDay, actingUserID string) (*domain.TravelPlanEntry, error)

	// RecordCheckOut stamps the actual check-out time; with a check-in present the
	// entry auto-advances to completed. Time inconsistencies come back as advisory
	// warnings, never as errors.
	RecordCheckOut(ctx context.Context, entryID, timeOfDay, actingUserID string) (*domain.TravelPlanEntry, []string, error)

	// SetEntryStatus applies a manual transition (skipped, rescheduled).
	SetEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, actingUserID string) (*domain.TravelPlanEntry, error)

	// ConvertEntryToVisit turns a completed or in-progress entry into a visit
	// report. When the entry was already converted, the existing report is returned
	// together with ErrAlreadyConverted.
	ConvertEntryToVisit(ctx context.Context, entryID, actingUserID string) (*domain.VisitEntry, error)

	// ListEntriesByPlan returns all entries of a plan.
	ListEntriesByPlan(ctx context.Context, planID string) ([]domain.TravelPlanEntry, error)

	// PlanConversionStats aggregates entry progress for a plan.
	PlanConversionStats(ctx context.Context, planID string) (domain.ConversionStats, error)

	// EntriesForDate returns every entry across plans for one calendar day.
	EntriesForDate(ctx context.Context, date string) ([]domain.TravelPlanEntry, error)
}
