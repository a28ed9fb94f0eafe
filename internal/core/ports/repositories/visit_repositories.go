package repositories

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// VisitReader defines read operations for visit reports.
type VisitReader interface {
	// FindVisitByID retrieves a specific visit report by ID.
	FindVisitByID(ctx context.Context, visitID string) (*domain.VisitEntry, error)

	// ListVisitsByEngineer retrieves all visit reports owned by a sales engineer.
	ListVisitsByEngineer(ctx context.Context, salesEngineerID string) ([]domain.VisitEntry, error)

	// ListVisits retrieves every visit report in the collection.
	ListVisits(ctx context.Context) ([]domain.VisitEntry, error)

	// CountVisits returns the number of stored visit reports, used for serial numbering.
	CountVisits(ctx context.Context) (int, error)
}

// VisitWriter defines write operations for visit reports.
type VisitWriter interface {
	// SaveVisit upserts a visit report by ID.
	SaveVisit(ctx context.Context, visit domain.VisitEntry) error

	// DeleteVisit removes a visit report from the collection.
	DeleteVisit(ctx context.Context, visitID string) error
}

// VisitRepositoryFacade combines all visit-related repository interfaces.
type VisitRepositoryFacade interface {
	VisitReader
	VisitWriter
}
