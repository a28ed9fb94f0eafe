package services

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

// VisitSvcFacade defines the visit report lifecycle operations.
type VisitSvcFacade interface {
	// CreateVisitEntry validates and stores a new report; all field violations are
	// returned together in one ValidationError.
	CreateVisitEntry(ctx context.Context, req dto.SaveVisitRequest, actingUserID string) (*domain.VisitEntry, error)

	// UpdateVisitEntry replaces a report's content; owning engineer only.
	UpdateVisitEntry(ctx context.Context, visitID string, req dto.SaveVisitRequest, actingUserID string) (*domain.VisitEntry, error)

	// SetApprovalStatus records a team leader's review decision; only the status
	// field is mutated.
	SetApprovalStatus(ctx context.Context, visitID, status, actingUserID string) (*domain.VisitEntry, error)

	// DuplicateVisitEntry clones a report with fresh identity, serial, date and
	// contact ids.
	DuplicateVisitEntry(ctx context.Context, visitID, actingUserID string) (*domain.VisitEntry, error)

	// DeleteVisitEntry removes a report; owning engineer only.
	DeleteVisitEntry(ctx context.Context, visitID, actingUserID string) error

	// GetVisitEntry retrieves a report by ID.
	GetVisitEntry(ctx context.Context, visitID string) (*domain.VisitEntry, error)

	// ListVisitEntries returns the reports visible to the acting user: own reports
	// for a sales engineer, everything for team leaders and admins.
	ListVisitEntries(ctx context.Context, actingUserID string) ([]domain.VisitEntry, error)
}
