package services

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// ConfigSvcFacade defines system configuration operations.
type ConfigSvcFacade interface {
	// GetConfig returns the current configuration (default when never set).
	GetConfig(ctx context.Context) (domain.SystemConfig, error)

	// SetApprovalRequired toggles the approval flow; admin only.
	SetApprovalRequired(ctx context.Context, required bool, actingUserID string) (domain.SystemConfig, error)
}
