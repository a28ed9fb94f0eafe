package repositories

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// ConfigRepositoryFacade persists the system configuration singleton.
type ConfigRepositoryFacade interface {
	// GetConfig returns the stored configuration, or the default when none exists.
	GetConfig(ctx context.Context) (domain.SystemConfig, error)

	// SaveConfig replaces the stored configuration.
	SaveConfig(ctx context.Context, cfg domain.SystemConfig) error
}
