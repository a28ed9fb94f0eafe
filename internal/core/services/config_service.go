package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
)

// configService implements the ConfigSvcFacade interface.
type configService struct {
	BaseService
	configRepo portsrepo.ConfigRepositoryFacade
}

// NewConfigService creates a new config service with the provided dependencies.
func NewConfigService(configRepo portsrepo.ConfigRepositoryFacade, userRepo portsrepo.UserReader) portssvc.ConfigSvcFacade {
	return &configService{
		BaseService: BaseService{Users: userRepo},
		configRepo:  configRepo,
	}
}

var _ portssvc.ConfigSvcFacade = (*configService)(nil)

// GetConfig returns the current configuration.
func (s *configService) GetConfig(ctx context.Context) (domain.SystemConfig, error) {
	return s.configRepo.GetConfig(ctx)
}

// SetApprovalRequired toggles the approval flow; admin only.
func (s *configService) SetApprovalRequired(ctx context.Context, required bool, actingUserID string) (domain.SystemConfig, error) {
	if _, err := s.RequireRole(ctx, actingUserID, domain.RoleAdmin); err != nil {
		return domain.SystemConfig{}, err
	}

	cfg := domain.SystemConfig{
		ApprovalRequired: required,
		UpdatedAt:        time.Now().UTC(),
		UpdatedBy:        actingUserID,
	}
	if err := s.configRepo.SaveConfig(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to save system config")
		return domain.SystemConfig{}, err
	}

	s.LogInfo(ctx, "System config updated",
		slog.Bool("approval_required", required),
		slog.String("updated_by", actingUserID))
	return cfg, nil
}
