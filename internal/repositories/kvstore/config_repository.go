package kvstore

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

const configCollection = "system_config"

// ConfigRepository stores the system configuration singleton.
type ConfigRepository struct {
	configs *collection[domain.SystemConfig]
}

var _ portsrepo.ConfigRepositoryFacade = (*ConfigRepository)(nil)

// NewConfigRepository creates a config repository backed by store.
func NewConfigRepository(store storage.BlobStore) *ConfigRepository {
	return &ConfigRepository{configs: newCollection[domain.SystemConfig](store, configCollection)}
}

// GetConfig returns the stored configuration, or the default when none exists.
func (r *ConfigRepository) GetConfig(ctx context.Context) (domain.SystemConfig, error) {
	configs, err := r.configs.load(ctx)
	if err != nil {
		return domain.SystemConfig{}, err
	}
	if len(configs) == 0 {
		return domain.DefaultSystemConfig(), nil
	}
	return configs[0], nil
}

// SaveConfig replaces the stored configuration.
func (r *ConfigRepository) SaveConfig(ctx context.Context, cfg domain.SystemConfig) error {
	r.configs.mu.Lock()
	defer r.configs.mu.Unlock()
	return r.configs.replace(ctx, []domain.SystemConfig{cfg})
}
