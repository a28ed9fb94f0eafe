package kvstore

import (
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

// RepositoryContainer bundles every repository over one shared blob store.
type RepositoryContainer struct {
	UserRepository   portsrepo.UserRepositoryFacade
	PlanRepository   portsrepo.PlanRepositoryFacade
	EntryRepository  portsrepo.EntryRepositoryFacade
	VisitRepository  portsrepo.VisitRepositoryFacade
	ConfigRepository portsrepo.ConfigRepositoryFacade
}

// NewRepositoryContainer wires all repositories onto store.
func NewRepositoryContainer(store storage.BlobStore) *RepositoryContainer {
	return &RepositoryContainer{
		UserRepository:   NewUserRepository(store),
		PlanRepository:   NewPlanRepository(store),
		EntryRepository:  NewEntryRepository(store),
		VisitRepository:  NewVisitRepository(store),
		ConfigRepository: NewConfigRepository(store),
	}
}
