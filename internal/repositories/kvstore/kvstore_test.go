package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	"github.com/fieldtrax/sales_visit_app/internal/repositories/kvstore"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), 0)
	require.NoError(t, err)
	return store
}

func TestPlanRepository_UpsertByID(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewPlanRepository(newTestStore(t))

	plan := domain.TravelPlan{PlanID: "p1", SalesEngineerID: "se1", Status: domain.PlanDraft}
	require.NoError(t, repo.SavePlan(ctx, plan))

	plan.Status = domain.PlanSubmitted
	require.NoError(t, repo.SavePlan(ctx, plan))

	plans, err := repo.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, domain.PlanSubmitted, plans[0].Status)

	found, err := repo.FindPlanByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "se1", found.SalesEngineerID)

	_, err = repo.FindPlanByID(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPlanRepository_FiltersByOwnerAndLeader(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewPlanRepository(newTestStore(t))

	require.NoError(t, repo.SavePlan(ctx, domain.TravelPlan{PlanID: "p1", SalesEngineerID: "se1", TeamLeaderID: "tl1"}))
	require.NoError(t, repo.SavePlan(ctx, domain.TravelPlan{PlanID: "p2", SalesEngineerID: "se2", TeamLeaderID: "tl1"}))
	require.NoError(t, repo.SavePlan(ctx, domain.TravelPlan{PlanID: "p3", SalesEngineerID: "se1", TeamLeaderID: "tl2"}))

	own, err := repo.ListPlansByEngineer(ctx, "se1")
	require.NoError(t, err)
	assert.Len(t, own, 2)

	team, err := repo.ListPlansByTeamLeader(ctx, "tl1")
	require.NoError(t, err)
	assert.Len(t, team, 2)
}

func TestVisitRepository_CountAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewVisitRepository(newTestStore(t))

	require.NoError(t, repo.SaveVisit(ctx, domain.VisitEntry{VisitID: "v1", SalesEngineerID: "se1"}))
	require.NoError(t, repo.SaveVisit(ctx, domain.VisitEntry{VisitID: "v2", SalesEngineerID: "se2"}))

	count, err := repo.CountVisits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.DeleteVisit(ctx, "v1"))
	count, err = repo.CountVisits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = repo.FindVisitByID(ctx, "v1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting an unknown id is a no-op.
	require.NoError(t, repo.DeleteVisit(ctx, "ghost"))
}

func TestUserRepository_CurrentUserSingleton(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewUserRepository(newTestStore(t))

	_, err := repo.FindCurrentUser(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	asha := domain.User{UserID: "u1", Name: "Asha", Role: domain.RoleSalesEngineer}
	ravi := domain.User{UserID: "u2", Name: "Ravi", Role: domain.RoleTeamLeader}
	require.NoError(t, repo.SetCurrentUser(ctx, asha))
	require.NoError(t, repo.SetCurrentUser(ctx, ravi))

	current, err := repo.FindCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", current.UserID)
}

func TestConfigRepository_DefaultWhenUnset(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewConfigRepository(newTestStore(t))

	cfg, err := repo.GetConfig(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.ApprovalRequired)

	cfg.ApprovalRequired = false
	require.NoError(t, repo.SaveConfig(ctx, cfg))

	cfg, err = repo.GetConfig(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.ApprovalRequired)
}

func TestCorruptCollectionResetsToEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Write("travel_plans", []byte("{not json")))

	repo := kvstore.NewPlanRepository(store)
	plans, err := repo.ListPlans(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)

	// The store heals on the next write.
	require.NoError(t, repo.SavePlan(ctx, domain.TravelPlan{PlanID: "p1"}))
	plans, err = repo.ListPlans(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestCapacityMapsToStorageFull(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir(), 16)
	require.NoError(t, err)

	repo := kvstore.NewVisitRepository(store)
	err = repo.SaveVisit(ctx, domain.VisitEntry{VisitID: "v1", CompanyName: "A very long company name that will not fit"})
	assert.ErrorIs(t, err, apperrors.ErrStorageFull)
}

func TestRepositoriesShareOneStore(t *testing.T) {
	ctx := context.Background()
	repos := kvstore.NewRepositoryContainer(newTestStore(t))

	require.NoError(t, repos.PlanRepository.SavePlan(ctx, domain.TravelPlan{PlanID: "p1"}))
	require.NoError(t, repos.EntryRepository.SaveEntry(ctx, domain.TravelPlanEntry{EntryID: "e1", TravelPlanID: "p1"}))

	entries, err := repos.EntryRepository.ListEntriesByPlan(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
