package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindCurrentUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetCurrentUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock PlanRepository ---

type MockPlanRepository struct {
	mock.Mock
}

var _ portsrepo.PlanRepositoryFacade = (*MockPlanRepository)(nil)

func (m *MockPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.TravelPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPlan), args.Error(1)
}

func (m *MockPlanRepository) ListPlansByEngineer(ctx context.Context, salesEngineerID string) ([]domain.TravelPlan, error) {
	args := m.Called(ctx, salesEngineerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelPlan), args.Error(1)
}

func (m *MockPlanRepository) ListPlansByTeamLeader(ctx context.Context, teamLeaderID string) ([]domain.TravelPlan, error) {
	args := m.Called(ctx, teamLeaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelPlan), args.Error(1)
}

func (m *MockPlanRepository) ListPlans(ctx context.Context) ([]domain.TravelPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelPlan), args.Error(1)
}

func (m *MockPlanRepository) SavePlan(ctx context.Context, plan domain.TravelPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// --- Mock EntryRepository ---

type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TravelPlanEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelPlanEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesByPlan(ctx context.Context, planID string) ([]domain.TravelPlanEntry, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelPlanEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context) ([]domain.TravelPlanEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelPlanEntry), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.TravelPlanEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock VisitRepository ---

type MockVisitRepository struct {
	mock.Mock
}

var _ portsrepo.VisitRepositoryFacade = (*MockVisitRepository)(nil)

func (m *MockVisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.VisitEntry, error) {
	args := m.Called(ctx, visitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisitEntry), args.Error(1)
}

func (m *MockVisitRepository) ListVisitsByEngineer(ctx context.Context, salesEngineerID string) ([]domain.VisitEntry, error) {
	args := m.Called(ctx, salesEngineerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisitEntry), args.Error(1)
}

func (m *MockVisitRepository) ListVisits(ctx context.Context) ([]domain.VisitEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisitEntry), args.Error(1)
}

func (m *MockVisitRepository) CountVisits(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockVisitRepository) SaveVisit(ctx context.Context, visit domain.VisitEntry) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) DeleteVisit(ctx context.Context, visitID string) error {
	args := m.Called(ctx, visitID)
	return args.Error(0)
}

// --- Mock ConfigRepository ---

type MockConfigRepository struct {
	mock.Mock
}

var _ portsrepo.ConfigRepositoryFacade = (*MockConfigRepository)(nil)

func (m *MockConfigRepository) GetConfig(ctx context.Context) (domain.SystemConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SystemConfig), args.Error(1)
}

func (m *MockConfigRepository) SaveConfig(ctx context.Context, cfg domain.SystemConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}
