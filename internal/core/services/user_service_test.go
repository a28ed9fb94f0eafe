package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/core/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade

	leaderID string
	leader   *domain.User
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)

	suite.leaderID = uuid.NewString()
	suite.leader = &domain.User{UserID: suite.leaderID, Name: "Ravi", Role: domain.RoleTeamLeader}
}

func (suite *UserServiceTestSuite) TestSelectPersona_CreatesEngineer() {
	ctx := context.Background()
	req := dto.SelectPersonaRequest{Name: "Asha", Role: domain.RoleSalesEngineer, TeamLeaderID: suite.leaderID}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.leaderID).Return(suite.leader, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockUserRepo.On("SetCurrentUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.SelectPersona(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.RoleSalesEngineer, user.Role)
	suite.Equal(suite.leaderID, user.TeamLeaderID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSelectPersona_EngineerNeedsLeader() {
	ctx := context.Background()
	req := dto.SelectPersonaRequest{Name: "Asha", Role: domain.RoleSalesEngineer}

	_, err := suite.service.SelectPersona(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestSelectPersona_LeaderRefMustBeLeader() {
	ctx := context.Background()
	notALeader := &domain.User{UserID: suite.leaderID, Role: domain.RoleSalesEngineer}
	req := dto.SelectPersonaRequest{Name: "Asha", Role: domain.RoleSalesEngineer, TeamLeaderID: suite.leaderID}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.leaderID).Return(notALeader, nil).Once()

	_, err := suite.service.SelectPersona(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestSelectPersona_BadRole() {
	ctx := context.Background()
	req := dto.SelectPersonaRequest{Name: "Asha", Role: "superuser"}

	_, err := suite.service.SelectPersona(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestSelectPersona_ReuseByID() {
	ctx := context.Background()
	existingID := uuid.NewString()
	existing := &domain.User{UserID: existingID, Name: "Asha", Role: domain.RoleSalesEngineer}
	req := dto.SelectPersonaRequest{UserID: existingID}

	suite.mockUserRepo.On("FindUserByID", ctx, existingID).Return(existing, nil).Once()
	suite.mockUserRepo.On("SetCurrentUser", ctx, *existing).Return(nil).Once()

	user, err := suite.service.SelectPersona(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(existingID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestSelectPersona_UnknownIDNotFound() {
	ctx := context.Background()
	req := dto.SelectPersonaRequest{UserID: "ghost"}

	suite.mockUserRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SelectPersona(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
