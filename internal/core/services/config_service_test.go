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
)

type ConfigServiceTestSuite struct {
	suite.Suite
	mockConfigRepo *MockConfigRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.ConfigSvcFacade

	adminID string
	admin   *domain.User
}

func (suite *ConfigServiceTestSuite) SetupTest() {
	suite.mockConfigRepo = new(MockConfigRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewConfigService(suite.mockConfigRepo, suite.mockUserRepo)

	suite.adminID = uuid.NewString()
	suite.admin = &domain.User{UserID: suite.adminID, Role: domain.RoleAdmin}
}

func (suite *ConfigServiceTestSuite) TestSetApprovalRequired_AdminOnly() {
	ctx := context.Background()
	engineerID := uuid.NewString()
	engineer := &domain.User{UserID: engineerID, Role: domain.RoleSalesEngineer}

	suite.mockUserRepo.On("FindUserByID", ctx, engineerID).Return(engineer, nil).Once()

	_, err := suite.service.SetApprovalRequired(ctx, false, engineerID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockConfigRepo.AssertNotCalled(suite.T(), "SaveConfig", mock.Anything, mock.Anything)
}

func (suite *ConfigServiceTestSuite) TestSetApprovalRequired_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, suite.adminID).Return(suite.admin, nil).Once()
	suite.mockConfigRepo.On("SaveConfig", ctx, mock.AnythingOfType("domain.SystemConfig")).Return(nil).Once()

	cfg, err := suite.service.SetApprovalRequired(ctx, false, suite.adminID)

	suite.Require().NoError(err)
	suite.False(cfg.ApprovalRequired)
	suite.Equal(suite.adminID, cfg.UpdatedBy)
}

func (suite *ConfigServiceTestSuite) TestGetConfig_PassesThrough() {
	ctx := context.Background()

	suite.mockConfigRepo.On("GetConfig", ctx).Return(domain.DefaultSystemConfig(), nil).Once()

	cfg, err := suite.service.GetConfig(ctx)

	suite.Require().NoError(err)
	suite.True(cfg.ApprovalRequired)
}

func TestConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigServiceTestSuite))
}
