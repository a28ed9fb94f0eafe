package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Users: userRepo},
		userRepo:    userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// SelectPersona creates or reuses a user and persists it as the current persona.
// Sales engineer personas must name their owning team leader.
func (s *userService) SelectPersona(ctx context.Context, req dto.SelectPersonaRequest) (*domain.User, error) {
	if req.UserID != "" {
		user, err := s.userRepo.FindUserByID(ctx, req.UserID)
		if err != nil {
			s.LogError(ctx, err, "Failed to find persona user", slog.String("user_id", req.UserID))
			return nil, err
		}
		if err := s.userRepo.SetCurrentUser(ctx, *user); err != nil {
			s.LogError(ctx, err, "Failed to persist current user", slog.String("user_id", user.UserID))
			return nil, err
		}
		s.LogInfo(ctx, "Persona selected", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
		return user, nil
	}

	if !req.Role.Valid() {
		return nil, apperrors.NewValidationFailedError("role", "must be one of sales_engineer, team_leader, admin")
	}
	if req.Role == domain.RoleSalesEngineer && req.TeamLeaderID == "" {
		return nil, apperrors.NewValidationFailedError("teamLeaderId", "sales engineers need an owning team leader")
	}
	if req.TeamLeaderID != "" {
		leader, err := s.userRepo.FindUserByID(ctx, req.TeamLeaderID)
		if err != nil {
			return nil, fmt.Errorf("invalid team leader: %w", err)
		}
		if leader.Role != domain.RoleTeamLeader {
			return nil, apperrors.NewValidationFailedError("teamLeaderId", "referenced user is not a team leader")
		}
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Role:         req.Role,
		TeamLeaderID: req.TeamLeaderID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "persona-selection",
			LastUpdatedAt: now,
			LastUpdatedBy: "persona-selection",
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save persona user", slog.String("user_id", user.UserID))
		return nil, err
	}
	if err := s.userRepo.SetCurrentUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to persist current user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Persona created and selected",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

// GetCurrentUser returns the persisted persona.
func (s *userService) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	return s.userRepo.FindCurrentUser(ctx)
}

// FindUserByID retrieves a user by ID.
func (s *userService) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
