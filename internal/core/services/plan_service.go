package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

// planService implements the travel plan lifecycle engine.
type planService struct {
	BaseService
	planRepo   portsrepo.PlanRepositoryFacade
	configRepo portsrepo.ConfigRepositoryFacade
}

// NewPlanService creates a new plan service with the provided dependencies.
func NewPlanService(planRepo portsrepo.PlanRepositoryFacade, userRepo portsrepo.UserReader, configRepo portsrepo.ConfigRepositoryFacade) portssvc.PlanSvcFacade {
	return &planService{
		BaseService: BaseService{Users: userRepo},
		planRepo:    planRepo,
		configRepo:  configRepo,
	}
}

var _ portssvc.PlanSvcFacade = (*planService)(nil)

// CreatePlan creates a draft plan for the acting sales engineer. The requested range
// must be well-formed, not in the past, and must not intersect another open plan of
// the same engineer.
func (s *planService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest, creatorUserID string) (*domain.TravelPlan, error) {
	creator, err := s.RequireRole(ctx, creatorUserID, domain.RoleSalesEngineer)
	if err != nil {
		return nil, err
	}

	startDate, endDate := req.StartDate, req.EndDate
	if startDate == "" || endDate == "" {
		if req.Month == 0 || req.Year == 0 {
			return nil, apperrors.NewValidationFailedError("startDate", "either a date range or month and year is required")
		}
		startDate, endDate = domain.MonthRange(req.Year, time.Month(req.Month))
	}

	start, err := domain.ParseDate(startDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("startDate", "must be a calendar date (YYYY-MM-DD)")
	}
	end, err := domain.ParseDate(endDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("endDate", "must be a calendar date (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationFailedError("endDate", "must not be before startDate")
	}
	today, _ := domain.ParseDate(domain.Today())
	if start.Before(today) {
		return nil, apperrors.NewValidationFailedError("startDate", "must not be in the past")
	}

	candidate := domain.TravelPlan{
		StartDate: startDate,
		EndDate:   endDate,
	}
	existing, err := s.planRepo.ListPlansByEngineer(ctx, creatorUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list plans for overlap check", slog.String("user_id", creatorUserID))
		return nil, err
	}
	for i := range existing {
		if existing[i].Status.IsOpen() && candidate.Overlaps(&existing[i]) {
			return nil, apperrors.NewValidationFailedError("startDate",
				"date range overlaps plan "+existing[i].PlanID+" ("+string(existing[i].Status)+")")
		}
	}

	now := time.Now().UTC()
	plan := domain.TravelPlan{
		PlanID:          uuid.NewString(),
		SalesEngineerID: creatorUserID,
		TeamLeaderID:    creator.TeamLeaderID,
		StartDate:       startDate,
		EndDate:         endDate,
		Month:           time.Month(req.Month),
		Year:            req.Year,
		Status:          domain.PlanDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.planRepo.SavePlan(ctx, plan); err != nil {
		s.LogError(ctx, err, "Failed to save plan", slog.String("plan_id", plan.PlanID))
		return nil, err
	}

	s.LogInfo(ctx, "Travel plan created",
		slog.String("plan_id", plan.PlanID),
		slog.String("sales_engineer_id", creatorUserID),
		slog.String("start_date", startDate),
		slog.String("end_date", endDate))
	return &plan, nil
}

// SubmitPlan moves a draft to submitted, or directly to approved when the system does
// not require team-leader sign-off. Owning sales engineer only.
func (s *planService) SubmitPlan(ctx context.Context, planID, actingUserID string) (*domain.TravelPlan, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.SalesEngineerID != actingUserID {
		s.LogDebug(ctx, "Submit attempted by non-owner",
			slog.String("plan_id", planID),
			slog.String("user_id", actingUserID))
		return nil, apperrors.ErrForbidden
	}
	if _, err := plan.Status.Transition(domain.PlanEventSubmit); err != nil {
		return nil, err
	}

	cfg, err := s.configRepo.GetConfig(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read system config", slog.String("plan_id", planID))
		return nil, err
	}

	now := time.Now().UTC()
	if cfg.ApprovalRequired {
		plan.Status = domain.PlanSubmitted
		plan.SubmittedAt = &now
	} else {
		plan.Status = domain.PlanApproved
		plan.ApprovedAt = &now
	}
	plan.LastUpdatedAt = now
	plan.LastUpdatedBy = actingUserID

	if err := s.planRepo.SavePlan(ctx, *plan); err != nil {
		s.LogError(ctx, err, "Failed to save submitted plan", slog.String("plan_id", planID))
		return nil, err
	}

	s.LogInfo(ctx, "Travel plan submitted",
		slog.String("plan_id", planID),
		slog.String("status", string(plan.Status)))
	return plan, nil
}

// ApprovePlan moves a submitted plan to approved. Assigned team leader only.
func (s *planService) ApprovePlan(ctx context.Context, planID, actingUserID string) (*domain.TravelPlan, error) {
	plan, err := s.authorizeReview(ctx, planID, actingUserID)
	if err != nil {
		return nil, err
	}
	next, err := plan.Status.Transition(domain.PlanEventApprove)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan.Status = next
	plan.ApprovedAt = &now
	plan.ApprovedBy = actingUserID
	plan.LastUpdatedAt = now
	plan.LastUpdatedBy = actingUserID

	if err := s.planRepo.SavePlan(ctx, *plan); err != nil {
		s.LogError(ctx, err, "Failed to save approved plan", slog.String("plan_id", planID))
		return nil, err
	}

	s.LogInfo(ctx, "Travel plan approved",
		slog.String("plan_id", planID),
		slog.String("approved_by", actingUserID))
	return plan, nil
}

// RejectPlan moves a submitted plan to rejected with a mandatory reason. Assigned
// team leader only.
func (s *planService) RejectPlan(ctx context.Context, planID, actingUserID, reason string) (*domain.TravelPlan, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.NewValidationFailedError("reason", "rejection reason is required")
	}
	plan, err := s.authorizeReview(ctx, planID, actingUserID)
	if err != nil {
		return nil, err
	}
	next, err := plan.Status.Transition(domain.PlanEventReject)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan.Status = next
	plan.RejectedAt = &now
	plan.RejectedBy = actingUserID
	plan.RejectionComments = reason
	plan.LastUpdatedAt = now
	plan.LastUpdatedBy = actingUserID

	if err := s.planRepo.SavePlan(ctx, *plan); err != nil {
		s.LogError(ctx, err, "Failed to save rejected plan", slog.String("plan_id", planID))
		return nil, err
	}

	s.LogInfo(ctx, "Travel plan rejected",
		slog.String("plan_id", planID),
		slog.String("rejected_by", actingUserID))
	return plan, nil
}

// CommentOnPlan annotates a plan without changing its status. Assigned team leader
// only; the comment must not be empty.
func (s *planService) CommentOnPlan(ctx context.Context, planID, actingUserID, comment string) (*domain.TravelPlan, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, apperrors.NewValidationFailedError("comment", "comment is required")
	}
	plan, err := s.authorizeReview(ctx, planID, actingUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan.Comments = comment
	plan.CommentedAt = &now
	plan.CommentedBy = actingUserID
	plan.LastUpdatedAt = now
	plan.LastUpdatedBy = actingUserID

	if err := s.planRepo.SavePlan(ctx, *plan); err != nil {
		s.LogError(ctx, err, "Failed to save plan comment", slog.String("plan_id", planID))
		return nil, err
	}

	s.LogInfo(ctx, "Travel plan commented",
		slog.String("plan_id", planID),
		slog.String("commented_by", actingUserID))
	return plan, nil
}

// GetPlan retrieves a plan by ID.
func (s *planService) GetPlan(ctx context.Context, planID string) (*domain.TravelPlan, error) {
	return s.planRepo.FindPlanByID(ctx, planID)
}

// ListPlansForUser returns the plans visible to the acting user.
func (s *planService) ListPlansForUser(ctx context.Context, actingUserID string) ([]domain.TravelPlan, error) {
	user, err := s.Users.FindUserByID(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}

	var plans []domain.TravelPlan
	switch user.Role {
	case domain.RoleSalesEngineer:
		plans, err = s.planRepo.ListPlansByEngineer(ctx, actingUserID)
	case domain.RoleTeamLeader:
		plans, err = s.planRepo.ListPlansByTeamLeader(ctx, actingUserID)
	default:
		plans, err = s.planRepo.ListPlans(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list plans", slog.String("user_id", actingUserID))
		return nil, err
	}
	if plans == nil {
		plans = []domain.TravelPlan{}
	}
	return plans, nil
}

// authorizeReview loads a plan and checks the actor is its assigned team leader.
func (s *planService) authorizeReview(ctx context.Context, planID, actingUserID string) (*domain.TravelPlan, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if _, err := s.RequireRole(ctx, actingUserID, domain.RoleTeamLeader); err != nil {
		return nil, err
	}
	if plan.TeamLeaderID != actingUserID {
		s.LogDebug(ctx, "Review attempted by non-assigned team leader",
			slog.String("plan_id", planID),
			slog.String("user_id", actingUserID))
		return nil, apperrors.ErrForbidden
	}
	return plan, nil
}
