package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
	"github.com/fieldtrax/sales_visit_app/internal/utils"
)

// visitService implements the visit report lifecycle.
type visitService struct {
	BaseService
	visitRepo portsrepo.VisitRepositoryFacade
}

// NewVisitService creates a new visit service with the provided dependencies.
func NewVisitService(visitRepo portsrepo.VisitRepositoryFacade, userRepo portsrepo.UserReader) portssvc.VisitSvcFacade {
	return &visitService{
		BaseService: BaseService{Users: userRepo},
		visitRepo:   visitRepo,
	}
}

var _ portssvc.VisitSvcFacade = (*visitService)(nil)

// validateVisitRequest collects every field violation so the caller can render all of
// them at once.
func validateVisitRequest(req *dto.SaveVisitRequest) *apperrors.ValidationError {
	ve := apperrors.NewValidationError()
	if strings.TrimSpace(req.CompanyName) == "" {
		ve.Addf("companyName", "company name is required")
	}
	if strings.TrimSpace(req.State) == "" {
		ve.Addf("state", "state is required")
	}
	if strings.TrimSpace(req.CityArea) == "" {
		ve.Addf("cityArea", "city/area is required")
	}
	if strings.TrimSpace(req.PurposeOfMeeting) == "" {
		ve.Addf("purposeOfMeeting", "purpose of meeting is required")
	}
	if req.VisitOutcome == "" {
		ve.Addf("visitOutcome", "visit outcome is required")
	} else if !req.VisitOutcome.Valid() {
		ve.Addf("visitOutcome", "must be one of Satisfied, Dissatisfied, Need for Improvement")
	}
	if req.ConvertStatus == "" {
		ve.Addf("convertStatus", "pipeline stage is required")
	} else if !req.ConvertStatus.Valid() {
		ve.Addf("convertStatus", "must be one of PreLead, Enquiry, Proposal, Negotiation, Closed")
	}
	for i, c := range req.ContactPersons {
		field := func(name string) string { return fmt.Sprintf("contactPersons[%d].%s", i, name) }
		if strings.TrimSpace(c.Name) == "" {
			ve.Addf(field("name"), "contact name is required")
		}
		if c.Email != "" && !utils.IsValidEmail(c.Email) {
			ve.Addf(field("email"), "invalid email address")
		}
		if c.Mobile != "" && !utils.IsValidMobile(c.Mobile) {
			ve.Addf(field("mobile"), "invalid mobile number")
		}
	}
	if normalized, ok := utils.NormalizeSaleValue(req.PotentialSaleValue); !ok {
		ve.Addf("potentialSaleValue", "must be a decimal amount")
	} else {
		req.PotentialSaleValue = normalized
	}
	return ve
}

// applyVisitRequest copies request content onto a visit, regenerating contact ids
// only where absent.
func applyVisitRequest(visit *domain.VisitEntry, req dto.SaveVisitRequest) {
	contacts := make([]domain.ContactPerson, len(req.ContactPersons))
	for i, c := range req.ContactPersons {
		id := c.ContactID
		if id == "" {
			id = uuid.NewString()
		}
		contacts[i] = domain.ContactPerson{
			ContactID:   id,
			Name:        c.Name,
			Designation: c.Designation,
			Mobile:      c.Mobile,
			Email:       c.Email,
		}
	}

	visit.DateOfVisit = req.DateOfVisit
	if visit.DateOfVisit == "" {
		visit.DateOfVisit = domain.Today()
	}
	visit.DayOfVisit = domain.DayLabel(visit.DateOfVisit)
	visit.CompanyName = req.CompanyName
	visit.Plant = req.Plant
	visit.CityArea = req.CityArea
	visit.State = req.State
	visit.ContactPersons = contacts
	visit.PurposeOfMeeting = req.PurposeOfMeeting
	visit.DiscussionPoints = req.DiscussionPoints
	visit.ProductServices = req.ProductServices
	visit.ActionStep = req.ActionStep
	visit.Remarks = req.Remarks
	visit.PotentialSaleValue = req.PotentialSaleValue
	visit.VisitOutcome = req.VisitOutcome
	visit.ConvertStatus = req.ConvertStatus
	visit.Result = req.Result
	visit.ClosureDate = req.ClosureDate
}

// CreateVisitEntry validates and stores a new visit report for the acting sales
// engineer, assigning the next serial number.
func (s *visitService) CreateVisitEntry(ctx context.Context, req dto.SaveVisitRequest, actingUserID string) (*domain.VisitEntry, error) {
	if _, err := s.RequireRole(ctx, actingUserID, domain.RoleSalesEngineer); err != nil {
		return nil, err
	}
	if ve := validateVisitRequest(&req); ve.HasErrors() {
		return nil, ve
	}

	count, err := s.visitRepo.CountVisits(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	visit := domain.VisitEntry{
		VisitID:         uuid.NewString(),
		VisitReportID:   domain.NewVisitReportID(actingUserID, now.UnixMilli()),
		SalesEngineerID: actingUserID,
		SerialNumber:    count + 1,
		Status:          domain.VisitStatusOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}
	applyVisitRequest(&visit, req)

	if err := s.visitRepo.SaveVisit(ctx, visit); err != nil {
		s.LogError(ctx, err, "Failed to save visit report", slog.String("visit_id", visit.VisitID))
		return nil, err
	}

	s.LogInfo(ctx, "Visit report created",
		slog.String("visit_id", visit.VisitID),
		slog.Int("serial", visit.SerialNumber))
	return &visit, nil
}

// UpdateVisitEntry replaces a report's content; owning sales engineer only. Identity
// fields (ids, serial, owner, link to plan entry) are preserved.
func (s *visitService) UpdateVisitEntry(ctx context.Context, visitID string, req dto.SaveVisitRequest, actingUserID string) (*domain.VisitEntry, error) {
	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.SalesEngineerID != actingUserID {
		return nil, apperrors.ErrForbidden
	}
	if ve := validateVisitRequest(&req); ve.HasErrors() {
		return nil, ve
	}

	applyVisitRequest(visit, req)
	visit.LastUpdatedAt = time.Now().UTC()
	visit.LastUpdatedBy = actingUserID

	if err := s.visitRepo.SaveVisit(ctx, *visit); err != nil {
		s.LogError(ctx, err, "Failed to update visit report", slog.String("visit_id", visitID))
		return nil, err
	}

	s.LogInfo(ctx, "Visit report updated", slog.String("visit_id", visitID))
	return visit, nil
}

// SetApprovalStatus records a team leader's review decision. Only the status field
// is mutated.
func (s *visitService) SetApprovalStatus(ctx context.Context, visitID, status, actingUserID string) (*domain.VisitEntry, error) {
	if status != domain.VisitStatusApproved && status != domain.VisitStatusRejected {
		return nil, apperrors.NewValidationFailedError("status", "must be Approved or Rejected")
	}
	if _, err := s.RequireRole(ctx, actingUserID, domain.RoleTeamLeader); err != nil {
		return nil, err
	}

	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}

	visit.Status = status
	visit.LastUpdatedAt = time.Now().UTC()
	visit.LastUpdatedBy = actingUserID

	if err := s.visitRepo.SaveVisit(ctx, *visit); err != nil {
		s.LogError(ctx, err, "Failed to save visit review", slog.String("visit_id", visitID))
		return nil, err
	}

	s.LogInfo(ctx, "Visit report reviewed",
		slog.String("visit_id", visitID),
		slog.String("status", status),
		slog.String("reviewed_by", actingUserID))
	return visit, nil
}

// DuplicateVisitEntry clones a report with fresh identity: new ids, recomputed
// serial, today's date and regenerated contact ids. Owning sales engineer only.
func (s *visitService) DuplicateVisitEntry(ctx context.Context, visitID, actingUserID string) (*domain.VisitEntry, error) {
	source, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if source.SalesEngineerID != actingUserID {
		return nil, apperrors.ErrForbidden
	}

	count, err := s.visitRepo.CountVisits(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	clone := *source
	clone.VisitID = uuid.NewString()
	clone.VisitReportID = domain.NewVisitReportID(actingUserID, now.UnixMilli())
	clone.SerialNumber = count + 1
	clone.DateOfVisit = domain.Today()
	clone.DayOfVisit = domain.DayLabel(clone.DateOfVisit)
	clone.TravelPlanEntryID = ""
	clone.IsFromPlan = false
	clone.ContactPersons = make([]domain.ContactPerson, len(source.ContactPersons))
	for i, c := range source.ContactPersons {
		c.ContactID = uuid.NewString()
		clone.ContactPersons[i] = c
	}
	clone.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actingUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actingUserID,
	}

	if err := s.visitRepo.SaveVisit(ctx, clone); err != nil {
		s.LogError(ctx, err, "Failed to save duplicated visit", slog.String("source_id", visitID))
		return nil, err
	}

	s.LogInfo(ctx, "Visit report duplicated",
		slog.String("source_id", visitID),
		slog.String("visit_id", clone.VisitID))
	return &clone, nil
}

// DeleteVisitEntry hard-removes a report; owning sales engineer only.
func (s *visitService) DeleteVisitEntry(ctx context.Context, visitID, actingUserID string) error {
	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return err
	}
	if visit.SalesEngineerID != actingUserID {
		return apperrors.ErrForbidden
	}

	if err := s.visitRepo.DeleteVisit(ctx, visitID); err != nil {
		s.LogError(ctx, err, "Failed to delete visit report", slog.String("visit_id", visitID))
		return err
	}

	s.LogInfo(ctx, "Visit report deleted", slog.String("visit_id", visitID))
	return nil
}

// GetVisitEntry retrieves a report by ID.
func (s *visitService) GetVisitEntry(ctx context.Context, visitID string) (*domain.VisitEntry, error) {
	return s.visitRepo.FindVisitByID(ctx, visitID)
}

// ListVisitEntries returns the reports visible to the acting user: own reports for a
// sales engineer, everything for team leaders and admins.
func (s *visitService) ListVisitEntries(ctx context.Context, actingUserID string) ([]domain.VisitEntry, error) {
	user, err := s.Users.FindUserByID(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}

	var visits []domain.VisitEntry
	if user.Role == domain.RoleSalesEngineer {
		visits, err = s.visitRepo.ListVisitsByEngineer(ctx, actingUserID)
	} else {
		visits, err = s.visitRepo.ListVisits(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list visit reports", slog.String("user_id", actingUserID))
		return nil, err
	}
	if visits == nil {
		visits = []domain.VisitEntry{}
	}
	return visits, nil
}
