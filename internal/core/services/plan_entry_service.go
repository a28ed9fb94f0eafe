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
)

// planEntryService implements the per-day entry engine: upserts, check-in/out,
// manual transitions, conversion into visit reports and statistics.
type planEntryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	planRepo  portsrepo.PlanReader
	visitRepo portsrepo.VisitRepositoryFacade
}

// NewPlanEntryService creates a new plan entry service with the provided dependencies.
func NewPlanEntryService(
	entryRepo portsrepo.EntryRepositoryFacade,
	planRepo portsrepo.PlanReader,
	visitRepo portsrepo.VisitRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.PlanEntrySvcFacade {
	return &planEntryService{
		BaseService: BaseService{Users: userRepo},
		entryRepo:   entryRepo,
		planRepo:    planRepo,
		visitRepo:   visitRepo,
	}
}

var _ portssvc.PlanEntrySvcFacade = (*planEntryService)(nil)

// AddEntry inserts or updates (by id) an entry on a plan. Inserts on an approved plan
// are allowed but stamped ad-hoc; submitted and rejected plans refuse edits entirely.
func (s *planEntryService) AddEntry(ctx context.Context, planID string, req dto.SaveEntryRequest, actingUserID string) (*domain.TravelPlanEntry, error) {
	plan, err := s.planRepo.FindPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.SalesEngineerID != actingUserID {
		return nil, apperrors.ErrForbidden
	}
	if !plan.Status.IsEditable() && !plan.Status.AcceptsAdHocEntries() {
		return nil, fmt.Errorf("%w: entries cannot be edited on a %s plan", apperrors.ErrInvalidState, plan.Status)
	}

	ve := apperrors.NewValidationError()
	if req.Date == "" {
		ve.Addf("date", "visit date is required")
	} else if !plan.ContainsDate(req.Date) {
		ve.Addf("date", "must fall within the plan's date range")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		ve.Addf("customerName", "customer name is required")
	}
	if len(req.Photos) > domain.MaxEntryPhotos {
		ve.Addf("photos", "at most %d photos are allowed", domain.MaxEntryPhotos)
	}
	if ve.HasErrors() {
		return nil, ve
	}

	now := time.Now().UTC()
	var entry *domain.TravelPlanEntry
	if req.EntryID != "" {
		existing, err := s.entryRepo.FindEntryByID(ctx, req.EntryID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			if existing.TravelPlanID != planID {
				return nil, apperrors.NewValidationFailedError("id", "entry belongs to a different plan")
			}
			if existing.VisitReportID != "" {
				return nil, fmt.Errorf("%w: entry is converted and immutable from the plan side", apperrors.ErrInvalidState)
			}
			if !plan.Status.IsEditable() {
				return nil, fmt.Errorf("%w: only new ad-hoc entries may be added to a %s plan", apperrors.ErrInvalidState, plan.Status)
			}
			entry = existing
		}
	}

	if entry == nil {
		entry = &domain.TravelPlanEntry{
			EntryID:      uuid.NewString(),
			TravelPlanID: planID,
			Status:       domain.EntryPlanned,
			IsAdHoc:      plan.Status.AcceptsAdHocEntries(),
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				CreatedBy: actingUserID,
			},
		}
	}

	entry.Date = req.Date
	entry.Day = domain.DayLabel(req.Date)
	entry.FromLocation = req.FromLocation
	entry.ToLocation = req.ToLocation
	entry.AreaRegion = req.AreaRegion
	entry.CustomerName = req.CustomerName
	entry.Purpose = req.Purpose
	entry.PlannedCheckIn = req.PlannedCheckIn
	entry.PlannedCheckOut = req.PlannedCheckOut
	entry.Notes = req.Notes
	if req.Status != "" {
		entry.Status = req.Status
	}
	entry.Photos = req.Photos
	if entry.Photos == nil {
		entry.Photos = []string{}
	}
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actingUserID

	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save plan entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Plan entry saved",
		slog.String("entry_id", entry.EntryID),
		slog.String("plan_id", planID),
		slog.String("date", entry.Date))
	return entry, nil
}

// BulkAddEntries applies AddEntry per row. Rows missing the date or customer name
// (or otherwise invalid) are counted as failures and skipped; the batch succeeds as
// long as the plan itself accepts entries.
func (s *planEntryService) BulkAddEntries(ctx context.Context, planID string, rows []dto.SaveEntryRequest, actingUserID string) (dto.BulkAddResult, error) {
	var result dto.BulkAddResult
	for i, row := range rows {
		if _, err := s.AddEntry(ctx, planID, row, actingUserID); err != nil {
			// Permission and plan-state problems fail the whole batch; bad rows don't.
			if errors.Is(err, apperrors.ErrForbidden) || errors.Is(err, apperrors.ErrInvalidState) || errors.Is(err, apperrors.ErrNotFound) {
				return dto.BulkAddResult{}, err
			}
			s.LogDebug(ctx, "Bulk row skipped",
				slog.Int("row", i),
				slog.String("error", err.Error()))
			result.ErrorCount++
			continue
		}
		result.SuccessCount++
	}
	s.LogInfo(ctx, "Bulk entries applied",
		slog.String("plan_id", planID),
		slog.Int("success", result.SuccessCount),
		slog.Int("failed", result.ErrorCount))
	return result, nil
}

// RecordCheckIn stamps the actual check-in time. A planned entry auto-advances to
// in-progress; check-ins are permitted regardless of the owning plan's status.
func (s *planEntryService) RecordCheckIn(ctx context.Context, entryID, timeOfDay, actingUserID string) (*domain.TravelPlanEntry, error) {
	entry, err := s.loadOwnedEntry(ctx, entryID, actingUserID)
	if err != nil {
		return nil, err
	}
	if entry.VisitReportID != "" || entry.Status == domain.EntryConverted {
		return nil, fmt.Errorf("%w: entry is converted and immutable from the plan side", apperrors.ErrInvalidState)
	}

	entry.ActualCheckIn = timeOfDay
	if entry.Status == domain.EntryPlanned {
		next, err := entry.Status.Transition(domain.EntryEventCheckIn)
		if err != nil {
			return nil, err
		}
		entry.Status = next
	}
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = actingUserID

	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save check-in", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Check-in recorded",
		slog.String("entry_id", entryID),
		slog.String("time", timeOfDay))
	return entry, nil
}

// RecordCheckOut stamps the actual check-out time. With a check-in present the entry
// auto-advances to completed. Time inconsistencies (check-out before check-in,
// extreme durations) come back as advisory warnings and never block the transition.
func (s *planEntryService) RecordCheckOut(ctx context.Context, entryID, timeOfDay, actingUserID string) (*domain.TravelPlanEntry, []string, error) {
	entry, err := s.loadOwnedEntry(ctx, entryID, actingUserID)
	if err != nil {
		return nil, nil, err
	}
	if entry.VisitReportID != "" || entry.Status == domain.EntryConverted {
		return nil, nil, fmt.Errorf("%w: entry is converted and immutable from the plan side", apperrors.ErrInvalidState)
	}

	entry.ActualCheckOut = timeOfDay
	var warnings []string
	if entry.ActualCheckIn == "" {
		warnings = append(warnings, "no check-in recorded for this visit")
	} else {
		warnings = domain.ValidateVisitTimes(entry.ActualCheckIn, timeOfDay)
		if entry.Status == domain.EntryPlanned || entry.Status == domain.EntryInProgress {
			entry.Status = domain.EntryCompleted
		}
	}
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = actingUserID

	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save check-out", slog.String("entry_id", entryID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Check-out recorded",
		slog.String("entry_id", entryID),
		slog.String("time", timeOfDay),
		slog.Int("warnings", len(warnings)))
	return entry, warnings, nil
}

// SetEntryStatus applies a manual transition (skipped, rescheduled).
func (s *planEntryService) SetEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, actingUserID string) (*domain.TravelPlanEntry, error) {
	var event domain.EntryEvent
	switch status {
	case domain.EntrySkipped:
		event = domain.EntryEventSkip
	case domain.EntryRescheduled:
		event = domain.EntryEventReschedule
	default:
		return nil, apperrors.NewValidationFailedError("status", "only skipped and rescheduled may be set manually")
	}

	entry, err := s.loadOwnedEntry(ctx, entryID, actingUserID)
	if err != nil {
		return nil, err
	}
	next, err := entry.Status.Transition(event)
	if err != nil {
		return nil, err
	}

	entry.Status = next
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = actingUserID
	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry status", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry status set",
		slog.String("entry_id", entryID),
		slog.String("status", string(next)))
	return entry, nil
}

// ConvertEntryToVisit turns a completed or in-progress entry into a standalone visit
// report. Converting twice is a soft condition: the existing report is returned with
// ErrAlreadyConverted so the caller can redirect instead of failing.
func (s *planEntryService) ConvertEntryToVisit(ctx context.Context, entryID, actingUserID string) (*domain.VisitEntry, error) {
	entry, err := s.loadOwnedEntry(ctx, entryID, actingUserID)
	if err != nil {
		return nil, err
	}

	if entry.VisitReportID != "" {
		existing, findErr := s.visitRepo.FindVisitByID(ctx, entry.VisitReportID)
		if findErr != nil && !errors.Is(findErr, apperrors.ErrNotFound) {
			return nil, findErr
		}
		s.LogInfo(ctx, "Entry already converted, redirecting",
			slog.String("entry_id", entryID),
			slog.String("visit_id", entry.VisitReportID))
		return existing, apperrors.ErrAlreadyConverted
	}

	if _, err := entry.Status.Transition(domain.EntryEventConvert); err != nil {
		return nil, err
	}

	count, err := s.visitRepo.CountVisits(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	remarks := entry.Notes
	if entry.ActualCheckIn != "" {
		remarks = strings.TrimSpace(remarks + "\nCheck-in: " + entry.ActualCheckIn)
	}
	if entry.ActualCheckOut != "" {
		remarks = strings.TrimSpace(remarks + "\nCheck-out: " + entry.ActualCheckOut)
	}

	visit := domain.VisitEntry{
		VisitID:           uuid.NewString(),
		VisitReportID:     domain.NewVisitReportID(actingUserID, now.UnixMilli()),
		SalesEngineerID:   actingUserID,
		SerialNumber:      count + 1,
		DateOfVisit:       entry.Date,
		DayOfVisit:        entry.Day,
		CompanyName:       entry.CustomerName,
		Plant:             entry.AreaRegion,
		CityArea:          entry.AreaRegion,
		State:             entry.ToLocation,
		ContactPersons:    []domain.ContactPerson{},
		PurposeOfMeeting:  entry.Purpose,
		Remarks:           remarks,
		VisitOutcome:      domain.OutcomeSatisfied,
		ConvertStatus:     domain.ConvertPreLead,
		Status:            domain.VisitStatusOpen,
		TravelPlanEntryID: entry.EntryID,
		IsFromPlan:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}
	if err := s.visitRepo.SaveVisit(ctx, visit); err != nil {
		s.LogError(ctx, err, "Failed to save converted visit", slog.String("entry_id", entryID))
		return nil, err
	}

	entry.Status = domain.EntryConverted
	entry.VisitReportID = visit.VisitID
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actingUserID
	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		// No cross-collection transaction; the report exists but the entry still
		// points nowhere. Surface the failure so the caller can retry.
		s.LogError(ctx, err, "Failed to stamp converted entry",
			slog.String("entry_id", entryID),
			slog.String("visit_id", visit.VisitID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry converted to visit report",
		slog.String("entry_id", entryID),
		slog.String("visit_id", visit.VisitID))
	return &visit, nil
}

// ListEntriesByPlan returns all entries of a plan.
func (s *planEntryService) ListEntriesByPlan(ctx context.Context, planID string) ([]domain.TravelPlanEntry, error) {
	entries, err := s.entryRepo.ListEntriesByPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.TravelPlanEntry{}
	}
	return entries, nil
}

// PlanConversionStats aggregates entry progress for a plan.
func (s *planEntryService) PlanConversionStats(ctx context.Context, planID string) (domain.ConversionStats, error) {
	entries, err := s.entryRepo.ListEntriesByPlan(ctx, planID)
	if err != nil {
		return domain.ConversionStats{}, err
	}
	return domain.ComputeConversionStats(entries), nil
}

// EntriesForDate returns every entry across plans for one calendar day.
func (s *planEntryService) EntriesForDate(ctx context.Context, date string) ([]domain.TravelPlanEntry, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, apperrors.NewValidationFailedError("date", "must be a calendar date (YYYY-MM-DD)")
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return domain.EntriesForDate(entries, date), nil
}

// loadOwnedEntry loads an entry and checks the actor owns the enclosing plan.
func (s *planEntryService) loadOwnedEntry(ctx context.Context, entryID, actingUserID string) (*domain.TravelPlanEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	plan, err := s.planRepo.FindPlanByID(ctx, entry.TravelPlanID)
	if err != nil {
		return nil, err
	}
	if plan.SalesEngineerID != actingUserID {
		s.LogDebug(ctx, "Entry action attempted by non-owner",
			slog.String("entry_id", entryID),
			slog.String("user_id", actingUserID))
		return nil, apperrors.ErrForbidden
	}
	return entry, nil
}
