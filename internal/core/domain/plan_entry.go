package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
)

// EntryStatus is the per-day state of a planned visit inside a travel plan.
type EntryStatus string

const (
	EntryPlanned     EntryStatus = "planned"
	EntryInProgress  EntryStatus = "in-progress"
	EntryCompleted   EntryStatus = "completed"
	EntryConverted   EntryStatus = "converted"
	EntrySkipped     EntryStatus = "skipped"
	EntryRescheduled EntryStatus = "rescheduled"
)

// Valid reports whether s is one of the known entry statuses.
func (s EntryStatus) Valid() bool {
	switch s {
	case EntryPlanned, EntryInProgress, EntryCompleted, EntryConverted, EntrySkipped, EntryRescheduled:
		return true
	}
	return false
}

// EntryEvent is a transition trigger on a plan entry.
type EntryEvent string

const (
	EntryEventCheckIn    EntryEvent = "check-in"
	EntryEventCheckOut   EntryEvent = "check-out"
	EntryEventConvert    EntryEvent = "convert"
	EntryEventSkip       EntryEvent = "skip"
	EntryEventReschedule EntryEvent = "reschedule"
)

var entryTransitions = map[EntryStatus]map[EntryEvent]EntryStatus{
	EntryPlanned: {
		EntryEventCheckIn:    EntryInProgress,
		EntryEventSkip:       EntrySkipped,
		EntryEventReschedule: EntryRescheduled,
	},
	EntryInProgress: {
		EntryEventCheckOut:   EntryCompleted,
		EntryEventConvert:    EntryConverted,
		EntryEventSkip:       EntrySkipped,
		EntryEventReschedule: EntryRescheduled,
	},
	EntryCompleted: {
		EntryEventConvert: EntryConverted,
	},
}

// Transition returns the status reached from s via event, or ErrInvalidState when the
// table does not permit it.
func (s EntryStatus) Transition(event EntryEvent) (EntryStatus, error) {
	if next, ok := entryTransitions[s][event]; ok {
		return next, nil
	}
	return s, fmt.Errorf("%w: cannot %s a %s entry", apperrors.ErrInvalidState, event, s)
}

// MaxEntryPhotos caps attachment references per entry.
const MaxEntryPhotos = 10

// TravelPlanEntry is one planned or actual customer visit within a travel plan, for
// one calendar date.
type TravelPlanEntry struct {
	EntryID      string `json:"id"`
	TravelPlanID string `json:"travelPlanId"`
	Date         string `json:"date"`
	Day          string `json:"day"` // weekday label derived from Date
	FromLocation string `json:"fromLocation,omitempty"`
	ToLocation   string `json:"toLocation,omitempty"`
	AreaRegion   string `json:"areaRegion,omitempty"`
	CustomerName string `json:"customerName"`
	Purpose      string `json:"purpose,omitempty"`

	PlannedCheckIn  string `json:"plannedCheckIn,omitempty"`
	PlannedCheckOut string `json:"plannedCheckOut,omitempty"`
	ActualCheckIn   string `json:"actualCheckIn,omitempty"`
	ActualCheckOut  string `json:"actualCheckOut,omitempty"`

	Status        EntryStatus `json:"status"`
	VisitReportID string      `json:"visitReportId,omitempty"` // set once converted
	Photos        []string    `json:"photos"`
	Notes         string      `json:"notes,omitempty"`
	IsAdHoc       bool        `json:"isAdHoc,omitempty"` // added after the owning plan was approved

	AuditFields
}

// ConversionStats aggregates entry progress for a plan.
type ConversionStats struct {
	Total          int `json:"total"`
	Converted      int `json:"converted"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	ConversionRate int `json:"conversionRate"` // rounded percentage
}

// ComputeConversionStats aggregates over entries. An entry counts as converted when
// its status says so or when a visit report has been stamped on it.
func ComputeConversionStats(entries []TravelPlanEntry) ConversionStats {
	stats := ConversionStats{Total: len(entries)}
	for _, e := range entries {
		switch {
		case e.Status == EntryConverted || e.VisitReportID != "":
			stats.Converted++
		case e.Status == EntryCompleted:
			stats.Completed++
		case e.Status == EntryPlanned || e.Status == EntryInProgress:
			stats.Pending++
		}
	}
	if stats.Total > 0 {
		stats.ConversionRate = int(math.Round(100 * float64(stats.Converted) / float64(stats.Total)))
	}
	return stats
}

// EntriesForDate filters entries by exact date-string match, for calendar views.
func EntriesForDate(entries []TravelPlanEntry, date string) []TravelPlanEntry {
	matched := make([]TravelPlanEntry, 0)
	for _, e := range entries {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched
}

const (
	minVisitDuration = 5 * time.Minute
	maxVisitDuration = 24 * time.Hour
)

// ValidateVisitTimes checks check-in/check-out consistency. Violations are advisory:
// they are returned as warnings and never block the status transition.
func ValidateVisitTimes(checkIn, checkOut string) []string {
	var warnings []string
	in, errIn := time.Parse(TimeOfDayLayout, checkIn)
	out, errOut := time.Parse(TimeOfDayLayout, checkOut)
	if errIn != nil || errOut != nil {
		if errIn != nil && checkIn != "" {
			warnings = append(warnings, "check-in time is not in HH:MM format")
		}
		if errOut != nil && checkOut != "" {
			warnings = append(warnings, "check-out time is not in HH:MM format")
		}
		return warnings
	}
	duration := out.Sub(in)
	if duration <= 0 {
		warnings = append(warnings, "check-out time is not after check-in time")
		return warnings
	}
	if duration <= minVisitDuration {
		warnings = append(warnings, fmt.Sprintf("visit duration %s is suspiciously short", duration))
	}
	if duration > maxVisitDuration {
		warnings = append(warnings, fmt.Sprintf("visit duration %s exceeds 24 hours", duration))
	}
	return warnings
}
