package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

func TestEntryStatus_Transition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.EntryStatus
		event   domain.EntryEvent
		want    domain.EntryStatus
		wantErr bool
	}{
		{name: "check-in starts visit", from: domain.EntryPlanned, event: domain.EntryEventCheckIn, want: domain.EntryInProgress},
		{name: "check-out completes visit", from: domain.EntryInProgress, event: domain.EntryEventCheckOut, want: domain.EntryCompleted},
		{name: "convert from completed", from: domain.EntryCompleted, event: domain.EntryEventConvert, want: domain.EntryConverted},
		{name: "convert from in-progress", from: domain.EntryInProgress, event: domain.EntryEventConvert, want: domain.EntryConverted},
		{name: "skip planned", from: domain.EntryPlanned, event: domain.EntryEventSkip, want: domain.EntrySkipped},
		{name: "reschedule in-progress", from: domain.EntryInProgress, event: domain.EntryEventReschedule, want: domain.EntryRescheduled},
		{name: "convert planned rejected", from: domain.EntryPlanned, event: domain.EntryEventConvert, wantErr: true},
		{name: "check-in twice rejected", from: domain.EntryInProgress, event: domain.EntryEventCheckIn, wantErr: true},
		{name: "converted is terminal", from: domain.EntryConverted, event: domain.EntryEventConvert, wantErr: true},
		{name: "skipped is terminal", from: domain.EntrySkipped, event: domain.EntryEventCheckIn, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Transition(tt.event)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidState)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeConversionStats(t *testing.T) {
	entries := []domain.TravelPlanEntry{
		{Status: domain.EntryConverted},
		{Status: domain.EntryCompleted, VisitReportID: "vr-1"}, // stamped report counts as converted
		{Status: domain.EntryCompleted},
		{Status: domain.EntryPlanned},
		{Status: domain.EntryInProgress},
		{Status: domain.EntrySkipped},
	}

	stats := domain.ComputeConversionStats(entries)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Converted)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 33, stats.ConversionRate)
}

func TestComputeConversionStats_Empty(t *testing.T) {
	stats := domain.ComputeConversionStats(nil)
	assert.Equal(t, domain.ConversionStats{}, stats)
}

func TestEntriesForDate(t *testing.T) {
	entries := []domain.TravelPlanEntry{
		{EntryID: "a", Date: "2026-09-03"},
		{EntryID: "b", Date: "2026-09-04"},
		{EntryID: "c", Date: "2026-09-03"},
	}

	matched := domain.EntriesForDate(entries, "2026-09-03")
	assert.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].EntryID)
	assert.Equal(t, "c", matched[1].EntryID)

	assert.Empty(t, domain.EntriesForDate(entries, "2026-09-05"))
}

func TestValidateVisitTimes(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		warnings int
	}{
		{name: "normal visit", checkIn: "09:00", checkOut: "10:30", warnings: 0},
		{name: "check-out before check-in", checkIn: "14:00", checkOut: "13:00", warnings: 1},
		{name: "check-out equals check-in", checkIn: "09:00", checkOut: "09:00", warnings: 1},
		{name: "suspiciously short", checkIn: "09:00", checkOut: "09:04", warnings: 1},
		{name: "bad check-in format", checkIn: "9am", checkOut: "10:00", warnings: 1},
		{name: "both bad formats", checkIn: "morning", checkOut: "noon", warnings: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, domain.ValidateVisitTimes(tt.checkIn, tt.checkOut), tt.warnings)
		})
	}
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Monday", domain.DayLabel("2026-08-31"))
	assert.Equal(t, "Saturday", domain.DayLabel("2026-09-05"))
	assert.Equal(t, "", domain.DayLabel("garbage"))
}
