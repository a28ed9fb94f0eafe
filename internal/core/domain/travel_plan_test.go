package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

func TestPlanStatus_Transition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.PlanStatus
		event   domain.PlanEvent
		want    domain.PlanStatus
		wantErr bool
	}{
		{name: "draft submit", from: domain.PlanDraft, event: domain.PlanEventSubmit, want: domain.PlanSubmitted},
		{name: "submitted approve", from: domain.PlanSubmitted, event: domain.PlanEventApprove, want: domain.PlanApproved},
		{name: "submitted reject", from: domain.PlanSubmitted, event: domain.PlanEventReject, want: domain.PlanRejected},
		{name: "draft approve rejected", from: domain.PlanDraft, event: domain.PlanEventApprove, wantErr: true},
		{name: "approved submit rejected", from: domain.PlanApproved, event: domain.PlanEventSubmit, wantErr: true},
		{name: "rejected is terminal", from: domain.PlanRejected, event: domain.PlanEventSubmit, wantErr: true},
		{name: "double approve rejected", from: domain.PlanApproved, event: domain.PlanEventApprove, wantErr: true},
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

func TestPlanStatus_IsOpen(t *testing.T) {
	assert.True(t, domain.PlanDraft.IsOpen())
	assert.True(t, domain.PlanSubmitted.IsOpen())
	assert.True(t, domain.PlanApproved.IsOpen())
	assert.True(t, domain.PlanActive.IsOpen())
	assert.False(t, domain.PlanRejected.IsOpen())
	assert.False(t, domain.PlanCompleted.IsOpen())
}

func TestMonthRange(t *testing.T) {
	start, end := domain.MonthRange(2026, time.February)
	assert.Equal(t, "2026-02-01", start)
	assert.Equal(t, "2026-02-28", end)

	start, end = domain.MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)

	start, end = domain.MonthRange(2026, time.December)
	assert.Equal(t, "2026-12-01", start)
	assert.Equal(t, "2026-12-31", end)
}

func TestTravelPlan_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    domain.TravelPlan
		b    domain.TravelPlan
		want bool
	}{
		{
			name: "disjoint ranges",
			a:    domain.TravelPlan{StartDate: "2026-09-01", EndDate: "2026-09-10"},
			b:    domain.TravelPlan{StartDate: "2026-09-11", EndDate: "2026-09-20"},
			want: false,
		},
		{
			name: "shared boundary day overlaps",
			a:    domain.TravelPlan{StartDate: "2026-09-01", EndDate: "2026-09-10"},
			b:    domain.TravelPlan{StartDate: "2026-09-10", EndDate: "2026-09-20"},
			want: true,
		},
		{
			name: "contained range overlaps",
			a:    domain.TravelPlan{StartDate: "2026-09-01", EndDate: "2026-09-30"},
			b:    domain.TravelPlan{StartDate: "2026-09-10", EndDate: "2026-09-12"},
			want: true,
		},
		{
			name: "explicit range vs legacy month",
			a:    domain.TravelPlan{StartDate: "2026-09-25", EndDate: "2026-10-05"},
			b:    domain.TravelPlan{Month: time.October, Year: 2026},
			want: true,
		},
		{
			name: "plan without range never overlaps",
			a:    domain.TravelPlan{},
			b:    domain.TravelPlan{StartDate: "2026-09-01", EndDate: "2026-09-30"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(&tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(&tt.a))
		})
	}
}

func TestTravelPlan_ContainsDate(t *testing.T) {
	plan := domain.TravelPlan{StartDate: "2026-09-01", EndDate: "2026-09-30"}

	assert.True(t, plan.ContainsDate("2026-09-01"))
	assert.True(t, plan.ContainsDate("2026-09-30"))
	assert.False(t, plan.ContainsDate("2026-08-31"))
	assert.False(t, plan.ContainsDate("2026-10-01"))
	assert.False(t, plan.ContainsDate("not-a-date"))

	// A plan with no resolvable range accepts any date.
	open := domain.TravelPlan{}
	assert.True(t, open.ContainsDate("2026-01-01"))
}
