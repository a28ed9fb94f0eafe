package dto

import (
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// --- Travel Plan Entry DTOs ---

// SaveEntryRequest defines data for adding or updating a plan entry. A matching
// entryId updates the existing entry, otherwise a new one is inserted.
type SaveEntryRequest struct {
	EntryID         string             `json:"id"`
	Date            string             `json:"date" binding:"omitempty,datetime=2006-01-02"`
	FromLocation    string             `json:"fromLocation"`
	ToLocation      string             `json:"toLocation"`
	AreaRegion      string             `json:"areaRegion"`
	CustomerName    string             `json:"customerName"`
	Purpose         string             `json:"purpose"`
	PlannedCheckIn  string             `json:"plannedCheckIn" binding:"omitempty,hhmm"`
	PlannedCheckOut string             `json:"plannedCheckOut" binding:"omitempty,hhmm"`
	Status          domain.EntryStatus `json:"status" binding:"omitempty,oneof=planned in-progress completed skipped rescheduled"`
	Photos          []string           `json:"photos"`
	Notes           string             `json:"notes"`
}

// BulkAddEntriesRequest carries a batch of entry rows, e.g. a pasted spreadsheet.
type BulkAddEntriesRequest struct {
	Entries []SaveEntryRequest `json:"entries" binding:"required,min=1"`
}

// BulkAddResult reports how many rows of a batch were applied. Partial failure is
// expected and non-fatal.
type BulkAddResult struct {
	SuccessCount int `json:"successCount"`
	ErrorCount   int `json:"errorCount"`
}

// CheckTimeRequest carries a check-in or check-out wall-clock time.
type CheckTimeRequest struct {
	Time string `json:"time" binding:"required,hhmm"`
}

// SetEntryStatusRequest carries a manual entry status change.
type SetEntryStatusRequest struct {
	Status domain.EntryStatus `json:"status" binding:"required,oneof=skipped rescheduled"`
}

// EntryResponse defines data returned for a plan entry.
type EntryResponse struct {
	EntryID         string             `json:"id"`
	TravelPlanID    string             `json:"travelPlanId"`
	Date            string             `json:"date"`
	Day             string             `json:"day"`
	FromLocation    string             `json:"fromLocation,omitempty"`
	ToLocation      string             `json:"toLocation,omitempty"`
	AreaRegion      string             `json:"areaRegion,omitempty"`
	CustomerName    string             `json:"customerName"`
	Purpose         string             `json:"purpose,omitempty"`
	PlannedCheckIn  string             `json:"plannedCheckIn,omitempty"`
	PlannedCheckOut string             `json:"plannedCheckOut,omitempty"`
	ActualCheckIn   string             `json:"actualCheckIn,omitempty"`
	ActualCheckOut  string             `json:"actualCheckOut,omitempty"`
	Status          domain.EntryStatus `json:"status"`
	VisitReportID   string             `json:"visitReportId,omitempty"`
	Photos          []string           `json:"photos"`
	Notes           string             `json:"notes,omitempty"`
	IsAdHoc         bool               `json:"isAdHoc,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ToEntryResponse converts domain.TravelPlanEntry to DTO.
func ToEntryResponse(e *domain.TravelPlanEntry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		TravelPlanID:    e.TravelPlanID,
		Date:            e.Date,
		Day:             e.Day,
		FromLocation:    e.FromLocation,
		ToLocation:      e.ToLocation,
		AreaRegion:      e.AreaRegion,
		CustomerName:    e.CustomerName,
		Purpose:         e.Purpose,
		PlannedCheckIn:  e.PlannedCheckIn,
		PlannedCheckOut: e.PlannedCheckOut,
		ActualCheckIn:   e.ActualCheckIn,
		ActualCheckOut:  e.ActualCheckOut,
		Status:          e.Status,
		VisitReportID:   e.VisitReportID,
		Photos:          e.Photos,
		Notes:           e.Notes,
		IsAdHoc:         e.IsAdHoc,
		CreatedAt:       e.CreatedAt,
	}
}

// ListEntriesResponse wraps a list of plan entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToListEntriesResponse converts a slice of domain.TravelPlanEntry to DTO.
func ToListEntriesResponse(es []domain.TravelPlanEntry) ListEntriesResponse {
	list := make([]EntryResponse, len(es))
	for i, e := range es {
		list[i] = ToEntryResponse(&e)
	}
	return ListEntriesResponse{Entries: list}
}

// CheckOutResponse returns the updated entry plus any advisory time warnings.
type CheckOutResponse struct {
	Entry    EntryResponse `json:"entry"`
	Warnings []string      `json:"warnings,omitempty"`
}
