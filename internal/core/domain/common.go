package domain

import "time"

// DateLayout is the calendar-day format used throughout the system. Dates are kept as
// plain strings so stored data round-trips byte-for-byte and calendar lookups stay
// exact-match.
const DateLayout = "2006-01-02"

// TimeOfDayLayout is the wall-clock format for planned/actual check-in and check-out.
const TimeOfDayLayout = "15:04"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// ParseDate parses a calendar-day string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DayLabel derives the weekday name ("Monday", ...) for a calendar-day string.
// Returns an empty string when the date does not parse.
func DayLabel(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// Today returns the current calendar day as a date string.
func Today() string {
	return time.Now().Format(DateLayout)
}
