package models

import "time"

// HousingRecord is an account's housing assignment for one academic
// year. At most one record exists per (account, start year); later
// submissions replace it in place only when they are complete.
type HousingRecord struct {
	AccountID string    `json:"-"`
	House     string    `json:"house"`
	Room      string    `json:"room"`
	Address   string    `json:"address"`
	OffCampus bool      `json:"off_campus"`
	StartYear int       `json:"start"`
	EndYear   int       `json:"end"`
	CreatedAt time.Time `json:"-"`
}

// IsComplete reports whether the record carries enough information to
// replace previously stored data: either an explicit off-campus
// assignment, or a fully described on-campus one.
func (h *HousingRecord) IsComplete() bool {
	if h.OffCampus {
		return true
	}
	return h.House != "" && h.Room != "" && h.Address != ""
}

// CurrentAcademicYear returns the start year of the academic year a
// reader cares about today. The current-year view rolls over in June,
// after room selection for the next year has closed.
func CurrentAcademicYear(now time.Time) int {
	if now.Month() > time.May {
		return now.Year()
	}
	return now.Year() - 1
}
