package models

import (
	"testing"
	"time"
)

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name   string
		record HousingRecord
		want   bool
	}{
		{"off campus", HousingRecord{OffCampus: true}, true},
		{"full assignment", HousingRecord{House: "Harrison", Room: "403", Address: "3910 Irving St"}, true},
		{"missing address", HousingRecord{House: "Harrison", Room: "403"}, false},
		{"missing room", HousingRecord{House: "Harrison", Address: "3910 Irving St"}, false},
		{"empty", HousingRecord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.IsComplete(); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentAcademicYear(t *testing.T) {
	tests := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC), 2021},
		{time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), 2021},
		{time.Date(2021, 5, 31, 0, 0, 0, 0, time.UTC), 2020},
		{time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC), 2020},
	}

	for _, tt := range tests {
		if got := CurrentAcademicYear(tt.now); got != tt.want {
			t.Errorf("CurrentAcademicYear(%v) = %d, want %d", tt.now, got, tt.want)
		}
	}
}
