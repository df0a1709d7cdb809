package config

import (
	"testing"
	"time"
)

func TestGMTOffset(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"standard time", time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), "05:00"},
		{"daylight saving", time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC), "04:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GMTOffset(loc, tt.at); got != tt.want {
				t.Errorf("GMTOffset = %s, want %s", got, tt.want)
			}
		})
	}
}
