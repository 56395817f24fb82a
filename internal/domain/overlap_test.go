package domain

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 10, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aMinutes int
		bStart   time.Time
		bMinutes int
		want     bool
	}{
		{"identical intervals", at(10, 0), 30, at(10, 0), 30, true},
		{"partial overlap", at(10, 0), 30, at(10, 15), 30, true},
		{"contained interval", at(10, 0), 60, at(10, 15), 15, true},
		{"touching edges do not overlap", at(10, 0), 30, at(10, 30), 30, false},
		{"touching edges reversed", at(10, 30), 30, at(10, 0), 30, false},
		{"disjoint intervals", at(9, 0), 30, at(11, 0), 30, false},
		{"one minute overlap", at(10, 0), 31, at(10, 30), 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aMinutes, tt.bStart, tt.bMinutes); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Предикат симметричен
			if got := Overlaps(tt.bStart, tt.bMinutes, tt.aStart, tt.aMinutes); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsAny_SkipsCancelled(t *testing.T) {
	appointments := []*Appointment{
		{StartTime: at(10, 0), DurationMinutes: 30, Status: StatusCancelled},
	}

	if OverlapsAny(at(10, 0), 30, appointments) {
		t.Error("cancelled appointment must not occupy its interval")
	}

	appointments[0].Status = StatusScheduled
	if !OverlapsAny(at(10, 0), 30, appointments) {
		t.Error("scheduled appointment must occupy its interval")
	}
}
