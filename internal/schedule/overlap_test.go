package schedule

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/nuanu-wifi/backend/internal/models"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func mustTime(t *testing.T, s string) models.TimeOfDay {
	t.Helper()
	tod, err := models.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return tod
}

func window(t *testing.T, startDate, startTime, endDate, endTime string, active bool) models.ScheduleWindow {
	t.Helper()
	return models.ScheduleWindow{
		ID:        uuid.New(),
		Title:     "test window",
		StartDate: mustDate(t, startDate),
		EndDate:   mustDate(t, endDate),
		StartTime: mustTime(t, startTime),
		EndTime:   mustTime(t, endTime),
		IsActive:  active,
	}
}

func TestValidateRange(t *testing.T) {
	start := mustDate(t, "2024-06-10")
	if err := ValidateRange(start, mustDate(t, "2024-06-01")); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if err := ValidateRange(start, start); err != nil {
		t.Fatalf("same-day range should be valid, got %v", err)
	}
	if err := ValidateRange(start, mustDate(t, "2024-06-20")); err != nil {
		t.Fatalf("forward range should be valid, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b models.ScheduleWindow
		want bool
	}{
		{
			name: "disjoint date ranges",
			a:    window(t, "2024-01-01", "00:00:00", "2024-01-05", "23:59:59", true),
			b:    window(t, "2024-02-01", "00:00:00", "2024-02-05", "23:59:59", true),
			want: false,
		},
		{
			name: "existing contains new, same day",
			a:    window(t, "2024-03-10", "10:00:00", "2024-03-10", "14:00:00", true),
			b:    window(t, "2024-03-10", "09:00:00", "2024-03-10", "15:00:00", true),
			want: true,
		},
		{
			name: "new contains existing across days",
			a:    window(t, "2024-03-01", "00:00:00", "2024-03-31", "23:59:59", true),
			b:    window(t, "2024-03-10", "08:00:00", "2024-03-12", "20:00:00", true),
			want: true,
		},
		{
			name: "boundary touch on the same second still overlaps",
			a:    window(t, "2024-01-01", "00:00:00", "2024-01-05", "23:59:59", true),
			b:    window(t, "2024-01-05", "23:59:59", "2024-01-09", "23:59:59", true),
			want: true,
		},
		{
			name: "adjacent days with non-touching times",
			a:    window(t, "2024-01-01", "00:00:00", "2024-01-05", "12:00:00", true),
			b:    window(t, "2024-01-05", "12:00:01", "2024-01-09", "23:59:59", true),
			want: false,
		},
		{
			name: "zero-length window inside another",
			a:    window(t, "2024-04-01", "12:00:00", "2024-04-01", "12:00:00", true),
			b:    window(t, "2024-04-01", "00:00:00", "2024-04-02", "23:59:59", true),
			want: true,
		},
		{
			name: "boundary times only constrain boundary dates",
			a:    window(t, "2024-05-01", "22:00:00", "2024-05-03", "02:00:00", true),
			b:    window(t, "2024-05-02", "12:00:00", "2024-05-02", "12:30:00", true),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric by construction; both orders must agree.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindConflictSkipsSelf(t *testing.T) {
	w := window(t, "2024-06-01", "00:00:00", "2024-06-10", "23:59:59", true)
	if conflict := FindConflict(w, []models.ScheduleWindow{w}); conflict != nil {
		t.Fatalf("window must not conflict with itself: %v", conflict)
	}
}

func TestFindConflictInactiveExempt(t *testing.T) {
	existing := window(t, "2024-06-01", "00:00:00", "2024-06-10", "23:59:59", true)
	others := []models.ScheduleWindow{existing}

	inactiveCandidate := window(t, "2024-06-05", "00:00:00", "2024-06-15", "23:59:59", false)
	if conflict := FindConflict(inactiveCandidate, others); conflict != nil {
		t.Fatalf("inactive candidate must never conflict: %v", conflict)
	}

	activeCandidate := window(t, "2024-06-05", "00:00:00", "2024-06-15", "23:59:59", true)
	inactiveExisting := window(t, "2024-06-01", "00:00:00", "2024-06-10", "23:59:59", false)
	if conflict := FindConflict(activeCandidate, []models.ScheduleWindow{inactiveExisting}); conflict != nil {
		t.Fatalf("inactive existing window must never block: %v", conflict)
	}
}

func TestFindConflictReportsExistingWindow(t *testing.T) {
	existing := window(t, "2024-06-01", "00:00:00", "2024-06-10", "23:59:59", true)
	existing.Title = "June launch"
	candidate := window(t, "2024-06-05", "00:00:00", "2024-06-15", "23:59:59", true)

	conflict := FindConflict(candidate, []models.ScheduleWindow{existing})
	if conflict == nil {
		t.Fatal("expected a conflict")
	}
	if conflict.ID != existing.ID {
		t.Errorf("conflict id = %s, want %s", conflict.ID, existing.ID)
	}
	if conflict.Title != "June launch" {
		t.Errorf("conflict title = %q", conflict.Title)
	}
	msg := conflict.Error()
	for _, part := range []string{"June launch", "2024-06-01", "2024-06-10"} {
		if !strings.Contains(msg, part) {
			t.Errorf("conflict message %q missing %q", msg, part)
		}
	}
}
