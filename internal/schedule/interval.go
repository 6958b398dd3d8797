// Package schedule implements the advertisement windowing engine: interval
// validation, overlap detection for admin writes, resolution of the windows
// covering an instant, and materialization of stored image references.
package schedule

import (
	"errors"
	"time"

	"github.com/nuanu-wifi/backend/internal/models"
)

// ErrInvalidRange is returned when a window's end date precedes its start date.
var ErrInvalidRange = errors.New("end date must not be before start date")

// ValidateRange checks the date-range invariant of a window.
func ValidateRange(start, end models.Date) error {
	if end.Before(start) {
		return ErrInvalidRange
	}
	return nil
}

// Contains reports whether the window's extent covers the instant now.
// The extent is the closed interval from (StartDate, StartTime) to
// (EndDate, EndTime): boundary times constrain only the boundary dates,
// days in between are covered in full.
func Contains(w models.ScheduleWindow, now time.Time) bool {
	return !now.Before(w.StartsAt()) && !now.After(w.EndsAt())
}
