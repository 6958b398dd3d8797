package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nuanu-wifi/backend/internal/models"
)

// ConflictError reports that a candidate window intersects an existing
// active window. It carries enough identity for an admin-facing message.
type ConflictError struct {
	ID        uuid.UUID
	Title     string
	StartDate models.Date
	EndDate   models.Date
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"a schedule already exists for this date/time range: %q (%s to %s)",
		e.Title, e.StartDate, e.EndDate,
	)
}

// Overlaps reports whether the extents of a and b share at least one
// instant. Two closed intervals [s1,e1] and [s2,e2] intersect iff
// s1 <= e2 && s2 <= e1; this single inequality covers starts-during,
// ends-during, contains and contained-by alike. Active flags are not
// consulted here.
func Overlaps(a, b models.ScheduleWindow) bool {
	return !a.StartsAt().After(b.EndsAt()) && !b.StartsAt().After(a.EndsAt())
}

// FindConflict returns a ConflictError for the first active window in
// existing whose extent intersects the candidate's, or nil when the write
// may proceed. Inactive windows are exempt on both sides, and the
// candidate's own row is skipped so updates never conflict with
// themselves.
func FindConflict(candidate models.ScheduleWindow, existing []models.ScheduleWindow) *ConflictError {
	if !candidate.IsActive {
		return nil
	}
	for _, w := range existing {
		if !w.IsActive || w.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, w) {
			return &ConflictError{
				ID:        w.ID,
				Title:     w.Title,
				StartDate: w.StartDate,
				EndDate:   w.EndDate,
			}
		}
	}
	return nil
}
