package schedule

import (
	"sort"
	"time"

	"github.com/nuanu-wifi/backend/internal/models"
)

// ResolveActive returns the active windows whose extent covers now, most
// recently started first (start date, then start time, descending). The
// overlap check at write time should keep this to at most one element,
// but the resolver returns every match so externally edited data degrades
// to "several ads" instead of an error. An empty result means the caller
// should fall back to the default welcome presentation.
func ResolveActive(now time.Time, windows []models.ScheduleWindow) []models.ScheduleWindow {
	matched := make([]models.ScheduleWindow, 0, 1)
	for _, w := range windows {
		if w.IsActive && Contains(w, now) {
			matched = append(matched, w)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.StartDate != b.StartDate {
			return b.StartDate.Before(a.StartDate)
		}
		return b.StartTime.Before(a.StartTime)
	})
	return matched
}

// FirstActive returns the most recently started active window covering
// now, or nil when none matches.
func FirstActive(now time.Time, windows []models.ScheduleWindow) *models.ScheduleWindow {
	matched := ResolveActive(now, windows)
	if len(matched) == 0 {
		return nil
	}
	return &matched[0]
}
