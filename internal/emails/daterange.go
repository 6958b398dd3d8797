package emails

import (
	"time"

	"github.com/nuanu-wifi/backend/internal/models"
)

// Date filter presets accepted by the dashboard listing and export.
const (
	FilterToday     = "today"
	FilterYesterday = "yesterday"
	FilterLast7     = "last7"
	FilterLast30    = "last30"
	FilterThisMonth = "thisMonth"
	FilterPrevMonth = "prevMonth"
	FilterCustom    = "custom"
)

// DateRange is a resolved created_at filter. All means no filtering.
type DateRange struct {
	Start time.Time
	End   time.Time
	Label string
	All   bool
}

// ComputeDateRange resolves a filter preset (or a custom start/end pair in
// YYYY-MM-DD) into a concrete range relative to today. Unknown presets and
// unparsable custom bounds fall back to "All time".
func ComputeDateRange(filter, startStr, endStr string, today time.Time) DateRange {
	y, m, _ := today.Date()
	dayStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	dayEnd := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
	}
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, today.Location())

	switch filter {
	case FilterToday:
		return DateRange{Start: dayStart(today), End: dayEnd(today), Label: "Today"}
	case FilterYesterday:
		yday := today.AddDate(0, 0, -1)
		return DateRange{Start: dayStart(yday), End: dayEnd(yday), Label: "Yesterday"}
	case FilterLast7:
		return DateRange{Start: dayStart(today.AddDate(0, 0, -6)), End: dayEnd(today), Label: "Last 7 days"}
	case FilterLast30:
		return DateRange{Start: dayStart(today.AddDate(0, 0, -29)), End: dayEnd(today), Label: "Last 30 days"}
	case FilterThisMonth:
		return DateRange{Start: monthStart, End: dayEnd(monthStart.AddDate(0, 1, -1)), Label: "This month"}
	case FilterPrevMonth:
		prevStart := monthStart.AddDate(0, -1, 0)
		return DateRange{Start: prevStart, End: dayEnd(monthStart.AddDate(0, 0, -1)), Label: "Previous month"}
	}

	if startStr != "" && endStr != "" {
		s, errS := time.ParseInLocation(models.DateLayout, startStr, today.Location())
		e, errE := time.ParseInLocation(models.DateLayout, endStr, today.Location())
		if errS == nil && errE == nil {
			return DateRange{Start: dayStart(s), End: dayEnd(e), Label: startStr + " to " + endStr}
		}
	}

	return DateRange{Label: "All time", All: true}
}
