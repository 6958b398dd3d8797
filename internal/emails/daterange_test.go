package emails

import (
	"testing"
	"time"
)

func TestComputeDateRange(t *testing.T) {
	// A mid-month Thursday to make month arithmetic visible.
	today := time.Date(2024, 6, 13, 15, 42, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    string
		start     string
		end       string
		wantAll   bool
		wantStart string
		wantEnd   string
		wantLabel string
	}{
		{
			name: "today", filter: FilterToday,
			wantStart: "2024-06-13", wantEnd: "2024-06-13", wantLabel: "Today",
		},
		{
			name: "yesterday", filter: FilterYesterday,
			wantStart: "2024-06-12", wantEnd: "2024-06-12", wantLabel: "Yesterday",
		},
		{
			name: "last 7 days include today", filter: FilterLast7,
			wantStart: "2024-06-07", wantEnd: "2024-06-13", wantLabel: "Last 7 days",
		},
		{
			name: "last 30 days include today", filter: FilterLast30,
			wantStart: "2024-05-15", wantEnd: "2024-06-13", wantLabel: "Last 30 days",
		},
		{
			name: "this month", filter: FilterThisMonth,
			wantStart: "2024-06-01", wantEnd: "2024-06-30", wantLabel: "This month",
		},
		{
			name: "previous month", filter: FilterPrevMonth,
			wantStart: "2024-05-01", wantEnd: "2024-05-31", wantLabel: "Previous month",
		},
		{
			name: "custom range", filter: FilterCustom, start: "2024-01-10", end: "2024-02-20",
			wantStart: "2024-01-10", wantEnd: "2024-02-20", wantLabel: "2024-01-10 to 2024-02-20",
		},
		{
			name: "no filter means all time", wantAll: true, wantLabel: "All time",
		},
		{
			name: "bad custom dates fall back to all time",
			filter: FilterCustom, start: "10/01/2024", end: "2024-02-20",
			wantAll: true, wantLabel: "All time",
		},
		{
			name: "unknown preset falls back to all time", filter: "lastCentury",
			wantAll: true, wantLabel: "All time",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDateRange(tt.filter, tt.start, tt.end, today)
			if got.All != tt.wantAll {
				t.Fatalf("All = %v, want %v", got.All, tt.wantAll)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
			if tt.wantAll {
				return
			}
			if s := got.Start.Format("2006-01-02"); s != tt.wantStart {
				t.Errorf("Start = %s, want %s", s, tt.wantStart)
			}
			if e := got.End.Format("2006-01-02"); e != tt.wantEnd {
				t.Errorf("End = %s, want %s", e, tt.wantEnd)
			}
			if h, m, s := got.Start.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("Start not at midnight: %v", got.Start)
			}
			if h, m, s := got.End.Clock(); h != 23 || m != 59 || s != 59 {
				t.Errorf("End not at end of day: %v", got.End)
			}
		})
	}
}

func TestComputeDateRangeMonthBoundaries(t *testing.T) {
	// Previous month across a year boundary.
	jan := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	got := ComputeDateRange(FilterPrevMonth, "", "", jan)
	if s := got.Start.Format("2006-01-02"); s != "2023-12-01" {
		t.Errorf("Start = %s", s)
	}
	if e := got.End.Format("2006-01-02"); e != "2023-12-31" {
		t.Errorf("End = %s", e)
	}

	// This month in a leap February.
	feb := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	got = ComputeDateRange(FilterThisMonth, "", "", feb)
	if e := got.End.Format("2006-01-02"); e != "2024-02-29" {
		t.Errorf("leap February end = %s", e)
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
		{"not-an-email", ""},
		{"", ""},
		{"two@at@signs", ""},
	}
	for _, tt := range tests {
		if got := normalizeEmail(tt.input); got != tt.want {
			t.Errorf("normalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
