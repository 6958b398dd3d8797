package models

import (
	"encoding/json"
	"testing"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("String() = %q", d.String())
	}
	if _, err := ParseDate("06/01/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("expected error for empty date")
	}
}

func TestDateBefore(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2024-01-01", "2024-01-02", true},
		{"2024-01-02", "2024-01-01", false},
		{"2024-01-01", "2024-01-01", false},
		{"2023-12-31", "2024-01-01", true},
		{"2024-01-31", "2024-02-01", true},
	}
	for _, tt := range tests {
		a, _ := ParseDate(tt.a)
		b, _ := ParseDate(tt.b)
		if got := a.Before(b); got != tt.want {
			t.Errorf("%s.Before(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30:15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tod.String() != "09:30:15" {
		t.Errorf("String() = %q", tod.String())
	}

	// Seconds are optional on input.
	short, err := ParseTimeOfDay("23:59")
	if err != nil {
		t.Fatalf("parse short form: %v", err)
	}
	if short.String() != "23:59:00" {
		t.Errorf("short form String() = %q", short.String())
	}

	if _, err := ParseTimeOfDay("9pm"); err == nil {
		t.Error("expected error for non-ISO time")
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	a, _ := ParseTimeOfDay("09:00:00")
	b, _ := ParseTimeOfDay("09:00:01")
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("TimeOfDay ordering broken")
	}
}

func TestDateAtCombinesWallClock(t *testing.T) {
	d, _ := ParseDate("2024-06-01")
	tod, _ := ParseTimeOfDay("08:15:30")
	got := d.At(tod)
	if got.Year() != 2024 || got.Month() != 6 || got.Day() != 1 ||
		got.Hour() != 8 || got.Minute() != 15 || got.Second() != 30 {
		t.Errorf("At() = %v", got)
	}
}

func TestScheduleWindowJSONFormats(t *testing.T) {
	var w ScheduleWindow
	w.StartDate, _ = ParseDate("2024-06-01")
	w.EndDate, _ = ParseDate("2024-06-10")
	w.StartTime = StartOfDay
	w.EndTime = EndOfDay

	raw, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["start_date"] != "2024-06-01" {
		t.Errorf("start_date = %v", decoded["start_date"])
	}
	if decoded["end_time"] != "23:59:59" {
		t.Errorf("end_time = %v", decoded["end_time"])
	}
}
