package timesheet

import "testing"

func TestClockToMinutes(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:00": 540,
		"11:20": 680,
		"23:59": 1439,
		"bogus": 0,
	}
	for clock, want := range cases {
		if got := ClockToMinutes(clock); got != want {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", clock, got, want)
		}
	}
}

func TestDurationHoursClampsNegative(t *testing.T) {
	if got := DurationHours("09:00", "11:20"); got < 2.33 || got > 2.34 {
		t.Fatalf("DurationHours = %v, want ~2.333", got)
	}
	if got := DurationHours("11:00", "09:00"); got != 0 {
		t.Fatalf("negative interval not clamped, got %v", got)
	}
}

func TestWeekStartMondayAnchor(t *testing.T) {
	cases := map[string]string{
		"2024-03-11": "2024-03-11", // Monday
		"2024-03-13": "2024-03-11", // Wednesday
		"2024-03-17": "2024-03-11", // Sunday joins the preceding Monday
		"2024-03-18": "2024-03-18", // next Monday
	}
	for date, want := range cases {
		got, err := WeekStart(date)
		if err != nil {
			t.Fatalf("WeekStart(%q) failed: %v", date, err)
		}
		if got != want {
			t.Errorf("WeekStart(%q) = %q, want %q", date, got, want)
		}
	}
	if _, err := WeekStart("not-a-date"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestWeekWindow(t *testing.T) {
	start, end, err := WeekWindow("2024-03-13")
	if err != nil {
		t.Fatalf("WeekWindow failed: %v", err)
	}
	if start != "2024-03-11" || end != "2024-03-17" {
		t.Fatalf("WeekWindow = [%s, %s], want [2024-03-11, 2024-03-17]", start, end)
	}
}

func TestMonthWindow(t *testing.T) {
	start, end, err := MonthWindow("2024-02-10")
	if err != nil {
		t.Fatalf("MonthWindow failed: %v", err)
	}
	if start != "2024-02-01" || end != "2024-02-29" {
		t.Fatalf("MonthWindow = [%s, %s], want leap February", start, end)
	}
}
