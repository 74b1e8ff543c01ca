package timesheet

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

func entry(id, userID int64, date, start, end, task string) models.Entry {
	return models.Entry{
		ID:            id,
		UserID:        userID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: DurationHours(start, end),
		TaskName:      task,
	}
}

func candidate(userID int64, date, start, end, task string) Candidate {
	return Candidate{
		UserID:        userID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: DurationHours(start, end),
		TaskName:      task,
	}
}

func TestCheckOverlapRejected(t *testing.T) {
	existing := []models.Entry{
		entry(1, 1, "2024-03-11", "09:00", "11:20", "T"),
		entry(2, 1, "2024-03-11", "13:00", "16:00", "T"),
	}

	res := Check(candidate(1, "2024-03-11", "10:00", "14:00", "T"), existing, nil)
	if res.OK() {
		t.Fatalf("expected rejection for interval overlapping both entries")
	}
	if !strings.Contains(res.Rejection, "overlaps") {
		t.Fatalf("unexpected reason: %q", res.Rejection)
	}
}

func TestCheckTouchingEndpointsAllowed(t *testing.T) {
	existing := []models.Entry{
		entry(1, 1, "2024-03-11", "09:00", "11:20", "T"),
		entry(2, 1, "2024-03-11", "13:00", "16:00", "T"),
	}

	res := Check(candidate(1, "2024-03-11", "11:20", "13:00", "T"), existing, nil)
	if !res.OK() {
		t.Fatalf("touching endpoints must not overlap, got %q", res.Rejection)
	}
}

func TestCheckOverlapIgnoresOtherUsersAndDates(t *testing.T) {
	existing := []models.Entry{
		entry(1, 2, "2024-03-11", "09:00", "17:00", "T"),
		entry(2, 1, "2024-03-12", "09:00", "17:00", "T"),
	}
	res := Check(candidate(1, "2024-03-11", "09:00", "12:00", "T"), existing, nil)
	if !res.OK() {
		t.Fatalf("other users/dates must not collide, got %q", res.Rejection)
	}
}

func TestCheckEditExcludesOwnInterval(t *testing.T) {
	existing := []models.Entry{
		entry(7, 1, "2024-03-11", "09:00", "11:00", "T"),
	}
	c := candidate(1, "2024-03-11", "09:30", "11:30", "T")
	c.ExcludeID = 7
	if res := Check(c, existing, nil); !res.OK() {
		t.Fatalf("edited entry must not collide with itself, got %q", res.Rejection)
	}
}

func TestCheckWeeklyCapHardBlock(t *testing.T) {
	// 38h already logged Mon-Thu of the same ISO week.
	existing := []models.Entry{
		entry(1, 1, "2024-03-11", "08:00", "18:00", "T"), // 10h
		entry(2, 1, "2024-03-12", "08:00", "18:00", "T"), // 10h
		entry(3, 1, "2024-03-13", "08:00", "18:00", "T"), // 10h
		entry(4, 1, "2024-03-14", "08:00", "16:00", "T"), // 8h
	}

	over := Check(candidate(1, "2024-03-15", "08:00", "11:00", "T"), existing, nil)
	if over.OK() {
		t.Fatalf("expected weekly cap rejection at 41h")
	}
	if !strings.Contains(over.Rejection, "weekly limit") {
		t.Fatalf("unexpected reason: %q", over.Rejection)
	}

	exact := Check(candidate(1, "2024-03-15", "08:00", "10:00", "T"), existing, nil)
	if !exact.OK() {
		t.Fatalf("exactly 40h must pass, got %q", exact.Rejection)
	}

	// Sunday still belongs to this week; next Monday does not.
	sunday := Check(candidate(1, "2024-03-17", "08:00", "11:00", "T"), existing, nil)
	if sunday.OK() {
		t.Fatalf("Sunday entry must count into the same week")
	}
	nextWeek := Check(candidate(1, "2024-03-18", "08:00", "18:00", "T"), existing, nil)
	if !nextWeek.OK() {
		t.Fatalf("next week must start a fresh budget, got %q", nextWeek.Rejection)
	}
}

func TestCheckTaskBudgetWarns(t *testing.T) {
	tasks := []models.Task{
		{ID: "T-1", Name: "T", EstimatedHours: util.Ptr(10.0)},
	}
	existing := []models.Entry{
		entry(1, 1, "2024-03-11", "09:00", "17:00", "T"), // 8h
		entry(2, 2, "2024-03-11", "09:00", "10:00", "T"), // other user counts too
	}

	res := Check(candidate(3, "2024-03-12", "09:00", "11:00", "T"), existing, tasks)
	if !res.OK() {
		t.Fatalf("budget overrun must not reject, got %q", res.Rejection)
	}
	if res.Warning == nil {
		t.Fatalf("expected budget warning at 11h of 10h")
	}
	if res.Warning.WouldBeTotal != 11 || res.Warning.Limit != 10 {
		t.Fatalf("warning carries %v/%v, want 11/10", res.Warning.WouldBeTotal, res.Warning.Limit)
	}

	under := Check(candidate(3, "2024-03-12", "09:00", "10:00", "T"), existing, tasks)
	if under.Warning != nil {
		t.Fatalf("exactly at the limit must not warn")
	}
}

func TestCheckNoBudgetNoWarning(t *testing.T) {
	tasks := []models.Task{{ID: "T-1", Name: "T"}}
	existing := []models.Entry{entry(1, 1, "2024-03-11", "00:00", "12:00", "T")}
	res := Check(candidate(2, "2024-03-12", "00:00", "12:00", "T"), existing, tasks)
	if res.Warning != nil {
		t.Fatalf("tasks without estimates have no ceiling")
	}
}
