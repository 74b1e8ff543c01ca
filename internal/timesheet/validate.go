package timesheet

import (
	"fmt"

	"github.com/akyairhashvil/chronoguard/internal/config"
	"github.com/akyairhashvil/chronoguard/internal/models"
)

// Candidate is a proposed entry write. ExcludeID carries the id of the
// entry being edited so its old interval does not collide with itself;
// zero means a fresh insert.
type Candidate struct {
	ExcludeID     int64
	UserID        int64
	Date          string
	StartTime     string
	EndTime       string
	DurationHours float64
	TaskName      string
}

// BudgetWarning is the non-blocking outcome of the task budget check. The
// caller must obtain explicit confirmation before committing the write.
type BudgetWarning struct {
	TaskName     string
	WouldBeTotal float64
	Limit        float64
}

func (w BudgetWarning) String() string {
	return fmt.Sprintf("task %q would reach %.1fh of its %.1fh estimate", w.TaskName, w.WouldBeTotal, w.Limit)
}

// Result of validating a candidate. A rejection is final; a warning
// requires confirmation; otherwise the write may proceed.
type Result struct {
	Rejection string
	Warning   *BudgetWarning
}

// OK reports whether the candidate passed the blocking checks.
func (r Result) OK() bool {
	return r.Rejection == ""
}

// Check runs the save-time checks in order: interval overlap, weekly hour
// cap, task budget. It never mutates anything; the caller performs the
// actual write only after an OK result (and, if a warning is present,
// explicit confirmation).
func Check(c Candidate, entries []models.Entry, tasks []models.Task) Result {
	if reason := checkOverlap(c, entries); reason != "" {
		return Result{Rejection: reason}
	}
	if reason := checkWeeklyCap(c, entries); reason != "" {
		return Result{Rejection: reason}
	}
	return Result{Warning: checkTaskBudget(c, entries, tasks)}
}

// checkOverlap rejects the candidate if its half-open [start,end) interval
// intersects any existing interval of the same user on the same date.
// Touching endpoints do not overlap.
func checkOverlap(c Candidate, entries []models.Entry) string {
	newStart := ClockToMinutes(c.StartTime)
	newEnd := ClockToMinutes(c.EndTime)
	for _, e := range entries {
		if e.ID == c.ExcludeID || e.UserID != c.UserID || e.Date != c.Date {
			continue
		}
		if newStart < ClockToMinutes(e.EndTime) && newEnd > ClockToMinutes(e.StartTime) {
			return fmt.Sprintf("overlaps existing entry %s-%s on %s", e.StartTime, e.EndTime, e.Date)
		}
	}
	return ""
}

// checkWeeklyCap rejects the candidate if it would push the user past the
// weekly hour limit for the Monday-anchored week containing its date.
// This cap has no override.
func checkWeeklyCap(c Candidate, entries []models.Entry) string {
	weekStart, weekEnd, err := WeekWindow(c.Date)
	if err != nil {
		return fmt.Sprintf("invalid date %q", c.Date)
	}
	var sum float64
	for _, e := range entries {
		if e.ID == c.ExcludeID || e.UserID != c.UserID {
			continue
		}
		if dateInRange(e.Date, weekStart, weekEnd) {
			sum += e.DurationHours
		}
	}
	if sum+c.DurationHours > config.WeeklyHourLimit {
		return fmt.Sprintf("would log %.1fh in week of %s, exceeding the %.0fh weekly limit",
			sum+c.DurationHours, weekStart, config.WeeklyHourLimit)
	}
	return ""
}

// checkTaskBudget sums the task's hours across all users and returns a
// warning when the candidate would push the running total past the task's
// estimate. Tasks without an estimate have no ceiling.
func checkTaskBudget(c Candidate, entries []models.Entry, tasks []models.Task) *BudgetWarning {
	task := FindTaskByName(tasks, c.TaskName)
	if task == nil || task.EstimatedHours == nil {
		return nil
	}
	var sum float64
	for _, e := range entries {
		if e.ID == c.ExcludeID || e.TaskName != c.TaskName {
			continue
		}
		sum += e.DurationHours
	}
	if sum+c.DurationHours > *task.EstimatedHours {
		return &BudgetWarning{
			TaskName:     c.TaskName,
			WouldBeTotal: sum + c.DurationHours,
			Limit:        *task.EstimatedHours,
		}
	}
	return nil
}

// FindTaskByName resolves a denormalized entry task name to its task.
func FindTaskByName(tasks []models.Task, name string) *models.Task {
	for i := range tasks {
		if tasks[i].Name == name {
			return &tasks[i]
		}
	}
	return nil
}
