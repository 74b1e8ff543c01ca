package timesheet

import (
	"sort"

	"github.com/akyairhashvil/chronoguard/internal/models"
)

// TaskRollup is the per-task grouping every task-centric view reads.
// Task is nil when entries reference a name no task definition matches
// (deleted or renamed tasks).
type TaskRollup struct {
	TaskName   string
	Task       *models.Task
	Entries    []models.Entry
	TotalHours float64
	Overdue    bool
}

// GroupByTask partitions entries by task name and attaches the matching
// task definition. Output is sorted by task name so identical input
// always yields identical output.
func GroupByTask(entries []models.Entry, tasks []models.Task, today string) []TaskRollup {
	byName := make(map[string]*TaskRollup)
	for _, e := range entries {
		r, ok := byName[e.TaskName]
		if !ok {
			r = &TaskRollup{TaskName: e.TaskName, Task: FindTaskByName(tasks, e.TaskName)}
			byName[e.TaskName] = r
		}
		r.Entries = append(r.Entries, e)
		r.TotalHours += e.DurationHours
	}

	rollups := make([]TaskRollup, 0, len(byName))
	for _, r := range byName {
		if r.Task != nil {
			r.Overdue = IsTaskOverdue(*r.Task, today)
		}
		sortChronological(r.Entries)
		rollups = append(rollups, *r)
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].TaskName < rollups[j].TaskName })
	return rollups
}

// IsTaskOverdue reports whether the task's due date has passed while the
// task is not done. Dates compare at day granularity.
func IsTaskOverdue(task models.Task, today string) bool {
	return task.DueDate != nil && task.Status != models.TaskStatusDone && *task.DueDate < today
}

// LoggedAfterDue reports whether the entry was logged strictly after the
// task's due date.
func LoggedAfterDue(entry models.Entry, task models.Task) bool {
	return task.DueDate != nil && entry.Date > *task.DueDate
}

// OvertimeFlag marks one entry that pushed (or kept) a task's running
// total past its estimate, with the cumulative total at that point.
type OvertimeFlag struct {
	Cumulative float64
	Limit      float64
}

// OvertimeFlags scans every budgeted task's entries in chronological
// order, accumulating hours; each entry whose post-add running total
// exceeds the estimate is flagged. Once a task is over budget every later
// entry stays flagged.
//
// Callers must pass the complete entry set, not a filtered view subset;
// the running totals are only meaningful over full history.
func OvertimeFlags(entries []models.Entry, tasks []models.Task) map[int64]OvertimeFlag {
	flags := make(map[int64]OvertimeFlag)
	byTask := make(map[string][]models.Entry)
	for _, e := range entries {
		byTask[e.TaskName] = append(byTask[e.TaskName], e)
	}
	for name, taskEntries := range byTask {
		task := FindTaskByName(tasks, name)
		if task == nil || task.EstimatedHours == nil {
			continue
		}
		sortChronological(taskEntries)
		var running float64
		for _, e := range taskEntries {
			running += e.DurationHours
			if running > *task.EstimatedHours {
				flags[e.ID] = OvertimeFlag{Cumulative: running, Limit: *task.EstimatedHours}
			}
		}
	}
	return flags
}

// sortChronological orders entries by (date, startTime) ascending. Both
// fields are zero-padded, so string comparison is chronological. Entry ID
// breaks ties to keep the order deterministic.
func sortChronological(entries []models.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		if entries[i].StartTime != entries[j].StartTime {
			return entries[i].StartTime < entries[j].StartTime
		}
		return entries[i].ID < entries[j].ID
	})
}

// DailyTotal sums hours logged on one date.
func DailyTotal(entries []models.Entry, date string) float64 {
	var sum float64
	for _, e := range entries {
		if e.Date == date {
			sum += e.DurationHours
		}
	}
	return sum
}

// WeeklyTotal sums hours in the Monday-anchored week containing date.
func WeeklyTotal(entries []models.Entry, date string) float64 {
	start, end, err := WeekWindow(date)
	if err != nil {
		return 0
	}
	return rangeTotal(entries, start, end)
}

// MonthlyTotal sums hours in the calendar month containing date.
func MonthlyTotal(entries []models.Entry, date string) float64 {
	start, end, err := MonthWindow(date)
	if err != nil {
		return 0
	}
	return rangeTotal(entries, start, end)
}

func rangeTotal(entries []models.Entry, start, end string) float64 {
	var sum float64
	for _, e := range entries {
		if dateInRange(e.Date, start, end) {
			sum += e.DurationHours
		}
	}
	return sum
}

// CategorySlice is one bucket of a category distribution.
type CategorySlice struct {
	Category string
	Hours    float64
}

// CategoryDistribution sums hours per category over the given subset,
// sorted by category name. This feeds the chart views.
func CategoryDistribution(entries []models.Entry) []CategorySlice {
	byCategory := make(map[string]float64)
	for _, e := range entries {
		byCategory[e.TaskCategory] += e.DurationHours
	}
	slices := make([]CategorySlice, 0, len(byCategory))
	for category, hours := range byCategory {
		slices = append(slices, CategorySlice{Category: category, Hours: hours})
	}
	sort.Slice(slices, func(i, j int) bool { return slices[i].Category < slices[j].Category })
	return slices
}
