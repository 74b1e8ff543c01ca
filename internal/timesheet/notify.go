package timesheet

import (
	"fmt"

	"github.com/akyairhashvil/chronoguard/internal/models"
)

// BuildNotifications derives manager alerts from current state: one
// OVERDUE per task past its due date and not done, one OVERTIME per task
// whose all-time logged hours exceed its estimate. Employees get none.
// Nothing is persisted; the caller recomputes on every refresh.
func BuildNotifications(tasks []models.Task, entries []models.Entry, today string, viewer models.User) []models.Notification {
	if !viewer.IsManager() {
		return nil
	}

	totals := make(map[string]float64)
	for _, e := range entries {
		totals[e.TaskName] += e.DurationHours
	}

	var out []models.Notification
	for _, task := range tasks {
		if IsTaskOverdue(task, today) {
			out = append(out, models.Notification{
				ID:       fmt.Sprintf("overdue-%s", task.ID),
				Type:     models.NotificationOverdue,
				Title:    fmt.Sprintf("Task %s overdue", task.ID),
				Message:  fmt.Sprintf("%s was due %s and is not done", task.Name, *task.DueDate),
				Severity: models.SeverityHigh,
			})
		}
		if task.EstimatedHours != nil {
			if total := totals[task.Name]; total > *task.EstimatedHours {
				out = append(out, models.Notification{
					ID:       fmt.Sprintf("overtime-%s", task.ID),
					Type:     models.NotificationOvertime,
					Title:    fmt.Sprintf("Task %s over budget", task.ID),
					Message:  fmt.Sprintf("%.1fh logged against an estimate of %.1fh", total, *task.EstimatedHours),
					Severity: models.SeverityMedium,
				})
			}
		}
	}
	return out
}
