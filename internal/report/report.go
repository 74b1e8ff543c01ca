// Package report renders weekly per-user timesheet reports to PDF.
package report

import (
	"sort"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
)

// Row is one printed entry line.
type Row struct {
	Date        string
	StartTime   string
	EndTime     string
	Hours       float64
	TaskName    string
	Category    string
	Description string
	Overtime    bool
	Comment     string
}

// Weekly holds everything the PDF writer needs for one user's week.
type Weekly struct {
	User       models.User
	WeekStart  string
	WeekEnd    string
	Rows       []Row
	TotalHours float64
	Categories []timesheet.CategorySlice
}

// BuildWeekly assembles the report data for the Monday-anchored week
// containing date. Overtime flags are computed over the full entry set
// before the week filter so running totals stay correct.
func BuildWeekly(user models.User, entries []models.Entry, tasks []models.Task, date string) (Weekly, error) {
	weekStart, weekEnd, err := timesheet.WeekWindow(date)
	if err != nil {
		return Weekly{}, err
	}
	flags := timesheet.OvertimeFlags(entries, tasks)

	var week []models.Entry
	for _, e := range entries {
		if e.UserID == user.ID && e.Date >= weekStart && e.Date <= weekEnd {
			week = append(week, e)
		}
	}
	sort.Slice(week, func(i, j int) bool {
		if week[i].Date != week[j].Date {
			return week[i].Date < week[j].Date
		}
		if week[i].StartTime != week[j].StartTime {
			return week[i].StartTime < week[j].StartTime
		}
		return week[i].ID < week[j].ID
	})

	rep := Weekly{User: user, WeekStart: weekStart, WeekEnd: weekEnd}
	for _, e := range week {
		_, overtime := flags[e.ID]
		rep.Rows = append(rep.Rows, Row{
			Date:        e.Date,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Hours:       e.DurationHours,
			TaskName:    e.TaskName,
			Category:    e.TaskCategory,
			Description: e.Description,
			Overtime:    overtime,
			Comment:     e.ManagerComment,
		})
		rep.TotalHours += e.DurationHours
	}
	rep.Categories = timesheet.CategoryDistribution(week)
	return rep, nil
}
