package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
)

func (m DashboardModel) View() string {
	switch m.mode {
	case modeForm:
		return m.form.View()
	case modeConfirmDelete, modeConfirmBudget:
		return m.confirm.View()
	case modeTaskForm:
		return m.taskForm.View()
	case modeUserForm:
		return m.userForm.View()
	}

	var sb strings.Builder
	sb.WriteString("\n  " + m.renderHeader() + "\n")
	for _, line := range m.renderNotifications() {
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("\n")

	if m.mode == modeSearch || m.filter.Search != "" {
		sb.WriteString("  " + m.searchInput.View() + "\n\n")
	}
	if m.mode == modeComment {
		sb.WriteString("  " + CurrentTheme.Header.Render("Comment") + " " + m.commentInput.View() + "\n\n")
	}

	sb.WriteString(m.renderTable())

	if m.summary != "" {
		sb.WriteString("\n  " + CurrentTheme.Comment.Render(m.summary) + "\n")
	}
	sb.WriteString("\n  " + m.renderFooter() + "\n")
	if m.status != "" {
		sb.WriteString("  " + CurrentTheme.Highlight.Render(m.status) + "\n")
	}
	return sb.String()
}

func (m DashboardModel) renderHeader() string {
	title := CurrentTheme.Header.Render("ChronoGuard")
	who := fmt.Sprintf("%s (%s)", m.viewer.Name, m.viewer.Role)
	week := fmt.Sprintf("this week: %s", FormatHours(m.weekHours))
	return title + "  " + CurrentTheme.Row.Render(who) + "  " + CurrentTheme.Dim.Render(week)
}

func (m DashboardModel) renderNotifications() []string {
	var out []string
	for _, n := range m.notifications {
		style := CurrentTheme.AlertMed
		if n.Severity == models.SeverityHigh {
			style = CurrentTheme.AlertHigh
		}
		out = append(out, style.Render("! "+n.Title)+" "+CurrentTheme.Dim.Render(n.Message))
	}
	return out
}

func (m DashboardModel) renderTable() string {
	width := m.width
	if width <= 0 {
		width = 100
	}
	taskWidth := width - 58
	if taskWidth < 12 {
		taskWidth = 12
	}

	var sb strings.Builder
	header := "  " + padCell("DATE", 11) + padCell("TIME", 13) + padCell("HOURS", 8) +
		padCell("TASK", taskWidth) + padCell("CATEGORY", 14) + "USER"
	sb.WriteString(CurrentTheme.Dim.Render(header) + "\n")

	if len(m.visible) == 0 {
		sb.WriteString("  " + CurrentTheme.Dim.Render("No entries in this view.") + "\n")
		return sb.String()
	}

	for i, e := range m.visible {
		style := CurrentTheme.Row
		prefix := "  "
		if i == m.cursor {
			style = CurrentTheme.RowFocused
			prefix = "> "
		}
		line := prefix + padCell(e.Date, 11) +
			padCell(FormatInterval(e.StartTime, e.EndTime), 13) +
			padCell(FormatHours(e.DurationHours), 8) +
			padCell(e.TaskName, taskWidth) +
			padCell(e.TaskCategory, 14) +
			e.UserName
		sb.WriteString(style.Render(line))
		if flag, ok := m.flags[e.ID]; ok {
			sb.WriteString(" " + CurrentTheme.Flag.Render(fmt.Sprintf("! %.1f/%.1fh", flag.Cumulative, flag.Limit)))
		}
		if e.ManagerComment != "" {
			sb.WriteString(" " + CurrentTheme.Comment.Render("* "+e.ManagerComment))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m DashboardModel) renderFooter() string {
	total := fmt.Sprintf("%s in view (%d entries)", FormatHours(m.visibleTotal()), len(m.visible))
	keys := "n: new · e: edit · d: delete · /: search · w/m/a: range · h/l: shift · o: order · r: report · x: export · s: summary · q: quit"
	if m.viewer.IsManager() {
		keys = "c: comment · t: new task · u: new account · " + keys
	}
	return CurrentTheme.Row.Render(rangeLabel(m.filter)+" · "+total) + "\n  " + CurrentTheme.Dim.Render(keys)
}

func rangeLabel(f timesheet.Filter) string {
	switch f.Mode {
	case timesheet.RangeWeek:
		return "week of " + f.Cursor
	case timesheet.RangeMonth:
		return "month of " + f.Cursor
	case timesheet.RangeCustom:
		return fmt.Sprintf("%s to %s", f.Start, f.End)
	default:
		return "all time"
	}
}
