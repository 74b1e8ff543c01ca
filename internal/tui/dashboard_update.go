package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/chronoguard/internal/report"
	"github.com/akyairhashvil/chronoguard/internal/service"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
)

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete, modeConfirmBudget:
		return m.updateConfirm(msg)
	case modeSearch:
		return m.updateSearch(msg)
	case modeComment:
		return m.updateComment(msg)
	case modeTaskForm:
		return m.updateTaskForm(msg)
	case modeUserForm:
		return m.updateUserForm(msg)
	}
	return m.updateBrowse(msg)
}

func (m DashboardModel) updateBrowse(msg tea.Msg) (DashboardModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "left", "h":
		m.shiftCursor(-1)
	case "right", "l":
		m.shiftCursor(1)
	case "w":
		m.filter.Mode = timesheet.RangeWeek
		m.filter.Cursor = timesheet.Today()
		m.applyFilter()
	case "m":
		m.filter.Mode = timesheet.RangeMonth
		m.filter.Cursor = timesheet.Today()
		m.applyFilter()
	case "a":
		m.filter.Mode = timesheet.RangeAll
		m.applyFilter()
	case "o":
		if m.filter.Order == timesheet.SortDateAscending {
			m.filter.Order = timesheet.SortDateDescending
		} else {
			m.filter.Order = timesheet.SortDateAscending
		}
		m.applyFilter()
	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue(m.filter.Search)
		return m, m.searchInput.Focus()
	case "n":
		m.mode = modeForm
		m.form = NewEntryFormModel(0, timesheet.EntryInput{Date: timesheet.Today()})
		m.pending = pendingSave{ownerID: m.viewer.ID}
		return m, nil
	case "e":
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		if entry.UserID != m.viewer.ID && !m.viewer.IsManager() {
			m.status = "You can only edit your own entries."
			return m, nil
		}
		m.mode = modeForm
		m.form = NewEntryFormModel(entry.ID, timesheet.EntryInput{
			Date:         entry.Date,
			StartTime:    entry.StartTime,
			EndTime:      entry.EndTime,
			TaskName:     entry.TaskName,
			TaskCategory: entry.TaskCategory,
			Description:  entry.Description,
		})
		m.pending = pendingSave{entryID: entry.ID, ownerID: entry.UserID}
		return m, nil
	case "d":
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		if entry.UserID != m.viewer.ID && !m.viewer.IsManager() {
			m.status = "You can only delete your own entries."
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.deleteID = entry.ID
		m.confirm = NewConfirmModel("Delete entry",
			fmt.Sprintf("Delete %s %s on %s?", FormatInterval(entry.StartTime, entry.EndTime), entry.TaskName, entry.Date))
		return m, nil
	case "c":
		entry, ok := m.selected()
		if !ok || !m.viewer.IsManager() {
			return m, nil
		}
		m.mode = modeComment
		m.commentID = entry.ID
		m.commentInput.SetValue(entry.ManagerComment)
		return m, m.commentInput.Focus()
	case "t":
		if !m.viewer.IsManager() {
			return m, nil
		}
		m.mode = modeTaskForm
		m.taskForm = NewTaskFormModel()
		return m, nil
	case "u":
		if !m.viewer.IsManager() {
			return m, nil
		}
		m.mode = modeUserForm
		m.userForm = NewUserFormModel()
		return m, nil
	case "r":
		rep, err := report.BuildWeekly(m.viewer, m.allEntries, m.tasks, m.filter.Cursor)
		if err == nil {
			var path string
			path, err = report.GeneratePDF(rep)
			if err == nil {
				m.status = "Report written to " + path
			}
		}
		if err != nil {
			m.status = err.Error()
		}
	case "x":
		path, err := m.exportPath()
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "Exported to " + path
		}
	case "s":
		m.summary = m.summarize.Summarize(m.ctx, m.visible)
	}
	return m, nil
}

func (m DashboardModel) updateForm(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formCancelMsg:
		m.mode = modeBrowse
		return m, nil
	case formSubmitMsg:
		return m.save(msg.entryID, msg.input, false)
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// save runs the service write. A budget warning switches into the
// confirmation modal while the form state stays intact underneath.
func (m DashboardModel) save(entryID int64, input timesheet.EntryInput, confirmed bool) (DashboardModel, tea.Cmd) {
	_, err := m.svc.SaveEntry(m.ctx, m.viewer, m.pending.ownerID, entryID, input, confirmed)
	if err == nil {
		m.mode = modeBrowse
		m.status = "Saved."
		m.refresh()
		return m, nil
	}
	var confirm *service.ConfirmationRequired
	if errors.As(err, &confirm) {
		m.mode = modeConfirmBudget
		m.pending.entryID = entryID
		m.pending.input = input
		m.confirm = NewConfirmModel("Task over budget", confirm.Warning.String()+". Save anyway?")
		return m, nil
	}
	m.mode = modeForm
	m.form.message = err.Error()
	return m, nil
}

func (m DashboardModel) updateTaskForm(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formCancelMsg:
		m.mode = modeBrowse
		return m, nil
	case taskSubmitMsg:
		if err := m.svc.CreateTask(m.ctx, m.viewer, msg.task); err != nil {
			m.taskForm.message = err.Error()
			return m, nil
		}
		m.mode = modeBrowse
		m.status = fmt.Sprintf("Task %s created.", msg.task.ID)
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.taskForm, cmd = m.taskForm.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateUserForm(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formCancelMsg:
		m.mode = modeBrowse
		return m, nil
	case userSubmitMsg:
		if _, err := m.svc.CreateUser(m.ctx, m.viewer, msg.user, msg.password); err != nil {
			m.userForm.message = err.Error()
			return m, nil
		}
		m.mode = modeBrowse
		m.status = fmt.Sprintf("Account %s created.", msg.user.Username)
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.userForm, cmd = m.userForm.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateConfirm(msg tea.Msg) (DashboardModel, tea.Cmd) {
	result, ok := msg.(confirmResultMsg)
	if !ok {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	if m.mode == modeConfirmDelete {
		m.mode = modeBrowse
		if result.ok {
			if err := m.svc.DeleteEntry(m.ctx, m.viewer, m.deleteID); err != nil {
				m.status = err.Error()
			} else {
				m.status = "Deleted."
				m.refresh()
			}
		}
		return m, nil
	}

	// Budget confirmation. Declining returns to the form with its state
	// intact.
	if result.ok {
		return m.save(m.pending.entryID, m.pending.input, true)
	}
	m.mode = modeForm
	return m, nil
}

func (m DashboardModel) updateSearch(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.mode = modeBrowse
			m.searchInput.Blur()
			m.filter.Search = ""
			m.applyFilter()
			return m, nil
		case tea.KeyEnter:
			m.mode = modeBrowse
			m.searchInput.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.Search = m.searchInput.Value()
	m.applyFilter()
	return m, cmd
}

func (m DashboardModel) updateComment(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.mode = modeBrowse
			m.commentInput.Blur()
			return m, nil
		case tea.KeyEnter:
			m.mode = modeBrowse
			m.commentInput.Blur()
			if err := m.svc.CommentEntry(m.ctx, m.viewer, m.commentID, m.commentInput.Value()); err != nil {
				m.status = err.Error()
			} else {
				m.status = "Comment saved."
				m.refresh()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}
