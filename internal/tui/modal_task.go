package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/chronoguard/internal/config"
	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

// taskSubmitMsg carries a completed task form back to the dashboard.
type taskSubmitMsg struct {
	task models.Task
}

const taskFieldCount = 5

// TaskFormModel creates a task. Managers only; the dashboard gates the
// keybinding.
type TaskFormModel struct {
	fields  [taskFieldCount]textinput.Model
	focus   int
	message string
}

func NewTaskFormModel() TaskFormModel {
	placeholders := [taskFieldCount]string{
		"id (e.g. PROJ-103)",
		"name",
		"estimated hours (blank for none)",
		"due date YYYY-MM-DD (blank for none)",
		"status (todo/in_progress/done, blank = todo)",
	}
	m := TaskFormModel{}
	for i := range m.fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.fields[i] = ti
	}
	return m
}

// Task parses the form into a task, reporting the first invalid field.
func (m TaskFormModel) Task() (models.Task, error) {
	task := models.Task{
		ID:     strings.TrimSpace(m.fields[0].Value()),
		Name:   strings.TrimSpace(m.fields[1].Value()),
		Status: models.TaskStatus(strings.TrimSpace(m.fields[4].Value())),
	}
	if task.ID == "" || task.Name == "" {
		return models.Task{}, fmt.Errorf("id and name are required")
	}
	if raw := strings.TrimSpace(m.fields[2].Value()); raw != "" {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil || hours <= 0 {
			return models.Task{}, fmt.Errorf("estimated hours must be a positive number")
		}
		task.EstimatedHours = util.Ptr(hours)
	}
	if raw := strings.TrimSpace(m.fields[3].Value()); raw != "" {
		if _, err := time.Parse(config.DateLayout, raw); err != nil {
			return models.Task{}, fmt.Errorf("due date has an invalid format")
		}
		task.DueDate = util.Ptr(raw)
	}
	switch task.Status {
	case "", models.TaskStatusToDo:
		task.Status = models.TaskStatusToDo
	case models.TaskStatusInProgress, models.TaskStatusDone:
	default:
		return models.Task{}, fmt.Errorf("unknown status %q", task.Status)
	}
	return task, nil
}

func (m TaskFormModel) Update(msg tea.Msg) (TaskFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return formCancelMsg{} }
		case tea.KeyTab, tea.KeyDown:
			return m.moveFocus(1), nil
		case tea.KeyShiftTab, tea.KeyUp:
			return m.moveFocus(-1), nil
		case tea.KeyEnter:
			if m.focus < taskFieldCount-1 {
				return m.moveFocus(1), nil
			}
			task, err := m.Task()
			if err != nil {
				m.message = err.Error()
				return m, nil
			}
			return m, func() tea.Msg { return taskSubmitMsg{task: task} }
		}
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m TaskFormModel) moveFocus(delta int) TaskFormModel {
	m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + taskFieldCount) % taskFieldCount
	m.fields[m.focus].Focus()
	return m
}

func (m TaskFormModel) View() string {
	var sb strings.Builder
	sb.WriteString("  " + CurrentTheme.Header.Render("New task") + "\n\n")
	for i := range m.fields {
		sb.WriteString("  " + m.fields[i].View() + "\n")
	}
	if m.message != "" {
		sb.WriteString("\n  " + CurrentTheme.Error.Render(m.message) + "\n")
	}
	sb.WriteString("\n  " + CurrentTheme.Dim.Render("enter: next/save · esc: cancel") + "\n")
	return sb.String()
}
