package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
)

// formSubmitMsg carries a completed entry form back to the dashboard.
type formSubmitMsg struct {
	entryID int64
	input   timesheet.EntryInput
}

// formCancelMsg closes the form without saving.
type formCancelMsg struct{}

const formFieldCount = 6

// EntryFormModel is the create/edit form for a timesheet entry. The same
// model serves both; a non-zero entryID means editing.
type EntryFormModel struct {
	entryID int64
	fields  [formFieldCount]textinput.Model
	focus   int
	message string
}

func NewEntryFormModel(entryID int64, defaults timesheet.EntryInput) EntryFormModel {
	placeholders := [formFieldCount]string{
		"date (YYYY-MM-DD)",
		"start (HH:mm)",
		"end (HH:mm)",
		"task name",
		"category (" + strings.Join(models.Categories, "/") + ")",
		"description",
	}
	values := [formFieldCount]string{
		defaults.Date, defaults.StartTime, defaults.EndTime,
		defaults.TaskName, defaults.TaskCategory, defaults.Description,
	}

	m := EntryFormModel{entryID: entryID}
	for i := range m.fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		ti.SetValue(values[i])
		if i == 0 {
			ti.Focus()
		}
		m.fields[i] = ti
	}
	return m
}

func (m EntryFormModel) Input() timesheet.EntryInput {
	return timesheet.EntryInput{
		Date:         strings.TrimSpace(m.fields[0].Value()),
		StartTime:    strings.TrimSpace(m.fields[1].Value()),
		EndTime:      strings.TrimSpace(m.fields[2].Value()),
		TaskName:     strings.TrimSpace(m.fields[3].Value()),
		TaskCategory: strings.TrimSpace(m.fields[4].Value()),
		Description:  strings.TrimSpace(m.fields[5].Value()),
	}
}

func (m EntryFormModel) Update(msg tea.Msg) (EntryFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return formCancelMsg{} }
		case tea.KeyTab, tea.KeyDown:
			return m.moveFocus(1), nil
		case tea.KeyShiftTab, tea.KeyUp:
			return m.moveFocus(-1), nil
		case tea.KeyEnter:
			if m.focus < formFieldCount-1 {
				return m.moveFocus(1), nil
			}
			input := m.Input()
			if err := input.Validate(); err != nil {
				m.message = err.Error()
				return m, nil
			}
			entryID := m.entryID
			return m, func() tea.Msg { return formSubmitMsg{entryID: entryID, input: input} }
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m EntryFormModel) moveFocus(delta int) EntryFormModel {
	m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + formFieldCount) % formFieldCount
	m.fields[m.focus].Focus()
	return m
}

func (m EntryFormModel) View() string {
	title := "New entry"
	if m.entryID != 0 {
		title = fmt.Sprintf("Edit entry #%d", m.entryID)
	}
	var sb strings.Builder
	sb.WriteString("  " + CurrentTheme.Header.Render(title) + "\n\n")
	for i := range m.fields {
		sb.WriteString("  " + m.fields[i].View() + "\n")
	}
	if m.message != "" {
		sb.WriteString("\n  " + CurrentTheme.Error.Render(m.message) + "\n")
	}
	sb.WriteString("\n  " + CurrentTheme.Dim.Render("enter: next/save · esc: cancel") + "\n")
	return sb.String()
}
