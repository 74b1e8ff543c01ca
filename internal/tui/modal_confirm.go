package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmResultMsg reports the user's yes/no choice.
type confirmResultMsg struct {
	ok bool
}

// ConfirmModel is a blocking yes/no prompt used for deletions and
// budget-overrun confirmations.
type ConfirmModel struct {
	Title   string
	Message string
}

func NewConfirmModel(title, message string) ConfirmModel {
	return ConfirmModel{Title: title, Message: message}
}

func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(key.String()) {
		case "y":
			return m, func() tea.Msg { return confirmResultMsg{ok: true} }
		case "n", "esc":
			return m, func() tea.Msg { return confirmResultMsg{ok: false} }
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	var sb strings.Builder
	sb.WriteString("  " + CurrentTheme.Header.Render(m.Title) + "\n\n")
	sb.WriteString("  " + CurrentTheme.Row.Render(m.Message) + "\n\n")
	sb.WriteString("  " + CurrentTheme.Dim.Render("y: confirm · n/esc: cancel") + "\n")
	return sb.String()
}
