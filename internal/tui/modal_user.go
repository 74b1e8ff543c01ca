package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/chronoguard/internal/models"
)

// userSubmitMsg carries a completed account form back to the dashboard.
type userSubmitMsg struct {
	user     models.User
	password string
}

const userFieldCount = 4

// UserFormModel provisions an account. Managers only.
type UserFormModel struct {
	fields  [userFieldCount]textinput.Model
	focus   int
	message string
}

func NewUserFormModel() UserFormModel {
	placeholders := [userFieldCount]string{
		"username",
		"full name",
		"role (manager/employee)",
		"initial password",
	}
	m := UserFormModel{}
	for i := range m.fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		if i == userFieldCount-1 {
			ti.EchoMode = textinput.EchoPassword
		}
		if i == 0 {
			ti.Focus()
		}
		m.fields[i] = ti
	}
	return m
}

// Account parses the form, reporting the first invalid field. Password
// strength is checked by the service at save.
func (m UserFormModel) Account() (models.User, string, error) {
	user := models.User{
		Username: strings.TrimSpace(m.fields[0].Value()),
		Name:     strings.TrimSpace(m.fields[1].Value()),
		Role:     models.Role(strings.TrimSpace(m.fields[2].Value())),
	}
	if user.Username == "" || user.Name == "" {
		return models.User{}, "", fmt.Errorf("username and name are required")
	}
	switch user.Role {
	case models.RoleManager, models.RoleEmployee:
	case "":
		user.Role = models.RoleEmployee
	default:
		return models.User{}, "", fmt.Errorf("unknown role %q", user.Role)
	}
	return user, m.fields[3].Value(), nil
}

func (m UserFormModel) Update(msg tea.Msg) (UserFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return formCancelMsg{} }
		case tea.KeyTab, tea.KeyDown:
			return m.moveFocus(1), nil
		case tea.KeyShiftTab, tea.KeyUp:
			return m.moveFocus(-1), nil
		case tea.KeyEnter:
			if m.focus < userFieldCount-1 {
				return m.moveFocus(1), nil
			}
			user, password, err := m.Account()
			if err != nil {
				m.message = err.Error()
				return m, nil
			}
			return m, func() tea.Msg { return userSubmitMsg{user: user, password: password} }
		}
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m UserFormModel) moveFocus(delta int) UserFormModel {
	m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + userFieldCount) % userFieldCount
	m.fields[m.focus].Focus()
	return m
}

func (m UserFormModel) View() string {
	var sb strings.Builder
	sb.WriteString("  " + CurrentTheme.Header.Render("New account") + "\n\n")
	for i := range m.fields {
		sb.WriteString("  " + m.fields[i].View() + "\n")
	}
	if m.message != "" {
		sb.WriteString("\n  " + CurrentTheme.Error.Render(m.message) + "\n")
	}
	sb.WriteString("\n  " + CurrentTheme.Dim.Render("enter: next/save · esc: cancel") + "\n")
	return sb.String()
}
