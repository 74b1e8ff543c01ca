package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/chronoguard/internal/config"
	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/service"
)

// loggedInMsg is emitted when a login attempt succeeds.
type loggedInMsg struct {
	user models.User
}

// LoginModel collects credentials and checks them against the store.
// After MaxLoginAttempts failures the program exits.
type LoginModel struct {
	ctx      context.Context
	svc      *service.Service
	username textinput.Model
	password textinput.Model
	focusPwd bool
	attempts int
	message  string
}

func NewLoginModel(ctx context.Context, svc *service.Service) LoginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 64
	user.Width = 30
	user.Focus()

	pwd := textinput.New()
	pwd.Placeholder = "password"
	pwd.EchoMode = textinput.EchoPassword
	pwd.CharLimit = 64
	pwd.Width = 30

	return LoginModel{ctx: ctx, svc: svc, username: user, password: pwd}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyShiftTab:
			m.focusPwd = !m.focusPwd
			if m.focusPwd {
				m.username.Blur()
				return m, m.password.Focus()
			}
			m.password.Blur()
			return m, m.username.Focus()
		case tea.KeyEnter:
			if !m.focusPwd {
				m.focusPwd = true
				m.username.Blur()
				return m, m.password.Focus()
			}
			return m.attempt()
		}
	}

	var cmd tea.Cmd
	if m.focusPwd {
		m.password, cmd = m.password.Update(msg)
	} else {
		m.username, cmd = m.username.Update(msg)
	}
	return m, cmd
}

func (m LoginModel) attempt() (LoginModel, tea.Cmd) {
	user, err := m.svc.Authenticate(m.ctx, m.username.Value(), m.password.Value())
	if err == nil {
		return m, func() tea.Msg { return loggedInMsg{user: user} }
	}
	m.attempts++
	if m.attempts >= config.MaxLoginAttempts {
		m.message = "Too many failed attempts."
		return m, tea.Quit
	}
	m.message = fmt.Sprintf("%v (%d/%d)", err, m.attempts, config.MaxLoginAttempts)
	m.password.SetValue("")
	return m, nil
}

func (m LoginModel) View() string {
	view := fmt.Sprintf(
		"\n  %s\n\n  %s\n  %s\n",
		CurrentTheme.Header.Render("ChronoGuard"),
		m.username.View(),
		m.password.View(),
	)
	if m.message != "" {
		view += "\n  " + CurrentTheme.Error.Render(m.message) + "\n"
	}
	view += "\n  " + CurrentTheme.Dim.Render("enter: sign in · tab: switch field · ctrl+c: quit") + "\n"
	return view
}
