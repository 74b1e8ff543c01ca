package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/chronoguard/internal/ai"
	"github.com/akyairhashvil/chronoguard/internal/config"
	"github.com/akyairhashvil/chronoguard/internal/database"
	"github.com/akyairhashvil/chronoguard/internal/service"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateLogin SessionState = iota
	StateDashboard
)

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	state     SessionState
	ctx       context.Context
	svc       *service.Service
	summarize *ai.Client
	login     LoginModel
	dashboard DashboardModel
	width     int
	height    int
}

func NewMainModel(ctx context.Context, db *database.Database, cfg config.Config) MainModel {
	svc := service.New(db)
	if name, ok := svc.Setting(ctx, "theme"); ok {
		SetTheme(name)
	} else {
		SetTheme(cfg.Theme)
	}
	return MainModel{
		state:     StateLogin,
		ctx:       ctx,
		svc:       svc,
		summarize: ai.New(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Timeout),
		login:     NewLoginModel(ctx, svc),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.login.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateDashboard {
			m.dashboard.width = msg.Width
			m.dashboard.height = msg.Height
		}
		return m, nil
	case loggedInMsg:
		m.state = StateDashboard
		m.dashboard = NewDashboardModel(m.ctx, m.svc, m.summarize, msg.user)
		m.dashboard.width = m.width
		m.dashboard.height = m.height
		return m, m.dashboard.Init()
	}

	switch m.state {
	case StateLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	case StateDashboard:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) View() string {
	switch m.state {
	case StateLogin:
		return m.login.View()
	case StateDashboard:
		return m.dashboard.View()
	}
	return ""
}
