package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/chronoguard/internal/ai"
	"github.com/akyairhashvil/chronoguard/internal/config"
	"github.com/akyairhashvil/chronoguard/internal/database"
	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/service"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

type dashboardMode int

const (
	modeBrowse dashboardMode = iota
	modeSearch
	modeForm
	modeConfirmDelete
	modeConfirmBudget
	modeComment
	modeTaskForm
	modeUserForm
)

// pendingSave holds a validated form submission awaiting budget
// confirmation.
type pendingSave struct {
	entryID int64
	ownerID int64
	input   timesheet.EntryInput
}

// DashboardModel is the main timesheet view: entry table, filters,
// notifications, and the modal flows hanging off it.
type DashboardModel struct {
	ctx       context.Context
	svc       *service.Service
	summarize *ai.Client
	viewer    models.User

	entries       []models.Entry // role-restricted, unfiltered
	allEntries    []models.Entry // full set, feeds overtime flags
	tasks         []models.Task
	notifications []models.Notification
	flags         map[int64]timesheet.OvertimeFlag

	filter  timesheet.Filter
	visible []models.Entry
	cursor  int

	mode         dashboardMode
	form         EntryFormModel
	taskForm     TaskFormModel
	userForm     UserFormModel
	confirm      ConfirmModel
	pending      pendingSave
	deleteID     int64
	commentID    int64
	searchInput  textinput.Model
	commentInput textinput.Model

	status    string
	summary   string
	weekHours float64
	width     int
	height    int
}

func NewDashboardModel(ctx context.Context, svc *service.Service, summarize *ai.Client, viewer models.User) DashboardModel {
	search := textinput.New()
	search.Placeholder = "search (user:/category:/task: or free text)"
	search.Width = 50

	comment := textinput.New()
	comment.Placeholder = "manager comment"
	comment.CharLimit = 500
	comment.Width = 50

	m := DashboardModel{
		ctx:          ctx,
		svc:          svc,
		summarize:    summarize,
		viewer:       viewer,
		searchInput:  search,
		commentInput: comment,
		filter: timesheet.Filter{
			Mode:   timesheet.RangeWeek,
			Cursor: timesheet.Today(),
		},
	}
	m.refresh()
	return m
}

func (m DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

// refresh reloads everything from the store and recomputes the derived
// state. Called after every write.
func (m *DashboardModel) refresh() {
	entries, err := m.svc.VisibleEntries(m.ctx, m.viewer)
	if err != nil {
		m.status = err.Error()
		return
	}
	all, err := m.svc.AllEntries(m.ctx)
	if err != nil {
		m.status = err.Error()
		return
	}
	tasks, err := m.svc.Tasks(m.ctx)
	if err != nil {
		m.status = err.Error()
		return
	}
	week, err := m.svc.WeekHours(m.ctx, m.viewer.ID, timesheet.Today())
	if err != nil {
		m.status = err.Error()
		return
	}
	m.weekHours = week
	m.entries = entries
	m.allEntries = all
	m.tasks = tasks
	m.flags = timesheet.OvertimeFlags(all, tasks)
	m.notifications = timesheet.BuildNotifications(tasks, all, timesheet.Today(), m.viewer)
	m.applyFilter()
}

func (m *DashboardModel) applyFilter() {
	m.visible = m.filter.Apply(m.entries, m.viewer)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m DashboardModel) selected() (models.Entry, bool) {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return models.Entry{}, false
	}
	return m.visible[m.cursor], true
}

// shiftCursor moves the filter cursor by whole periods in week and month
// modes.
func (m *DashboardModel) shiftCursor(direction int) {
	t, err := time.Parse(config.DateLayout, m.filter.Cursor)
	if err != nil {
		return
	}
	switch m.filter.Mode {
	case timesheet.RangeWeek:
		t = t.AddDate(0, 0, 7*direction)
	case timesheet.RangeMonth:
		t = t.AddDate(0, direction, 0)
	default:
		return
	}
	m.filter.Cursor = t.Format(config.DateLayout)
	m.applyFilter()
}

func (m *DashboardModel) visibleTotal() float64 {
	var sum float64
	for _, e := range m.visible {
		sum += e.DurationHours
	}
	return sum
}

// exportPath writes the current store as SQL text into the documents
// directory and returns the file path.
func (m *DashboardModel) exportPath() (string, error) {
	script, err := m.svc.ExportSQL(m.ctx, database.ExportOptions{})
	if err != nil {
		return "", err
	}
	return util.WriteExportFile(config.AppName, script)
}
