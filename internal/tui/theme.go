package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Border     lipgloss.Color
	Header     lipgloss.Style
	Row        lipgloss.Style
	RowFocused lipgloss.Style
	Comment    lipgloss.Style
	AlertHigh  lipgloss.Style
	AlertMed   lipgloss.Style
	Flag       lipgloss.Style
	Input      lipgloss.Style
	Dim        lipgloss.Style
	Highlight  lipgloss.Style
	Error      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("63"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Row:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RowFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Comment:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Italic(true),
		AlertHigh:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		AlertMed:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("62"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Row:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		RowFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Comment:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Italic(true),
		AlertHigh:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		AlertMed:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
