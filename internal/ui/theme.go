package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	TopBar    lipgloss.Style
	StatusBar lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Cursor    lipgloss.Style
	Done      lipgloss.Style
	Today     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	NavBar    lipgloss.Style
	Faint     lipgloss.Style
}

var DefaultTheme = Theme{
	TopBar:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89B4FA")).Padding(0, 1),
	StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de")).Background(lipgloss.Color("#313244")).Padding(0, 1),
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
	Done:      lipgloss.NewStyle().Strikethrough(true).Faint(true),
	Today:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#A6E3A1")),
	TabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#CBA6F7")).Padding(0, 2),
	TabIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Padding(0, 2),
	NavBar:    lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(lipgloss.Color("#45475a")),
	Faint:     lipgloss.NewStyle().Faint(true),
}

// PlainTheme renders without escape sequences. Transition frames use it
// so lines can be shifted column by column.
var PlainTheme = Theme{
	TopBar:    lipgloss.NewStyle().Padding(0, 1),
	StatusBar: lipgloss.NewStyle().Padding(0, 1),
	Title:     lipgloss.NewStyle(),
	Label:     lipgloss.NewStyle(),
	Value:     lipgloss.NewStyle(),
	Hint:      lipgloss.NewStyle(),
	Error:     lipgloss.NewStyle(),
	Success:   lipgloss.NewStyle(),
	Cursor:    lipgloss.NewStyle(),
	Done:      lipgloss.NewStyle(),
	Today:     lipgloss.NewStyle(),
	TabActive: lipgloss.NewStyle().Padding(0, 2),
	TabIdle:   lipgloss.NewStyle().Padding(0, 2),
	NavBar:    lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderTop(true),
	Faint:     lipgloss.NewStyle(),
}

// ThemeByName maps the config theme key to a theme.
func ThemeByName(name string) Theme {
	switch name {
	case "plain", "mono":
		return PlainTheme
	default:
		return DefaultTheme
	}
}
