package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ramanasai/dailyhub/internal/nav"
)

// Control is the stable identifier of an interactive element. Keys are
// resolved to controls before any action runs, so tests and scripted
// drivers can press controls by name.
type Control string

const (
	ControlNotesInput    Control = "notes_input"
	ControlNotesAdd      Control = "notes_add"
	ControlNoteDelete    Control = "note_delete"
	ControlTasksInput    Control = "tasks_input"
	ControlTasksAdd      Control = "tasks_add"
	ControlTaskToggle    Control = "task_toggle"
	ControlTaskDelete    Control = "task_delete"
	ControlCalendarPrev  Control = "calendar_prev_month"
	ControlCalendarNext  Control = "calendar_next_month"
	ControlCalendarToday Control = "calendar_today"
	ControlCursorUp      Control = "cursor_up"
	ControlCursorDown    Control = "cursor_down"
	ControlNextTab       Control = "tab_next"
	ControlPrevTab       Control = "tab_prev"
	ControlBack          Control = "back"
	ControlQuit          Control = "quit"
	ControlHelp          Control = "help"
)

// ControlTab is the bottom-bar selector for d.
func ControlTab(d nav.Destination) Control {
	return Control("tab_" + d.Route())
}

type keyMap struct {
	Tabs     [3]key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Edit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Delete   key.Binding
	Toggle   key.Binding
	PrevMon  key.Binding
	NextMon  key.Binding
	Today    key.Binding
	Back     key.Binding
	Quit     key.Binding
	Help     key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	ForceOut key.Binding

	active nav.Destination
}

func newKeyMap() keyMap {
	return keyMap{
		Tabs: [3]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", nav.Notes.Title())),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", nav.Tasks.Title())),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", nav.Calendar.Title())),
		},
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("⇧tab", "prev tab")),
		Edit:     key.NewBinding(key.WithKeys("i", "a", "enter"), key.WithHelp("i", "write")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete:   key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		PrevMon:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		NextMon:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done writing")),
		ForceOut: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap for the active tab.
func (k keyMap) ShortHelp() []key.Binding {
	out := []key.Binding{k.NextTab}
	switch k.active {
	case nav.Notes:
		out = append(out, k.Edit, k.Delete)
	case nav.Tasks:
		out = append(out, k.Edit, k.Toggle, k.Delete)
	case nav.Calendar:
		out = append(out, k.PrevMon, k.NextMon, k.Today)
	}
	return append(out, k.Back, k.Quit, k.Help)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tabs[0], k.Tabs[1], k.Tabs[2], k.NextTab, k.PrevTab},
		{k.Edit, k.Up, k.Down, k.Delete, k.Toggle},
		{k.PrevMon, k.NextMon, k.Today},
		{k.Back, k.Quit, k.Help},
	}
}

// inputHelp is the help shown while a text field is focused.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// resolve maps a key press in normal mode to the control it operates on
// the active tab. ok is false for keys with no meaning there.
func (k keyMap) resolve(msg tea.KeyMsg, active nav.Destination) (Control, bool) {
	for i, b := range k.Tabs {
		if key.Matches(msg, b) {
			return ControlTab(nav.Destinations()[i]), true
		}
	}
	switch {
	case key.Matches(msg, k.ForceOut), key.Matches(msg, k.Quit):
		return ControlQuit, true
	case key.Matches(msg, k.Help):
		return ControlHelp, true
	case key.Matches(msg, k.NextTab):
		return ControlNextTab, true
	case key.Matches(msg, k.PrevTab):
		return ControlPrevTab, true
	case key.Matches(msg, k.Back):
		return ControlBack, true
	}

	switch active {
	case nav.Notes:
		switch {
		case key.Matches(msg, k.Edit):
			return ControlNotesInput, true
		case key.Matches(msg, k.Delete):
			return ControlNoteDelete, true
		}
	case nav.Tasks:
		switch {
		case key.Matches(msg, k.Edit):
			return ControlTasksInput, true
		case key.Matches(msg, k.Toggle):
			return ControlTaskToggle, true
		case key.Matches(msg, k.Delete):
			return ControlTaskDelete, true
		}
	case nav.Calendar:
		switch {
		case key.Matches(msg, k.PrevMon):
			return ControlCalendarPrev, true
		case key.Matches(msg, k.NextMon):
			return ControlCalendarNext, true
		case key.Matches(msg, k.Today):
			return ControlCalendarToday, true
		}
	}
	switch {
	case key.Matches(msg, k.Up):
		return ControlCursorUp, true
	case key.Matches(msg, k.Down):
		return ControlCursorDown, true
	}
	return "", false
}
