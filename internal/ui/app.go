package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ramanasai/dailyhub/internal/calendar"
	"github.com/ramanasai/dailyhub/internal/config"
	"github.com/ramanasai/dailyhub/internal/nav"
	"github.com/ramanasai/dailyhub/internal/notes"
	"github.com/ramanasai/dailyhub/internal/notify"
	"github.com/ramanasai/dailyhub/internal/tasks"
	"github.com/ramanasai/dailyhub/internal/version"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

type Model struct {
	// layout
	width, height int
	mode          mode
	showFullHelp  bool

	host    *nav.Host
	cursors map[int]int // entry id -> selected row

	input textinput.Model
	keys  keyMap
	help  help.Model

	anim   transition
	animID int

	cfg      config.Config
	st       Theme
	now      func() time.Time
	log      zerolog.Logger
	notifier notify.Notifier

	status    string
	statusErr bool
}

// notifyFailedMsg reports a desktop notification that could not be shown.
type notifyFailedMsg struct{ err error }

type Option func(*Model)

// WithClock sets the clock used for ids, timestamps and the calendar.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.log = l }
}

func WithNotifier(n notify.Notifier) Option {
	return func(m *Model) { m.notifier = n }
}

// New builds the shell on the Notes tab.
func New(cfg config.Config, opts ...Option) Model {
	m := Model{
		cursors:  map[int]int{},
		keys:     newKeyMap(),
		help:     help.New(),
		cfg:      cfg,
		st:       ThemeByName(cfg.Theme),
		now:      time.Now,
		log:      zerolog.Nop(),
		notifier: notify.Nop{},
	}
	for _, opt := range opts {
		opt(&m)
	}

	now := m.now
	m.host = nav.NewHost(func(d nav.Destination) any {
		switch d {
		case nav.Tasks:
			return tasks.New(now)
		case nav.Calendar:
			return calendar.New(now)
		default:
			return notes.New(now)
		}
	},
		nav.WithLogger(m.log),
		nav.WithExitHandler(func() { m.log.Info().Msg("exit requested by back navigation") }),
	)

	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60
	m.input = ti
	m.syncInput()
	return m
}

// Run starts the full-screen program.
func Run(cfg config.Config, opts ...Option) error {
	p := tea.NewProgram(New(cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Host exposes the navigation host to callers driving the model.
func (m Model) Host() *nav.Host { return m.host }

func (m Model) Active() nav.Destination { return m.host.Current().Destination }

func (m Model) notesHolder() *notes.Holder {
	h, _ := m.host.Holder(nav.Notes)
	n, _ := h.(*notes.Holder)
	return n
}

func (m Model) tasksHolder() *tasks.Holder {
	h, _ := m.host.Holder(nav.Tasks)
	t, _ := h.(*tasks.Holder)
	return t
}

func (m Model) calendarHolder() *calendar.Holder {
	h, _ := m.host.Holder(nav.Calendar)
	c, _ := h.(*calendar.Holder)
	return c
}

// draft is the holder behind the active tab's text field, if it has one.
type draft interface {
	Input() string
	SetInput(string)
	Add() bool
}

func (m Model) activeDraft() draft {
	switch m.Active() {
	case nav.Notes:
		return m.notesHolder()
	case nav.Tasks:
		return m.tasksHolder()
	}
	return nil
}

func (m *Model) syncInput() {
	m.input.Blur()
	m.mode = modeNormal
	switch m.Active() {
	case nav.Notes:
		m.input.Placeholder = "Write a note…"
	case nav.Tasks:
		m.input.Placeholder = "New task…"
	}
	if d := m.activeDraft(); d != nil {
		m.input.SetValue(d.Input())
	} else {
		m.input.SetValue("")
	}
}

func (m Model) cursor() int { return m.cursors[m.host.Current().ID] }

func (m *Model) setCursor(v, n int) {
	m.cursors[m.host.Current().ID] = clamp(v, 0, n-1)
}

func (m Model) rows() int {
	switch m.Active() {
	case nav.Notes:
		return m.notesHolder().Len()
	case nav.Tasks:
		return m.tasksHolder().Len()
	}
	return 0
}

// ---------- Update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-8)
		return m, nil

	case notifyFailedMsg:
		m.status, m.statusErr = "Notification failed: "+msg.err.Error(), true
		return m, nil

	case frameMsg:
		if msg.id != m.anim.id || !m.anim.running() {
			return m, nil
		}
		m.anim.frame++
		if !m.anim.running() {
			m.anim = transition{}
			return m, nil
		}
		return m, frameTick(m.anim.id, m.frameInterval())

	case tea.KeyMsg:
		if m.mode == modeInput {
			return m.updateInput(msg)
		}
		c, ok := m.keys.resolve(msg, m.Active())
		if !ok {
			return m, nil
		}
		return m.Press(c)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceOut):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		switch m.Active() {
		case nav.Notes:
			return m.Press(ControlNotesAdd)
		case nav.Tasks:
			return m.Press(ControlTasksAdd)
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if d := m.activeDraft(); d != nil {
		d.SetInput(m.input.Value())
	}
	return m, cmd
}

// Press runs the action behind a control on the active tab. Controls that
// belong to another tab are ignored.
func (m Model) Press(c Control) (tea.Model, tea.Cmd) {
	m.status, m.statusErr = "", false
	for _, d := range nav.Destinations() {
		if c == ControlTab(d) {
			return m.selectTab(d)
		}
	}

	switch c {
	case ControlQuit:
		return m, tea.Quit
	case ControlHelp:
		m.showFullHelp = !m.showFullHelp
		m.help.ShowAll = m.showFullHelp
		return m, nil
	case ControlNextTab, ControlPrevTab:
		ds := nav.Destinations()
		step := 1
		if c == ControlPrevTab {
			step = len(ds) - 1
		}
		return m.selectTab(ds[(nav.IndexOf(m.Active().Route())+step)%len(ds)])
	case ControlBack:
		popped := m.host.Current().ID
		outgoing := m.renderScreen(PlainTheme)
		sw, ok := m.host.Back()
		if !ok {
			return m, tea.Quit
		}
		delete(m.cursors, popped)
		m.syncInput()
		return m, m.startTransition(sw, outgoing)
	case ControlCursorUp:
		m.setCursor(m.cursor()-1, m.rows())
		return m, nil
	case ControlCursorDown:
		m.setCursor(m.cursor()+1, m.rows())
		return m, nil
	}

	switch m.Active() {
	case nav.Notes:
		return m.pressNotes(c)
	case nav.Tasks:
		return m.pressTasks(c)
	case nav.Calendar:
		return m.pressCalendar(c)
	}
	return m, nil
}

func (m Model) pressNotes(c Control) (tea.Model, tea.Cmd) {
	h := m.notesHolder()
	switch c {
	case ControlNotesInput:
		m.mode = modeInput
		return m, m.input.Focus()
	case ControlNotesAdd:
		if h.Add() {
			m.input.SetValue("")
			m.setCursor(0, h.Len())
			m.status = "Note saved"
			m.log.Debug().Int("notes", h.Len()).Msg("note added")
		}
	case ControlNoteDelete:
		ns := h.Notes()
		if len(ns) == 0 {
			return m, nil
		}
		h.Remove(ns[clamp(m.cursor(), 0, len(ns)-1)].ID)
		m.setCursor(m.cursor(), h.Len())
		m.status = "Note deleted"
	}
	return m, nil
}

func (m Model) pressTasks(c Control) (tea.Model, tea.Cmd) {
	h := m.tasksHolder()
	switch c {
	case ControlTasksInput:
		m.mode = modeInput
		return m, m.input.Focus()
	case ControlTasksAdd:
		if h.Add() {
			m.input.SetValue("")
			m.setCursor(h.Len()-1, h.Len())
			m.log.Debug().Int("tasks", h.Len()).Msg("task added")
		}
	case ControlTaskToggle:
		ts := h.Tasks()
		if len(ts) == 0 {
			return m, nil
		}
		wasDone := h.AllDone()
		h.Toggle(ts[clamp(m.cursor(), 0, len(ts)-1)].ID)
		if !wasDone && h.AllDone() {
			m.status = "All tasks done"
			return m, m.notifyAllDone(h.Len())
		}
	case ControlTaskDelete:
		ts := h.Tasks()
		if len(ts) == 0 {
			return m, nil
		}
		h.Remove(ts[clamp(m.cursor(), 0, len(ts)-1)].ID)
		m.setCursor(m.cursor(), h.Len())
	}
	return m, nil
}

func (m Model) pressCalendar(c Control) (tea.Model, tea.Cmd) {
	h := m.calendarHolder()
	switch c {
	case ControlCalendarPrev:
		h.Previous()
	case ControlCalendarNext:
		h.Next()
	case ControlCalendarToday:
		h.Reset()
	}
	return m, nil
}

func (m Model) selectTab(d nav.Destination) (tea.Model, tea.Cmd) {
	outgoing := m.renderScreen(PlainTheme)
	sw, ok := m.host.SelectTab(d)
	if !ok {
		return m, nil
	}
	m.syncInput()
	return m, m.startTransition(sw, outgoing)
}

func (m Model) notifyAllDone(total int) tea.Cmd {
	if !m.cfg.Notify.OnAllDone {
		return nil
	}
	n, log := m.notifier, m.log
	return func() tea.Msg {
		title, msg := notify.FormatAllTasksDone(total)
		if err := n.Notify(title, msg); err != nil {
			log.Warn().Err(err).Msg("notification failed")
			return notifyFailedMsg{err: err}
		}
		return nil
	}
}

func (m *Model) startTransition(sw nav.Switch, outgoing string) tea.Cmd {
	if m.cfg.Transition.ReducedMotion || m.cfg.Transition.Duration <= 0 {
		m.anim = transition{}
		return nil
	}
	m.animID++
	m.anim = transition{
		id:       m.animID,
		enter:    sw.EnterTransition(),
		exit:     sw.ExitTransition(),
		outgoing: outgoing,
		frames:   m.cfg.Transition.Frames,
	}
	return frameTick(m.anim.id, m.frameInterval())
}

func (m Model) frameInterval() time.Duration {
	frames := max(1, m.cfg.Transition.Frames)
	return m.cfg.Transition.Duration / time.Duration(frames)
}

// ---------- View ----------

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	top := m.renderTopBar()
	navBar := m.renderNavBar()
	status := m.renderStatusBar()

	innerH := m.height - lipgloss.Height(top) - lipgloss.Height(navBar) - lipgloss.Height(status)
	if innerH < 3 {
		innerH = 3
	}

	var body string
	switch {
	case m.anim.fadingOut() && m.anim.exit.Direction == nav.Neutral:
		body = m.st.Faint.Render(m.anim.outgoing)
	case m.anim.running() && m.anim.enter.Direction == nav.Neutral:
		body = m.st.Faint.Render(m.renderScreen(PlainTheme))
	case m.anim.running():
		body = compose(m.anim.outgoing, m.renderScreen(PlainTheme), m.anim.exit, m.anim.enter, m.anim.offset(m.width), m.width)
	default:
		body = m.renderScreen(m.st)
	}
	body = lipgloss.NewStyle().Width(m.width).Height(innerH).MaxHeight(innerH).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, top, body, navBar, status)
}

func (m Model) renderTopBar() string {
	cur := m.host.Current()
	left := fmt.Sprintf("%s • %s %s", version.GetShortVersion(), cur.Destination.Icon(), cur.Destination.Title())
	prev := "previously viewed: " + cur.From.Title()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(prev) - 2
	if gap < 1 {
		gap = 1
	}
	return m.st.TopBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + prev)
}

func (m Model) renderNavBar() string {
	var tabs []string
	for i, d := range nav.Destinations() {
		label := fmt.Sprintf("%d %s %s", i+1, d.Icon(), d.Title())
		if d == m.Active() {
			tabs = append(tabs, m.st.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.st.TabIdle.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return m.st.NavBar.Width(m.width).Render(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row))
}

func (m Model) renderStatusBar() string {
	var line string
	switch {
	case m.status != "" && m.statusErr:
		line = m.st.Error.Render(m.status)
	case m.status != "":
		line = m.st.Success.Render(m.status)
	case m.mode == modeInput:
		line = m.help.ShortHelpView(m.keys.inputHelp())
	default:
		k := m.keys
		k.active = m.Active()
		line = m.help.View(k)
	}
	return m.st.StatusBar.Width(m.width).Render(line)
}

func (m Model) renderScreen(st Theme) string {
	switch m.Active() {
	case nav.Tasks:
		return m.renderTasks(st)
	case nav.Calendar:
		return m.renderCalendar(st)
	default:
		return m.renderNotes(st)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
