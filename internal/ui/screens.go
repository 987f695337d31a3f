package ui

import (
	"fmt"
	"strings"

	"github.com/ramanasai/dailyhub/internal/calendar"
)

func (m Model) renderField(st Theme) string {
	if m.mode == modeInput {
		return m.input.View()
	}
	if v := m.input.Value(); v != "" {
		return st.Label.Render("> ") + v
	}
	return st.Hint.Render("> " + m.input.Placeholder + "  (i to write)")
}

func (m Model) renderNotes(st Theme) string {
	h := m.notesHolder()
	var b strings.Builder
	b.WriteString(st.Title.Render("Notes") + "\n\n")
	b.WriteString(m.renderField(st) + "\n\n")

	ns := h.Notes()
	if len(ns) == 0 {
		b.WriteString(st.Hint.Render("No notes yet."))
		return b.String()
	}
	cur := clamp(m.cursor(), 0, len(ns)-1)
	for i, n := range ns {
		marker := "  "
		body := n.Body
		if i == cur {
			marker = st.Cursor.Render("▸ ")
			body = st.Value.Render(body)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, body, st.Label.Render(n.CreatedAt.Format("Jan 02 15:04")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTasks(st Theme) string {
	h := m.tasksHolder()
	var b strings.Builder
	b.WriteString(st.Title.Render("Tasks") + "\n\n")
	b.WriteString(m.renderField(st) + "\n\n")

	ts := h.Tasks()
	if len(ts) == 0 {
		b.WriteString(st.Hint.Render("Nothing to do."))
		return b.String()
	}
	ratio := h.CompletionRatio()
	fmt.Fprintf(&b, "%s %d/%d done (%.0f%%)\n\n",
		progressBar(ratio, 20), h.DoneCount(), len(ts), ratio*100)

	cur := clamp(m.cursor(), 0, len(ts)-1)
	for i, t := range ts {
		marker := "  "
		if i == cur {
			marker = st.Cursor.Render("▸ ")
		}
		box, title := "[ ]", t.Title
		if t.IsDone {
			box, title = "[x]", st.Done.Render(title)
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, box, title)
	}
	return strings.TrimRight(b.String(), "\n")
}

func progressBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	filled = clamp(filled, 0, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func (m Model) renderCalendar(st Theme) string {
	h := m.calendarHolder()
	first := m.cfg.FirstWeekday()

	var b strings.Builder
	b.WriteString(st.Title.Render("Calendar") + "\n\n")
	fmt.Fprintf(&b, "  ‹  %s  ›\n\n", st.Value.Render(h.VisibleMonth().String()))

	for _, wd := range calendar.Weekdays(first) {
		b.WriteString(st.Label.Render(fmt.Sprintf(" %-3s", wd.String()[:2])))
	}
	b.WriteString("\n")

	for i, c := range h.Grid(first) {
		switch {
		case c.Day == 0:
			b.WriteString("    ")
		case c.IsToday:
			b.WriteString(" " + st.Today.Render(fmt.Sprintf("%2d", c.Day)) + " ")
		default:
			fmt.Fprintf(&b, " %2d ", c.Day)
		}
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(st.Hint.Render("Today: " + h.Today().Format("Mon, Jan 2 2006")))
	return b.String()
}
