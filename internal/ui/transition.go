package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ramanasai/dailyhub/internal/nav"
)

// transition is an in-flight tab animation. id guards against frame ticks
// left over from an earlier transition. outgoing is the plain render of
// the screen that was replaced.
type transition struct {
	id       int
	enter    nav.Transition
	exit     nav.Transition
	outgoing string
	frame    int
	frames   int
}

type frameMsg struct{ id int }

func (t transition) running() bool { return t.frames > 0 && t.frame < t.frames }

// offset is the horizontal shift, in columns, of the entering screen.
func (t transition) offset(width int) int {
	if !t.running() || width <= 0 {
		return 0
	}
	return width * (t.frames - t.frame) / t.frames
}

// fadingOut reports whether a Neutral transition still shows the old screen.
func (t transition) fadingOut() bool { return t.running() && t.frame*2 < t.frames }

func frameTick(id int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return frameMsg{id: id} })
}

// layer is a run of text placed at a column of the frame.
type layer struct {
	col  int
	text []rune
}

// enterLayer places one line of the entering screen. Forward content comes
// in from the right, Backward from the left.
func enterLayer(line []rune, dir nav.Direction, offset, width int) layer {
	switch dir {
	case nav.Forward:
		return layer{col: offset, text: clip(line, width-offset)}
	case nav.Backward:
		return layer{text: clip(drop(line, offset), width)}
	}
	return layer{text: clip(line, width)}
}

// exitLayer places one line of the replaced screen. It moves the same way
// as the entering one and is pushed out by the columns the entering screen
// already covers.
func exitLayer(line []rune, dir nav.Direction, offset, width int) layer {
	shift := width - offset
	switch dir {
	case nav.Forward:
		return layer{text: clip(drop(line, shift), offset)}
	case nav.Backward:
		return layer{col: shift, text: clip(line, offset)}
	}
	return layer{}
}

// compose draws one animation frame of plain text within width.
func compose(outgoing, incoming string, exit, enter nav.Transition, offset, width int) string {
	if offset <= 0 || width <= 0 {
		return incoming
	}
	out := strings.Split(outgoing, "\n")
	in := strings.Split(incoming, "\n")
	lines := make([]string, max(len(out), len(in)))
	for i := range lines {
		row := []rune(strings.Repeat(" ", width))
		if i < len(out) {
			paint(row, exitLayer([]rune(out[i]), exit.Direction, offset, width))
		}
		if i < len(in) {
			paint(row, enterLayer([]rune(in[i]), enter.Direction, offset, width))
		}
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

func paint(row []rune, l layer) {
	for i, r := range l.text {
		if c := l.col + i; c >= 0 && c < len(row) {
			row[c] = r
		}
	}
}

func clip(r []rune, n int) []rune {
	if n <= 0 {
		return nil
	}
	if len(r) > n {
		return r[:n]
	}
	return r
}

func drop(r []rune, n int) []rune {
	if n >= len(r) {
		return nil
	}
	return r[max(n, 0):]
}
