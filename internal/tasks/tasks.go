// Package tasks is the Tasks tab state: a draft input and an
// oldest-first checklist.
package tasks

import (
	"strings"
	"time"

	"github.com/ramanasai/dailyhub/internal/idgen"
)

type Item struct {
	ID     int64
	Title  string
	IsDone bool
}

type Holder struct {
	input string
	tasks []Item
	ids   *idgen.Sequence
}

func New(now func() time.Time) *Holder {
	return &Holder{ids: idgen.New(now)}
}

func (h *Holder) Input() string         { return h.input }
func (h *Holder) SetInput(value string) { h.input = value }

// Add appends the draft as a task and clears it. A blank draft is ignored.
func (h *Holder) Add() bool {
	if !h.AddTitle(h.input) {
		return false
	}
	h.input = ""
	return true
}

func (h *Holder) AddTitle(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	id, _ := h.ids.Next()
	h.tasks = append(h.tasks, Item{ID: id, Title: title})
	return true
}

// Toggle flips the done flag of the task with id. Unknown ids are ignored.
func (h *Holder) Toggle(id int64) {
	for i := range h.tasks {
		if h.tasks[i].ID == id {
			h.tasks[i].IsDone = !h.tasks[i].IsDone
			return
		}
	}
}

func (h *Holder) Remove(id int64) {
	out := h.tasks[:0]
	for _, t := range h.tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	h.tasks = out
}

func (h *Holder) Tasks() []Item {
	out := make([]Item, len(h.tasks))
	copy(out, h.tasks)
	return out
}

func (h *Holder) Len() int { return len(h.tasks) }

func (h *Holder) DoneCount() int {
	n := 0
	for _, t := range h.tasks {
		if t.IsDone {
			n++
		}
	}
	return n
}

// CompletionRatio is done/total, or 0 for an empty list.
func (h *Holder) CompletionRatio() float64 {
	if len(h.tasks) == 0 {
		return 0
	}
	return float64(h.DoneCount()) / float64(len(h.tasks))
}

// AllDone reports a non-empty list with every task done.
func (h *Holder) AllDone() bool {
	return len(h.tasks) > 0 && h.DoneCount() == len(h.tasks)
}
