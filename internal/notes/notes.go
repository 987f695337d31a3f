// Package notes is the Notes tab state: a draft input and a newest-first
// list of notes.
package notes

import (
	"strings"
	"time"

	"github.com/ramanasai/dailyhub/internal/idgen"
)

type Entry struct {
	ID        int64
	Body      string
	CreatedAt time.Time
}

type Holder struct {
	input string
	notes []Entry
	ids   *idgen.Sequence
}

// New returns an empty holder. now may be nil.
func New(now func() time.Time) *Holder {
	return &Holder{ids: idgen.New(now)}
}

func (h *Holder) Input() string         { return h.input }
func (h *Holder) SetInput(value string) { h.input = value }

// Add saves the draft as a note and clears it. A blank draft is ignored.
func (h *Holder) Add() bool {
	if !h.AddBody(h.input) {
		return false
	}
	h.input = ""
	return true
}

// AddBody prepends a trimmed note. Blank bodies are ignored.
func (h *Holder) AddBody(body string) bool {
	body = strings.TrimSpace(body)
	if body == "" {
		return false
	}
	id, at := h.ids.Next()
	h.notes = append([]Entry{{ID: id, Body: body, CreatedAt: at}}, h.notes...)
	return true
}

// Remove deletes the note with id, if any.
func (h *Holder) Remove(id int64) {
	out := h.notes[:0]
	for _, n := range h.notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	h.notes = out
}

// Notes returns a copy of the notes, newest first.
func (h *Holder) Notes() []Entry {
	out := make([]Entry, len(h.notes))
	copy(out, h.notes)
	return out
}

func (h *Holder) Len() int { return len(h.notes) }
