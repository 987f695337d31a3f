package nav

import (
	"github.com/rs/zerolog"
)

// State is the lifecycle state of a back-stack entry.
type State int

const (
	Inactive State = iota
	Active
	Suspended
	Destroyed
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Suspended:
		return "suspended"
	case Destroyed:
		return "destroyed"
	default:
		return "inactive"
	}
}

// Entry is one screen on the back stack. Holder is the tab-scoped state
// created by the host's HolderFactory.
type Entry struct {
	ID          int
	Destination Destination
	From        Destination
	State       State
	Holder      any
}

// HolderFactory creates the state holder for a destination's first visit.
type HolderFactory func(Destination) any

// Switch describes one completed navigation.
type Switch struct {
	From      Destination
	To        Destination
	Direction Direction
	Pop       bool
}

// EnterTransition is the animation of the screen being shown.
func (s Switch) EnterTransition() Transition {
	return Transition{Direction: s.Direction, Enter: true}
}

// ExitTransition is the animation of the screen being replaced.
func (s Switch) ExitTransition() Transition {
	return Transition{Direction: s.Direction}
}

// Host is a single-container navigator. Tab selection pops back to the
// start destination while saving the popped entries, and restores a tab's
// saved state when it is selected again.
type Host struct {
	start   Destination
	stack   []*Entry
	saved   map[Destination]*Entry
	gone    map[Destination]*Entry
	factory HolderFactory
	nextID  int
	onExit  func()
	log     zerolog.Logger
}

type HostOption func(*Host)

// WithExitHandler registers the callback that receives exit requests
// raised by Back on the start destination.
func WithExitHandler(fn func()) HostOption {
	return func(h *Host) { h.onExit = fn }
}

func WithLogger(l zerolog.Logger) HostOption {
	return func(h *Host) { h.log = l }
}

// NewHost builds a host whose back stack holds the active start entry.
func NewHost(factory HolderFactory, opts ...HostOption) *Host {
	if factory == nil {
		factory = func(Destination) any { return nil }
	}
	h := &Host{
		start:   Notes,
		saved:   map[Destination]*Entry{},
		gone:    map[Destination]*Entry{},
		factory: factory,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	root := h.newEntry(Intent{Target: h.start, From: h.start})
	root.State = Active
	h.stack = []*Entry{root}
	return h
}

func (h *Host) newEntry(in Intent) *Entry {
	h.nextID++
	delete(h.gone, in.Target)
	return &Entry{
		ID:          h.nextID,
		Destination: in.Target,
		From:        in.From,
		State:       Inactive,
		Holder:      h.factory(in.Target),
	}
}

// Current is the entry on top of the back stack.
func (h *Host) Current() *Entry { return h.stack[len(h.stack)-1] }

// BackStack returns the destinations on the stack, bottom first.
func (h *Host) BackStack() []Destination {
	out := make([]Destination, len(h.stack))
	for i, e := range h.stack {
		out[i] = e.Destination
	}
	return out
}

// SavedRoutes lists the destinations whose state is saved off-stack, in
// tab order.
func (h *Host) SavedRoutes() []Destination {
	var out []Destination
	for _, d := range order {
		if _, ok := h.saved[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// State reports the lifecycle state of d's entry, on the stack or saved.
func (h *Host) State(d Destination) State {
	for _, e := range h.stack {
		if e.Destination == d {
			return e.State
		}
	}
	if e, ok := h.saved[d]; ok {
		return e.State
	}
	if e, ok := h.gone[d]; ok {
		return e.State
	}
	return Inactive
}

// Holder returns the state holder for d if its entry is alive.
func (h *Host) Holder(d Destination) (any, bool) {
	for _, e := range h.stack {
		if e.Destination == d {
			return e.Holder, true
		}
	}
	if e, ok := h.saved[d]; ok {
		return e.Holder, true
	}
	return nil, false
}

// SelectTab navigates to d from the current destination, as a tap on the
// bottom bar does. Selecting the current tab is a no-op.
func (h *Host) SelectTab(d Destination) (Switch, bool) {
	return h.Navigate(Intent{Target: d, From: h.Current().Destination})
}

// Navigate applies the intent with pop-to-start, save, single-top and
// restore semantics. It reports false when Target is already current.
func (h *Host) Navigate(in Intent) (Switch, bool) {
	if !in.Target.valid() {
		in.Target = h.start
	}
	if !in.From.valid() {
		in.From = h.start
	}
	prev := h.Current()
	if in.Target == prev.Destination {
		return Switch{}, false
	}

	// pop up to start, saving state
	for len(h.stack) > 1 {
		top := h.stack[len(h.stack)-1]
		h.stack = h.stack[:len(h.stack)-1]
		top.State = Suspended
		h.saved[top.Destination] = top
	}
	root := h.stack[0]

	var entering *Entry
	switch {
	case in.Target == root.Destination:
		entering = root
	default:
		if e, ok := h.saved[in.Target]; ok {
			delete(h.saved, in.Target)
			entering = e
		} else {
			entering = h.newEntry(in)
		}
		h.stack = append(h.stack, entering)
	}
	if root != entering {
		root.State = Suspended
	}
	entering.From = in.From
	entering.State = Active

	sw := Switch{
		From:      prev.Destination,
		To:        entering.Destination,
		Direction: TransitionDirection(entering.From.Route(), entering.Destination.Route()),
	}
	h.log.Debug().
		Str("route", in.Route()).
		Str("direction", sw.Direction.String()).
		Int("depth", len(h.stack)).
		Msg("navigate")
	return sw, true
}

// Back pops the top entry. On the start destination nothing is popped;
// the exit handler is invoked and Back reports false.
func (h *Host) Back() (Switch, bool) {
	if len(h.stack) <= 1 {
		h.log.Debug().Msg("exit requested")
		if h.onExit != nil {
			h.onExit()
		}
		return Switch{}, false
	}
	popped := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	popped.State = Destroyed
	popped.Holder = nil
	delete(h.saved, popped.Destination)
	h.gone[popped.Destination] = popped

	revealed := h.Current()
	revealed.State = Active

	sw := Switch{
		From:      popped.Destination,
		To:        revealed.Destination,
		Direction: PopDirection(popped.Destination.Route(), revealed.Destination.Route()),
		Pop:       true,
	}
	h.log.Debug().
		Str("popped", popped.Destination.Route()).
		Str("direction", sw.Direction.String()).
		Int("depth", len(h.stack)).
		Msg("back")
	return sw, true
}
