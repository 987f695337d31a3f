package nav

// Direction is the slide direction of a tab transition. It is derived from
// the fixed tab order and never stored.
type Direction int

const (
	Neutral Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "neutral"
	}
}

// TransitionDirection compares the positions of two routes. Arguments are
// stripped first; unknown routes count as index 0.
func TransitionDirection(fromRoute, toRoute string) Direction {
	from, to := IndexOf(fromRoute), IndexOf(toRoute)
	switch {
	case to > from:
		return Forward
	case to < from:
		return Backward
	default:
		return Neutral
	}
}

// Reversed swaps Forward and Backward.
func (d Direction) Reversed() Direction {
	switch d {
	case Forward:
		return Backward
	case Backward:
		return Forward
	default:
		return Neutral
	}
}

// PopDirection is the direction used when popped is removed and revealed
// comes back: the inverse of the push from revealed to popped.
func PopDirection(poppedRoute, revealedRoute string) Direction {
	return TransitionDirection(revealedRoute, poppedRoute).Reversed()
}

// Transition is one side of a tab animation: the entering screen or the
// screen it replaces. Both sides of a switch share one direction, so a
// Forward switch slides the old screen out to the left while the new one
// comes in from the right.
type Transition struct {
	Direction Direction
	Enter     bool
}
