// Package nav holds the tab registry, the transition direction rules and
// the navigation host that keeps each tab's back-stack entry alive.
package nav

import "strings"

// ArgFromRoute is the routing parameter carrying the previously active tab.
const ArgFromRoute = "fromRoute"

// Destination is one of the fixed top-level tabs.
type Destination int

const (
	Notes Destination = iota
	Tasks
	Calendar
)

type destinationMeta struct {
	route string
	title string
	icon  string
}

var meta = [...]destinationMeta{
	Notes:    {route: "notes", title: "Notes", icon: "✎"},
	Tasks:    {route: "tasks", title: "Tasks", icon: "✔"},
	Calendar: {route: "calendar", title: "Calendar", icon: "▦"},
}

var order = []Destination{Notes, Tasks, Calendar}

// Destinations returns the tabs in their fixed order.
func Destinations() []Destination {
	out := make([]Destination, len(order))
	copy(out, order)
	return out
}

func (d Destination) valid() bool { return d >= Notes && d <= Calendar }

// Route is the stable route id.
func (d Destination) Route() string {
	if !d.valid() {
		return meta[Notes].route
	}
	return meta[d].route
}

func (d Destination) Title() string {
	if !d.valid() {
		return meta[Notes].title
	}
	return meta[d].title
}

// Icon is an opaque glyph for the navigation bar.
func (d Destination) Icon() string {
	if !d.valid() {
		return meta[Notes].icon
	}
	return meta[d].icon
}

func (d Destination) String() string { return d.Route() }

// RoutePattern is the route template a destination is registered under.
func (d Destination) RoutePattern() string {
	return d.Route() + "?" + ArgFromRoute + "={" + ArgFromRoute + "}"
}

// StripArguments drops everything from the first '?'. An empty route
// strips to the start destination.
func StripArguments(route string) string {
	if route == "" {
		return Notes.Route()
	}
	base, _, _ := strings.Cut(route, "?")
	return base
}

// Resolve maps a route string, with or without arguments, to its
// destination. Unknown routes resolve to Notes.
func Resolve(route string) Destination {
	switch StripArguments(route) {
	case Tasks.Route():
		return Tasks
	case Calendar.Route():
		return Calendar
	default:
		return Notes
	}
}

// IndexOf returns the position of routeID in the fixed order, or 0.
func IndexOf(routeID string) int {
	base := StripArguments(routeID)
	for i, d := range order {
		if d.Route() == base {
			return i
		}
	}
	return 0
}
