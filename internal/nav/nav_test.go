package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationsOrder(t *testing.T) {
	ds := Destinations()
	require.Len(t, ds, 3)
	assert.Equal(t, []Destination{Notes, Tasks, Calendar}, ds)

	ds[0] = Calendar
	assert.Equal(t, Notes, Destinations()[0], "caller must not mutate the registry")

	for i, d := range Destinations() {
		assert.Equal(t, i, IndexOf(d.Route()))
	}
}

func TestDestinationMetadata(t *testing.T) {
	assert.Equal(t, "notes", Notes.Route())
	assert.Equal(t, "Tasks", Tasks.Title())
	assert.Equal(t, "calendar?fromRoute={fromRoute}", Calendar.RoutePattern())
	assert.NotEmpty(t, Calendar.Icon())
	assert.Equal(t, "notes", Destination(42).Route())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		route string
		want  Destination
	}{
		{"notes", Notes},
		{"tasks", Tasks},
		{"calendar", Calendar},
		{"tasks?fromRoute=notes", Tasks},
		{"calendar?fromRoute=tasks&x=1", Calendar},
		{"", Notes},
		{"unknown", Notes},
		{"?fromRoute=tasks", Notes},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.route))
		})
	}
	assert.Equal(t, Resolve("tasks"), Resolve("tasks?fromRoute=notes"))
}

func TestStripArguments(t *testing.T) {
	assert.Equal(t, "tasks", StripArguments("tasks?fromRoute=calendar"))
	assert.Equal(t, "notes", StripArguments(""))
	assert.Equal(t, "whatever", StripArguments("whatever"))
}

func TestIndexOfDefaultsToZero(t *testing.T) {
	assert.Equal(t, 0, IndexOf("unknown"))
	assert.Equal(t, 0, IndexOf(""))
	assert.Equal(t, 2, IndexOf("calendar?fromRoute=notes"))
}

func TestTransitionDirectionAllPairs(t *testing.T) {
	for _, from := range Destinations() {
		for _, to := range Destinations() {
			got := TransitionDirection(from.Route(), to.Route())
			fi, ti := IndexOf(from.Route()), IndexOf(to.Route())
			switch {
			case ti > fi:
				assert.Equal(t, Forward, got, "%s -> %s", from, to)
			case ti < fi:
				assert.Equal(t, Backward, got, "%s -> %s", from, to)
			default:
				assert.Equal(t, Neutral, got, "%s -> %s", from, to)
			}
		}
	}
}

func TestTransitionDirectionFailSoft(t *testing.T) {
	assert.Equal(t, Neutral, TransitionDirection("", "notes"))
	assert.Equal(t, Forward, TransitionDirection("bogus", "tasks?fromRoute=bogus"))
	assert.Equal(t, Backward, TransitionDirection("calendar?fromRoute=tasks", "missing"))
}

func TestReversed(t *testing.T) {
	assert.Equal(t, Backward, Forward.Reversed())
	assert.Equal(t, Forward, Backward.Reversed())
	assert.Equal(t, Neutral, Neutral.Reversed())
	for _, d := range []Direction{Forward, Backward, Neutral} {
		assert.Equal(t, d, d.Reversed().Reversed())
	}
}

func TestPopDirectionInvertsPush(t *testing.T) {
	push := TransitionDirection("notes", "calendar")
	assert.Equal(t, Forward, push)
	assert.Equal(t, push.Reversed(), PopDirection("calendar", "notes"))
	assert.Equal(t, Neutral, PopDirection("tasks", "tasks"))
}

func TestIntentRoundTrip(t *testing.T) {
	in := Intent{Target: Tasks, From: Calendar}
	assert.Equal(t, "tasks?fromRoute=calendar", in.Route())
	assert.Equal(t, in, ParseIntent(in.Route()))
}

func TestParseIntentDefaults(t *testing.T) {
	assert.Equal(t, Intent{Target: Calendar, From: Notes}, ParseIntent("calendar"))
	assert.Equal(t, Intent{Target: Tasks, From: Notes}, ParseIntent("tasks?fromRoute=nowhere"))
	assert.Equal(t, Intent{Target: Notes, From: Notes}, ParseIntent(""))
}
