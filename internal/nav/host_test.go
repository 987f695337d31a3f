package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draft struct {
	dest Destination
	text string
}

func newTestHost(t *testing.T, opts ...HostOption) (*Host, map[Destination]int) {
	t.Helper()
	created := map[Destination]int{}
	h := NewHost(func(d Destination) any {
		created[d]++
		return &draft{dest: d}
	}, opts...)
	return h, created
}

func TestNewHostStartsOnNotes(t *testing.T) {
	h, created := newTestHost(t)
	require.Equal(t, Notes, h.Current().Destination)
	assert.Equal(t, Active, h.Current().State)
	assert.Equal(t, []Destination{Notes}, h.BackStack())
	assert.Equal(t, 1, created[Notes])
	assert.Empty(t, h.SavedRoutes())
}

func TestSelectTabCurrentIsNoop(t *testing.T) {
	h, _ := newTestHost(t)
	_, ok := h.SelectTab(Notes)
	assert.False(t, ok)
	assert.Equal(t, []Destination{Notes}, h.BackStack())
}

func TestSelectTabDirections(t *testing.T) {
	h, _ := newTestHost(t)

	sw, ok := h.SelectTab(Tasks)
	require.True(t, ok)
	assert.Equal(t, Switch{From: Notes, To: Tasks, Direction: Forward}, sw)
	assert.Equal(t, Notes, h.Current().From)

	sw, ok = h.SelectTab(Calendar)
	require.True(t, ok)
	assert.Equal(t, Forward, sw.Direction)
	assert.Equal(t, Tasks, h.Current().From)

	sw, ok = h.SelectTab(Tasks)
	require.True(t, ok)
	assert.Equal(t, Backward, sw.Direction)

	sw, ok = h.SelectTab(Notes)
	require.True(t, ok)
	assert.Equal(t, Backward, sw.Direction)
	assert.Equal(t, Tasks, h.Current().From)
}

func TestTabSwitchPreservesState(t *testing.T) {
	h, created := newTestHost(t)

	h.SelectTab(Tasks)
	h.Current().Holder.(*draft).text = "unsaved input"

	h.SelectTab(Calendar)
	assert.Equal(t, []Destination{Notes, Calendar}, h.BackStack())
	assert.Equal(t, []Destination{Tasks}, h.SavedRoutes())
	assert.Equal(t, Suspended, h.State(Tasks))

	h.SelectTab(Notes)
	assert.Equal(t, []Destination{Notes}, h.BackStack())
	assert.Equal(t, []Destination{Tasks, Calendar}, h.SavedRoutes())
	assert.Equal(t, Active, h.State(Notes))

	h.SelectTab(Tasks)
	assert.Equal(t, Active, h.State(Tasks))
	assert.Equal(t, "unsaved input", h.Current().Holder.(*draft).text)
	assert.Equal(t, 1, created[Tasks], "restored holder must not be recreated")
	assert.Equal(t, []Destination{Calendar}, h.SavedRoutes())
}

func TestBackFromCalendarThenExit(t *testing.T) {
	exits := 0
	h, _ := newTestHost(t, WithExitHandler(func() { exits++ }))

	h.SelectTab(Tasks)
	h.SelectTab(Calendar)
	calendarHolder := h.Current().Holder

	sw, ok := h.Back()
	require.True(t, ok)
	assert.True(t, sw.Pop)
	assert.Equal(t, Calendar, sw.From)
	assert.Equal(t, Notes, sw.To)
	assert.Equal(t, Backward, sw.Direction)
	assert.Equal(t, []Destination{Notes}, h.BackStack())
	assert.Equal(t, Destroyed, h.State(Calendar))
	assert.Equal(t, 0, exits)

	_, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, 1, exits)
	assert.Equal(t, []Destination{Notes}, h.BackStack())

	h.SelectTab(Calendar)
	assert.NotSame(t, calendarHolder, h.Current().Holder, "popped state must be discarded")
}

func TestBackKeepsOtherSavedState(t *testing.T) {
	h, _ := newTestHost(t)
	h.SelectTab(Tasks)
	h.Current().Holder.(*draft).text = "keep me"
	h.SelectTab(Calendar)
	h.Back()

	holder, ok := h.Holder(Tasks)
	require.True(t, ok)
	assert.Equal(t, "keep me", holder.(*draft).text)
}

func TestBackWithoutExitHandler(t *testing.T) {
	h, _ := newTestHost(t)
	assert.NotPanics(t, func() {
		_, ok := h.Back()
		assert.False(t, ok)
	})
}

func TestNavigateInvalidIntentFallsBackToStart(t *testing.T) {
	h, _ := newTestHost(t)
	h.SelectTab(Calendar)

	sw, ok := h.Navigate(Intent{Target: Destination(9), From: Destination(-1)})
	require.True(t, ok)
	assert.Equal(t, Notes, sw.To)
	assert.Equal(t, Neutral, sw.Direction)
	assert.Equal(t, Notes, h.Current().From)
}

func TestNavigateParsedRoute(t *testing.T) {
	h, _ := newTestHost(t)
	sw, ok := h.Navigate(ParseIntent("calendar?fromRoute=tasks"))
	require.True(t, ok)
	assert.Equal(t, Forward, sw.Direction)
	assert.Equal(t, Tasks, h.Current().From)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "inactive", Inactive.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "suspended", Suspended.String())
	assert.Equal(t, "destroyed", Destroyed.String())
	assert.Equal(t, "forward", Forward.String())
}

func TestSwitchTransitionsShareDirection(t *testing.T) {
	h, _ := newTestHost(t)
	sw, ok := h.SelectTab(Calendar)
	require.True(t, ok)
	assert.Equal(t, Transition{Direction: Forward, Enter: true}, sw.EnterTransition())
	assert.Equal(t, Transition{Direction: Forward}, sw.ExitTransition())

	sw, ok = h.Back()
	require.True(t, ok)
	assert.True(t, sw.Pop)
	assert.Equal(t, Transition{Direction: Backward, Enter: true}, sw.EnterTransition())
	assert.Equal(t, Transition{Direction: Backward}, sw.ExitTransition())
}
