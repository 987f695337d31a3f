package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozen() func() time.Time {
	at := time.Date(2026, 10, 18, 8, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestAddTrimsAndPrepends(t *testing.T) {
	h := New(frozen())
	h.SetInput("  first  ")
	require.True(t, h.Add())
	assert.Equal(t, "", h.Input())

	require.True(t, h.AddBody("second"))

	got := h.Notes()
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Body)
	assert.Equal(t, "first", got[1].Body)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.False(t, got[1].CreatedAt.IsZero())
}

func TestAddBlankIsNoop(t *testing.T) {
	h := New(frozen())
	h.SetInput("   \t")
	assert.False(t, h.Add())
	assert.Equal(t, "   \t", h.Input(), "draft is kept when nothing was added")
	assert.False(t, h.AddBody(""))
	assert.Equal(t, 0, h.Len())
}

func TestRemove(t *testing.T) {
	h := New(frozen())
	h.AddBody("a")
	h.AddBody("b")
	h.AddBody("c")
	ns := h.Notes()

	h.Remove(ns[1].ID)
	got := h.Notes()
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Body)
	assert.Equal(t, "a", got[1].Body)

	h.Remove(-1)
	assert.Equal(t, 2, h.Len())
}

func TestNotesReturnsCopy(t *testing.T) {
	h := New(frozen())
	h.AddBody("a")
	ns := h.Notes()
	ns[0].Body = "changed"
	assert.Equal(t, "a", h.Notes()[0].Body)
}
