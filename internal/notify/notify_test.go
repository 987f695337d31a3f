package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAllTasksDone(t *testing.T) {
	title, msg := FormatAllTasksDone(3)
	assert.Equal(t, "All tasks done", title)
	assert.Equal(t, "You checked off 3 tasks. Nice work!", msg)

	_, msg = FormatAllTasksDone(1)
	assert.Equal(t, "You checked off 1 task. Nice work!", msg)
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	assert.NoError(t, n.Notify("t", "m"))
}
