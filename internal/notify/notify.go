package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier raises desktop notifications.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends notifications through the OS notification service.
type Desktop struct{}

func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Nop drops notifications.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }

func FormatAllTasksDone(total int) (string, string) {
	title := "All tasks done"
	noun := "tasks"
	if total == 1 {
		noun = "task"
	}
	msg := fmt.Sprintf("You checked off %d %s. Nice work!", total, noun)
	return title, msg
}
