package timer

import "pomodoro/internal/core/model"

// State is a read-only snapshot of the countdown.
type State struct {
	Mode model.Mode
	// Remaining and Total are whole seconds.
	Remaining      int
	Total          int
	Running        bool
	CompletedFocus int
}

// EventType defines the type of Engine event.
type EventType string

const (
	EventModeSelected EventType = "mode_selected"
	EventStarted      EventType = "started"
	EventPaused       EventType = "paused"
	EventReset        EventType = "reset"
	EventTick         EventType = "tick"
	EventCompleted    EventType = "completed"
)

// Event is published after every state change.
type Event struct {
	Type  EventType
	State State
	// Finished is the mode that ran out, set on EventCompleted only.
	Finished model.Mode
}
