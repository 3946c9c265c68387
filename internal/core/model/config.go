package model

import "time"

// Mode identifies one of the three timer phases.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Modes lists every mode in tab order.
var Modes = []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}

// Valid reports whether mode is one of the known modes.
func (mode Mode) Valid() bool {
	switch mode {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

// Durations holds the nominal length of each mode.
type Durations struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns the classic 25/5/15 minute presets.
func DefaultDurations() Durations {
	return Durations{
		Focus:      25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// Seconds returns the whole-second length of mode, or 0 for unknown modes.
func (durations Durations) Seconds(mode Mode) int {
	switch mode {
	case ModeFocus:
		return int(durations.Focus / time.Second)
	case ModeShortBreak:
		return int(durations.ShortBreak / time.Second)
	case ModeLongBreak:
		return int(durations.LongBreak / time.Second)
	default:
		return 0
	}
}

// Next returns the mode entered automatically once mode runs out.
// Long breaks are never chosen automatically.
func (durations Durations) Next(mode Mode) Mode {
	if mode == ModeFocus {
		return ModeShortBreak
	}
	return ModeFocus
}
