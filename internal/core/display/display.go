// Package display turns timer snapshots into the values every view renders.
package display

import (
	"fmt"
	"math"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
)

// RingRadius is the radius of the progress ring, in layout units.
const RingRadius = 120.0

// Model is the rendered form of a timer snapshot.
type Model struct {
	TimeText         string
	ProgressFraction float64
	LabelText        string
	ActiveTab        model.Mode
	ButtonText       string
	CompletedText    string
}

// Project maps state to its display values. It has no hidden inputs.
func Project(state timer.State) Model {
	return Model{
		TimeText:         FormatClock(state.Remaining),
		ProgressFraction: progressFraction(state.Total, state.Remaining),
		LabelText:        Label(state.Mode),
		ActiveTab:        state.Mode,
		ButtonText:       buttonText(state.Running),
		CompletedText:    fmt.Sprintf("Completed: %d", state.CompletedFocus),
	}
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Label returns the headline shown for mode.
func Label(mode model.Mode) string {
	switch mode {
	case model.ModeFocus:
		return "Focus"
	case model.ModeShortBreak:
		return "Take a short break"
	case model.ModeLongBreak:
		return "Take a long break"
	default:
		return ""
	}
}

// TabTitle returns the short selector caption for mode.
func TabTitle(mode model.Mode) string {
	switch mode {
	case model.ModeFocus:
		return "Focus"
	case model.ModeShortBreak:
		return "Short Break"
	case model.ModeLongBreak:
		return "Long Break"
	default:
		return ""
	}
}

// Circumference returns the length of the progress ring.
func Circumference() float64 {
	return 2 * math.Pi * RingRadius
}

// DashOffset is the unfilled part of a ring of the given circumference.
func (display Model) DashOffset(circumference float64) float64 {
	return circumference * (1 - display.ProgressFraction)
}

func progressFraction(total, remaining int) float64 {
	if total <= 0 {
		return 1
	}
	fraction := float64(total-remaining) / float64(total)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

func buttonText(running bool) string {
	if running {
		return "Pause"
	}
	return "Start"
}
