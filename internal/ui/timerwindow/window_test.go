package timerwindow

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
)

type recordingController struct {
	selected []model.Mode
	toggles  int
	resets   int
}

func (controller *recordingController) SelectMode(mode model.Mode) {
	controller.selected = append(controller.selected, mode)
}

func (controller *recordingController) Toggle() { controller.toggles++ }

func (controller *recordingController) Reset() { controller.resets++ }

func TestWindow_RenderShowsView(t *testing.T) {
	app := test.NewTempApp(t)
	window := New(app, &recordingController{})

	view := display.Project(timer.State{Mode: model.ModeShortBreak, Remaining: 65, Total: 300, Running: true, CompletedFocus: 2})
	window.Render(view)

	assert.Equal(t, "01:05", window.timeText.Text)
	assert.Equal(t, "Take a short break", window.label.Text)
	assert.Equal(t, "Pause", window.toggle.Text)
	assert.Equal(t, "Completed: 2", window.completed.Text)
	assert.Equal(t, widget.HighImportance, window.tabs[model.ModeShortBreak].Importance)
	assert.Equal(t, widget.LowImportance, window.tabs[model.ModeFocus].Importance)
	assert.Equal(t, view, window.View())
}

func TestWindow_ButtonsRaiseEvents(t *testing.T) {
	app := test.NewTempApp(t)
	controller := &recordingController{}
	window := New(app, controller)
	window.Render(display.Project(timer.State{Mode: model.ModeFocus, Remaining: 1500, Total: 1500}))

	test.Tap(window.toggle)
	test.Tap(window.reset)
	test.Tap(window.tabs[model.ModeLongBreak])

	assert.Equal(t, 1, controller.toggles)
	assert.Equal(t, 1, controller.resets)
	assert.Equal(t, []model.Mode{model.ModeLongBreak}, controller.selected)
}

func TestRingImage_FillsProportionally(t *testing.T) {
	colors := RingColors{Filled: modeColors[model.ModeFocus], Track: trackColor}
	const side = 101
	// Probe points in the middle of the ring band.
	center := side / 2
	top := [2]int{center, 4}
	right := [2]int{side - 5, center}
	left := [2]int{4, center}

	untouched := RingImage(side, side, 0, colors)
	assert.Equal(t, trackColor, untouched.At(top[0], top[1]))
	assert.Equal(t, trackColor, untouched.At(right[0], right[1]))

	half := RingImage(side, side, 0.5, colors)
	assert.Equal(t, colors.Filled, half.At(right[0], right[1]))
	assert.Equal(t, trackColor, half.At(left[0], left[1]))

	full := RingImage(side, side, 1, colors)
	assert.Equal(t, colors.Filled, full.At(left[0], left[1]))
	assert.Equal(t, colors.Filled, full.At(top[0], top[1]))
}

func TestRingImage_CenterIsTransparent(t *testing.T) {
	img := RingImage(80, 80, 1, RingColors{Filled: trackColor, Track: trackColor})

	_, _, _, alpha := img.At(40, 40).RGBA()
	assert.Zero(t, alpha)
}

func TestRingImage_EmptySize(t *testing.T) {
	img := RingImage(0, 0, 0.5, RingColors{})

	assert.True(t, img.Bounds().Empty())
}
