package timerwindow

import (
	"image"
	"image/color"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Controller receives the window's input events.
type Controller interface {
	SelectMode(mode model.Mode)
	Toggle()
	Reset()
}

var modeColors = map[model.Mode]color.NRGBA{
	model.ModeFocus:      {R: 229, G: 72, B: 59, A: 255},
	model.ModeShortBreak: {R: 63, G: 157, B: 74, A: 255},
	model.ModeLongBreak:  {R: 59, G: 130, B: 246, A: 255},
}

var (
	trackColor = color.NRGBA{R: 229, G: 231, B: 235, A: 255}
	textColor  = color.NRGBA{R: 31, G: 41, B: 55, A: 255}
)

const ringSide = float32(display.RingRadius*2 + 16)

// Window is the main timer window.
type Window struct {
	window    fyne.Window
	tabs      map[model.Mode]*widget.Button
	ring      *canvas.Raster
	timeText  *canvas.Text
	label     *canvas.Text
	toggle    *widget.Button
	reset     *widget.Button
	completed *widget.Label
	view      display.Model
}

// New creates the timer window. Call Render before showing it.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timerWindow := &Window{
		window: window,
		tabs:   make(map[model.Mode]*widget.Button, len(model.Modes)),
	}

	tabRow := container.NewHBox(layout.NewSpacer())
	for _, mode := range model.Modes {
		mode := mode
		tab := widget.NewButton(display.TabTitle(mode), func() {
			controller.SelectMode(mode)
		})
		timerWindow.tabs[mode] = tab
		tabRow.Add(tab)
	}
	tabRow.Add(layout.NewSpacer())

	timerWindow.ring = canvas.NewRaster(timerWindow.drawRing)
	timerWindow.ring.SetMinSize(fyne.NewSize(ringSide, ringSide))

	timerWindow.timeText = canvas.NewText("--:--", textColor)
	timerWindow.timeText.Alignment = fyne.TextAlignCenter
	timerWindow.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerWindow.timeText.TextSize = 48

	timerWindow.label = canvas.NewText("", textColor)
	timerWindow.label.Alignment = fyne.TextAlignCenter
	timerWindow.label.TextSize = 18

	timerWindow.toggle = widget.NewButton("Start", controller.Toggle)
	timerWindow.toggle.Importance = widget.HighImportance
	timerWindow.reset = widget.NewButton("Reset", controller.Reset)
	timerWindow.completed = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	dial := container.NewStack(timerWindow.ring, container.NewCenter(timerWindow.timeText))
	controls := container.NewHBox(layout.NewSpacer(), timerWindow.toggle, timerWindow.reset, layout.NewSpacer())

	window.SetContent(container.NewPadded(container.NewVBox(
		tabRow,
		container.NewCenter(dial),
		timerWindow.label,
		controls,
		timerWindow.completed,
	)))
	window.Resize(fyne.NewSize(360, 460))
	window.SetFixedSize(true)

	return timerWindow
}

// Render applies a projected snapshot. It must run on the Fyne thread.
func (timerWindow *Window) Render(view display.Model) {
	previous := timerWindow.view
	timerWindow.view = view

	timerWindow.timeText.Text = view.TimeText
	timerWindow.timeText.Refresh()
	timerWindow.label.Text = view.LabelText
	timerWindow.label.Refresh()
	timerWindow.toggle.SetText(view.ButtonText)
	timerWindow.completed.SetText(view.CompletedText)

	if previous.ActiveTab != view.ActiveTab || previous.ActiveTab == "" {
		for mode, tab := range timerWindow.tabs {
			if mode == view.ActiveTab {
				tab.Importance = widget.HighImportance
			} else {
				tab.Importance = widget.LowImportance
			}
			tab.Refresh()
		}
	}
	if previous.ProgressFraction != view.ProgressFraction || previous.ActiveTab != view.ActiveTab {
		timerWindow.ring.Refresh()
	}
}

// View returns the last rendered model.
func (timerWindow *Window) View() display.Model {
	return timerWindow.view
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
}

// Hide hides the window without closing it.
func (timerWindow *Window) Hide() {
	timerWindow.window.Hide()
}

// SetCloseIntercept replaces the default close behaviour.
func (timerWindow *Window) SetCloseIntercept(callback func()) {
	timerWindow.window.SetCloseIntercept(callback)
}

// SetMaster marks the window as the one whose closing quits the app.
func (timerWindow *Window) SetMaster() {
	timerWindow.window.SetMaster()
}

func (timerWindow *Window) drawRing(width, height int) image.Image {
	filled, ok := modeColors[timerWindow.view.ActiveTab]
	if !ok {
		filled = modeColors[model.ModeFocus]
	}
	return RingImage(width, height, timerWindow.view.ProgressFraction, RingColors{
		Filled: filled,
		Track:  trackColor,
	})
}
