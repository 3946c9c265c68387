package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	closeToTray   *widget.Check
	startHidden   *widget.Check
	trayCountdown *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	closeToTray := widget.NewCheck("Keep running in the tray when the window closes", nil)
	startHidden := widget.NewCheck("Start with the window hidden", nil)
	trayCountdown := widget.NewCheck("Show the countdown in the tray menu", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Window", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		closeToTray,
		startHidden,
		trayCountdown,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 200))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		closeToTray:   closeToTray,
		startHidden:   startHidden,
		trayCountdown: trayCountdown,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.closeToTray.SetChecked(settings.CloseToTray)
	prefs.startHidden.SetChecked(settings.StartHidden)
	prefs.trayCountdown.SetChecked(settings.TrayCountdown)
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() Settings {
	return Settings{
		CloseToTray:   prefs.closeToTray.Checked,
		StartHidden:   prefs.startHidden.Checked,
		TrayCountdown: prefs.trayCountdown.Checked,
	}
}
