package preferences

// Settings defines editable window preferences.
type Settings struct {
	// CloseToTray hides the timer window on close instead of quitting.
	CloseToTray bool
	// StartHidden keeps the window hidden at launch; the tray stays available.
	StartHidden bool
	// TrayCountdown shows the remaining time in the tray status item.
	TrayCountdown bool
}

// DefaultSettings returns default settings for the timer.
func DefaultSettings() Settings {
	return Settings{
		CloseToTray:   true,
		StartHidden:   false,
		TrayCountdown: true,
	}
}
