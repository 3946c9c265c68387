package tray

import (
	"fmt"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWindow  func()
	OnToggle      func()
	OnReset       func()
	OnSelectMode  func(model.Mode)
	OnPreferences func()
	OnQuit        func()
}

// Icons holds the tray icon for each run state.
type Icons struct {
	Running fyne.Resource
	Paused  fyne.Resource
}

// Manager mirrors the timer controls in the system tray.
type Manager struct {
	app       App
	callbacks Callbacks
	icons     Icons
	countdown bool
	current   display.Model
	running   bool
	rendered  bool
}

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	return &Manager{
		app:       app,
		callbacks: callbacks,
		icons:     icons,
		countdown: true,
	}
}

// SetCountdown toggles the remaining time in the status line.
func (manager *Manager) SetCountdown(enabled bool) {
	manager.countdown = enabled
	if manager.rendered {
		manager.refreshMenu()
	}
}

// Render updates the tray from a projected timer snapshot.
func (manager *Manager) Render(view display.Model) {
	running := view.ButtonText == "Pause"
	if !manager.rendered || manager.running != running {
		manager.refreshIcon(running)
	}
	statusChanged := !manager.rendered ||
		manager.statusFor(manager.current) != manager.statusFor(view) ||
		manager.current.ButtonText != view.ButtonText ||
		manager.current.ActiveTab != view.ActiveTab

	manager.current = view
	manager.running = running
	manager.rendered = true
	if statusChanged {
		manager.refreshMenu()
	}
}

// Status returns the text of the status item.
func (manager *Manager) Status() string {
	return manager.statusFor(manager.current)
}

func (manager *Manager) statusFor(view display.Model) string {
	status := display.TabTitle(view.ActiveTab)
	if manager.countdown {
		status = fmt.Sprintf("%s %s", status, view.TimeText)
	}
	if view.ButtonText != "Pause" {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}

func (manager *Manager) refreshIcon(running bool) {
	icon := manager.icons.Paused
	if running {
		icon = manager.icons.Running
	}
	if icon != nil && manager.app != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(manager.buildMenu())
}

func (manager *Manager) buildMenu() *fyne.Menu {
	status := fyne.NewMenuItem(manager.Status(), nil)
	status.Disabled = true

	items := []*fyne.MenuItem{
		status,
		fyne.NewMenuItem("Show timer", manager.call(manager.callbacks.OnShowWindow)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(manager.current.ButtonText, manager.call(manager.callbacks.OnToggle)),
		fyne.NewMenuItem("Reset", manager.call(manager.callbacks.OnReset)),
		fyne.NewMenuItemSeparator(),
	}

	for _, mode := range model.Modes {
		mode := mode
		item := fyne.NewMenuItem(display.TabTitle(mode), func() {
			if manager.callbacks.OnSelectMode != nil {
				manager.callbacks.OnSelectMode(mode)
			}
		})
		item.Checked = mode == manager.current.ActiveTab
		items = append(items, item)
	}

	quit := fyne.NewMenuItem("Quit", manager.call(manager.callbacks.OnQuit))
	quit.IsQuit = true
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", manager.call(manager.callbacks.OnPreferences)),
		quit,
	)

	return fyne.NewMenu("Pomodoro", items...)
}

func (manager *Manager) call(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}
