package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"pomodoro/internal/core/display"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/terminal"
	"pomodoro/internal/ui/timerwindow"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/alecthomas/kong"
)

const appName = "Pomodoro"

// CLI holds the command-line flags.
type CLI struct {
	Terminal    bool   `help:"Run the timer in the terminal instead of opening a window" short:"t"`
	Debug       bool   `help:"Enable debug logging to file" short:"d"`
	DebugFile   string `help:"Custom path for the debug log file (disables rotation)" type:"path"`
	MaxLogFiles int    `help:"Maximum number of log files to keep (0 = unlimited)" default:"20"`
	Config      string `help:"Path to the settings file" type:"path"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pomodoro"),
		kong.Description("A focus/break countdown timer."),
		kong.UsageOnError(),
	)

	if err := run(cli); err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			fmt.Fprintln(os.Stderr, "Pomodoro is already running.")
			os.Exit(1)
		}
		ctx.FatalIfErrorf(err)
	}
}

func run(cli CLI) error {
	logger, logCloser, err := logging.New(logging.Options{
		Debug:       cli.Debug,
		DebugFile:   cli.DebugFile,
		MaxLogFiles: cli.MaxLogFiles,
	})
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() {
		_ = logCloser.Close()
	}()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Warn("single instance", "error", err)
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	keeper := timer.New(model.DefaultDurations(), timer.Config{Logger: logger})
	defer keeper.Close()

	if cli.Terminal {
		logger.Info("starting terminal timer")
		return terminal.Run(keeper, keeper.Subscribe(8))
	}

	configPath := cli.Config
	if configPath == "" {
		configPath, err = storage.ResolveConfigPath(appName)
		if err != nil {
			return err
		}
	}
	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		logger.Warn("load settings, using defaults", "path", configPath, "error", err)
	}

	runDesktop(keeper, settings, configPath, logger)
	return nil
}

func runDesktop(keeper *timer.Engine, settings preferences.Settings, configPath string, logger *slog.Logger) {
	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.MustIcon(resources.Logo))

	timerWin := timerwindow.New(fyneApp, keeper)
	timerWin.Render(display.Project(keeper.State()))

	desktopApp, hasTray := fyneApp.(desktop.App)
	if !hasTray {
		logger.Info("system tray unsupported on this platform")
		timerWin.SetMaster()
	}

	var prefsWindow *preferences.Window
	var trayManager *tray.Manager
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Icons{
			Running: resources.MustIcon(resources.TrayRunning),
			Paused:  resources.MustIcon(resources.TrayPaused),
		}, tray.Callbacks{
			OnShowWindow: timerWin.Show,
			OnToggle:     keeper.Toggle,
			OnReset:      keeper.Reset,
			OnSelectMode: keeper.SelectMode,
			OnPreferences: func() {
				if prefsWindow != nil {
					prefsWindow.Show()
				}
			},
			OnQuit: fyneApp.Quit,
		})
		trayManager.SetCountdown(settings.TrayCountdown)
		trayManager.Render(display.Project(keeper.State()))
	}

	applyCloseBehaviour := func(current preferences.Settings) {
		if hasTray && current.CloseToTray {
			timerWin.SetCloseIntercept(timerWin.Hide)
			return
		}
		timerWin.SetCloseIntercept(fyneApp.Quit)
	}
	applyCloseBehaviour(settings)

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(configPath, settings); err != nil {
			logger.Error("save settings", "path", configPath, "error", err)
		}
		if trayManager != nil {
			trayManager.SetCountdown(settings.TrayCountdown)
		}
		applyCloseBehaviour(settings)
	})

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			view := display.Project(event.State)
			fyne.Do(func() {
				timerWin.Render(view)
				if trayManager != nil {
					trayManager.Render(view)
				}
			})
		}
	}()

	if !hasTray || !settings.StartHidden {
		timerWin.Show()
	}
	fyneApp.Run()
}
