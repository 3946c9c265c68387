package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
)

const appDir = "pomodoro"

// Options controls where debug logs go.
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
}

// New builds a logger from options. Logs are discarded unless debug is on
// or a file is given. The returned closer releases the log file.
func New(options Options) (*slog.Logger, io.Closer, error) {
	if os.Getenv("POMODORO_DEBUG") == "1" {
		options.Debug = true
	}
	if envFile := os.Getenv("POMODORO_DEBUG_FILE"); envFile != "" && options.DebugFile == "" {
		options.DebugFile = envFile
	}

	if !options.Debug && options.DebugFile == "" {
		return Discard(), nopCloser{}, nil
	}

	logPath := options.DebugFile
	if logPath == "" {
		logDir, err := logDirectory()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log directory: %w", err)
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		if options.MaxLogFiles > 0 {
			if err := rotateLogs(logDir, options.MaxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "warning: log rotation failed: %v\n", err)
			}
		}
		logPath = filepath.Join(logDir, uuid.NewString()+".log")
	} else if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("debug logging initialized", "log_file", logPath)
	return logger, logFile, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// rotateLogs keeps at most maxLogFiles-1 older logs so the new one fits.
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	toDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < toDelete; i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: delete old log %s: %v\n", logFiles[i].path, err)
		}
	}
	return nil
}

func logDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appDir), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, appDir, "logs"), nil
	default:
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, appDir), nil
	}
}
