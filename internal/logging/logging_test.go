package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DiscardsWithoutDebug(t *testing.T) {
	t.Setenv("POMODORO_DEBUG", "")
	t.Setenv("POMODORO_DEBUG_FILE", "")

	logger, closer, err := New(Options{})

	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestNew_WritesToDebugFile(t *testing.T) {
	t.Setenv("POMODORO_DEBUG", "")
	t.Setenv("POMODORO_DEBUG_FILE", "")
	logPath := filepath.Join(t.TempDir(), "nested", "debug.log")

	logger, closer, err := New(Options{DebugFile: logPath})
	require.NoError(t, err)
	logger.Info("interval completed", "finished", "focus")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"interval completed"`)
	assert.Contains(t, string(data), `"finished":"focus"`)
}

func TestNew_EnvironmentEnablesDebug(t *testing.T) {
	t.Setenv("POMODORO_DEBUG", "1")
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	logPath := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("POMODORO_DEBUG_FILE", logPath)

	_, closer, err := New(Options{})
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.FileExists(t, logPath)
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	logDir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	names := []string{"a.log", "b.log", "c.log", "keep.txt"}
	for i, name := range names {
		path := filepath.Join(logDir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	require.NoError(t, rotateLogs(logDir, 2))

	assert.NoFileExists(t, filepath.Join(logDir, "a.log"))
	assert.NoFileExists(t, filepath.Join(logDir, "b.log"))
	assert.FileExists(t, filepath.Join(logDir, "c.log"))
	assert.FileExists(t, filepath.Join(logDir, "keep.txt"))
}

func TestRotateLogs_UnderLimitKeepsAll(t *testing.T) {
	logDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "one.log"), nil, 0o644))

	require.NoError(t, rotateLogs(logDir, 5))

	assert.FileExists(t, filepath.Join(logDir, "one.log"))
}
