package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/ui/preferences"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoadSettings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "Pomodoro", settingsFileName)
	want := preferences.Settings{CloseToTray: false, StartHidden: true, TrayCountdown: false}

	require.NoError(t, SaveSettings(configPath, want))
	got, err := LoadSettings(configPath)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("start_hidden: true\n"), 0o644))

	settings, err := LoadSettings(configPath)

	require.NoError(t, err)
	assert.True(t, settings.StartHidden)
	assert.True(t, settings.CloseToTray)
	assert.True(t, settings.TrayCountdown)
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("close_to_tray: [nope"), 0o644))

	settings, err := LoadSettings(configPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configPath, err := ResolveConfigPath("Pomodoro")

	require.NoError(t, err)
	assert.Equal(t, settingsFileName, filepath.Base(configPath))
	assert.Equal(t, "Pomodoro", filepath.Base(filepath.Dir(configPath)))
}
