package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	CloseToTray   *bool `yaml:"close_to_tray,omitempty"`
	StartHidden   *bool `yaml:"start_hidden,omitempty"`
	TrayCountdown *bool `yaml:"tray_countdown,omitempty"`
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads preferences from configPath.
// If the file does not exist, default settings are returned.
func LoadSettings(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes preferences to configPath.
func SaveSettings(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		CloseToTray:   &settings.CloseToTray,
		StartHidden:   &settings.StartHidden,
		TrayCountdown: &settings.TrayCountdown,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// Missing keys keep their defaults.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.CloseToTray != nil {
		settings.CloseToTray = *fileData.CloseToTray
	}
	if fileData.StartHidden != nil {
		settings.StartHidden = *fileData.StartHidden
	}
	if fileData.TrayCountdown != nil {
		settings.TrayCountdown = *fileData.TrayCountdown
	}
}
