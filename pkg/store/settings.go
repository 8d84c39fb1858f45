package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tagsel/tagsel/pkg/editor"
	"github.com/tagsel/tagsel/pkg/models"
)

// ReadSettings loads settings from the project directory, falling back
// to defaults when the file is missing
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(TagselDir, SettingsFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return settings, nil
}

// WriteSettings persists settings to the project directory
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(TagselDir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	return writeYAML(filepath.Join(TagselDir, SettingsFile), settings)
}

// EditorCommitMode maps the configured commit mode string onto the
// editor's mode, defaulting to on-close for unknown values
func EditorCommitMode(settings *models.Settings) editor.CommitMode {
	if settings != nil && settings.Editor.CommitMode == models.CommitModePerEvent {
		return editor.CommitPerEvent
	}
	return editor.CommitOnClose
}
