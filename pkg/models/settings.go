package models

// Settings represents the application configuration
type Settings struct {
	Editor EditorSettings `yaml:"editor"`
	UI     UISettings     `yaml:"ui"`
}

// EditorSettings controls cell editor behavior
type EditorSettings struct {
	// CommitMode is "on-close" (write the cell once when the editor is
	// dismissed) or "per-event" (write after every mutation)
	CommitMode string `yaml:"commit_mode"`
}

// Commit mode values for EditorSettings.CommitMode
const (
	CommitModeOnClose  = "on-close"
	CommitModePerEvent = "per-event"
)

// UISettings controls UI preferences
type UISettings struct {
	ShowHelp bool `yaml:"show_help"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			CommitMode: CommitModeOnClose,
		},
		UI: UISettings{
			ShowHelp: true,
		},
	}
}
