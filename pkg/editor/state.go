package editor

import (
	"strings"

	"github.com/tagsel/tagsel/pkg/models"
)

// State is the immutable snapshot handed to the presentation layer after
// each event. Slices are copies; mutating a snapshot never affects the
// controller.
type State struct {
	// AllOptions is every option of the cell, insertion-ordered
	AllOptions []models.SelectOption

	// SelectedOptions holds the selected options in selection order
	// (earliest-selected first)
	SelectedOptions []models.SelectOption

	// VisibleOptions is AllOptions narrowed by PendingText
	VisibleOptions []models.SelectOption

	// PendingText is the free-text entry not yet committed to an option
	PendingText string
}

// IsSelected reports whether the option with the given id is selected
func (s State) IsSelected(id string) bool {
	for _, opt := range s.SelectedOptions {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// SelectedIDs returns the ids of the selected options in selection order
func (s State) SelectedIDs() []string {
	ids := make([]string, len(s.SelectedOptions))
	for i, opt := range s.SelectedOptions {
		ids[i] = opt.ID
	}
	return ids
}

// SelectedNames returns the display labels of the selected options
func (s State) SelectedNames() []string {
	names := make([]string, len(s.SelectedOptions))
	for i, opt := range s.SelectedOptions {
		names[i] = opt.Name
	}
	return names
}

func filterOptions(opts []models.SelectOption, text string) []models.SelectOption {
	if strings.TrimSpace(text) == "" {
		return opts
	}

	key := strings.ToLower(strings.TrimSpace(text))
	visible := make([]models.SelectOption, 0, len(opts))
	for _, opt := range opts {
		if strings.Contains(strings.ToLower(opt.Name), key) {
			visible = append(visible, opt)
		}
	}
	return visible
}
