package models

import (
	"errors"
	"hash/fnv"
	"strings"
)

// Option-related errors
var (
	ErrEmptyOptionName   = errors.New("option name cannot be empty")
	ErrOptionNameTooLong = errors.New("option name cannot exceed 50 characters")
	ErrDuplicateName     = errors.New("an option with this name already exists")
	ErrNotFound          = errors.New("option not found")
)

// SelectOption is a named, colored tag-like value attached to a grid cell.
// The ID is stable for the lifetime of the option; the name is the
// user-editable display label.
type SelectOption struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// DefaultColorPalette provides a curated set of colors for options
// These colors are chosen for good contrast and accessibility
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#34495e", // dark gray
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#d35400", // pumpkin
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// GetOptionColor returns the color for an option, using the assigned color
// if one exists or generating a consistent color from the option name
func GetOptionColor(name string, assigned string) string {
	if assigned != "" {
		return assigned
	}

	h := fnv.New32a()
	h.Write([]byte(NormalizeOptionName(name)))

	return DefaultColorPalette[int(h.Sum32())%len(DefaultColorPalette)]
}

// NormalizeOptionName produces the comparison key for an option name.
// Names are unique case-insensitively, so the key is lowercased and trimmed;
// the display label itself keeps its original casing.
func NormalizeOptionName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateOptionName checks if an option name is valid
func ValidateOptionName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyOptionName
	}

	if len(trimmed) > 50 {
		return ErrOptionNameTooLong
	}

	return nil
}
