// Package store persists the sheet document and settings under the
// project's .tagsel directory as plain yaml files.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tagsel/tagsel/pkg/models"
)

const (
	TagselDir    = ".tagsel"
	SheetFile    = "sheet.yaml"
	SettingsFile = "settings.yaml"
)

// InitProjectStructure creates the .tagsel directory with a starter
// sheet and default settings
func InitProjectStructure() error {
	if err := os.MkdirAll(TagselDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", TagselDir, err)
	}

	sheetPath := filepath.Join(TagselDir, SheetFile)
	if _, err := os.Stat(sheetPath); os.IsNotExist(err) {
		sheet := &models.Sheet{
			Name: "sheet",
			Columns: []models.Column{
				{Name: "Title", Type: models.ColumnTypeText},
				{Name: "Tags", Type: models.ColumnTypeTags},
			},
		}
		if err := writeYAML(sheetPath, sheet); err != nil {
			return err
		}
	}

	settingsPath := filepath.Join(TagselDir, SettingsFile)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := writeYAML(settingsPath, models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// SheetStore manages the sheet document for a project
type SheetStore struct {
	mu    sync.RWMutex
	path  string
	sheet *models.Sheet
}

// NewSheetStore loads the sheet from the project directory. A missing
// file yields an empty sheet rather than an error.
func NewSheetStore() (*SheetStore, error) {
	s := &SheetStore{
		path: filepath.Join(TagselDir, SheetFile),
	}

	if err := s.Load(); err != nil {
		if os.IsNotExist(err) {
			s.sheet = &models.Sheet{Name: "sheet"}
			return s, nil
		}
		return nil, fmt.Errorf("failed to load sheet: %w", err)
	}

	return s, nil
}

// Load reads the sheet document from disk
func (s *SheetStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var sheet models.Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return fmt.Errorf("failed to parse sheet: %w", err)
	}

	s.sheet = &sheet
	return nil
}

// Save writes the sheet document to disk atomically
func (s *SheetStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create sheet directory: %w", err)
	}

	return writeYAML(s.path, s.sheet)
}

// Sheet returns a copy of the document to prevent external modification
func (s *SheetStore) Sheet() models.Sheet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sheet := models.Sheet{
		Name:    s.sheet.Name,
		Columns: append([]models.Column(nil), s.sheet.Columns...),
		Options: append([]models.SelectOption(nil), s.sheet.Options...),
		Rows:    make([]models.Row, len(s.sheet.Rows)),
	}
	for i, row := range s.sheet.Rows {
		sheet.Rows[i] = row
		sheet.Rows[i].Tags = append([]string(nil), row.Tags...)
	}
	return sheet
}

// Row returns the row with the given id
func (s *SheetStore) Row(id string) (models.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.sheet.FindRow(id)
	if idx < 0 {
		return models.Row{}, false
	}
	row := s.sheet.Rows[idx]
	row.Tags = append([]string(nil), row.Tags...)
	return row, true
}

// AddRow appends a row to the sheet
func (s *SheetStore) AddRow(row models.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheet.Rows = append(s.sheet.Rows, row)
}

// SetCell replaces the sheet's option registry and one row's selection
// in a single step, then persists. This is the commit path of the cell
// editor: the committed options become the registry for every row.
func (s *SheetStore) SetCell(rowID string, opts []models.SelectOption, selected []string) error {
	s.mu.Lock()

	idx := s.sheet.FindRow(rowID)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("set cell of row %s: %w", rowID, models.ErrNotFound)
	}

	s.sheet.Options = append([]models.SelectOption(nil), opts...)
	s.sheet.Rows[idx].Tags = append([]string(nil), selected...)

	// Rows other than the edited one may reference options that were
	// deleted during the session; drop those references too
	known := make(map[string]bool, len(opts))
	for _, opt := range opts {
		known[opt.ID] = true
	}
	for i := range s.sheet.Rows {
		if i == idx {
			continue
		}
		kept := s.sheet.Rows[i].Tags[:0]
		for _, id := range s.sheet.Rows[i].Tags {
			if known[id] {
				kept = append(kept, id)
			}
		}
		s.sheet.Rows[i].Tags = kept
	}

	s.mu.Unlock()
	return s.Save()
}

func writeYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile) // Clean up temp file
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}
