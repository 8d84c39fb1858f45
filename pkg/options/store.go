// Package options holds the option registry and selection state for one
// grid cell while its editor is open. A Store owns the ordered option
// list; SelectionSets attach to it so that deleting an option also drops
// it from every selection that references it.
package options

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tagsel/tagsel/pkg/models"
)

// Store is the authoritative id -> option mapping for one cell's editor
// session. Options keep their insertion order; names are unique
// case-insensitively.
type Store struct {
	opts       []models.SelectOption
	selections []*SelectionSet
	newID      func() string
}

// NewStore creates a store seeded from the host cell's current options
func NewStore(seed []models.SelectOption) *Store {
	s := &Store{
		opts:  make([]models.SelectOption, len(seed)),
		newID: uuid.NewString,
	}
	copy(s.opts, seed)
	return s
}

// Attach registers a selection set for delete cascades and wires its
// resolver to this store. Ids in the selection that do not resolve here
// are pruned immediately.
func (s *Store) Attach(sel *SelectionSet) {
	sel.resolve = func(id string) bool {
		_, ok := s.Lookup(id)
		return ok
	}
	sel.prune()
	s.selections = append(s.selections, sel)
}

// Add creates a new option with a fresh id, appended after the existing
// options. The name is trimmed; a case-insensitive collision with an
// existing option fails with ErrDuplicateName.
func (s *Store) Add(name string) (models.SelectOption, error) {
	if err := models.ValidateOptionName(name); err != nil {
		return models.SelectOption{}, err
	}

	trimmed := strings.TrimSpace(name)
	if _, ok := s.FindByName(trimmed); ok {
		return models.SelectOption{}, fmt.Errorf("add option %q: %w", trimmed, models.ErrDuplicateName)
	}

	opt := models.SelectOption{
		ID:    s.newID(),
		Name:  trimmed,
		Color: models.GetOptionColor(trimmed, ""),
	}
	s.opts = append(s.opts, opt)
	return opt, nil
}

// Rename updates an option's display label in place, preserving its
// position. Renaming to a name held by another option fails with
// ErrDuplicateName; renaming an option to its own name (any casing) is
// allowed.
func (s *Store) Rename(id, newName string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("rename option %s: %w", id, models.ErrNotFound)
	}

	if err := models.ValidateOptionName(newName); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(newName)
	if other, ok := s.FindByName(trimmed); ok && other.ID != id {
		return fmt.Errorf("rename option to %q: %w", trimmed, models.ErrDuplicateName)
	}

	s.opts[idx].Name = trimmed
	return nil
}

// SetColor updates an option's color in place
func (s *Store) SetColor(id, color string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("set color of option %s: %w", id, models.ErrNotFound)
	}

	s.opts[idx].Color = color
	return nil
}

// Remove deletes an option and cascades the removal into every attached
// selection set, so no selection is left holding a dangling id.
func (s *Store) Remove(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("remove option %s: %w", id, models.ErrNotFound)
	}

	s.opts = append(s.opts[:idx], s.opts[idx+1:]...)
	for _, sel := range s.selections {
		sel.RemoveIfPresent(id)
	}
	return nil
}

// Lookup returns the option with the given id
func (s *Store) Lookup(id string) (models.SelectOption, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.SelectOption{}, false
	}
	return s.opts[idx], true
}

// FindByName returns the option whose name matches case-insensitively
func (s *Store) FindByName(name string) (models.SelectOption, bool) {
	key := models.NormalizeOptionName(name)
	for _, opt := range s.opts {
		if models.NormalizeOptionName(opt.Name) == key {
			return opt, true
		}
	}
	return models.SelectOption{}, false
}

// All returns a copy of the options in insertion order
func (s *Store) All() []models.SelectOption {
	opts := make([]models.SelectOption, len(s.opts))
	copy(opts, s.opts)
	return opts
}

// Len returns the number of options
func (s *Store) Len() int {
	return len(s.opts)
}

func (s *Store) indexOf(id string) int {
	for i, opt := range s.opts {
		if opt.ID == id {
			return i
		}
	}
	return -1
}
