package options

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagsel/tagsel/pkg/models"
)

// newTestStore returns a store with sequential ids for deterministic tests
func newTestStore(seed []models.SelectOption) *Store {
	s := NewStore(seed)
	next := 0
	s.newID = func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}
	return s
}

func TestStore_Add(t *testing.T) {
	s := newTestStore(nil)

	opt, err := s.Add("Urgent")
	require.NoError(t, err)
	assert.Equal(t, "id-1", opt.ID)
	assert.Equal(t, "Urgent", opt.Name)
	assert.NotEmpty(t, opt.Color)

	// Appended after existing options
	opt2, err := s.Add("Backend")
	require.NoError(t, err)
	assert.Equal(t, []models.SelectOption{opt, opt2}, s.All())
}

func TestStore_Add_Duplicates(t *testing.T) {
	tests := []struct {
		name    string
		second  string
		wantErr error
	}{
		{"Exact duplicate", "Urgent", models.ErrDuplicateName},
		{"Case-insensitive duplicate", "URGENT", models.ErrDuplicateName},
		{"Duplicate with whitespace", "  urgent ", models.ErrDuplicateName},
		{"Different name", "Backend", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(nil)
			_, err := s.Add("Urgent")
			require.NoError(t, err)

			_, err = s.Add(tt.second)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStore_Add_InvalidNames(t *testing.T) {
	s := newTestStore(nil)

	_, err := s.Add("")
	assert.ErrorIs(t, err, models.ErrEmptyOptionName)

	_, err = s.Add("   ")
	assert.ErrorIs(t, err, models.ErrEmptyOptionName)

	assert.Equal(t, 0, s.Len())
}

func TestStore_Rename(t *testing.T) {
	s := newTestStore(nil)
	a, _ := s.Add("Alpha")
	b, _ := s.Add("Beta")

	// Rename preserves position
	require.NoError(t, s.Rename(a.ID, "Gamma"))
	all := s.All()
	assert.Equal(t, "Gamma", all[0].Name)
	assert.Equal(t, a.ID, all[0].ID)

	// Collision with another option is rejected
	err := s.Rename(b.ID, "gamma")
	assert.ErrorIs(t, err, models.ErrDuplicateName)
	assert.Equal(t, "Beta", s.All()[1].Name)

	// Renaming to its own name (different casing) is allowed
	require.NoError(t, s.Rename(b.ID, "BETA"))
	assert.Equal(t, "BETA", s.All()[1].Name)

	// Unknown id
	err = s.Rename("nope", "Whatever")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_Remove(t *testing.T) {
	s := newTestStore(nil)
	a, _ := s.Add("Alpha")
	b, _ := s.Add("Beta")

	require.NoError(t, s.Remove(a.ID))
	assert.Equal(t, []models.SelectOption{b}, s.All())

	err := s.Remove(a.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStore_Remove_CascadesIntoSelections(t *testing.T) {
	s := newTestStore(nil)
	a, _ := s.Add("Alpha")
	b, _ := s.Add("Beta")

	sel := NewSelectionSet(nil)
	s.Attach(sel)
	sel.Toggle(a.ID)
	sel.Toggle(b.ID)

	other := NewSelectionSet(nil)
	s.Attach(other)
	other.Toggle(a.ID)

	require.NoError(t, s.Remove(a.ID))

	assert.Equal(t, []string{b.ID}, sel.Ordered())
	assert.Equal(t, 0, other.Len())
}

func TestStore_Lookup(t *testing.T) {
	s := newTestStore(nil)
	a, _ := s.Add("Alpha")

	got, ok := s.Lookup(a.ID)
	assert.True(t, ok)
	assert.Equal(t, a, got)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}

func TestStore_FindByName(t *testing.T) {
	s := newTestStore(nil)
	a, _ := s.Add("Needs Review")

	got, ok := s.FindByName("needs review")
	assert.True(t, ok)
	assert.Equal(t, a.ID, got.ID)

	got, ok = s.FindByName("  NEEDS REVIEW ")
	assert.True(t, ok)
	assert.Equal(t, a.ID, got.ID)

	_, ok = s.FindByName("missing")
	assert.False(t, ok)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := newTestStore(nil)
	s.Add("Alpha")

	all := s.All()
	all[0].Name = "Mutated"

	fresh := s.All()
	assert.Equal(t, "Alpha", fresh[0].Name)
}

func TestStore_AttachPrunesDanglingIds(t *testing.T) {
	seed := []models.SelectOption{{ID: "opt-1", Name: "Alpha"}}
	s := NewStore(seed)

	sel := NewSelectionSet([]string{"opt-1", "gone"})
	s.Attach(sel)

	assert.Equal(t, []string{"opt-1"}, sel.Ordered())
}
