package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagsel/tagsel/pkg/models"
)

// recordingGateway captures every committed snapshot
type recordingGateway struct {
	commits []State
	err     error
}

func (g *recordingGateway) Commit(st State) error {
	g.commits = append(g.commits, st)
	return g.err
}

func seedController(t *testing.T, opts []models.SelectOption, selected []string) *Controller {
	t.Helper()
	c := New(Config{})
	c.Apply(Initial{Options: opts, Selected: selected})
	return c
}

func optionNames(opts []models.SelectOption) []string {
	names := make([]string, len(opts))
	for i, opt := range opts {
		names[i] = opt.Name
	}
	return names
}

func TestController_Initial(t *testing.T) {
	opts := []models.SelectOption{
		{ID: "1", Name: "Red"},
		{ID: "2", Name: "Blue"},
	}

	c := seedController(t, opts, []string{"2"})
	st := c.State()

	assert.Equal(t, []string{"Red", "Blue"}, optionNames(st.AllOptions))
	assert.Equal(t, []string{"Blue"}, optionNames(st.SelectedOptions))
	assert.Empty(t, st.PendingText)
	assert.False(t, c.HasMutated())
}

func TestController_Initial_PrunesDanglingSelection(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}

	c := seedController(t, opts, []string{"1", "gone"})
	st := c.State()

	assert.Equal(t, []string{"Red"}, optionNames(st.SelectedOptions))
}

func TestController_NewOption(t *testing.T) {
	c := seedController(t, nil, nil)

	st := c.Apply(NewOption{Text: "  Urgent  "})

	require.Len(t, st.AllOptions, 1)
	assert.Equal(t, "Urgent", st.AllOptions[0].Name)
	assert.NotEmpty(t, st.AllOptions[0].ID)
	assert.Equal(t, []string{"Urgent"}, optionNames(st.SelectedOptions))
	assert.Empty(t, st.PendingText)
	assert.True(t, c.HasMutated())
}

func TestController_NewOption_ClearsPendingText(t *testing.T) {
	c := seedController(t, nil, nil)

	c.Apply(FilterChanged{Text: "urg"})
	st := c.Apply(NewOption{Text: "urg"})

	assert.Empty(t, st.PendingText)
	assert.Len(t, st.VisibleOptions, 1)
}

func TestController_NewOption_CaseInsensitiveDuplicateSelectsExisting(t *testing.T) {
	c := seedController(t, nil, nil)

	c.Apply(NewOption{Text: "Foo"})
	st := c.Apply(NewOption{Text: "foo"})

	// Exactly one option, named as originally typed, and selected
	require.Len(t, st.AllOptions, 1)
	assert.Equal(t, "Foo", st.AllOptions[0].Name)
	assert.Equal(t, []string{"Foo"}, optionNames(st.SelectedOptions))
}

func TestController_NewOption_DuplicateOfDeselectedOptionSelectsIt(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}
	c := seedController(t, opts, nil)

	st := c.Apply(NewOption{Text: "red"})

	require.Len(t, st.AllOptions, 1)
	assert.Equal(t, []string{"Red"}, optionNames(st.SelectedOptions))
}

func TestController_NewOption_EmptyTextIgnored(t *testing.T) {
	c := seedController(t, nil, nil)

	st := c.Apply(NewOption{Text: "   "})

	assert.Empty(t, st.AllOptions)
	assert.False(t, c.HasMutated())
}

func TestController_SelectOption_TogglesMembership(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}
	c := seedController(t, opts, nil)

	st := c.Apply(SelectOption{ID: "1"})
	assert.Equal(t, []string{"Red"}, optionNames(st.SelectedOptions))

	st = c.Apply(SelectOption{ID: "1"})
	assert.Empty(t, st.SelectedOptions)
}

func TestController_SelectOption_EvenRepetitionRestoresState(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}, {ID: "2", Name: "Blue"}}
	c := seedController(t, opts, []string{"2"})

	for i := 0; i < 4; i++ {
		c.Apply(SelectOption{ID: "1"})
	}

	assert.Equal(t, []string{"Blue"}, optionNames(c.State().SelectedOptions))
}

func TestController_SelectOption_StaleIdIsNoop(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}
	c := seedController(t, opts, nil)

	st := c.Apply(SelectOption{ID: "stale"})

	assert.Empty(t, st.SelectedOptions)
	assert.False(t, c.HasMutated())
}

func TestController_UpdateOption(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red", Color: "#e74c3c"}}
	c := seedController(t, opts, []string{"1"})

	st := c.Apply(UpdateOption{Option: models.SelectOption{ID: "1", Name: "Crimson", Color: "#c0392b"}})

	require.Len(t, st.AllOptions, 1)
	assert.Equal(t, "Crimson", st.AllOptions[0].Name)
	assert.Equal(t, "#c0392b", st.AllOptions[0].Color)
	// Selection follows the rename
	assert.Equal(t, []string{"Crimson"}, optionNames(st.SelectedOptions))
}

func TestController_UpdateOption_DuplicateNameLeavesStateUnchanged(t *testing.T) {
	opts := []models.SelectOption{
		{ID: "1", Name: "Red", Color: "#e74c3c"},
		{ID: "2", Name: "Blue", Color: "#3498db"},
	}
	c := seedController(t, opts, []string{"1"})
	before := c.State()

	st := c.Apply(UpdateOption{Option: models.SelectOption{ID: "1", Name: "blue", Color: "#000000"}})

	assert.Equal(t, before.AllOptions, st.AllOptions)
	assert.Equal(t, before.SelectedOptions, st.SelectedOptions)
	assert.False(t, c.HasMutated())
}

func TestController_UpdateOption_UnknownIdIsNoop(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}
	c := seedController(t, opts, nil)

	st := c.Apply(UpdateOption{Option: models.SelectOption{ID: "gone", Name: "Green"}})

	assert.Equal(t, []string{"Red"}, optionNames(st.AllOptions))
	assert.False(t, c.HasMutated())
}

func TestController_DeleteOption_CascadesIntoSelection(t *testing.T) {
	opts := []models.SelectOption{
		{ID: "1", Name: "Red"},
		{ID: "2", Name: "Blue"},
	}
	c := seedController(t, opts, []string{"1", "2"})

	st := c.Apply(DeleteOption{Option: models.SelectOption{ID: "2", Name: "Blue"}})

	assert.Equal(t, []string{"Red"}, optionNames(st.AllOptions))
	assert.Equal(t, []string{"Red"}, optionNames(st.SelectedOptions))

	// The deleted id no longer resolves; selecting it is a no-op
	st = c.Apply(SelectOption{ID: "2"})
	assert.Equal(t, []string{"Red"}, optionNames(st.SelectedOptions))
}

func TestController_DeleteOption_UnknownIdIsNoop(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}
	c := seedController(t, opts, nil)

	st := c.Apply(DeleteOption{Option: models.SelectOption{ID: "gone"}})

	assert.Equal(t, []string{"Red"}, optionNames(st.AllOptions))
	assert.False(t, c.HasMutated())
}

func TestController_FilterChanged(t *testing.T) {
	opts := []models.SelectOption{
		{ID: "1", Name: "Backend"},
		{ID: "2", Name: "Frontend"},
		{ID: "3", Name: "Urgent"},
	}
	c := seedController(t, opts, nil)

	st := c.Apply(FilterChanged{Text: "end"})
	assert.Equal(t, "end", st.PendingText)
	assert.Equal(t, []string{"Backend", "Frontend"}, optionNames(st.VisibleOptions))

	st = c.Apply(FilterChanged{Text: ""})
	assert.Equal(t, []string{"Backend", "Frontend", "Urgent"}, optionNames(st.VisibleOptions))

	// Filtering is not a mutation
	assert.False(t, c.HasMutated())
}

// The walk-through from the editor's behavior contract: create, select,
// delete, checking list contents and selection order at each step.
func TestController_Scenario(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}
	c := seedController(t, opts, nil)

	st := c.Apply(NewOption{Text: "Blue"})
	assert.Equal(t, []string{"Red", "Blue"}, optionNames(st.AllOptions))
	assert.Equal(t, []string{"Blue"}, optionNames(st.SelectedOptions))

	st = c.Apply(SelectOption{ID: "1"})
	assert.Equal(t, []string{"Blue", "Red"}, optionNames(st.SelectedOptions))

	blue := st.AllOptions[1]
	st = c.Apply(DeleteOption{Option: blue})
	assert.Equal(t, []string{"Red"}, optionNames(st.AllOptions))
	assert.Equal(t, []string{"Red"}, optionNames(st.SelectedOptions))
}

func TestController_CommitPerEvent(t *testing.T) {
	gw := &recordingGateway{}
	c := New(Config{Gateway: gw, CommitMode: CommitPerEvent})
	c.Apply(Initial{Options: []models.SelectOption{{ID: "1", Name: "Red"}}})

	c.Apply(SelectOption{ID: "1"})
	c.Apply(NewOption{Text: "Blue"})

	require.Len(t, gw.commits, 2)
	assert.Equal(t, []string{"Red"}, optionNames(gw.commits[0].SelectedOptions))
	assert.Equal(t, []string{"Red", "Blue"}, optionNames(gw.commits[1].SelectedOptions))

	// Non-mutating events do not commit
	c.Apply(FilterChanged{Text: "x"})
	c.Apply(SelectOption{ID: "stale"})
	assert.Len(t, gw.commits, 2)

	// Close does not commit again in per-event mode
	c.Close()
	assert.Len(t, gw.commits, 2)
}

func TestController_CommitOnClose(t *testing.T) {
	gw := &recordingGateway{}
	c := New(Config{Gateway: gw, CommitMode: CommitOnClose})
	c.Apply(Initial{Options: []models.SelectOption{{ID: "1", Name: "Red"}}})

	c.Apply(SelectOption{ID: "1"})
	assert.Empty(t, gw.commits)

	final := c.Close()
	require.Len(t, gw.commits, 1)
	assert.Equal(t, final, gw.commits[0])
}

func TestController_CommitOnClose_NoMutationNoCommit(t *testing.T) {
	gw := &recordingGateway{}
	c := New(Config{Gateway: gw, CommitMode: CommitOnClose})
	c.Apply(Initial{Options: []models.SelectOption{{ID: "1", Name: "Red"}}})

	c.Apply(FilterChanged{Text: "r"})
	c.Close()

	assert.Empty(t, gw.commits)
}

func TestController_CommitErrorsReachCallback(t *testing.T) {
	gw := &recordingGateway{err: errors.New("disk full")}
	var got error
	c := New(Config{
		Gateway:       gw,
		CommitMode:    CommitPerEvent,
		OnCommitError: func(err error) { got = err },
	})
	c.Apply(Initial{Options: []models.SelectOption{{ID: "1", Name: "Red"}}})

	st := c.Apply(SelectOption{ID: "1"})

	// The snapshot is still valid; the failure only reaches the callback
	assert.Equal(t, []string{"Red"}, optionNames(st.SelectedOptions))
	assert.EqualError(t, got, "disk full")
}

func TestController_Close_DismissExactlyOnce(t *testing.T) {
	calls := 0
	c := New(Config{OnDismiss: func() { calls++ }})
	c.Apply(Initial{})

	c.Close()
	c.Close()
	c.Close()

	assert.Equal(t, 1, calls)
	assert.True(t, c.Closed())
}

func TestController_Close_DismissFiresWithoutMutation(t *testing.T) {
	calls := 0
	c := New(Config{OnDismiss: func() { calls++ }})
	c.Apply(Initial{})

	c.Close()

	assert.Equal(t, 1, calls)
}

func TestController_EventsAfterCloseAreIgnored(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}
	c := seedController(t, opts, nil)
	final := c.Close()

	st := c.Apply(SelectOption{ID: "1"})

	assert.Equal(t, final, st)
	assert.Empty(t, c.State().SelectedOptions)
}

func TestController_SnapshotIsACopy(t *testing.T) {
	opts := []models.SelectOption{{ID: "1", Name: "Red"}}
	c := seedController(t, opts, []string{"1"})

	st := c.State()
	st.AllOptions[0].Name = "Mutated"
	st.SelectedOptions[0].Name = "Mutated"

	fresh := c.State()
	assert.Equal(t, "Red", fresh.AllOptions[0].Name)
	assert.Equal(t, "Red", fresh.SelectedOptions[0].Name)
}

func TestEditPanel(t *testing.T) {
	opts := []models.SelectOption{
		{ID: "1", Name: "Red", Color: "#e74c3c"},
		{ID: "2", Name: "Blue", Color: "#3498db"},
	}
	c := seedController(t, opts, []string{"1"})

	panel, ok := c.EditPanel("1")
	require.True(t, ok)
	assert.Equal(t, "Red", panel.Option().Name)

	// Updated pins the panel's id regardless of the passed option
	st := panel.Updated(models.SelectOption{ID: "2", Name: "Scarlet", Color: "#c0392b"})
	assert.Equal(t, []string{"Scarlet", "Blue"}, optionNames(st.AllOptions))

	st = panel.Deleted()
	assert.Equal(t, []string{"Blue"}, optionNames(st.AllOptions))
	assert.Empty(t, st.SelectedOptions)

	_, ok = c.EditPanel("1")
	assert.False(t, ok)
}

func TestState_Helpers(t *testing.T) {
	opts := []models.SelectOption{
		{ID: "1", Name: "Red"},
		{ID: "2", Name: "Blue"},
	}
	c := seedController(t, opts, []string{"2", "1"})
	st := c.State()

	assert.True(t, st.IsSelected("1"))
	assert.False(t, st.IsSelected("gone"))
	assert.Equal(t, []string{"2", "1"}, st.SelectedIDs())
	assert.Equal(t, []string{"Blue", "Red"}, st.SelectedNames())
}
