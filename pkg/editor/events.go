package editor

import "github.com/tagsel/tagsel/pkg/models"

// Event is a user intent delivered to the controller. Events carry data
// only; all interpretation happens in Controller.Apply.
type Event interface {
	isEvent()
}

// Initial seeds the controller from the host cell's current option list
// and selection, producing the first snapshot.
type Initial struct {
	Options  []models.SelectOption
	Selected []string
}

// NewOption creates an option from free text and selects it. Text that
// matches an existing option name (case-insensitive) selects that option
// instead of failing.
type NewOption struct {
	Text string
}

// SelectOption toggles membership of an option in the selection
type SelectOption struct {
	ID string
}

// UpdateOption renames and recolors an option in place
type UpdateOption struct {
	Option models.SelectOption
}

// DeleteOption removes an option, cascading into the selection
type DeleteOption struct {
	Option models.SelectOption
}

// FilterChanged carries the current free-text entry; it narrows the
// visible option list without mutating options or selection.
type FilterChanged struct {
	Text string
}

func (Initial) isEvent()       {}
func (NewOption) isEvent()     {}
func (SelectOption) isEvent()  {}
func (UpdateOption) isEvent()  {}
func (DeleteOption) isEvent()  {}
func (FilterChanged) isEvent() {}
