package tui

// CellEditorMode represents the current mode of the cell editor
type CellEditorMode int

const (
	// CellEditorModeInput keeps the free-text entry focused; typing
	// filters, enter creates or selects
	CellEditorModeInput CellEditorMode = iota

	// CellEditorModeList navigates the full option list
	CellEditorModeList

	// CellEditorModeEdit edits a single option's name and color
	CellEditorModeEdit
)

// CellEditorCallbacks contains callback functions for cell editor operations
type CellEditorCallbacks struct {
	// OnExit is called when the editor is closed. mutated reports
	// whether any event changed options or selection.
	OnExit func(mutated bool)
}

// StatusMsg carries a transient status line for the app footer
type StatusMsg string
