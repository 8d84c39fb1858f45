package store

import (
	"github.com/tagsel/tagsel/pkg/editor"
)

// CellGateway binds one row's tag cell to the sheet store. It implements
// editor.Gateway: each commit writes the snapshot's option list into the
// sheet registry and the selection into the row.
type CellGateway struct {
	store *SheetStore
	rowID string
}

// NewCellGateway creates a gateway for the given row
func NewCellGateway(store *SheetStore, rowID string) *CellGateway {
	return &CellGateway{store: store, rowID: rowID}
}

// Commit persists a snapshot
func (g *CellGateway) Commit(st editor.State) error {
	return g.store.SetCell(g.rowID, st.AllOptions, st.SelectedIDs())
}
