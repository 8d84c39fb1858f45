// Package editor implements the state machine behind a multi-select tag
// cell: an option store plus a selection set driven by intent events,
// each event producing an immutable snapshot for the presentation layer.
package editor

import (
	"errors"
	"sync"

	"github.com/tagsel/tagsel/pkg/models"
	"github.com/tagsel/tagsel/pkg/options"
)

// CommitMode controls when a mutated snapshot reaches the gateway
type CommitMode int

const (
	// CommitOnClose hands the final snapshot to the gateway once, when
	// the editor is dismissed
	CommitOnClose CommitMode = iota

	// CommitPerEvent hands the snapshot to the gateway after every
	// mutating event, so partial edits are visible to other readers
	CommitPerEvent
)

// Gateway receives committed option/selection data. Commit failures stay
// the gateway's concern; the controller only forwards them to the
// optional OnCommitError callback.
type Gateway interface {
	Commit(State) error
}

// Config configures a Controller
type Config struct {
	Gateway    Gateway
	CommitMode CommitMode

	// OnDismiss is invoked exactly once when the editor closes,
	// whether or not anything mutated
	OnDismiss func()

	// OnCommitError receives gateway failures; nil ignores them
	OnCommitError func(error)
}

// Controller is the single state machine of the cell editor. Apply is
// not safe for concurrent use: the host delivers events one at a time,
// either from a bubbletea update loop or through a Loop.
type Controller struct {
	cfg Config

	store     *options.Store
	selection *options.SelectionSet
	pending   string

	last    State
	mutated bool

	closed      bool
	dismissOnce sync.Once
}

// New creates a controller. The first snapshot exists only after the
// host applies an Initial event.
func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	c.store = options.NewStore(nil)
	c.selection = options.NewSelectionSet(nil)
	c.store.Attach(c.selection)
	return c
}

// Apply processes one event to completion and returns the resulting
// snapshot. Every recoverable condition (duplicate rename, stale id,
// empty text) resolves to a valid, possibly unchanged snapshot; nothing
// propagates to the caller.
func (c *Controller) Apply(ev Event) State {
	if c.closed {
		return c.last
	}

	changed := false

	switch ev := ev.(type) {
	case Initial:
		c.store = options.NewStore(ev.Options)
		c.selection = options.NewSelectionSet(ev.Selected)
		c.store.Attach(c.selection)
		c.pending = ""

	case NewOption:
		changed = c.applyNewOption(ev.Text)

	case SelectOption:
		before := c.selection.Len()
		wasMember := c.selection.Contains(ev.ID)
		c.selection.Toggle(ev.ID)
		changed = wasMember || c.selection.Len() != before

	case UpdateOption:
		changed = c.applyUpdateOption(ev.Option)

	case DeleteOption:
		changed = c.store.Remove(ev.Option.ID) == nil

	case FilterChanged:
		c.pending = ev.Text
	}

	c.last = c.snapshot()
	if changed {
		c.mutated = true
		if c.cfg.CommitMode == CommitPerEvent {
			c.commit(c.last)
		}
	}
	return c.last
}

// State returns the last emitted snapshot
func (c *Controller) State() State {
	return c.last
}

// HasMutated reports whether any event changed options or selection
// since the controller was created
func (c *Controller) HasMutated() bool {
	return c.mutated
}

// Close tears the controller down: in CommitOnClose mode the final
// snapshot is committed (only if something mutated), the dismissal
// notification fires exactly once, and further events are ignored.
func (c *Controller) Close() State {
	if c.closed {
		return c.last
	}
	c.closed = true

	if c.cfg.CommitMode == CommitOnClose && c.mutated {
		c.commit(c.last)
	}

	c.dismissOnce.Do(func() {
		if c.cfg.OnDismiss != nil {
			c.cfg.OnDismiss()
		}
	})

	return c.last
}

// Closed reports whether Close has been called
func (c *Controller) Closed() bool {
	return c.closed
}

// applyNewOption creates or resolves an option from free text and makes
// sure it is selected. Typing a name that already exists means "select
// the existing one", not an error.
func (c *Controller) applyNewOption(text string) bool {
	opt, err := c.store.Add(text)
	if err != nil {
		if !errors.Is(err, models.ErrDuplicateName) {
			// Malformed input (empty or oversized text) is ignored
			return false
		}
		opt, _ = c.store.FindByName(text)
	}

	changed := true
	if c.selection.Contains(opt.ID) {
		// Already selected, nothing to toggle; the add itself may
		// still have changed state
		changed = err == nil
	} else {
		c.selection.Toggle(opt.ID)
	}

	c.pending = ""
	return changed
}

// applyUpdateOption renames and recolors in place. A rename collision
// leaves the state untouched, color included; this is the deliberate
// counterpart to the create path's duplicate resolution.
func (c *Controller) applyUpdateOption(opt models.SelectOption) bool {
	if _, ok := c.store.Lookup(opt.ID); !ok {
		return false
	}

	if err := c.store.Rename(opt.ID, opt.Name); err != nil {
		return false
	}

	if opt.Color != "" {
		if err := c.store.SetColor(opt.ID, opt.Color); err != nil {
			return false
		}
	}
	return true
}

func (c *Controller) snapshot() State {
	all := c.store.All()

	selected := make([]models.SelectOption, 0, c.selection.Len())
	for _, id := range c.selection.Ordered() {
		if opt, ok := c.store.Lookup(id); ok {
			selected = append(selected, opt)
		}
	}

	return State{
		AllOptions:      all,
		SelectedOptions: selected,
		VisibleOptions:  filterOptions(all, c.pending),
		PendingText:     c.pending,
	}
}

func (c *Controller) commit(st State) {
	if c.cfg.Gateway == nil {
		return
	}
	if err := c.cfg.Gateway.Commit(st); err != nil && c.cfg.OnCommitError != nil {
		c.cfg.OnCommitError(err)
	}
}
