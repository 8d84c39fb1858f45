package editor

import "github.com/tagsel/tagsel/pkg/models"

// EditPanel is the per-option sub-interface consumed by the option edit
// view: it pins one option and translates its callbacks into update and
// delete events against the owning controller.
type EditPanel struct {
	ctrl   *Controller
	option models.SelectOption
}

// EditPanel returns a panel for the option with the given id. The second
// return is false when the id no longer resolves.
func (c *Controller) EditPanel(id string) (*EditPanel, bool) {
	st := c.State()
	for _, opt := range st.AllOptions {
		if opt.ID == id {
			return &EditPanel{ctrl: c, option: opt}, true
		}
	}
	return nil, false
}

// Option returns the option the panel was opened for
func (p *EditPanel) Option() models.SelectOption {
	return p.option
}

// Updated applies the edited name and color to the pinned option. The id
// always stays the panel's own; callers cannot redirect the update.
func (p *EditPanel) Updated(opt models.SelectOption) State {
	opt.ID = p.option.ID
	return p.ctrl.Apply(UpdateOption{Option: opt})
}

// Deleted removes the pinned option, cascading into the selection
func (p *EditPanel) Deleted() State {
	return p.ctrl.Apply(DeleteOption{Option: p.option})
}
