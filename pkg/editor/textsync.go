package editor

import (
	"strings"

	"github.com/tagsel/tagsel/pkg/models"
)

// TextInputSync adapts a free-text entry field to the controller: typed
// text becomes filter events, a submit becomes a create-option intent,
// and the visual tag list mirrors the selection after every snapshot.
type TextInputSync struct {
	ctrl *Controller
	text string
	tags []models.SelectOption
}

// NewTextInputSync creates the adapter and aligns it with the
// controller's current snapshot
func NewTextInputSync(ctrl *Controller) *TextInputSync {
	t := &TextInputSync{ctrl: ctrl}
	t.Refresh(ctrl.State())
	return t
}

// SetText records the current entry text and narrows the visible options
func (t *TextInputSync) SetText(text string) State {
	t.text = text
	st := t.ctrl.Apply(FilterChanged{Text: text})
	t.Refresh(st)
	return st
}

// Submit turns the current entry into a create-option intent and clears
// the field. Whitespace-only text just clears.
func (t *TextInputSync) Submit() State {
	text := t.text
	t.text = ""

	if strings.TrimSpace(text) == "" {
		st := t.ctrl.Apply(FilterChanged{Text: ""})
		t.Refresh(st)
		return st
	}

	st := t.ctrl.Apply(NewOption{Text: text})
	t.Refresh(st)
	return st
}

// Text returns the current entry text
func (t *TextInputSync) Text() string {
	return t.text
}

// Tags returns the visual tag list, aligned with the selection in
// selection order
func (t *TextInputSync) Tags() []models.SelectOption {
	return t.tags
}

// Refresh realigns the tag list with a snapshot. The controller's own
// events call this internally; hosts only need it when they apply events
// outside the adapter.
func (t *TextInputSync) Refresh(st State) {
	t.tags = make([]models.SelectOption, len(st.SelectedOptions))
	copy(t.tags, st.SelectedOptions)
	if st.PendingText != t.text {
		t.text = st.PendingText
	}
}
