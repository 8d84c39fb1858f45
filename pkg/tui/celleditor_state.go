package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/tagsel/tagsel/pkg/editor"
	"github.com/tagsel/tagsel/pkg/models"
)

const maxSuggestions = 6

// CellEditor is the dropdown editor for one multi-select tag cell. It
// owns a Controller for the session and translates key input into intent
// events; all tag state lives behind the controller.
type CellEditor struct {
	Active bool
	Mode   CellEditorMode

	RowID    string
	RowTitle string

	ctrl *editor.Controller
	sync *editor.TextInputSync

	// Free-text entry
	input                   textinput.Model
	suggestionCursor        int
	hasNavigatedSuggestions bool

	// Option list pane
	listCursor int

	// Edit panel
	panel      *editor.EditPanel
	nameInput  textinput.Model
	colorIndex int

	DeleteConfirm *ConfirmationModel

	Width  int
	Height int

	Callbacks CellEditorCallbacks

	statusMsg string
	commitErr string
}

// NewCellEditor creates a new cell editor instance
func NewCellEditor() *CellEditor {
	ti := textinput.New()
	ti.Placeholder = "Type to search or create..."
	ti.CharLimit = 50
	ti.Width = 40

	ni := textinput.New()
	ni.CharLimit = 50
	ni.Width = 30

	return &CellEditor{
		input:         ti,
		nameInput:     ni,
		DeleteConfirm: NewConfirmation(),
	}
}

// Start opens the editor for a specific cell, seeding the controller
// from the cell's current options and selection
func (ce *CellEditor) Start(rowID, rowTitle string, opts []models.SelectOption, selected []string, gw editor.Gateway, mode editor.CommitMode, onDismiss func()) {
	ce.ctrl = editor.New(editor.Config{
		Gateway:    gw,
		CommitMode: mode,
		OnDismiss:  onDismiss,
		OnCommitError: func(err error) {
			ce.commitErr = fmt.Sprintf("× Save failed: %v", err)
		},
	})
	ce.ctrl.Apply(editor.Initial{Options: opts, Selected: selected})
	ce.sync = editor.NewTextInputSync(ce.ctrl)

	ce.Active = true
	ce.Mode = CellEditorModeInput
	ce.RowID = rowID
	ce.RowTitle = rowTitle
	ce.input.SetValue("")
	ce.input.Focus()
	ce.suggestionCursor = 0
	ce.hasNavigatedSuggestions = false
	ce.listCursor = 0
	ce.statusMsg = ""
	ce.commitErr = ""
}

// Reset clears the editor state after close
func (ce *CellEditor) Reset() {
	ce.Active = false
	ce.Mode = CellEditorModeInput
	ce.RowID = ""
	ce.RowTitle = ""
	ce.ctrl = nil
	ce.sync = nil
	ce.panel = nil
	ce.input.SetValue("")
	ce.input.Blur()
	ce.suggestionCursor = 0
	ce.hasNavigatedSuggestions = false
	ce.listCursor = 0
	ce.statusMsg = ""
	ce.commitErr = ""
	ce.DeleteConfirm.Hide()
}

// State returns the controller's current snapshot
func (ce *CellEditor) State() editor.State {
	if ce.ctrl == nil {
		return editor.State{}
	}
	return ce.ctrl.State()
}

// Mutated reports whether the session changed anything
func (ce *CellEditor) Mutated() bool {
	return ce.ctrl != nil && ce.ctrl.HasMutated()
}

// Suggestions returns unselected options ranked against the entry text.
// Empty text lists every unselected option in registry order.
func (ce *CellEditor) Suggestions() []models.SelectOption {
	st := ce.State()

	candidates := make([]models.SelectOption, 0, len(st.AllOptions))
	for _, opt := range st.AllOptions {
		if !st.IsSelected(opt.ID) {
			candidates = append(candidates, opt)
		}
	}

	text := strings.TrimSpace(ce.input.Value())
	if text == "" {
		if len(candidates) > maxSuggestions {
			return candidates[:maxSuggestions]
		}
		return candidates
	}

	names := make([]string, len(candidates))
	for i, opt := range candidates {
		names[i] = opt.Name
	}

	matches := fuzzy.Find(text, names)
	ranked := make([]models.SelectOption, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, candidates[m.Index])
		if len(ranked) == maxSuggestions {
			break
		}
	}
	return ranked
}

// HasExactMatch reports whether the entry text matches an existing
// option name case-insensitively
func (ce *CellEditor) HasExactMatch() bool {
	key := models.NormalizeOptionName(ce.input.Value())
	if key == "" {
		return false
	}
	for _, opt := range ce.State().AllOptions {
		if models.NormalizeOptionName(opt.Name) == key {
			return true
		}
	}
	return false
}

// HandleInput processes keyboard input for the cell editor
func (ce *CellEditor) HandleInput(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if !ce.Active {
		return false, nil
	}

	if ce.DeleteConfirm.Active() {
		return true, ce.DeleteConfirm.Update(msg)
	}

	switch ce.Mode {
	case CellEditorModeEdit:
		return ce.handleEditInput(msg)
	case CellEditorModeList:
		return ce.handleListInput(msg)
	default:
		return ce.handleEntryInput(msg)
	}
}

// handleEntryInput drives the always-open text input
func (ce *CellEditor) handleEntryInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if ce.input.Value() != "" {
			ce.setEntryText("")
			return true, nil
		}
		ce.closeEditor()
		return true, nil

	case "enter":
		suggestions := ce.Suggestions()
		if ce.hasNavigatedSuggestions && ce.suggestionCursor < len(suggestions) {
			ce.ctrl.Apply(editor.SelectOption{ID: suggestions[ce.suggestionCursor].ID})
			ce.setEntryText("")
		} else {
			ce.submitEntry()
		}
		return true, nil

	case "up":
		if ce.suggestionCursor > 0 {
			ce.suggestionCursor--
		}
		ce.hasNavigatedSuggestions = true
		return true, nil

	case "down":
		if limit := len(ce.Suggestions()); ce.suggestionCursor < limit-1 {
			ce.suggestionCursor++
		}
		ce.hasNavigatedSuggestions = true
		return true, nil

	case "tab":
		ce.Mode = CellEditorModeList
		ce.listCursor = 0
		ce.setEntryText("")
		return true, nil

	case "ctrl+d":
		// With an empty entry, deselect the most recent tag
		if ce.input.Value() == "" {
			if tags := ce.sync.Tags(); len(tags) > 0 {
				ce.ctrl.Apply(editor.SelectOption{ID: tags[len(tags)-1].ID})
				ce.sync.Refresh(ce.ctrl.State())
			}
		}
		return true, nil

	case "ctrl+y":
		return true, ce.copySelection()

	default:
		var cmd tea.Cmd
		ce.input, cmd = ce.input.Update(msg)
		ce.sync.SetText(ce.input.Value())
		ce.suggestionCursor = 0
		ce.hasNavigatedSuggestions = false
		return true, cmd
	}
}

// handleListInput drives the option list pane
func (ce *CellEditor) handleListInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	opts := ce.State().AllOptions

	switch msg.String() {
	case "esc", "tab":
		ce.Mode = CellEditorModeInput
		return true, nil

	case "up", "k":
		if ce.listCursor > 0 {
			ce.listCursor--
		}
		return true, nil

	case "down", "j":
		if ce.listCursor < len(opts)-1 {
			ce.listCursor++
		}
		return true, nil

	case "enter", " ":
		if ce.listCursor < len(opts) {
			ce.ctrl.Apply(editor.SelectOption{ID: opts[ce.listCursor].ID})
			ce.sync.Refresh(ce.ctrl.State())
		}
		return true, nil

	case "e":
		if ce.listCursor < len(opts) {
			ce.openEditPanel(opts[ce.listCursor])
		}
		return true, nil

	case "ctrl+d":
		if ce.listCursor < len(opts) {
			ce.confirmDelete(opts[ce.listCursor])
		}
		return true, nil

	case "ctrl+y":
		return true, ce.copySelection()
	}

	return true, nil
}

// handleEditInput drives the per-option edit panel
func (ce *CellEditor) handleEditInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		ce.closeEditPanel()
		return true, nil

	case "enter":
		ce.saveEditPanel()
		return true, nil

	case "up":
		ce.colorIndex--
		if ce.colorIndex < 0 {
			ce.colorIndex = len(models.DefaultColorPalette) - 1
		}
		return true, nil

	case "down":
		ce.colorIndex = (ce.colorIndex + 1) % len(models.DefaultColorPalette)
		return true, nil

	case "ctrl+d":
		ce.confirmDelete(ce.panel.Option())
		return true, nil

	default:
		var cmd tea.Cmd
		ce.nameInput, cmd = ce.nameInput.Update(msg)
		return true, cmd
	}
}

func (ce *CellEditor) openEditPanel(opt models.SelectOption) {
	panel, ok := ce.ctrl.EditPanel(opt.ID)
	if !ok {
		return
	}
	ce.panel = panel
	ce.Mode = CellEditorModeEdit
	ce.nameInput.SetValue(opt.Name)
	ce.nameInput.CursorEnd()
	ce.nameInput.Focus()
	ce.colorIndex = paletteIndex(opt.Color)
	ce.statusMsg = ""
}

func (ce *CellEditor) closeEditPanel() {
	ce.panel = nil
	ce.Mode = CellEditorModeList
	ce.nameInput.Blur()
	ce.statusMsg = ""
}

// saveEditPanel applies the rename/recolor. A name collision keeps the
// panel open with a status message instead of silently dropping the edit.
func (ce *CellEditor) saveEditPanel() {
	if ce.panel == nil {
		return
	}

	name := strings.TrimSpace(ce.nameInput.Value())
	if name == "" {
		ce.statusMsg = "× Name cannot be empty"
		return
	}

	key := models.NormalizeOptionName(name)
	for _, opt := range ce.State().AllOptions {
		if opt.ID != ce.panel.Option().ID && models.NormalizeOptionName(opt.Name) == key {
			ce.statusMsg = fmt.Sprintf("× An option named %q already exists", opt.Name)
			return
		}
	}

	ce.panel.Updated(models.SelectOption{
		Name:  name,
		Color: models.DefaultColorPalette[ce.colorIndex],
	})
	ce.sync.Refresh(ce.ctrl.State())
	ce.closeEditPanel()
}

func (ce *CellEditor) confirmDelete(opt models.SelectOption) {
	ce.DeleteConfirm.Show(ConfirmationConfig{
		Title:       "Delete Option",
		Message:     fmt.Sprintf("Delete option '%s'?", opt.Name),
		Warning:     "It will be removed from this cell's selection as well.",
		YesLabel:    "Delete",
		NoLabel:     "Cancel",
		Destructive: true,
		Width:       minInt(ce.Width-4, 60),
	}, func() tea.Cmd {
		ce.ctrl.Apply(editor.DeleteOption{Option: opt})
		ce.sync.Refresh(ce.ctrl.State())
		if ce.Mode == CellEditorModeEdit {
			ce.closeEditPanel()
		}
		if count := len(ce.State().AllOptions); ce.listCursor >= count && ce.listCursor > 0 {
			ce.listCursor = count - 1
		}
		return nil
	}, func() tea.Cmd {
		return nil
	})
}

// copySelection puts the selected tag names on the system clipboard
func (ce *CellEditor) copySelection() tea.Cmd {
	names := ce.State().SelectedNames()
	if len(names) == 0 {
		return func() tea.Msg { return StatusMsg("Nothing selected to copy") }
	}

	if err := clipboard.WriteAll(strings.Join(names, ", ")); err != nil {
		return func() tea.Msg { return StatusMsg(fmt.Sprintf("× Copy failed: %v", err)) }
	}
	return func() tea.Msg {
		return StatusMsg(fmt.Sprintf("✓ Copied %d tag%s", len(names), pluralS(len(names))))
	}
}

func (ce *CellEditor) setEntryText(text string) {
	ce.input.SetValue(text)
	ce.sync.SetText(text)
	ce.suggestionCursor = 0
	ce.hasNavigatedSuggestions = false
}

func (ce *CellEditor) submitEntry() {
	ce.sync.Submit()
	ce.input.SetValue("")
	ce.suggestionCursor = 0
	ce.hasNavigatedSuggestions = false
}

// closeEditor tears down the controller, committing per its mode, and
// notifies the host
func (ce *CellEditor) closeEditor() {
	mutated := ce.ctrl.HasMutated()
	ce.ctrl.Close()
	if ce.Callbacks.OnExit != nil {
		ce.Callbacks.OnExit(mutated)
	}
	ce.Reset()
}

// SetSize updates the dimensions of the cell editor
func (ce *CellEditor) SetSize(width, height int) {
	ce.Width = width
	ce.Height = height
	ce.input.Width = minInt(width-8, 50)
}

func paletteIndex(color string) int {
	for i, c := range models.DefaultColorPalette {
		if c == color {
			return i
		}
	}
	return 0
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
