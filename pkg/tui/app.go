package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tagsel/tagsel/pkg/store"
)

type sessionState int

const (
	sheetListView sessionState = iota
	cellEditorView
)

// App is the root bubbletea model: the sheet list with the cell editor
// layered over it while a tag cell is being edited.
type App struct {
	state     sessionState
	sheet     *SheetModel
	editor    *CellEditor
	width     int
	height    int
	statusMsg string
	loadErr   error
}

// NewApp creates the root model
func NewApp() *App {
	a := &App{
		state:  sheetListView,
		editor: NewCellEditor(),
	}

	sheet, err := NewSheetModel()
	if err != nil {
		a.loadErr = err
		return a
	}
	a.sheet = sheet
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.sheet != nil {
			a.sheet.SetSize(msg.Width, msg.Height)
		}
		a.editor.SetSize(msg.Width, msg.Height)
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

		if a.state == cellEditorView {
			handled, cmd := a.editor.HandleInput(msg)
			if !a.editor.Active {
				// Editor closed itself; fall back to the list
				a.state = sheetListView
				a.sheet.Reload()
			}
			if handled {
				return a, cmd
			}
			return a, nil
		}

		return a.updateSheetView(msg)
	}

	return a, nil
}

func (a *App) updateSheetView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.sheet == nil {
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	}

	handled, openEditor := a.sheet.HandleInput(msg)
	if handled && openEditor {
		a.openEditor()
	}
	return a, nil
}

// openEditor starts a cell editor session for the selected row
func (a *App) openEditor() {
	row, ok := a.sheet.SelectedRow()
	if !ok {
		return
	}

	sheet := a.sheet.Store().Sheet()
	gateway := store.NewCellGateway(a.sheet.Store(), row.ID)
	mode := store.EditorCommitMode(a.sheet.Settings())

	a.editor.Callbacks.OnExit = func(mutated bool) {
		if mutated {
			a.statusMsg = "✓ Tags saved"
		}
	}
	a.editor.Start(row.ID, row.Title, sheet.Options, row.Tags, gateway, mode, nil)
	a.editor.SetSize(a.width, a.height)
	a.state = cellEditorView
	a.statusMsg = ""
}

func (a *App) View() string {
	if a.loadErr != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.\n", a.loadErr)
	}

	var view string
	switch a.state {
	case cellEditorView:
		r := NewCellEditorRenderer(a.editor, a.width, a.height)
		if a.sheet != nil {
			r.HideHelp = !a.sheet.Settings().UI.ShowHelp
		}
		view = r.Render()
	default:
		view = a.sheet.View()
	}

	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			PaddingLeft(2)
		view += "\n" + statusStyle.Render(a.statusMsg)
	}

	return view
}
