package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tagsel/tagsel/pkg/models"
	"github.com/tagsel/tagsel/pkg/store"
)

// SheetModel is the main list view: sheet rows with their tag chips
type SheetModel struct {
	store    *store.SheetStore
	settings *models.Settings

	sheet  models.Sheet
	cursor int

	width  int
	height int
}

// NewSheetModel loads the project sheet and settings
func NewSheetModel() (*SheetModel, error) {
	st, err := store.NewSheetStore()
	if err != nil {
		return nil, err
	}

	settings, err := store.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	m := &SheetModel{
		store:    st,
		settings: settings,
	}
	m.Reload()
	return m, nil
}

// Store exposes the sheet store so the app can build cell gateways
func (m *SheetModel) Store() *store.SheetStore {
	return m.store
}

// Settings exposes the loaded settings
func (m *SheetModel) Settings() *models.Settings {
	return m.settings
}

// Reload refreshes the cached sheet from the store
func (m *SheetModel) Reload() {
	m.sheet = m.store.Sheet()
	if m.cursor >= len(m.sheet.Rows) && m.cursor > 0 {
		m.cursor = len(m.sheet.Rows) - 1
	}
}

// SelectedRow returns the row under the cursor
func (m *SheetModel) SelectedRow() (models.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.sheet.Rows) {
		return models.Row{}, false
	}
	return m.sheet.Rows[m.cursor], true
}

// SetSize updates the view dimensions
func (m *SheetModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// HandleInput processes keyboard input for the sheet view. The second
// return reports whether the selected row's cell editor should open.
func (m *SheetModel) HandleInput(msg tea.KeyMsg) (handled bool, openEditor bool) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, false

	case "down", "j":
		if m.cursor < len(m.sheet.Rows)-1 {
			m.cursor++
		}
		return true, false

	case "enter":
		_, ok := m.SelectedRow()
		return true, ok
	}

	return false, false
}

// View renders the sheet
func (m *SheetModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))

	var s strings.Builder
	s.WriteString(titleStyle.Render(strings.ToUpper(m.sheet.Name)))
	s.WriteString("\n\n")

	if len(m.sheet.Rows) == 0 {
		s.WriteString(dimStyle.Render("No rows. Add some with 'tagsel set <row> <tags>' or edit .tagsel/sheet.yaml."))
		s.WriteString("\n")
	}

	options := make(map[string]models.SelectOption, len(m.sheet.Options))
	for _, opt := range m.sheet.Options {
		options[opt.ID] = opt
	}

	for i, row := range m.sheet.Rows {
		prefix := "  "
		title := fmt.Sprintf("%-24s", row.Title)
		if i == m.cursor {
			prefix = "> "
			title = cursorStyle.Render(title)
		}

		chips := make([]string, 0, len(row.Tags))
		for _, id := range row.Tags {
			if opt, ok := options[id]; ok {
				chips = append(chips, RenderOptionChip(opt))
			}
		}

		s.WriteString(fmt.Sprintf("%s%s %s\n", prefix, title, strings.Join(chips, " ")))
	}

	if m.settings.UI.ShowHelp {
		s.WriteString("\n")
		s.WriteString(dimStyle.Render("↑/↓ move • enter edit tags • q quit"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
}
