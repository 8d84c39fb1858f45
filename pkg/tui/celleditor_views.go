package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tagsel/tagsel/pkg/models"
)

// CellEditorRenderer handles the rendering of the cell editor
type CellEditorRenderer struct {
	Editor   *CellEditor
	Width    int
	Height   int
	HideHelp bool
}

// NewCellEditorRenderer creates a new cell editor renderer
func NewCellEditorRenderer(editor *CellEditor, width, height int) *CellEditorRenderer {
	return &CellEditorRenderer{
		Editor: editor,
		Width:  width,
		Height: height,
	}
}

// Render returns the complete cell editor view
func (cer *CellEditorRenderer) Render() string {
	if cer.Editor.DeleteConfirm.Active() {
		contentStyle := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
		return contentStyle.Render(cer.Editor.DeleteConfirm.View())
	}

	var s strings.Builder

	s.WriteString(cer.renderHeader())
	s.WriteString("\n\n")
	s.WriteString(cer.renderSelectedTags())
	s.WriteString("\n\n")

	switch cer.Editor.Mode {
	case CellEditorModeEdit:
		s.WriteString(cer.renderEditPanel())
	case CellEditorModeList:
		s.WriteString(cer.renderOptionList())
	default:
		s.WriteString(cer.renderEntry())
	}

	s.WriteString("\n")
	s.WriteString(cer.renderStatus())
	s.WriteString(cer.renderHelp())

	contentStyle := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	return contentStyle.Render(s.String())
}

func (cer *CellEditorRenderer) renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170"))
	return headerStyle.Render(fmt.Sprintf("EDIT TAGS — %s", cer.Editor.RowTitle))
}

func (cer *CellEditorRenderer) renderSelectedTags() string {
	tags := cer.Editor.sync.Tags()
	if len(tags) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("(no tags selected)")
	}

	chips := make([]string, len(tags))
	for i, opt := range tags {
		chips[i] = RenderOptionChip(opt)
	}
	return strings.Join(chips, " ")
}

func (cer *CellEditorRenderer) renderEntry() string {
	var s strings.Builder

	s.WriteString(cer.Editor.input.View())
	s.WriteString("\n")

	suggestions := cer.Editor.Suggestions()
	cursorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	for i, opt := range suggestions {
		prefix := "  "
		style := dimStyle
		if cer.Editor.hasNavigatedSuggestions && i == cer.Editor.suggestionCursor {
			prefix = "> "
			style = cursorStyle
		}
		s.WriteString("\n")
		s.WriteString(style.Render(prefix + opt.Name))
	}

	text := strings.TrimSpace(cer.Editor.input.Value())
	if text != "" && !cer.Editor.HasExactMatch() {
		s.WriteString("\n\n")
		s.WriteString(dimStyle.Render(fmt.Sprintf("↵ create %q", text)))
	}

	return s.String()
}

func (cer *CellEditorRenderer) renderOptionList() string {
	st := cer.Editor.State()
	if len(st.AllOptions) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("No options yet. Switch back and type to create one.")
	}

	var s strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	s.WriteString(titleStyle.Render("ALL OPTIONS"))
	s.WriteString("\n")

	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))

	for i, opt := range st.AllOptions {
		prefix := "  "
		if i == cer.Editor.listCursor {
			prefix = "> "
		}

		check := "[ ]"
		if st.IsSelected(opt.ID) {
			check = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", prefix, check, RenderOptionChip(opt))
		if i == cer.Editor.listCursor {
			line = cursorStyle.Render(fmt.Sprintf("%s%s ", prefix, check)) + RenderOptionChip(opt)
		}

		s.WriteString("\n")
		s.WriteString(line)
	}

	return s.String()
}

func (cer *CellEditorRenderer) renderEditPanel() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")).
		Padding(0, 1)

	color := models.DefaultColorPalette[cer.Editor.colorIndex]
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Render("      ")

	var s strings.Builder
	s.WriteString(titleStyle.Render("EDIT OPTION"))
	s.WriteString("\n\n")
	s.WriteString("Name:  " + cer.Editor.nameInput.View())
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Color: %s %s", swatch, color))

	return borderStyle.Render(s.String())
}

func (cer *CellEditorRenderer) renderStatus() string {
	var lines []string
	if cer.Editor.statusMsg != "" {
		lines = append(lines, cer.Editor.statusMsg)
	}
	if cer.Editor.commitErr != "" {
		lines = append(lines, cer.Editor.commitErr)
	}
	if len(lines) == 0 {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	return errStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func (cer *CellEditorRenderer) renderHelp() string {
	if cer.HideHelp {
		return ""
	}

	var help string
	switch cer.Editor.Mode {
	case CellEditorModeEdit:
		help = "enter save • ↑/↓ color • ctrl+d delete • esc cancel"
	case CellEditorModeList:
		help = "enter/space toggle • e edit • ctrl+d delete • ctrl+y copy • tab/esc back"
	default:
		help = "type to filter • enter create/select • ↑/↓ suggestions • tab all options • ctrl+d untag last • ctrl+y copy • esc close"
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	width := cer.Width - 4
	if width < 20 {
		width = 20
	}
	return helpStyle.Render(wordwrap.String(help, width))
}

// RenderOptionChip renders one option as a colored tag chip
func RenderOptionChip(opt models.SelectOption) string {
	color := models.GetOptionColor(opt.Name, opt.Color)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("230")).
		Padding(0, 1).
		Render(opt.Name)
}
