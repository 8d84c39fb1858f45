package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string // Dialog title (optional)
	Message     string // Main confirmation message
	Warning     string // Optional warning text (shown in orange)
	Destructive bool   // If true, Yes is red, No is green
	YesLabel    string // Custom label for Yes (default: "Yes")
	NoLabel     string // Custom label for No (default: "No")
	Width       int    // Dialog width
}

// ConfirmationModel handles confirmation prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y", "enter":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation dialog
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170"))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	width := m.config.Width
	if width == 0 {
		width = 60
	}
	contentWidth := width - 4

	var content strings.Builder

	if m.config.Title != "" {
		content.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Align(lipgloss.Center).
			Render(headerStyle.Render(m.config.Title)))
		content.WriteString("\n\n")
	}

	if m.config.Message != "" {
		content.WriteString(m.config.Message)
		content.WriteString("\n")
	}

	if m.config.Warning != "" {
		content.WriteString("\n")
		content.WriteString(warningStyle.Render(m.config.Warning))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.renderOptions())

	return borderStyle.Width(width).Padding(0, 1).Render(content.String())
}

func (m *ConfirmationModel) renderOptions() string {
	yesStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	noStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	if m.config.Destructive {
		yesStyle, noStyle = noStyle, yesStyle
	}

	return fmt.Sprintf("%s  %s",
		yesStyle.Render(fmt.Sprintf("[y] %s", m.config.YesLabel)),
		noStyle.Render(fmt.Sprintf("[n] %s", m.config.NoLabel)))
}
