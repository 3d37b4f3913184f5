package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle = lipgloss.NewStyle().MarginTop(1)
)

// View renders the current state of the model.
func (m Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		titleStyle.Render("Swatch showcase"),
		mutedStyle.Render(fmt.Sprintf("  %s (%d/%d) · %s", m.Family(), m.family+1, len(m.families), m.scheme)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		footerStyle.Render(m.help.View(m.keys)),
	)
}

// Run opens the browser on the terminal until the user quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run showcase: %w", err)
	}
	return nil
}
