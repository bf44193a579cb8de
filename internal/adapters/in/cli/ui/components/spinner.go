// Package components provides reusable TUI components for the vackup CLI.
package components

import (
	"github.com/bnema/vackup/internal/adapters/in/cli/ui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerModel wraps the bubbles spinner with the vackup theme.
type SpinnerModel struct {
	spinner spinner.Model
	message string
	style   lipgloss.Style
}

// NewSpinner creates a themed spinner showing message.
func NewSpinner(kind spinner.Spinner, message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = kind
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)

	return SpinnerModel{
		spinner: s,
		message: message,
		style:   styles.Theme.Muted,
	}
}

// Init implements tea.Model.
func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m SpinnerModel) View() string {
	return m.spinner.View() + " " + m.style.Render(m.message)
}

// SetMessage updates the spinner message.
func (m *SpinnerModel) SetMessage(msg string) {
	m.message = msg
}
