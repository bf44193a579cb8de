package styles

import "github.com/charmbracelet/lipgloss"

// Theme contains the composed styles of the vackup TUI.
var Theme = struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Badges
	BadgeBusy lipgloss.Style

	// Table styles
	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowSelected lipgloss.Style
	TableCell        lipgloss.Style

	// Boxes
	Box      lipgloss.Style
	BoxError lipgloss.Style

	// Help styles
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	Subtitle: lipgloss.NewStyle().
		Foreground(ColorAccent),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText),

	Success: lipgloss.NewStyle().
		Foreground(ColorSuccess),

	Error: lipgloss.NewStyle().
		Foreground(ColorError),

	Warning: lipgloss.NewStyle().
		Foreground(ColorWarning),

	Info: lipgloss.NewStyle().
		Foreground(ColorInfo),

	BadgeBusy: lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorWarning).
		Padding(0, 1),

	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	TableRow: lipgloss.NewStyle().
		Foreground(ColorText),

	TableRowSelected: lipgloss.NewStyle().
		Foreground(ColorAccent).
		Background(ColorBgMuted),

	TableCell: lipgloss.NewStyle().
		Padding(0, 1),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),

	BoxError: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1),

	HelpKey: lipgloss.NewStyle().
		Foreground(ColorPrimary),

	HelpDesc: lipgloss.NewStyle().
		Foreground(ColorTextMuted),
}

// RenderKeyHelp returns formatted key binding help text.
func RenderKeyHelp(key, desc string) string {
	return Theme.HelpKey.Render(key) + " " + Theme.HelpDesc.Render(desc)
}

// RenderError returns a styled error message.
func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}

// RenderSuccess returns a styled success message.
func RenderSuccess(msg string) string {
	return Theme.Success.Render(IconSuccess + " " + msg)
}

// RenderWarning returns a styled warning message.
func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

// RenderInfo returns a styled info message.
func RenderInfo(msg string) string {
	return Theme.Info.Render(IconInfo + " " + msg)
}
