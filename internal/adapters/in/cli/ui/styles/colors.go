// Package styles provides the colors, icons and composed styles of the vackup TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Blues follow the Docker brand, the rest are tuned for dark terminals.
var (
	Blue300 = lipgloss.Color("#7cc4fa")
	Blue500 = lipgloss.Color("#2496ed")
	Blue700 = lipgloss.Color("#0b5ea8")

	Neutral200 = lipgloss.Color("#e5e5e5")
	Neutral500 = lipgloss.Color("#737373")
	Neutral700 = lipgloss.Color("#404040")
	Neutral800 = lipgloss.Color("#262626")

	Green  = lipgloss.Color("#3ddc84")
	Red    = lipgloss.Color("#ff5f56")
	Yellow = lipgloss.Color("#fbbf24")

	// Semantic colors
	ColorPrimary = Blue500
	ColorAccent  = Blue300
	ColorSuccess = Green
	ColorWarning = Yellow
	ColorError   = Red
	ColorInfo    = Blue300

	// Text colors
	ColorText      = Neutral200
	ColorTextMuted = Neutral500

	// Background colors
	ColorBg      = lipgloss.Color("#000000")
	ColorBgMuted = Neutral800

	// Border colors
	ColorBorder = Neutral700
)
