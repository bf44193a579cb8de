package styles

// Nerd Font icons for terminal UI.
const (
	// Status indicators
	IconSuccess = "" // nf-fa-check (U+F00C)
	IconError   = "" // nf-fa-times (U+F00D)
	IconWarning = "" // nf-fa-exclamation_triangle (U+F071)
	IconInfo    = "" // nf-fa-info_circle (U+F05A)
	IconPending = "" // nf-fa-clock_o (U+F017)

	// Objects
	IconVolume    = "" // nf-fa-database (U+F1C0)
	IconContainer = "" // nf-oct-container (U+F489)
	IconArchive   = "" // nf-fa-archive (U+F187)
	IconFolder    = "" // nf-fa-folder_open (U+F07C)

	// UI elements
	IconBullet = "▸"

	// Spinner frames
	SpinnerDot = "⣾⣽⣻⢿⡿⣟⣯⣷"
)
