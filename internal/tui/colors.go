package tui

// Color constants for the trackgen report theme
const (
	ColorBorder        = "#3A3F55" // Grey-blue
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorHelpText      = "240" // Dark grey for help text

	ColorAccentMain   = "#7C3AED" // Header, selected row
	ColorAccentBright = "#A78BFA"

	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)
