package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Rental state colors
const (
	ColorActive   Color = "2" // Green - out with a customer
	ColorOverdue  Color = "1" // Red - past due
	ColorReserved Color = "3" // Yellow - held
	ColorReturned Color = "8" // Gray - closed
)

// Toast colors, one per notification kind
const (
	ColorToastAwaiting  Color = "33"  // Blue
	ColorToastCancelled Color = "245" // Gray
	ColorToastFailure   Color = "196" // Bright red
	ColorToastSuccess   Color = "42"  // Green
	ColorToastUnknown   Color = "214" // Orange
)

// UI semantic colors
const (
	ColorDimmed          Color = "238"
	ColorError           Color = "196" // Bright red
	ColorHighlight       Color = "255" // White - emphasis
	ColorMuted           Color = "241" // Gray - secondary text
	ColorNormal          Color = "250" // Default text
	ColorPaletteSelected Color = "237"
	ColorScrollIndicator Color = "244"
	ColorSubtle          Color = "245" // Light gray - labels
	ColorVersion         Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow - pending chord keys
	ColorHintLabel Color = "178" // Gold
)

// Chart colors
const (
	ColorRevenue Color = "42"
	ColorRentals Color = "33"
)
