package theme

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rentdesk/rentdesk/internal/ports"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Rental state styles
var (
	ActiveStyle = lipgloss.NewStyle().
			Foreground(ColorActive)

	OverdueStyle = lipgloss.NewStyle().
			Foreground(ColorOverdue).
			Bold(true)

	ReservedStyle = lipgloss.NewStyle().
			Foreground(ColorReserved)

	ReturnedStyle = lipgloss.NewStyle().
			Foreground(ColorReturned)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Pending chord hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorHintLabel)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Chart styles
var (
	RevenueStyle = lipgloss.NewStyle().
			Foreground(ColorRevenue)

	RentalsStyle = lipgloss.NewStyle().
			Foreground(ColorRentals)

	ChartLegendStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteDescSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorNormal).
					Background(ColorPaletteSelected)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey)

	PaletteFooterStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(1, 0, 0, 0)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	PaletteItemSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorHighlight).
					Background(ColorPaletteSelected).
					Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteMatchStyle = lipgloss.NewStyle().
				Foreground(ColorHintKey).
				Bold(true)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)

var toastBase = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// ToastStyle returns the box style for a notification kind
func ToastStyle(kind ports.NotificationKind) lipgloss.Style {
	return toastBase.BorderForeground(ToastColor(kind))
}

// ToastColor returns the accent color for a notification kind
func ToastColor(kind ports.NotificationKind) Color {
	switch kind {
	case ports.NotifyAwaiting:
		return ColorToastAwaiting
	case ports.NotifySuccess:
		return ColorToastSuccess
	case ports.NotifyCancelled:
		return ColorToastCancelled
	case ports.NotifyUnknown:
		return ColorToastUnknown
	case ports.NotifyFailure:
		return ColorToastFailure
	}
	return ColorMuted
}

// TableStyles returns the bubbles table styles used by every list view
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorSecondary)
	s.Selected = s.Selected.
		Foreground(ColorHighlight).
		Background(ColorPaletteSelected).
		Bold(false)
	return s
}
