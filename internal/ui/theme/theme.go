package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edurisk/internal/risk"
)

// Color palette — clean dashboard look, risk colors match the report bands
var (
	Primary    = lipgloss.Color("#0078D4") // Azure Blue
	RiskHigh   = lipgloss.Color("#EF4444") // Red
	RiskMedium = lipgloss.Color("#F59E0B") // Amber
	RiskLow    = lipgloss.Color("#10B981") // Emerald
	Text       = lipgloss.Color("#F8FAFC") // White
	TextDim    = lipgloss.Color("#94A3B8") // Slate
	BgDark     = lipgloss.Color("#0F172A") // Deep Navy
	BgCard     = lipgloss.Color("#1E293B") // Dark Slate
	Border     = lipgloss.Color("#334155") // Slate
)

// LevelColor maps a risk level to its display color.
func LevelColor(level risk.Level) color.Color {
	switch level {
	case risk.LevelHigh:
		return RiskHigh
	case risk.LevelMedium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// GaugeColor maps a 0-100 metric value to the report color bands:
// green at or above 75, amber at or above 60, red below.
func GaugeColor(value float64) color.Color {
	switch {
	case value >= 75:
		return RiskLow
	case value >= 60:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Warning = lipgloss.NewStyle().
		Foreground(RiskMedium).
		Bold(true)

	Critical = lipgloss.NewStyle().
			Foreground(RiskHigh).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
