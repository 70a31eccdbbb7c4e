package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — calm and focused; this is an assessment, not a game
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Domain colors, one per RIASEC interest area, keyed by domain code.
var DomainColors = map[string]color.Color{
	"R": lipgloss.Color("#F97316"), // Realistic - orange
	"I": lipgloss.Color("#3B82F6"), // Investigative - blue
	"A": lipgloss.Color("#EC4899"), // Artistic - pink
	"S": lipgloss.Color("#22C55E"), // Social - green
	"E": lipgloss.Color("#EAB308"), // Enterprising - yellow
	"C": lipgloss.Color("#8B5CF6"), // Conventional - purple
}

// DomainColor returns the color for a domain code, falling back to the
// primary color for unknown codes.
func DomainColor(code string) color.Color {
	if c, ok := DomainColors[code]; ok {
		return c
	}
	return Primary
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
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
