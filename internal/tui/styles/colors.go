package styles

import "github.com/charmbracelet/lipgloss"

// Spring Leaf -- Dark Palette
// Neutral slate surfaces with the Spring green as primary accent.

var (
	// Accents
	AccentPrimary   = lipgloss.Color("#6db33f") // Spring green -- cursor, titles, focused borders
	AccentSecondary = lipgloss.Color("#39c5bb") // Teal -- defaults, hints
	AccentGold      = lipgloss.Color("#f5a623") // Gold -- answered values

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0") // High contrast
	TextSecondary = lipgloss.Color("#94a3b8") // Dimmed
	TextMuted     = lipgloss.Color("#64748b") // Very dim

	// Borders
	BorderNormal  = lipgloss.Color("#2d3748")
	BorderFocused = lipgloss.Color("#6db33f")
)
