package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles every style the prompts and views render with. It carries no
// state, so one value can be shared by all prompts of a session.
type Theme struct {
	Title    lipgloss.Style // question heading
	Subtitle lipgloss.Style // step counter, secondary headings
	Label    lipgloss.Style // field labels
	Value    lipgloss.Style // answered values
	Cursor   lipgloss.Style // the focused row
	Selected lipgloss.Style // checked rows in a multi-select
	Default  lipgloss.Style // "(default)" marker and placeholder text
	Hint     lipgloss.Style // per-option descriptions
	Muted    lipgloss.Style // unfocused rows
	OK       lipgloss.Style
	Warn     lipgloss.Style
	Error    lipgloss.Style
	Key      lipgloss.Style // footer key names
	Border   lipgloss.Style // banner and status frames

	rule lipgloss.Style
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(AccentPrimary).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(TextSecondary),
		Label:    lipgloss.NewStyle().Foreground(TextMuted),
		Value:    lipgloss.NewStyle().Foreground(AccentGold).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(AccentPrimary).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(StatusOK),
		Default:  lipgloss.NewStyle().Foreground(AccentSecondary),
		Hint:     lipgloss.NewStyle().Foreground(TextMuted).Italic(true),
		Muted:    lipgloss.NewStyle().Foreground(TextSecondary),
		OK:       lipgloss.NewStyle().Foreground(StatusOK).Bold(true),
		Warn:     lipgloss.NewStyle().Foreground(StatusWarn).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(StatusError).Bold(true),
		Key:      lipgloss.NewStyle().Foreground(AccentPrimary).Bold(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderFocused).
			Padding(0, 1),
		rule: lipgloss.NewStyle().Foreground(BorderNormal),
	}
}

// PlainTheme returns a theme without colors or text attributes, used with
// --no-color and when output is not a terminal.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:    plain,
		Subtitle: plain,
		Label:    plain,
		Value:    plain,
		Cursor:   plain,
		Selected: plain,
		Default:  plain,
		Hint:     plain,
		Muted:    plain,
		OK:       plain,
		Warn:     plain,
		Error:    plain,
		Key:      plain,
		Border:   plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		rule:     plain,
	}
}

// Divider returns a horizontal rule of the given width.
func (t Theme) Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return t.rule.Render(strings.Repeat("─", width))
}

// StatusBadge returns a "● LABEL" badge for "ok", "warn" and "error".
// Anything else renders with the muted style.
func (t Theme) StatusBadge(status string) string {
	style := t.Muted
	switch strings.ToLower(status) {
	case "ok":
		style = t.OK
	case "warn":
		style = t.Warn
	case "error", "fail":
		style = t.Error
	}
	return style.Render("●") + " " + style.Render(strings.ToUpper(status))
}
