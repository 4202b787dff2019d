package health

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
)

// category display order
var categoryOrder = []string{CategorySystem, CategoryNetwork, CategoryConfig}

// categoryLabel returns a human-friendly title for a category key.
func categoryLabel(cat string) string {
	switch cat {
	case CategorySystem:
		return "System"
	case CategoryNetwork:
		return "Metadata Service"
	case CategoryConfig:
		return "Configuration"
	default:
		return cat
	}
}

// FormatReport renders r as the doctor command's output.
func FormatReport(r *Report, theme styles.Theme) string {
	var b strings.Builder

	b.WriteString("\n  " + theme.Title.Render("Spring Initializr Doctor") + "\n")
	b.WriteString("  " + theme.Divider(50) + "\n")

	grouped := make(map[string][]CheckResult)
	for _, res := range r.Results {
		grouped[res.Category] = append(grouped[res.Category], res)
	}

	nameStyle := theme.Value.Width(16)
	msgStyle := theme.Muted.Width(48)
	durStyle := theme.Label.Width(8).Align(lipgloss.Right)

	for _, cat := range categoryOrder {
		results := grouped[cat]
		if len(results) == 0 {
			continue
		}

		b.WriteString("\n  " + theme.Subtitle.Render(categoryLabel(cat)) + "\n")

		for _, res := range results {
			symbol := statusSymbol(res.Status, theme)
			name := nameStyle.Render(res.Name)
			msg := msgStyle.Render(styles.TruncateWithEllipsis(res.Message, 46))
			dur := durStyle.Render(formatDuration(res.Duration))
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n", symbol, name, msg, dur))
		}
	}

	b.WriteString("\n  " + theme.Divider(50) + "\n")
	summary := fmt.Sprintf("%d/%d passed", r.Passed, r.Total)
	if r.Warned > 0 {
		summary += fmt.Sprintf(", %d warning(s)", r.Warned)
	}
	if r.Failed > 0 {
		summary += fmt.Sprintf(", %d failed", r.Failed)
	}
	b.WriteString("  " + theme.Subtitle.Render(summary))

	b.WriteString("  ")
	b.WriteString(overallBadge(r, theme))
	b.WriteString("\n")

	b.WriteString(theme.Label.Render(fmt.Sprintf("  completed in %s", formatDuration(r.Duration))) + "\n")

	return b.String()
}

// statusSymbol returns a color-coded status symbol.
func statusSymbol(s Status, theme styles.Theme) string {
	switch s {
	case StatusPass:
		return theme.OK.Render(s.Symbol())
	case StatusWarn:
		return theme.Warn.Render(s.Symbol())
	case StatusFail:
		return theme.Error.Render(s.Symbol())
	default:
		return theme.Label.Render(s.Symbol())
	}
}

// overallBadge returns a styled overall status badge.
func overallBadge(r *Report, theme styles.Theme) string {
	if r.Failed > 0 {
		return theme.Error.Render("UNHEALTHY")
	}
	if r.Warned > 0 {
		return theme.Warn.Render("DEGRADED")
	}
	return theme.OK.Render("HEALTHY")
}

// formatDuration formats a time.Duration to a short human-readable string.
func formatDuration(d interface{ Milliseconds() int64 }) string {
	ms := d.Milliseconds()
	if ms < 1 {
		return "<1ms"
	}
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000.0)
}
