package components

import (
	"strings"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
)

// KeyHint describes a single keybinding hint for display in the footer.
type KeyHint struct {
	Key  string // "enter", "space", "↑↓"
	Desc string // "confirm", "toggle", "move"
}

// Footer renders context-aware keybinding hints.
type Footer struct {
	Hints []KeyHint
	Theme styles.Theme
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, f.Theme.Key.Render(h.Key)+" "+f.Theme.Label.Render(h.Desc))
	}
	return strings.Join(parts, f.Theme.Label.Render(" • "))
}

// SelectFooter returns the footer for single-choice prompts.
func SelectFooter(theme styles.Theme) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "↑↓", Desc: "move"},
			{Key: "enter", Desc: "choose"},
			{Key: "esc", Desc: "abort"},
		},
		Theme: theme,
	}
}

// MultiSelectFooter returns the footer for the dependency checklist.
func MultiSelectFooter(theme styles.Theme) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "↑↓", Desc: "move"},
			{Key: "space", Desc: "toggle"},
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "abort"},
		},
		Theme: theme,
	}
}

// InputFooter returns the footer for free-text prompts.
func InputFooter(theme styles.Theme) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "enter", Desc: "accept (empty keeps default)"},
			{Key: "esc", Desc: "abort"},
		},
		Theme: theme,
	}
}
