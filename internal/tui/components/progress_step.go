package components

import (
	"fmt"
	"strings"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
)

// ProgressStep shows where the wizard is in its fixed step sequence.
type ProgressStep struct {
	Steps   []string // step labels
	Current int      // 0-indexed current step
	Theme   styles.Theme
}

// Render returns a dot track followed by "n/N label".
// Completed steps get a filled dot, the current step a highlighted dot, and
// future steps an empty circle.
func (p ProgressStep) Render() string {
	if len(p.Steps) == 0 {
		return ""
	}
	current := p.Current
	if current < 0 {
		current = 0
	}
	if current >= len(p.Steps) {
		current = len(p.Steps) - 1
	}

	var track strings.Builder
	for i := range p.Steps {
		switch {
		case i < current:
			track.WriteString(p.Theme.Selected.Render("●"))
		case i == current:
			track.WriteString(p.Theme.Cursor.Render("●"))
		default:
			track.WriteString(p.Theme.Label.Render("○"))
		}
	}

	counter := p.Theme.Subtitle.Render(fmt.Sprintf("%d/%d", current+1, len(p.Steps)))
	return track.String() + "  " + counter + " " + p.Theme.Cursor.Render(p.Steps[current])
}
