package views

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
)

// Terminal describes the streams the wizard talks to and what they support.
type Terminal struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Interactive is true when both In and Out are terminals. Spinners and
	// colors are only used on interactive terminals.
	Interactive bool
	Color       bool
	Width       int
}

// DetectTerminal inspects the streams and configures the lipgloss color
// profile accordingly. noColor forces plain output.
func DetectTerminal(in io.Reader, out, errOut io.Writer, noColor bool) Terminal {
	t := Terminal{
		In:          in,
		Out:         out,
		ErrOut:      errOut,
		Interactive: isTerminal(in) && isTerminal(out),
		Width:       outputWidth(out),
	}
	t.Color = t.Interactive && !noColor && !colorDisabledByEnv()

	if t.Color {
		lipgloss.SetColorProfile(termenv.NewOutput(out).ColorProfile())
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return t
}

// Theme returns the theme matching the terminal's color support.
func (t Terminal) Theme() styles.Theme {
	if t.Color {
		return styles.DefaultTheme()
	}
	return styles.PlainTheme()
}

// ContentWidth is the wrap width for rendered markdown.
func (t Terminal) ContentWidth() int {
	w := t.Width - 4
	if w <= 0 {
		return 80
	}
	if w > 120 {
		return 120
	}
	return w
}

func colorDisabledByEnv() bool {
	if termenv.EnvNoColor() {
		return true
	}
	if v, ok := os.LookupEnv("TERM"); ok && strings.EqualFold(strings.TrimSpace(v), "dumb") {
		return true
	}
	return false
}

type fdHolder interface {
	Fd() uintptr
}

func isTerminal(v any) bool {
	f, ok := v.(fdHolder)
	return ok && term.IsTerminal(int(f.Fd()))
}

func outputWidth(w io.Writer) int {
	f, ok := w.(fdHolder)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
