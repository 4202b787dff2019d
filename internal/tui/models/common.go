package models

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/components"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// defaultListHeight is the number of rows shown before the first
// WindowSizeMsg arrives.
const defaultListHeight = 12

// listChrome is the number of lines a list prompt spends outside its rows:
// progress, title, blank, scroll marker, blank, footer.
const listChrome = 6

// header renders the progress track and the question title.
func header(q wizard.Question, theme styles.Theme) string {
	progress := components.ProgressStep{
		Steps:   wizard.StepLabels(),
		Current: int(q.Step),
		Theme:   theme,
	}
	return progress.Render() + "\n" + theme.Title.Render("? "+q.Title)
}

// answered renders the single line left on screen once a prompt completes.
func answered(q wizard.Question, theme styles.Theme, value string) string {
	return theme.OK.Render("✔") + " " + theme.Label.Render(q.Title+":") + " " + theme.Value.Render(value) + "\n"
}

// listHeight turns a terminal height into a visible row count.
func listHeight(msg tea.WindowSizeMsg) int {
	h := msg.Height - listChrome
	if h < 3 {
		h = 3
	}
	return h
}

// isAbort reports whether key cancels the current prompt.
func isAbort(key string) bool {
	return key == "ctrl+c" || key == "esc"
}

// matches reports whether term occurs in the option or its hint, ignoring
// case.
func matches(term, option, hint string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(option), term) ||
		strings.Contains(strings.ToLower(hint), term)
}

func hintAt(q wizard.Question, i int) string {
	if i < len(q.Hints) {
		return q.Hints[i]
	}
	return ""
}
