package models

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/components"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// SelectModel implements tea.Model for a single-choice prompt. The cursor
// starts on the question's default row.
type SelectModel struct {
	question wizard.Question
	theme    styles.Theme

	cursor int
	height int

	done    bool
	aborted bool
}

// NewSelectModel creates a select prompt for q.
func NewSelectModel(q wizard.Question, theme styles.Theme) SelectModel {
	cursor := q.Default
	if cursor < 0 || cursor >= len(q.Options) {
		cursor = 0
	}
	return SelectModel{
		question: q,
		theme:    theme,
		cursor:   cursor,
		height:   defaultListHeight,
	}
}

// Init is called when the program starts.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update processes messages and key events.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = listHeight(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m SelectModel) handleKey(key string) (tea.Model, tea.Cmd) {
	if isAbort(key) {
		m.aborted = true
		return m, tea.Quit
	}

	last := len(m.question.Options) - 1
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < last {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if last >= 0 {
			m.cursor = last
		}
	case "pgup":
		m.cursor = max(m.cursor-m.height, 0)
	case "pgdown":
		m.cursor = max(min(m.cursor+m.height, last), 0)
	case "enter":
		if last < 0 {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the prompt, or a one-line answer once it is complete.
func (m SelectModel) View() string {
	q := m.question
	if m.done {
		return answered(q, m.theme, q.Options[m.cursor])
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(header(q, m.theme))
	b.WriteString("\n\n")

	start, end := styles.Window(len(q.Options), m.cursor, m.height)
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(m.theme.Cursor.Render("❯ " + q.Options[i]))
		} else {
			b.WriteString(m.theme.Muted.Render("  " + q.Options[i]))
		}
		if hint := hintAt(q, i); hint != "" && i == m.cursor {
			b.WriteString("  " + m.theme.Hint.Render(hint))
		}
		b.WriteString("\n")
	}
	if start > 0 || end < len(q.Options) {
		b.WriteString(m.theme.Label.Render("  ...") + "\n")
	}

	b.WriteString("\n" + components.SelectFooter(m.theme).Render() + "\n")
	return b.String()
}

// Result returns the chosen index, or wizard.ErrAborted when the prompt was
// cancelled or the program exited without an answer.
func (m SelectModel) Result() (int, error) {
	if !m.done {
		return 0, wizard.ErrAborted
	}
	return m.cursor, nil
}
