package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/components"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// InputModel implements tea.Model for a free-text prompt. The default is
// shown as placeholder text; the model returns exactly what was typed.
type InputModel struct {
	question wizard.Question
	theme    styles.Theme
	input    textinput.Model

	done    bool
	aborted bool
}

// NewInputModel creates a free-text prompt for q.
func NewInputModel(q wizard.Question, theme styles.Theme) InputModel {
	ti := textinput.New()
	ti.Prompt = "❯ "
	ti.Placeholder = q.DefaultText
	ti.CharLimit = 256
	ti.Width = 60
	ti.PromptStyle = theme.Cursor
	ti.TextStyle = theme.Value
	ti.PlaceholderStyle = theme.Default
	ti.Cursor.Style = theme.Cursor
	ti.Focus()

	return InputModel{
		question: q,
		theme:    theme,
		input:    ti,
	}
}

// Init starts the cursor blinking.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages and key events.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case isAbort(key.String()):
			m.aborted = true
			return m, tea.Quit
		case key.Type == tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt, or a one-line answer once it is complete.
func (m InputModel) View() string {
	if m.done {
		value := m.input.Value()
		if value == "" {
			value = m.question.DefaultText
		}
		return answered(m.question, m.theme, value)
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(header(m.question, m.theme))
	if m.question.DefaultText != "" {
		b.WriteString(" " + m.theme.Default.Render("("+m.question.DefaultText+")"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n" + components.InputFooter(m.theme).Render() + "\n")
	return b.String()
}

// Result returns the literal text entered, or wizard.ErrAborted when the
// prompt was cancelled.
func (m InputModel) Result() (string, error) {
	if !m.done {
		return "", wizard.ErrAborted
	}
	return m.input.Value(), nil
}
