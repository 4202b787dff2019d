package views

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/models"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

var _ wizard.Prompter = (*TerminalPrompter)(nil)

// TerminalPrompter implements wizard.Prompter by running one short-lived
// bubbletea program per question.
type TerminalPrompter struct {
	theme styles.Theme
	in    io.Reader
	out   io.Writer
}

// NewTerminalPrompter creates a prompter reading keys from in and drawing to
// out.
func NewTerminalPrompter(theme styles.Theme, in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{theme: theme, in: in, out: out}
}

func (p *TerminalPrompter) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

// Select asks a single-choice question.
func (p *TerminalPrompter) Select(q wizard.Question) (int, error) {
	final, err := p.run(models.NewSelectModel(q, p.theme))
	if err != nil {
		return 0, err
	}
	return final.(models.SelectModel).Result()
}

// MultiSelect asks a checklist question.
func (p *TerminalPrompter) MultiSelect(q wizard.Question) ([]int, error) {
	final, err := p.run(models.NewMultiSelectModel(q, p.theme))
	if err != nil {
		return nil, err
	}
	return final.(models.MultiSelectModel).Result()
}

// Input asks a free-text question.
func (p *TerminalPrompter) Input(q wizard.Question) (string, error) {
	final, err := p.run(models.NewInputModel(q, p.theme))
	if err != nil {
		return "", err
	}
	return final.(models.InputModel).Result()
}
