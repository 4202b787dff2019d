package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

type fetchDoneMsg struct {
	doc *metadata.Document
	err error
}

// fetchModel shows a spinner while the metadata document downloads.
type fetchModel struct {
	ctx    context.Context
	source wizard.MetadataSource
	label  string
	theme  styles.Theme
	spin   spinner.Model

	doc  *metadata.Document
	err  error
	done bool
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch)
}

func (m fetchModel) fetch() tea.Msg {
	doc, err := m.source.Fetch(m.ctx)
	return fetchDoneMsg{doc: doc, err: err}
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.doc, m.err, m.done = msg.doc, msg.err, true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = wizard.ErrAborted
			m.done = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m fetchModel) View() string {
	if m.done {
		return ""
	}
	return m.spin.View() + " " + m.theme.Subtitle.Render(m.label) + "\n"
}

// SpinnerSource wraps a MetadataSource and shows a spinner on the terminal
// while each fetch is in flight.
type SpinnerSource struct {
	Source wizard.MetadataSource
	Term   Terminal
	Label  string
}

// Fetch implements wizard.MetadataSource.
func (s SpinnerSource) Fetch(ctx context.Context) (*metadata.Document, error) {
	if !s.Term.Interactive {
		return s.Source.Fetch(ctx)
	}

	theme := s.Term.Theme()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Cursor

	label := s.Label
	if label == "" {
		label = "Fetching project metadata..."
	}

	m := fetchModel{ctx: ctx, source: s.Source, label: label, theme: theme, spin: sp}
	final, err := tea.NewProgram(m, tea.WithInput(s.Term.In), tea.WithOutput(s.Term.Out)).Run()
	if err != nil {
		return nil, fmt.Errorf("fetch spinner failed: %w", err)
	}
	fm := final.(fetchModel)
	return fm.doc, fm.err
}
