package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/components"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/styles"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// MultiSelectModel implements tea.Model for the dependency checklist.
// Space toggles the row under the cursor, "/" narrows the visible rows by a
// search term, and enter confirms the whole selection.
type MultiSelectModel struct {
	question wizard.Question
	theme    styles.Theme

	checked map[int]bool
	visible []int // option indices passing the search filter
	cursor  int   // index into visible
	height  int

	searchMode bool
	searchTerm string

	done    bool
	aborted bool
}

// NewMultiSelectModel creates a checklist prompt for q with nothing checked.
func NewMultiSelectModel(q wizard.Question, theme styles.Theme) MultiSelectModel {
	m := MultiSelectModel{
		question: q,
		theme:    theme,
		checked:  make(map[int]bool),
		height:   defaultListHeight,
	}
	m.applyFilter()
	return m
}

// Init is called when the program starts.
func (m MultiSelectModel) Init() tea.Cmd {
	return nil
}

// Update processes messages and key events.
func (m MultiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = listHeight(msg)
		if m.searchMode {
			m.height--
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}
		if m.searchMode {
			return m.handleSearchKey(msg)
		}
		return m.handleListKey(msg.String())
	}
	return m, nil
}

func (m MultiSelectModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchTerm = ""
		m.applyFilter()
	case tea.KeyEnter:
		m.searchMode = false
	case tea.KeyBackspace:
		if r := []rune(m.searchTerm); len(r) > 0 {
			m.searchTerm = string(r[:len(r)-1])
			m.applyFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.searchTerm += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m MultiSelectModel) handleListKey(key string) (tea.Model, tea.Cmd) {
	last := len(m.visible) - 1
	switch key {
	case "esc":
		if m.searchTerm != "" {
			m.searchTerm = ""
			m.applyFilter()
			return m, nil
		}
		m.aborted = true
		return m, tea.Quit
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
		m.cursor = max(last, 0)
	case "pgup":
		m.cursor = max(m.cursor-m.height, 0)
	case "pgdown":
		m.cursor = max(min(m.cursor+m.height, last), 0)
	case " ":
		if last >= 0 {
			i := m.visible[m.cursor]
			m.checked[i] = !m.checked[i]
		}
	case "/":
		m.searchMode = true
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// applyFilter recomputes the visible rows and clamps the cursor.
func (m *MultiSelectModel) applyFilter() {
	m.visible = m.visible[:0]
	for i, opt := range m.question.Options {
		if matches(m.searchTerm, opt, hintAt(m.question, i)) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// View renders the checklist, or a one-line answer once it is complete.
func (m MultiSelectModel) View() string {
	q := m.question
	if m.done {
		picked, _ := m.Result()
		names := make([]string, len(picked))
		for j, i := range picked {
			names[j] = q.Options[i]
		}
		value := strings.Join(names, ", ")
		if value == "" {
			value = "none"
		}
		return answered(q, m.theme, value)
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(header(q, m.theme))
	b.WriteString(" " + m.theme.Subtitle.Render(fmt.Sprintf("(%d selected)", len(m.selected()))))
	b.WriteString("\n")
	if m.searchMode || m.searchTerm != "" {
		b.WriteString(m.theme.Cursor.Render("/ "+m.searchTerm) + m.theme.Label.Render("_"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(m.theme.Label.Render(fmt.Sprintf("  No dependencies matching %q.", m.searchTerm)) + "\n")
	}

	start, end := styles.Window(len(m.visible), m.cursor, m.height)
	for row := start; row < end; row++ {
		i := m.visible[row]
		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}
		line := box + " " + q.Options[i]
		switch {
		case row == m.cursor:
			b.WriteString(m.theme.Cursor.Render("❯ " + line))
		case m.checked[i]:
			b.WriteString(m.theme.Selected.Render("  " + line))
		default:
			b.WriteString(m.theme.Muted.Render("  " + line))
		}
		if hint := hintAt(q, i); hint != "" && row == m.cursor {
			b.WriteString("  " + m.theme.Hint.Render(styles.TruncateWithEllipsis(hint, 72)))
		}
		b.WriteString("\n")
	}
	if start > 0 || end < len(m.visible) {
		b.WriteString(m.theme.Label.Render("  ...") + "\n")
	}

	b.WriteString("\n" + components.MultiSelectFooter(m.theme).Render() + "\n")
	return b.String()
}

func (m MultiSelectModel) selected() []int {
	out := make([]int, 0, len(m.checked))
	for i := range m.question.Options {
		if m.checked[i] {
			out = append(out, i)
		}
	}
	return out
}

// Result returns the checked indices in option order, or wizard.ErrAborted
// when the prompt was cancelled.
func (m MultiSelectModel) Result() ([]int, error) {
	if !m.done {
		return nil, wizard.ErrAborted
	}
	return m.selected(), nil
}
