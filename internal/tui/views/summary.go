package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/AlbertLnz/spring-initializr-cli/internal/command"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// SummaryMarkdown renders the collected answers and the command about to run
// as a markdown document.
func SummaryMarkdown(a wizard.AnswerSet, argv []string) string {
	deps := strings.Join(a.Dependencies, ", ")
	if deps == "" {
		deps = "_none_"
	}

	rows := [][2]string{
		{"Language", a.Language},
		{"Build system", a.BuildSystem},
		{"Spring Boot", a.BootVersion},
		{"Group", a.Group},
		{"Name", a.Name},
		{"Description", a.Description},
		{"Version", a.Version},
		{"Package", command.PackageName(a.Group, a.Name)},
		{"Packaging", a.Packaging},
		{"Java", a.JavaVersion},
		{"Dependencies", deps},
	}

	var b strings.Builder
	b.WriteString("## Project summary\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], tableCell(r[1]))
	}
	line := command.Display(argv)
	fence := codeFence(line)
	b.WriteString("\n### Command\n\n" + fence + "sh\n")
	b.WriteString(line)
	b.WriteString("\n" + fence + "\n")
	return b.String()
}

// codeFence returns a backtick fence longer than any backtick run in s, so
// the fenced block cannot be closed from inside.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return strings.Repeat("`", max(3, longest+1))
}

// tableCell keeps a value on one markdown table row.
func tableCell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// RenderMarkdown renders md for the terminal. Without color support the
// notty style is used so no escape sequences are emitted.
func RenderMarkdown(md string, t Terminal) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if t.Color {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(t.ContentWidth()),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// PrintSummary writes the rendered review summary to the terminal's output.
// If rendering fails the raw markdown is printed instead.
func PrintSummary(t Terminal, a wizard.AnswerSet, argv []string) {
	md := SummaryMarkdown(a, argv)
	out, err := RenderMarkdown(md, t)
	if err != nil {
		out = md
	}
	fmt.Fprint(t.Out, out)
}
