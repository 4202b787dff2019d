package views

import (
	"fmt"

	"github.com/AlbertLnz/spring-initializr-cli/internal/command"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// ReportResult relays the child's captured output verbatim, stdout to the
// terminal's output and stderr to its error stream, then prints a status
// line.
func ReportResult(t Terminal, name string, res *command.Result) {
	if len(res.Stdout) > 0 {
		t.Out.Write(res.Stdout)
	}
	if len(res.Stderr) > 0 {
		t.ErrOut.Write(res.Stderr)
	}

	theme := t.Theme()
	if res.Success() {
		fmt.Fprintln(t.Out, theme.OK.Render("✔")+" "+theme.Value.Render(fmt.Sprintf("Project %q generated", name)))
		return
	}
	fmt.Fprintln(t.ErrOut, theme.Error.Render("✘")+" "+theme.Value.Render(fmt.Sprintf("Generator exited with status %d", res.ExitCode)))
}

// ReportStepErrors lists the steps that were skipped during a pass.
func ReportStepErrors(t Terminal, errs []wizard.StepError) {
	if len(errs) == 0 {
		return
	}
	theme := t.Theme()
	for _, err := range errs {
		fmt.Fprintln(t.ErrOut, theme.Warn.Render("!")+" "+theme.Muted.Render(err.Error()))
	}
}
