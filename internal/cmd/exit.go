package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// Exit codes other than the scaffolding tool's own.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitAborted = 130
)

// Report prints err to w when it has not been reported yet and returns the
// process exit code for it.
func Report(err error, w io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var ee *ExitError
	if errors.As(err, &ee) {
		if ee.Code <= 0 {
			return ExitFailure
		}
		return ee.Code
	}
	if errors.Is(err, wizard.ErrAborted) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "Aborted.")
		return ExitAborted
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	return ExitFailure
}
