package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Result is the captured outcome of one child process. A non-zero ExitCode
// is a normal result, not an error.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the child exited with status 0.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// SpawnError reports that the external tool could not be started at all.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot run %s: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Executor runs the scaffolding tool directly via process creation; no shell
// is involved.
type Executor struct {
	Dir    string   // working directory; empty means the current one
	Env    []string // nil inherits the parent environment
	Logger *log.Logger
}

// Run spawns argv[0] with argv[1:], waits for it, and returns both output
// streams in full. Only a failure to start the process is an error.
func (x *Executor) Run(ctx context.Context, argv []string) (*Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, &SpawnError{Program: "", Err: errors.New("empty command")}
	}

	logger := x.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = x.Dir
	cmd.Env = x.Env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("running external tool", "program", argv[0], "args", len(argv)-1, "dir", x.Dir)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("external tool exited", "code", exitErr.ExitCode())
			return &Result{
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}
		return nil, &SpawnError{Program: argv[0], Err: err}
	}

	return &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: 0,
	}, nil
}
