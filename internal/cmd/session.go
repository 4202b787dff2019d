package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AlbertLnz/spring-initializr-cli/internal/command"
	"github.com/AlbertLnz/spring-initializr-cli/internal/config"
	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/views"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// loopFetchDelay spaces out passes in loop mode after the metadata service
// could not be reached.
const loopFetchDelay = 2 * time.Second

// ExitError carries the scaffolding tool's non-zero exit status out to main.
// Its output has already been relayed when it is returned.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("scaffolding tool exited with status %d", e.Code)
}

type runner interface {
	Run(ctx context.Context, argv []string) (*command.Result, error)
}

// session runs wizard passes against the current configuration. Each pass
// takes its own snapshot of the store, so a reload only affects later passes.
type session struct {
	store    *config.Store
	term     views.Terminal
	logger   *log.Logger
	prompter wizard.Prompter
	source   func(cfg config.Config) wizard.MetadataSource
	runner   func(cfg config.Config) runner

	fetchDelay time.Duration
}

func engineOptions(cfg config.Config) wizard.Options {
	return wizard.Options{
		BuildSystems: cfg.BuildSystems,
		Defaults: wizard.TextDefaults{
			Group:       cfg.Defaults.Group,
			Name:        cfg.Defaults.Name,
			Description: cfg.Defaults.Description,
			Version:     cfg.Defaults.Version,
		},
		HideIncompatible: cfg.HideIncompatible,
	}
}

// pass runs the wizard once and then either prints or executes the command.
func (s *session) pass(ctx context.Context) error {
	cfg := s.store.Get()

	engine := wizard.NewEngine(s.source(cfg), s.prompter, engineOptions(cfg), s.logger)
	res, err := engine.Run(ctx)
	if err != nil {
		return err
	}
	views.ReportStepErrors(s.term, res.StepErrors)

	argv := command.Argv(cfg.Tool.Command, cfg.Tool.Args, command.Build(res.Answers))
	s.logger.Debug("built command", "argv", argv)
	views.PrintSummary(s.term, res.Answers, argv)

	if cfg.DryRun {
		fmt.Fprintln(s.term.Out, command.Display(argv))
		return nil
	}

	out, err := s.runner(cfg).Run(ctx, argv)
	// An interrupt kills the child; that is an abort, not a tool failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return err
	}
	views.ReportResult(s.term, res.Answers.Name, out)
	if !out.Success() {
		return &ExitError{Code: out.ExitCode}
	}
	return nil
}

// loop repeats pass until the user aborts or the tool cannot be started.
// Fetch failures and tool failures are reported and the next pass begins.
func (s *session) loop(ctx context.Context) error {
	delay := s.fetchDelay
	if delay == 0 {
		delay = loopFetchDelay
	}

	for {
		err := s.pass(ctx)

		var fe *metadata.FetchError
		var ee *ExitError
		switch {
		case err == nil:
		case errors.As(err, &ee):
			s.logger.Debug("pass finished with tool failure", "code", ee.Code)
		case errors.As(err, &fe):
			fmt.Fprintln(s.term.ErrOut, s.term.Theme().Error.Render("Error:")+" "+err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		default:
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
