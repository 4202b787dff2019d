package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
)

// MetadataSource supplies the schema document for one wizard pass.
type MetadataSource interface {
	Fetch(ctx context.Context) (*metadata.Document, error)
}

// TextDefaults are the free-text fallbacks used when the server declares
// none.
type TextDefaults struct {
	Group       string
	Name        string
	Description string
	Version     string
}

// Options tunes an Engine.
type Options struct {
	BuildSystems     []string
	Defaults         TextDefaults
	HideIncompatible bool // drop dependencies whose versionRange excludes the chosen boot version
}

// StepError records a step that was skipped because its category could not
// be resolved.
type StepError struct {
	Step Step
	Err  error
}

func (e StepError) Error() string {
	return fmt.Sprintf("%s step skipped: %v", e.Step, e.Err)
}

func (e StepError) Unwrap() error { return e.Err }

// Result is the outcome of one completed wizard pass.
type Result struct {
	Answers    AnswerSet
	StepErrors []StepError
}

// Engine runs the fixed sequence of wizard steps against one metadata
// document and collects an AnswerSet.
type Engine struct {
	source   MetadataSource
	prompter Prompter
	opts     Options
	logger   *log.Logger
}

// NewEngine creates an Engine. A nil logger discards diagnostics.
func NewEngine(source MetadataSource, prompter Prompter, opts Options, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		source:   source,
		prompter: prompter,
		opts:     opts,
		logger:   logger,
	}
}

// skipError marks a step failure that must not stop the remaining steps.
type skipError struct{ err error }

func (e *skipError) Error() string { return e.err.Error() }
func (e *skipError) Unwrap() error { return e.err }

func skip(err error) error { return &skipError{err: err} }

// pass carries the state threaded from step to step.
type pass struct {
	doc     *metadata.Document
	answers AnswerSet
}

type stepFunc func(p *pass) error

// Run fetches the schema once and walks every step in order. A fetch failure
// is returned before any prompt is shown. A category that fails to resolve
// skips only its own step. Prompter errors (including ErrAborted) end the
// pass.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	doc, err := e.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	steps := []struct {
		step Step
		fn   stepFunc
	}{
		{StepLanguage, e.category(StepLanguage, "Select the language", metadata.KeyLanguage, func(a *AnswerSet, v string) { a.Language = v })},
		{StepBuildSystem, e.buildSystem},
		{StepBootVersion, e.category(StepBootVersion, "Select the Spring Boot version", metadata.KeyBootVersion, func(a *AnswerSet, v string) { a.BootVersion = v })},
		{StepGroup, e.text(StepGroup, "Group", metadata.KeyGroupID, e.opts.Defaults.Group, func(a *AnswerSet, v string) { a.Group = v })},
		{StepName, e.text(StepName, "Artifact / project name", metadata.KeyName, e.opts.Defaults.Name, func(a *AnswerSet, v string) { a.Name = v })},
		{StepDescription, e.text(StepDescription, "Description", metadata.KeyDescription, e.opts.Defaults.Description, func(a *AnswerSet, v string) { a.Description = v })},
		{StepVersion, e.text(StepVersion, "Version", metadata.KeyVersion, e.opts.Defaults.Version, func(a *AnswerSet, v string) { a.Version = v })},
		{StepPackaging, e.category(StepPackaging, "Select the packaging", metadata.KeyPackaging, func(a *AnswerSet, v string) { a.Packaging = v })},
		{StepJavaVersion, e.category(StepJavaVersion, "Select the Java version", metadata.KeyJavaVersion, func(a *AnswerSet, v string) { a.JavaVersion = v })},
		{StepDependencies, e.dependencies},
	}

	p := &pass{doc: doc}
	res := &Result{}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		err := s.fn(p)
		if err == nil {
			continue
		}

		var se *skipError
		if !errors.As(err, &se) {
			return nil, err
		}
		e.logger.Error("step skipped", "step", s.step, "err", se.err)
		res.StepErrors = append(res.StepErrors, StepError{Step: s.step, Err: se.err})
	}

	res.Answers = p.answers
	return res, nil
}

// category builds a single-select step over one flat metadata category.
func (e *Engine) category(step Step, title, key string, set func(*AnswerSet, string)) stepFunc {
	return func(p *pass) error {
		opts, err := metadata.Resolve(p.doc, key)
		if err != nil {
			return skip(err)
		}

		idx, err := e.prompter.Select(Question{
			Step:    step,
			Title:   title,
			Options: opts.DisplayNames,
			Default: opts.Preselected(),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= opts.Len() {
			return skip(fmt.Errorf("selection %d out of range [0,%d)", idx, opts.Len()))
		}

		e.logger.Debug("answered", "step", step, "id", opts.IDs[idx])
		set(&p.answers, opts.IDs[idx])
		return nil
	}
}

// buildSystem is the one single-select whose choices come from configuration
// rather than the server.
func (e *Engine) buildSystem(p *pass) error {
	if len(e.opts.BuildSystems) == 0 {
		return skip(errors.New("no build systems configured"))
	}

	idx, err := e.prompter.Select(Question{
		Step:    StepBuildSystem,
		Title:   "Select the build system",
		Options: e.opts.BuildSystems,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(e.opts.BuildSystems) {
		return skip(fmt.Errorf("selection %d out of range [0,%d)", idx, len(e.opts.BuildSystems)))
	}

	p.answers.BuildSystem = e.opts.BuildSystems[idx]
	return nil
}

// text builds a free-text step. The server's text category default wins over
// the configured fallback. Empty input yields the default, which may itself
// be empty.
func (e *Engine) text(step Step, title, key, fallback string, set func(*AnswerSet, string)) stepFunc {
	return func(p *pass) error {
		def := fallback
		if v, ok := metadata.TextDefault(p.doc, key); ok {
			def = v
		}

		v, err := e.prompter.Input(Question{
			Step:        step,
			Title:       title,
			DefaultText: def,
		})
		if err != nil {
			return err
		}
		if v == "" {
			v = def
		}

		set(&p.answers, v)
		return nil
	}
}

// dependencies runs the multi-select over the flattened dependency list,
// narrowed to the chosen boot version when configured to.
func (e *Engine) dependencies(p *pass) error {
	p.answers.Dependencies = []string{}

	deps, err := metadata.ResolveDependencies(p.doc)
	if err != nil {
		return skip(err)
	}

	if e.opts.HideIncompatible {
		before := len(deps)
		deps = metadata.Compatible(deps, p.answers.BootVersion)
		if hidden := before - len(deps); hidden > 0 {
			e.logger.Debug("hid incompatible dependencies", "bootVersion", p.answers.BootVersion, "count", hidden)
		}
	}

	if len(deps) == 0 {
		e.logger.Info("no dependencies offered")
		return nil
	}

	names := make([]string, len(deps))
	hints := make([]string, len(deps))
	ids := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.DisplayName()
		hints[i] = d.Description
		ids[i] = d.ID
	}

	picked, err := e.prompter.MultiSelect(Question{
		Step:    StepDependencies,
		Title:   "Select dependencies",
		Options: names,
		Hints:   hints,
	})
	if err != nil {
		return err
	}

	p.answers.Dependencies = Transcribe(ids, picked)
	return nil
}

// Transcribe maps multi-select positions back onto ids in presentation
// order, dropping duplicates and out-of-range positions.
func Transcribe(ids []string, picked []int) []string {
	seen := make(map[int]bool, len(picked))
	positions := make([]int, 0, len(picked))
	for _, i := range picked {
		if i < 0 || i >= len(ids) || seen[i] {
			continue
		}
		seen[i] = true
		positions = append(positions, i)
	}
	sort.Ints(positions)

	out := make([]string, len(positions))
	for j, i := range positions {
		out[j] = ids[i]
	}
	return out
}
