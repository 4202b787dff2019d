package health

import (
	"context"
	"os/exec"
	"time"

	"github.com/AlbertLnz/spring-initializr-cli/internal/config"
	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

// Status represents the result of a single health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// String returns the lowercase text representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns the display symbol for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "+"
	case StatusWarn:
		return "!"
	case StatusFail:
		return "x"
	default:
		return "?"
	}
}

// Check categories.
const (
	CategorySystem  = "system"
	CategoryNetwork = "network"
	CategoryConfig  = "config"
)

// CheckResult holds the result of a single check.
type CheckResult struct {
	Name     string
	Category string // "system", "network", "config"
	Status   Status
	Message  string
	Duration time.Duration
}

// Report holds results of all checks.
type Report struct {
	Results  []CheckResult
	Passed   int
	Warned   int
	Failed   int
	Total    int
	Duration time.Duration
	Healthy  bool
}

// Check is a named, categorized health check function.
type Check struct {
	Name     string
	Category string
	Fn       func(ctx context.Context) CheckResult
}

// Checker runs the environment checks behind the doctor command.
type Checker struct {
	checks []Check
	cfg    config.Config
	source wizard.MetadataSource

	lookPath func(file string) (string, error)
	output   func(ctx context.Context, name string, args ...string) ([]byte, error)

	// doc caches the document fetched by the reachability check so the shape
	// check does not hit the network again.
	doc      *metadata.Document
	fetchErr error
	fetched  bool
}

// NewChecker creates a checker for cfg that fetches metadata from source.
func NewChecker(cfg config.Config, source wizard.MetadataSource) *Checker {
	c := &Checker{
		cfg:      cfg,
		source:   source,
		lookPath: exec.LookPath,
		output:   combinedOutput,
	}
	c.registerChecks()
	return c
}

func combinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// add registers a single check.
func (c *Checker) add(name, category string, fn func(ctx context.Context) CheckResult) {
	c.checks = append(c.checks, Check{
		Name:     name,
		Category: category,
		Fn:       fn,
	})
}

// RunAll runs every registered check and returns a report.
func (c *Checker) RunAll(ctx context.Context) *Report {
	return c.run(ctx, func(Check) bool { return true })
}

// RunCategory runs only the checks matching the given category.
func (c *Checker) RunCategory(ctx context.Context, category string) *Report {
	return c.run(ctx, func(ch Check) bool { return ch.Category == category })
}

func (c *Checker) run(ctx context.Context, keep func(Check) bool) *Report {
	start := time.Now()
	var results []CheckResult

	for _, ch := range c.checks {
		if !keep(ch) {
			continue
		}
		if ctx.Err() != nil {
			results = append(results, CheckResult{
				Name:     ch.Name,
				Category: ch.Category,
				Status:   StatusFail,
				Message:  "context cancelled",
			})
			continue
		}
		t := time.Now()
		r := ch.Fn(ctx)
		r.Duration = time.Since(t)
		r.Name = ch.Name
		r.Category = ch.Category
		results = append(results, r)
	}

	return buildReport(results, time.Since(start))
}

// buildReport aggregates a slice of results into a Report.
func buildReport(results []CheckResult, dur time.Duration) *Report {
	r := &Report{
		Results:  results,
		Total:    len(results),
		Duration: dur,
	}
	for _, res := range results {
		switch res.Status {
		case StatusPass:
			r.Passed++
		case StatusWarn:
			r.Warned++
		case StatusFail:
			r.Failed++
		}
	}
	r.Healthy = r.Failed == 0
	return r
}
