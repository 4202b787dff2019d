package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the Config for completeness and consistency. It returns a
// slice of all discovered issues rather than stopping at the first one.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	// --- Metadata endpoint ---
	if strings.TrimSpace(cfg.Metadata.URL) == "" {
		errs = append(errs, ValidationError{Field: "metadata.url", Message: "required field is empty"})
	} else {
		u, err := url.Parse(cfg.Metadata.URL)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{
				Field:   "metadata.url",
				Message: fmt.Sprintf("not a valid URL: %v", err),
			})
		case u.Scheme != "http" && u.Scheme != "https":
			errs = append(errs, ValidationError{
				Field:   "metadata.url",
				Message: fmt.Sprintf("scheme must be http or https, got %q", u.Scheme),
			})
		case u.Host == "":
			errs = append(errs, ValidationError{Field: "metadata.url", Message: "host is empty"})
		}
	}
	if cfg.Metadata.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "metadata.timeout",
			Message: fmt.Sprintf("must be >= 0, got %s", cfg.Metadata.Timeout),
		})
	}

	// --- External tool ---
	if strings.TrimSpace(cfg.Tool.Command) == "" {
		errs = append(errs, ValidationError{Field: "tool.command", Message: "required field is empty"})
	}

	// --- Build systems ---
	if len(cfg.BuildSystems) == 0 {
		errs = append(errs, ValidationError{
			Field:   "buildSystems",
			Message: "at least one build system is required",
		})
	}
	for i, b := range cfg.BuildSystems {
		if strings.TrimSpace(b) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("buildSystems[%d]", i),
				Message: "empty build system name",
			})
		}
	}

	return errs
}

// JoinIssues folds issues into a single error, nil when there are none.
func JoinIssues(issues []ValidationError) error {
	if len(issues) == 0 {
		return nil
	}
	errs := make([]error, len(issues))
	for i, v := range issues {
		errs[i] = v
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
}
