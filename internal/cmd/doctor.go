package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlbertLnz/spring-initializr-cli/internal/config"
	"github.com/AlbertLnz/spring-initializr-cli/internal/health"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/views"
)

var doctorCategory string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tool, the metadata service and the configuration",
	Long: `Run diagnostic checks before generating a project.

Checks are grouped into categories:
  system   - scaffolding tool on PATH and its version, java
  network  - metadata service reachable and its document usable
  config   - configuration values valid

Use --category to run only one group.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Invalid configuration is reported by the config check rather
		// than refused up front.
		cfg, err := config.Load(vp)
		if err != nil {
			return err
		}

		switch doctorCategory {
		case "", health.CategorySystem, health.CategoryNetwork, health.CategoryConfig:
		default:
			return fmt.Errorf("unknown category %q: want system, network or config", doctorCategory)
		}

		term := views.DetectTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.NoColor)
		checker := health.NewChecker(*cfg, newClient(*cfg))

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		var report *health.Report
		if doctorCategory != "" {
			report = checker.RunCategory(ctx, doctorCategory)
		} else {
			report = checker.RunAll(ctx)
		}

		fmt.Fprint(term.Out, health.FormatReport(report, term.Theme()))
		if !report.Healthy {
			return fmt.Errorf("%d check(s) failed", report.Failed)
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorCategory, "category", "", "run checks in one category: system, network, or config")
	rootCmd.AddCommand(doctorCmd)
}
