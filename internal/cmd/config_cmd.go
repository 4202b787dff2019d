package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/AlbertLnz/spring-initializr-cli/internal/config"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/views"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `View and manage the wizard configuration.

When run without subcommands, displays the effective configuration after
defaults, config file, environment (INITIALIZR_*) and flags are merged, and
lists any validation problems.

Subcommands:
  path   Show which config file is in use
  init   Write a starter initializr.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(vp)
		if err != nil {
			return err
		}

		term := views.DetectTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.NoColor)
		th := term.Theme()
		w := term.Out

		fmt.Fprintln(w, th.Title.Render("Configuration"))
		fmt.Fprintln(w)
		fmt.Fprintln(w, th.Label.Render("FILE")+"      "+th.Value.Render(configFileLabel()))
		fmt.Fprintln(w, th.Label.Render("METADATA")+"  "+th.Value.Render(cfg.Metadata.URL))
		fmt.Fprintln(w, th.Label.Render("TOOL")+"      "+th.Value.Render(strings.Join(append([]string{cfg.Tool.Command}, cfg.Tool.Args...), " ")))
		fmt.Fprintln(w)
		fmt.Fprintln(w, th.Divider(50))

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		fmt.Fprint(w, string(out))

		issues := config.Validate(cfg)
		if len(issues) == 0 {
			return nil
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, th.Subtitle.Render("Problems"))
		for _, v := range issues {
			fmt.Fprintln(w, "  "+th.Error.Render("x")+" "+v.Error())
		}
		return invalidConfig(issues)
	},
}

func configFileLabel() string {
	if !configRead {
		return "(none, using defaults)"
	}
	return vp.ConfigFileUsed()
}

// --- config path ---

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which config file is in use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configFileLabel())
	},
}

// --- config init ---

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a starter config file with every default spelled out",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "initializr.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if !configInitForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}

		if err := writeStarterConfig(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote "+path)
		return nil
	},
}

func viperWithDefaults() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

// writeStarterConfig encodes the built-in defaults as YAML at path.
func writeStarterConfig(path string) error {
	defaults := viperWithDefaults()
	cfg, err := config.Load(defaults)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
