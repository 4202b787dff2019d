package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AlbertLnz/spring-initializr-cli/internal/command"
	"github.com/AlbertLnz/spring-initializr-cli/internal/config"
	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/views"
	"github.com/AlbertLnz/spring-initializr-cli/internal/wizard"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	showIncompatible bool

	vp         = viper.New()
	logger     = log.New(io.Discard)
	configRead bool
	initErr    error
)

var rootCmd = &cobra.Command{
	Use:   "spring-initializr",
	Short: "Interactive Spring Boot project generator",
	Long: `Spring Initializr CLI -- generate Spring Boot projects interactively.

The wizard downloads the option catalogue from a Spring Initializr metadata
service, asks for language, build system, Spring Boot version, project
coordinates, packaging, Java version and dependencies, then runs the
scaffolding tool (spring init by default) with the resulting arguments.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if initErr != nil {
			return initErr
		}
		if cmd.Flags().Changed("show-incompatible") {
			vp.Set("hideIncompatible", !showIncompatible)
		}
		logger = newLogger(cmd.ErrOrStderr(), verbose)
		return nil
	},
	RunE: runWizard,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by main.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./initializr.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&noColor, "no-color", false, "disable color output")
	pf.String("url", "", "metadata service URL (default https://start.spring.io)")
	pf.String("tool", "", "scaffolding command to run (default spring)")

	f := rootCmd.Flags()
	f.Bool("loop", false, "start a new wizard after each project")
	f.Bool("dry-run", false, "print the command instead of running it")
	f.BoolVar(&showIncompatible, "show-incompatible", false, "offer dependencies outside the chosen Spring Boot version's range")

	_ = vp.BindPFlag("metadata.url", pf.Lookup("url"))
	_ = vp.BindPFlag("tool.command", pf.Lookup("tool"))
	_ = vp.BindPFlag("noColor", pf.Lookup("no-color"))
	_ = vp.BindPFlag("loop", f.Lookup("loop"))
	_ = vp.BindPFlag("dryRun", f.Lookup("dry-run"))
}

// initConfig loads .env into the process environment, then points viper at
// the config file and environment.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		initErr = fmt.Errorf("loading .env: %w", err)
		return
	}
	config.Prepare(vp, cfgFile)
	configRead, initErr = config.ReadIn(vp)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "initializr",
		ReportTimestamp: false,
		Level:           level,
	})
}

// loadConfig decodes and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(vp)
	if err != nil {
		return nil, err
	}
	if issues := config.Validate(cfg); len(issues) > 0 {
		return nil, invalidConfig(issues)
	}
	return cfg, nil
}

func invalidConfig(issues []config.ValidationError) error {
	return config.JoinIssues(issues)
}

// newClient builds the metadata client for cfg.
func newClient(cfg config.Config) *metadata.Client {
	return metadata.NewClient(cfg.Metadata.URL,
		metadata.WithAccept(cfg.Metadata.Accept),
		metadata.WithTimeout(cfg.Metadata.Timeout),
		metadata.WithLogger(logger),
	)
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	term := views.DetectTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.NoColor)
	store := config.NewStore(cfg)

	if cfg.Loop && configRead {
		store.Watch(vp, func(e fsnotify.Event, err error) {
			if err != nil {
				logger.Warn("config reload failed; keeping previous configuration", "file", e.Name, "err", err)
				return
			}
			logger.Info("config reloaded", "file", e.Name)
		})
	}

	s := &session{
		store:    store,
		term:     term,
		logger:   logger,
		prompter: views.NewTerminalPrompter(term.Theme(), term.In, term.Out),
		source: func(cfg config.Config) wizard.MetadataSource {
			return views.SpinnerSource{Source: newClient(cfg), Term: term}
		},
		runner: func(cfg config.Config) runner {
			return &command.Executor{Dir: cfg.Tool.Dir, Logger: logger}
		},
	}

	views.Banner(term.Out, term, cfg.Metadata.URL)
	if cfg.Loop {
		return s.loop(cmd.Context())
	}
	return s.pass(cmd.Context())
}
