// Package commands implements the CLI commands for oaslint.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/oaslint/cmd"
	"github.com/thoreinstein/oaslint/internal/config"
	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// appConfig is the configuration loaded before any subcommand runs.
var appConfig *config.Config

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml or ~/.config/oaslint/config.yaml)")

	rootCmd.Version = cmd.BuildInfo()
	rootCmd.SetVersionTemplate("oaslint version {{.Version}}\n")

	// Errors are printed by main so suggestions can follow them
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "oaslint",
	Short: "Check OpenAPI parameters against style and correctness rules",
	Long: `oaslint validates the parameters of OpenAPI 3 and Swagger 2 documents
against a configurable set of rules and reports every failure with its
severity.

Rules are switched on and off with feature flags in the config file or on
the command line. Whether warnings fail a run is decided by --fail-on.`,
	Example: `  # Validate a document
  oaslint validate openapi.yaml

  # List the rules and whether they are enabled
  oaslint rules

  # Show the effective configuration
  oaslint config show

  See Also: oaslint validate, oaslint rules, oaslint config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return loadConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"Use either -q or -v")
	}

	level := slog.LevelError
	if !quiet {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("OASLINT_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	logger := slog.New(logging.NewTeeHandler(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// loadConfig reads settings once per invocation.
func loadConfig(cmd *cobra.Command) error {
	config.Init()
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.NewConfigError(err)
	}
	appConfig = cfg

	logging.FromContext(cmd.Context()).Debug("configuration loaded",
		"file", config.FileUsed(),
		"rules", cfg.Rules,
	)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
