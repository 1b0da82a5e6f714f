package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/oaslint/internal/config"
	"github.com/thoreinstein/oaslint/internal/editor"
	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/paths"
	"github.com/thoreinstein/oaslint/pkg/fileutil"
)

var (
	configShowFormat string
	configInitForce  bool
)

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "yaml", "output format: yaml, toml")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create oaslint configuration",
	Long: `Inspect and create oaslint configuration stored in ~/.config/oaslint/config.yaml.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show effective configuration
  oaslint config

  # Show as TOML
  oaslint config show --format toml

  # Write a default config file
  oaslint config init

See Also: oaslint rules`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShow(cmd.OutOrStdout(), appConfig, fileutil.EncodingYAML)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after defaults, the config file and OASLINT_*
environment overrides are merged.`,
	Example: `  oaslint config show
  oaslint config show --format toml

See Also: oaslint config path`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShow(cmd.OutOrStdout(), appConfig, fileutil.Encoding(configShowFormat))
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Long: `Print the config file that was read, or the default location when
no file was found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigPath(cmd.OutOrStdout(), config.FileUsed())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to ~/.config/oaslint/config.yaml.

An existing file is left alone unless --force is given.`,
	Example: `  oaslint config init
  OASLINT_CONFIG_DIR=./.oaslint oaslint config init --force

See Also: oaslint config show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigInit(cmd.OutOrStdout(), paths.ConfigFile(), configInitForce)
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Long: `Open the config file in your editor.

Uses $EDITOR, then $VISUAL, then nano or vi. If no config file exists,
run 'oaslint config init' first.`,
	Example: `  oaslint config edit
  EDITOR="code --wait" oaslint config edit

See Also: oaslint config init, oaslint config show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.FileUsed()
		if path == "" {
			path = paths.ConfigFile()
		}
		if _, err := os.Stat(path); err != nil {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrNotFound, "config file %s", path),
				"Run: oaslint config init",
			)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Location: %s\n", path)
		return editor.Open(cmd.Context(), path)
	},
}

func runConfigShow(w io.Writer, cfg *config.Config, enc fileutil.Encoding) error {
	if cfg == nil {
		cfg = config.Default()
	}
	switch enc {
	case fileutil.EncodingYAML, fileutil.EncodingTOML:
	default:
		return errors.NewUserError(
			errors.Wrapf(errors.ErrUnsupportedFormat, "%q", enc),
			"Use --format yaml or --format toml",
		)
	}

	data, err := fileutil.Encode(cfg, enc)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	_, err = w.Write(data)
	return err
}

func runConfigPath(w io.Writer, used string) error {
	if used == "" {
		used = paths.ConfigFile()
	}
	_, err := fmt.Fprintln(w, used)
	return err
}

func runConfigInit(w io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.NewUserError(
			errors.Newf("config file already exists at %s", path),
			"Use --force to overwrite it",
		)
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating config directory"), "")
	}
	if err := fileutil.AtomicWriteEncoded(path, config.Default(), fileutil.EncodingYAML, 0o644); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config"), "")
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
