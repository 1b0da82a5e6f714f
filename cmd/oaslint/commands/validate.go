package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/oaslint/internal/config"
	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/logging"
	"github.com/thoreinstein/oaslint/internal/oas"
	"github.com/thoreinstein/oaslint/internal/oas/validations"
	"github.com/thoreinstein/oaslint/internal/validator"
)

// failOnNone disables the failure policy entirely.
const failOnNone = "none"

// validateOptions holds the flags of the validate command.
type validateOptions struct {
	json    bool
	failOn  string
	enable  []string
	disable []string
}

var validateOpts validateOptions

func init() {
	validateCmd.Flags().BoolVar(&validateOpts.json, "json", false, "output the report as JSON")
	validateCmd.Flags().StringVar(&validateOpts.failOn, "fail-on", "",
		"lowest severity that fails the run: error, warning, info, none (default from config)")
	validateCmd.Flags().StringSliceVar(&validateOpts.enable, "enable", nil,
		"enable a rule flag for this run (repeatable)")
	validateCmd.Flags().StringSliceVar(&validateOpts.disable, "disable", nil,
		"disable a rule flag for this run (repeatable)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate the parameters of OpenAPI documents",
	Long: `Validate every parameter of one or more OpenAPI 3 or Swagger 2 documents.

Each parameter is checked against the rules enabled by the configuration.
Rule flags can be switched for a single run with --enable and --disable.
The command exits non-zero when any issue reaches the --fail-on severity.`,
	Example: `  # Validate a document
  oaslint validate openapi.yaml

  # Output JSON for CI pipelines
  oaslint validate --json openapi.yaml

  # Fail on warnings as well as errors
  oaslint validate --fail-on warning api/*.yaml

  # Skip the header underscore recommendation
  oaslint validate --disable enableApacheNginxUnderscoreRecommendation openapi.yaml

See Also: oaslint rules, oaslint config show`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.Context(), cmd.OutOrStdout(), appConfig, validateOpts, args)
	},
}

func runValidate(ctx context.Context, w io.Writer, cfg *config.Config, opts validateOptions, files []string) error {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := logging.FromContext(ctx)

	rules, err := ruleConfiguration(cfg, opts)
	if err != nil {
		return err
	}

	failOn := opts.failOn
	if failOn == "" {
		failOn = cfg.Output.FailOn
	}
	threshold, fails, err := failurePolicy(failOn)
	if err != nil {
		return err
	}

	format := validator.Format(cfg.Output.Format)
	if opts.json {
		format = validator.FormatJSON
	}
	reporter := validator.NewReporter(w, format)

	v := validations.NewParameterValidator(rules)
	logger.Debug("validator built", "rules", v.Len(), "flags", rules.Flags())

	total := &validator.Report{}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := oas.Load(file)
		if err != nil {
			return errors.NewUserError(err, "Check that the file is a valid OpenAPI or Swagger document")
		}

		report, err := validations.ValidateDocument(ctx, v, doc)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "validating %s", file),
				"Fix the parameter definitions and $ref targets")
		}
		report.Source = file

		if err := reporter.Report(report); err != nil {
			return errors.Wrap(err, "writing report")
		}
		total.Merge(report)
	}

	logger.Info("validation finished",
		"files", len(files),
		"parameters", total.Summary.Subjects,
		"errors", total.Summary.Errors,
		"warnings", total.Summary.Warnings,
	)

	if fails && total.Exceeds(threshold) {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrValidationFailed, "%d issue(s) at or above %s", countAtLeast(total, threshold), threshold),
			"Fix the reported issues or raise --fail-on",
		)
	}
	return nil
}

// ruleConfiguration applies --enable and --disable on top of the config file.
func ruleConfiguration(cfg *config.Config, opts validateOptions) (validator.RuleConfiguration, error) {
	rules := cfg.RuleConfiguration()
	for _, set := range []struct {
		names   []string
		enabled bool
	}{
		{opts.enable, true},
		{opts.disable, false},
	} {
		for _, name := range set.names {
			if !validations.KnownFlag(name) {
				return rules, errors.NewUserError(
					errors.Wrapf(errors.ErrUnknownFlag, "%q", name),
					"Run: oaslint rules",
				)
			}
			rules = rules.With(name, set.enabled)
		}
	}
	return rules, nil
}

// failurePolicy resolves a fail-on value. fails is false for "none".
func failurePolicy(value string) (validator.Severity, bool, error) {
	if value == failOnNone {
		return 0, false, nil
	}
	var threshold validator.Severity
	if err := threshold.UnmarshalText([]byte(value)); err != nil {
		return 0, false, errors.NewUserError(
			errors.Wrapf(err, "--fail-on %q", value),
			fmt.Sprintf("Use one of: %v", config.FailOnValues),
		)
	}
	return threshold, true, nil
}

func countAtLeast(r *validator.Report, threshold validator.Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity.AtLeast(threshold) {
			n++
		}
	}
	return n
}
