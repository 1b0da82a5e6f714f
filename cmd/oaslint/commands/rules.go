package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/oas/validations"
)

var (
	rulesJSON        bool
	rulesInteractive bool
)

func init() {
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "output the catalog as JSON")
	rulesCmd.Flags().BoolVarP(&rulesInteractive, "interactive", "i", false, "browse rules with a fuzzy finder")
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the bundled rules",
	Long: `List every bundled rule with its severity, the flags it depends on and
whether the current configuration enables it.`,
	Example: `  # List rules
  oaslint rules

  # Machine-readable catalog
  oaslint rules --json

  # Browse rules interactively
  oaslint rules -i

See Also: oaslint validate, oaslint config show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := appConfig
		if cfg == nil {
			return errors.NewConfigError(errors.New("configuration not loaded"))
		}
		catalog := validations.Catalog(cfg.RuleConfiguration())

		switch {
		case rulesInteractive && rulesJSON:
			return errors.NewUserError(errors.New("--json and --interactive are mutually exclusive"),
				"Use either --json or -i")
		case rulesInteractive:
			return runInteractiveRules(cmd.OutOrStdout(), catalog)
		case rulesJSON:
			return writeRulesJSON(cmd.OutOrStdout(), catalog)
		default:
			return writeRulesTable(cmd.OutOrStdout(), catalog)
		}
	},
}

func writeRulesJSON(w io.Writer, catalog []validations.CatalogEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(catalog), "encoding rules")
}

func writeRulesTable(w io.Writer, catalog []validations.CatalogEntry) error {
	if len(catalog) == 0 {
		fmt.Fprintln(w, "No rules registered.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBJECT\tSEVERITY\tENABLED\tFLAGS\tDESCRIPTION")
	for _, e := range catalog {
		flags := "-"
		if len(e.Flags) > 0 {
			flags = strings.Join(e.Flags, ",")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Subject, e.Severity, yesNo(e.Enabled), flags, e.Description)
	}
	return errors.Wrap(tw.Flush(), "writing rules")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
