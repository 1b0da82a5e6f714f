package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/oas/validations"
)

func runInteractiveRules(w io.Writer, catalog []validations.CatalogEntry) error {
	if len(catalog) == 0 {
		fmt.Fprintln(w, "No rules registered.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		catalog,
		func(i int) string {
			return fmt.Sprintf("[%s] %s", catalog[i].Severity, catalog[i].Description)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeRule(catalog[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive rule browser failed")
	}

	fmt.Fprint(w, describeRule(catalog[idx]))
	return nil
}

func describeRule(e validations.CatalogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rule: %s\n", e.Description)
	fmt.Fprintf(&b, "Subject: %s\n", e.Subject)
	fmt.Fprintf(&b, "Severity: %s\n", e.Severity)
	fmt.Fprintf(&b, "Enabled: %s\n", yesNo(e.Enabled))
	if len(e.Flags) > 0 {
		fmt.Fprintf(&b, "Flags: %s\n", strings.Join(e.Flags, ", "))
	}
	fmt.Fprintf(&b, "\nFailure message:\n%s\n", e.FailureMessage)
	return b.String()
}
