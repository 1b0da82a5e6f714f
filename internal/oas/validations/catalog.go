package validations

import (
	"slices"

	"github.com/thoreinstein/oaslint/internal/validator"
)

// CatalogEntry describes a known rule and whether a configuration enables it.
type CatalogEntry struct {
	Subject        string             `json:"subject"`
	Description    string             `json:"description"`
	FailureMessage string             `json:"failure_message"`
	Severity       validator.Severity `json:"severity"`
	Flags          []string           `json:"flags,omitempty"`
	Enabled        bool               `json:"enabled"`
}

// Catalog lists every known rule in registration order and reports whether
// cfg enables it.
func Catalog(cfg validator.RuleConfiguration) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(parameterRules))
	for _, e := range parameterRules {
		entries = append(entries, CatalogEntry{
			Subject:        "parameter",
			Description:    e.Rule.Description(),
			FailureMessage: e.Rule.FailureMessage(),
			Severity:       e.Rule.Severity(),
			Flags:          slices.Clone(e.Flags),
			Enabled:        e.Enabled(cfg),
		})
	}
	return entries
}

// Flags returns every flag name a bundled rule depends on, sorted.
func Flags() []string {
	var names []string
	for _, e := range parameterRules {
		for _, f := range e.Flags {
			if !slices.Contains(names, f) {
				names = append(names, f)
			}
		}
	}
	slices.Sort(names)
	return names
}

// KnownFlag reports whether name is a flag some bundled rule depends on.
func KnownFlag(name string) bool {
	return slices.Contains(Flags(), name)
}
