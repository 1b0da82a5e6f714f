package validator

import "maps"

// Flag names understood by the bundled rules.
const (
	// FlagEnableRecommendations is the master switch for recommendation rules.
	FlagEnableRecommendations = "enableRecommendations"
	// FlagEnableApacheNginxUnderscoreRecommendation enables the header underscore check.
	FlagEnableApacheNginxUnderscoreRecommendation = "enableApacheNginxUnderscoreRecommendation"
)

// RuleConfiguration is an immutable set of boolean feature flags.
// The zero value has every flag disabled.
type RuleConfiguration struct {
	flags map[string]bool
}

// RuleOption sets a flag during construction.
type RuleOption func(map[string]bool)

// WithFlag sets name to enabled.
func WithFlag(name string, enabled bool) RuleOption {
	return func(m map[string]bool) {
		m[name] = enabled
	}
}

// WithFlags copies every entry of flags.
func WithFlags(flags map[string]bool) RuleOption {
	return func(m map[string]bool) {
		maps.Copy(m, flags)
	}
}

// NewRuleConfiguration builds a configuration. Flags not set are disabled.
func NewRuleConfiguration(opts ...RuleOption) RuleConfiguration {
	flags := make(map[string]bool)
	for _, opt := range opts {
		opt(flags)
	}
	return RuleConfiguration{flags: flags}
}

// DefaultRuleConfiguration enables recommendations and every bundled
// recommendation flag.
func DefaultRuleConfiguration() RuleConfiguration {
	return NewRuleConfiguration(
		WithFlag(FlagEnableRecommendations, true),
		WithFlag(FlagEnableApacheNginxUnderscoreRecommendation, true),
	)
}

// Enabled reports whether name is set to true. Unknown names are disabled.
func (c RuleConfiguration) Enabled(name string) bool {
	return c.flags[name]
}

// EnableRecommendations reports the master recommendation switch.
func (c RuleConfiguration) EnableRecommendations() bool {
	return c.Enabled(FlagEnableRecommendations)
}

// EnableApacheNginxUnderscoreRecommendation reports the header underscore flag.
func (c RuleConfiguration) EnableApacheNginxUnderscoreRecommendation() bool {
	return c.Enabled(FlagEnableApacheNginxUnderscoreRecommendation)
}

// With returns a copy of c with name set. c is not modified.
func (c RuleConfiguration) With(name string, enabled bool) RuleConfiguration {
	return NewRuleConfiguration(WithFlags(c.flags), WithFlag(name, enabled))
}

// Flags returns a copy of every explicitly set flag.
func (c RuleConfiguration) Flags() map[string]bool {
	return maps.Clone(c.flags)
}
