package validator

import "slices"

// Validator evaluates every rule it holds against a subject.
type Validator[S any] interface {
	// Validate returns one Evaluation per rule, in registration order.
	Validate(subject S) []Evaluation
	// Rules returns the held rules in registration order.
	Rules() []Rule[S]
}

// Evaluation pairs a rule's identity with the result it produced.
type Evaluation struct {
	Description    string   `json:"description"`
	FailureMessage string   `json:"failure_message,omitempty"`
	Severity       Severity `json:"severity"`
	Result         Result   `json:"result"`
}

// RuleSet is an immutable, ordered list of rules.
type RuleSet[S any] struct {
	rules []Rule[S]
}

var _ Validator[struct{}] = (*RuleSet[struct{}])(nil)

// New creates a RuleSet holding a copy of rules.
func New[S any](rules ...Rule[S]) *RuleSet[S] {
	return &RuleSet[S]{rules: slices.Clone(rules)}
}

// Validate runs every rule against subject and returns all results, passing
// and failing, in registration order. It does not recover from a panicking
// check function.
func (v *RuleSet[S]) Validate(subject S) []Evaluation {
	evals := make([]Evaluation, 0, len(v.rules))
	for _, rule := range v.rules {
		evals = append(evals, Evaluation{
			Description:    rule.description,
			FailureMessage: rule.failureMessage,
			Severity:       rule.severity,
			Result:         rule.Check(subject),
		})
	}
	return evals
}

// Rules returns a copy of the held rules.
func (v *RuleSet[S]) Rules() []Rule[S] {
	return slices.Clone(v.rules)
}

// Len returns the number of held rules.
func (v *RuleSet[S]) Len() int {
	return len(v.rules)
}

// Predicate decides from a configuration whether a rule is included.
type Predicate func(RuleConfiguration) bool

// Entry is one row of a registration table. The rule is included when every
// name in Flags is enabled; an entry without flags is always included.
type Entry[S any] struct {
	Flags []string
	Rule  Rule[S]
}

// Predicate returns the conjunction of the entry's flags.
func (e Entry[S]) Predicate() Predicate {
	preds := make([]Predicate, 0, len(e.Flags))
	for _, name := range e.Flags {
		preds = append(preds, Flag(name))
	}
	return All(preds...)
}

// Enabled reports whether cfg includes the entry's rule.
func (e Entry[S]) Enabled(cfg RuleConfiguration) bool {
	return e.Predicate()(cfg)
}

// Build walks table in order and returns a RuleSet of the rules cfg enables.
func Build[S any](cfg RuleConfiguration, table []Entry[S]) *RuleSet[S] {
	rules := make([]Rule[S], 0, len(table))
	for _, entry := range table {
		if entry.Enabled(cfg) {
			rules = append(rules, entry.Rule)
		}
	}
	return &RuleSet[S]{rules: rules}
}

// Flag holds when name is enabled.
func Flag(name string) Predicate {
	return func(cfg RuleConfiguration) bool {
		return cfg.Enabled(name)
	}
}

// All holds when every predicate holds. Evaluation stops at the first false.
func All(preds ...Predicate) Predicate {
	return func(cfg RuleConfiguration) bool {
		for _, p := range preds {
			if !p(cfg) {
				return false
			}
		}
		return true
	}
}

// Recommendation returns the flags gating a recommendation rule: the master
// switch followed by name.
func Recommendation(name string) []string {
	return []string{FlagEnableRecommendations, name}
}
