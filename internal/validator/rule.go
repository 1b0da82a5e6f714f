package validator

import "encoding/json"

// Result is the outcome of evaluating one rule against one subject.
// The zero value is a Pass.
type Result struct {
	failed  bool
	details string
}

// Pass returns the passing result. All passing results are equal.
func Pass() Result {
	return Result{}
}

// Fail returns a failing result carrying fully formatted details.
func Fail(details string) Result {
	return Result{failed: true, details: details}
}

// Passed reports whether the rule held.
func (r Result) Passed() bool { return !r.failed }

// Failed reports whether the rule was violated.
func (r Result) Failed() bool { return r.failed }

// Details returns the failure message. It is empty for a Pass.
func (r Result) Details() string { return r.details }

func (r Result) String() string {
	if !r.failed {
		return "pass"
	}
	return "fail: " + r.details
}

// MarshalJSON encodes the result as {"status":"pass"} or
// {"status":"fail","details":"..."}.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Status  string `json:"status"`
		Details string `json:"details,omitempty"`
	}{Status: "pass", Details: r.details}
	if r.failed {
		out.Status = "fail"
	}
	return json.Marshal(out)
}

// CheckFunc evaluates a subject. It must be pure and must return Pass for
// subjects the rule does not apply to.
type CheckFunc[S any] func(subject S) Result

// Rule is a named, severity-tagged check over subjects of type S.
// Rules are immutable and safe for concurrent use.
type Rule[S any] struct {
	description    string
	failureMessage string
	severity       Severity
	check          CheckFunc[S]
}

// NewRule creates a rule at the given severity. It panics if check is nil.
func NewRule[S any](severity Severity, description, failureMessage string, check CheckFunc[S]) Rule[S] {
	if check == nil {
		panic("validator: rule " + description + " has a nil check function")
	}
	return Rule[S]{
		description:    description,
		failureMessage: failureMessage,
		severity:       severity,
		check:          check,
	}
}

// Warn creates a recommendation rule.
func Warn[S any](description, failureMessage string, check CheckFunc[S]) Rule[S] {
	return NewRule(SeverityWarning, description, failureMessage, check)
}

// Error creates a correctness rule.
func Error[S any](description, failureMessage string, check CheckFunc[S]) Rule[S] {
	return NewRule(SeverityError, description, failureMessage, check)
}

// Info creates an informational rule.
func Info[S any](description, failureMessage string, check CheckFunc[S]) Rule[S] {
	return NewRule(SeverityInfo, description, failureMessage, check)
}

// Description returns what the rule checks.
func (r Rule[S]) Description() string { return r.description }

// FailureMessage returns the short, unformatted failure summary.
func (r Rule[S]) FailureMessage() string { return r.failureMessage }

// Severity returns the rule's severity.
func (r Rule[S]) Severity() Severity { return r.severity }

// Check evaluates the rule against subject.
func (r Rule[S]) Check(subject S) Result {
	return r.check(subject)
}
