package validator

import (
	"fmt"
	"strings"
)

// Issue is a failing evaluation attached to the subject it was found on.
type Issue struct {
	// Severity is the severity of the rule that failed.
	Severity Severity `json:"severity"`
	// Rule is the description of the rule that failed.
	Rule string `json:"rule"`
	// Field identifies the subject, e.g. "GET /pets parameter X_Id".
	Field string `json:"field,omitempty"`
	// Message is the rendered failure details.
	Message string `json:"message"`
	// Context carries subject metadata such as the parameter location.
	Context map[string]string `json:"context,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		fmt.Fprintf(&sb, "%s: ", i.Field)
	}
	sb.WriteString(i.Message)
	return sb.String()
}

// Summary counts evaluations by outcome.
type Summary struct {
	Subjects    int `json:"subjects"`
	Evaluations int `json:"evaluations"`
	Passed      int `json:"passed"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Info        int `json:"info"`
}

// Report aggregates evaluations across many subjects.
// A Report is not safe for concurrent mutation.
type Report struct {
	Source  string  `json:"source,omitempty"`
	Issues  []Issue `json:"issues"`
	Summary Summary `json:"summary"`
}

// Record adds the evaluations produced for one subject.
// Failing evaluations become issues in order; passing ones are only counted.
func (r *Report) Record(field string, context map[string]string, evals []Evaluation) {
	r.Summary.Subjects++
	for _, ev := range evals {
		r.Summary.Evaluations++
		if ev.Result.Passed() {
			r.Summary.Passed++
			continue
		}
		switch ev.Severity {
		case SeverityError:
			r.Summary.Errors++
		case SeverityWarning:
			r.Summary.Warnings++
		default:
			r.Summary.Info++
		}
		r.Issues = append(r.Issues, Issue{
			Severity: ev.Severity,
			Rule:     ev.Description,
			Field:    field,
			Message:  ev.Result.Details(),
			Context:  context,
		})
	}
}

// Merge appends other's issues and adds its counts.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
	r.Summary.Subjects += other.Summary.Subjects
	r.Summary.Evaluations += other.Summary.Evaluations
	r.Summary.Passed += other.Summary.Passed
	r.Summary.Errors += other.Summary.Errors
	r.Summary.Warnings += other.Summary.Warnings
	r.Summary.Info += other.Summary.Info
}

// HasErrors returns true if any issue has SeverityError.
func (r *Report) HasErrors() bool {
	return r != nil && r.Summary.Errors > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Report) HasWarnings() bool {
	return r != nil && r.Summary.Warnings > 0
}

// Errors returns all issues with SeverityError.
func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns all issues with SeverityWarning.
func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Infos returns all issues with SeverityInfo.
func (r *Report) Infos() []Issue {
	return r.filter(SeverityInfo)
}

// Exceeds reports whether any issue is at least as severe as threshold.
func (r *Report) Exceeds(threshold Severity) bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity.AtLeast(threshold) {
			return true
		}
	}
	return false
}

func (r *Report) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}
