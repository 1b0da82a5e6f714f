package validations

import (
	"context"
	"fmt"

	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/logging"
	"github.com/thoreinstein/oaslint/internal/oas"
	"github.com/thoreinstein/oaslint/internal/validator"
)

// ValidateDocument runs v against every parameter of doc and collects the
// failures into a report. It never decides whether failures are fatal.
func ValidateDocument(ctx context.Context, v ParameterValidator, doc *oas.Document) (*validator.Report, error) {
	logger := logging.FromContext(ctx)

	params, err := doc.Parameters()
	if err != nil {
		return nil, errors.Wrap(err, "collecting parameters")
	}

	trace := logger.Enabled(ctx, logging.LevelTrace)
	report := &validator.Report{}
	for _, w := range params {
		evals := v.Validate(w)
		if trace {
			for _, ev := range evals {
				logger.Log(ctx, logging.LevelTrace, "rule evaluated",
					"parameter", w.Parameter().Name,
					"path", w.Path(),
					"rule", ev.FailureMessage,
					"result", ev.Result.String(),
				)
			}
		}
		report.Record(describe(w), issueContext(w), evals)
	}

	logger.Debug("document validated",
		"title", doc.Info.Title,
		"parameters", report.Summary.Subjects,
		"issues", len(report.Issues),
	)
	return report, nil
}

func describe(w oas.ParameterWrapper) string {
	name := ""
	if p := w.Parameter(); p != nil {
		name = p.Name
	}
	if op := w.Operation(); op != nil {
		return fmt.Sprintf("%s %s parameter %s", op.Method, w.Path(), name)
	}
	return fmt.Sprintf("%s parameter %s", w.Path(), name)
}

func issueContext(w oas.ParameterWrapper) map[string]string {
	ctx := map[string]string{}
	if p := w.Parameter(); p != nil {
		ctx["in"] = string(p.In)
	}
	if op := w.Operation(); op != nil && op.OperationID != "" {
		ctx["operation_id"] = op.OperationID
	}
	return ctx
}
