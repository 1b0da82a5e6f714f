package validations

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/oaslint/internal/oas"
	"github.com/thoreinstein/oaslint/internal/validator"
)

// parameterRules lists every parameter rule in evaluation order. Each row's
// flags gate the rule and feed the catalog.
var parameterRules = []validator.Entry[oas.ParameterWrapper]{
	{
		Flags: validator.Recommendation(validator.FlagEnableApacheNginxUnderscoreRecommendation),
		Rule: validator.Warn(
			ApacheNginxUnderscoreDescription,
			ApacheNginxUnderscoreFailureMessage,
			apacheNginxHeaderCheck,
		),
	},
}

// ParameterValidator evaluates parameter rules.
type ParameterValidator = validator.Validator[oas.ParameterWrapper]

// NewParameterValidator builds the parameter rules enabled by cfg.
func NewParameterValidator(cfg validator.RuleConfiguration) *validator.RuleSet[oas.ParameterWrapper] {
	return validator.Build(cfg, parameterRules)
}

// apacheNginxHeaderCheck flags header parameters whose name contains an
// underscore. Apache and Nginx drop such headers unless configured otherwise.
// Parameters in other locations pass.
func apacheNginxHeaderCheck(w oas.ParameterWrapper) validator.Result {
	p := w.Parameter()
	if p == nil || p.In != oas.LocationHeader {
		return validator.Pass()
	}
	if p.Name != "" && strings.ContainsRune(p.Name, '_') {
		return validator.Fail(fmt.Sprintf("%s contains an underscore.", p.Name))
	}
	return validator.Pass()
}
