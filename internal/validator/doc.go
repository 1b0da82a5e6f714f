// Package validator is a generic, rule-based validation engine.
//
// The engine knows nothing about the rules it runs. A [Rule] pairs a
// description and a [Severity] with a pure check function returning a
// [Result]. A [RuleSet] holds an ordered, immutable list of rules selected
// from a [RuleConfiguration] and evaluates every rule against a subject.
//
// # Core Concepts
//
//   - [RuleConfiguration]: immutable boolean feature flags.
//   - [Rule]: a named, severity-tagged check over a subject type S.
//   - [Result]: Pass (the zero value) or Fail with formatted details.
//   - [Validator]: the evaluate-all contract; [RuleSet] implements it.
//   - [Entry]: one row of a declarative registration table fed to [Build].
//   - [Report]: aggregates failing evaluations into issues for a [Reporter].
//
// # Basic Usage
//
//	table := []validator.Entry[Param]{
//		{Flags: validator.Recommendation("enableFooCheck"), Rule: fooRule},
//	}
//	v := validator.Build(cfg, table)
//	for _, ev := range v.Validate(p) {
//		if ev.Result.Failed() {
//			fmt.Println(ev.Severity, ev.Result.Details())
//		}
//	}
//
// Evaluation never recovers from a panicking check function. A check that
// panics on well-formed input is a defect in the rule, not a Fail.
package validator
