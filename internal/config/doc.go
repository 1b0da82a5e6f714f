// Package config loads oaslint settings with Viper.
//
// Settings come, in increasing precedence, from defaults, the configuration
// file, and OASLINT_* environment variables. The file is looked up in the
// current directory and then in the XDG config directory
// (~/.config/oaslint/config.yaml):
//
//	version: 1
//	rules:
//	  enable_recommendations: true
//	  enable_apache_nginx_underscore_recommendation: true
//	output:
//	  format: text     # text | json
//	  fail_on: error   # error | warning | info | none
//
// Nested keys map to environment variables with underscores, e.g.
// OASLINT_RULES_ENABLE_RECOMMENDATIONS=false.
//
// [Config.RuleConfiguration] converts the rules section into the immutable
// flag set the validators are built from.
package config
