package config

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/viper"

	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/oas/validations"
	"github.com/thoreinstein/oaslint/internal/paths"
	"github.com/thoreinstein/oaslint/internal/validator"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OASLINT"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
// Rules maps snake_case rule flag keys (see RuleKey) to their state.
type Config struct {
	Version int             `mapstructure:"version" yaml:"version" toml:"version"`
	Rules   map[string]bool `mapstructure:"rules" yaml:"rules" toml:"rules"`
	Output  Output          `mapstructure:"output" yaml:"output" toml:"output"`
}

// Output controls how reports are written and when they fail a run.
type Output struct {
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	FailOn string `mapstructure:"fail_on" yaml:"fail_on" toml:"fail_on"`
}

// Default returns the configuration used when no file or override exists.
// Every flag a bundled rule depends on is listed, enabled when
// validator.DefaultRuleConfiguration enables it.
func Default() *Config {
	defaults := validator.DefaultRuleConfiguration()
	rules := make(map[string]bool)
	for _, flag := range validations.Flags() {
		rules[RuleKey(flag)] = defaults.Enabled(flag)
	}
	return &Config{
		Version: CurrentVersion,
		Rules:   rules,
		Output: Output{
			Format: "text",
			FailOn: "error",
		},
	}
}

// Init resets Viper and registers search paths, environment handling and
// defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, filepath.Ext(paths.ConfigFileName)))
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	for key, enabled := range d.Rules {
		viper.SetDefault("rules."+key, enabled)
	}
	viper.SetDefault("output.format", d.Output.Format)
	viper.SetDefault("output.fail_on", d.Output.FailOn)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file is
// an error. If path is empty, it searches the default locations and falls
// back to defaults when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load without a file uses defaults
		case errors.As(err, &notFound), isNotExist(err):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
		default:
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// RuleConfiguration converts the rules section into validator flags.
func (c *Config) RuleConfiguration() validator.RuleConfiguration {
	opts := make([]validator.RuleOption, 0, len(c.Rules))
	for key, enabled := range c.Rules {
		opts = append(opts, validator.WithFlag(FlagName(key), enabled))
	}
	return validator.NewRuleConfiguration(opts...)
}

// RuleKey converts a camelCase flag name to its snake_case config key.
// Viper folds keys to lower case, so the file spells flags in snake_case.
func RuleKey(flag string) string {
	var b strings.Builder
	for i, r := range flag {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FlagName converts a snake_case config key back to its flag name.
func FlagName(key string) string {
	var b strings.Builder
	upper := false
	for _, r := range key {
		switch {
		case r == '_':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FileUsed returns the configuration file Viper read, if any.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
