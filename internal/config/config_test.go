package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/paths"
	"github.com/thoreinstein/oaslint/internal/validator"
)

const (
	keyRecommendations = "enable_recommendations"
	keyUnderscore      = "enable_apache_nginx_underscore_recommendation"
)

// isolate points the default search path at an empty directory and runs
// the test from another empty directory so no real config is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	t.Chdir(t.TempDir())
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func mustLoad(t *testing.T, path string) *Config {
	t.Helper()
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()

	want := map[string]bool{keyRecommendations: true, keyUnderscore: true}
	if !reflect.DeepEqual(cfg.Rules, want) {
		t.Errorf("Default().Rules = %v, want %v", cfg.Rules, want)
	}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("Validate(Default()) = %v, want no errors", errs)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	Init()

	cfg := mustLoad(t, "")
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}

	rc := cfg.RuleConfiguration()
	if !rc.EnableRecommendations() || !rc.EnableApacheNginxUnderscoreRecommendation() {
		t.Errorf("RuleConfiguration() = %v, want both flags enabled", rc.Flags())
	}
	if used := FileUsed(); used != "" {
		t.Errorf("FileUsed() = %q, want empty", used)
	}
}

func TestLoad_DefaultSearchPath(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "version: 1\nrules:\n  "+keyUnderscore+": false\n")
	Init()

	cfg := mustLoad(t, "")
	if !cfg.Rules[keyRecommendations] {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Rules[keyUnderscore] {
		t.Errorf("rules.%s = true, want false", keyUnderscore)
	}
	if used := FileUsed(); used != path {
		t.Errorf("FileUsed() = %q, want %q", used, path)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
version: 1
rules:
  enable_recommendations: false
output:
  format: json
  fail_on: warning
`)
	Init()

	cfg := mustLoad(t, path)
	if want := (Output{Format: "json", FailOn: "warning"}); cfg.Output != want {
		t.Errorf("Output = %+v, want %+v", cfg.Output, want)
	}

	rc := cfg.RuleConfiguration()
	if rc.EnableRecommendations() {
		t.Error("EnableRecommendations() = true, want false")
	}
	if !rc.EnableApacheNginxUnderscoreRecommendation() {
		t.Error("EnableApacheNginxUnderscoreRecommendation() = false, want default true")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("OASLINT_RULES_ENABLE_RECOMMENDATIONS", "false")
	t.Setenv("OASLINT_OUTPUT_FAIL_ON", "none")
	Init()

	cfg := mustLoad(t, "")
	if cfg.Rules[keyRecommendations] {
		t.Error("env override of rules.enable_recommendations was ignored")
	}
	if cfg.Output.FailOn != "none" {
		t.Errorf("Output.FailOn = %q, want %q", cfg.Output.FailOn, "none")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unsupported version", "version: 2\n", ErrUnsupportedVersion},
		{"invalid format", "output:\n  format: xml\n", ErrInvalidFormat},
		{"invalid fail_on", "output:\n  fail_on: sometimes\n", ErrInvalidFailOn},
		{"unknown rule flag", "rules:\n  enable_everything: true\n", errors.ErrUnknownFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeConfig(t, t.TempDir(), tt.content)
			Init()

			_, err := Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig mark", err)
			}
			if err != nil && !strings.Contains(err.Error(), "validating config") {
				t.Errorf("Load() error = %q, want validation context", err)
			}
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "rules: [unterminated\n")
	Init()

	_, err := Load(path)
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v, want one error", errs)
	}

	bad := &Config{
		Version: 0,
		Rules:   map[string]bool{"enable_nothing": true},
		Output:  Output{Format: "", FailOn: ""},
	}
	if errs := Validate(bad); len(errs) != 4 {
		t.Errorf("Validate(bad) = %v, want 4 errors", errs)
	}
}

func TestRuleKeyRoundTrip(t *testing.T) {
	tests := []struct {
		flag string
		key  string
	}{
		{validator.FlagEnableRecommendations, keyRecommendations},
		{validator.FlagEnableApacheNginxUnderscoreRecommendation, keyUnderscore},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			if got := RuleKey(tt.flag); got != tt.key {
				t.Errorf("RuleKey(%q) = %q, want %q", tt.flag, got, tt.key)
			}
			if got := FlagName(tt.key); got != tt.flag {
				t.Errorf("FlagName(%q) = %q, want %q", tt.key, got, tt.flag)
			}
		})
	}
}
