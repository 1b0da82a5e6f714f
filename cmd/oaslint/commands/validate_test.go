package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/oaslint/internal/config"
	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/logging"
	"github.com/thoreinstein/oaslint/internal/validator"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logging.NewContext(t.Context(), logging.ForTest(t))
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestRunValidate_WarningsDoNotFailByDefault(t *testing.T) {
	var buf bytes.Buffer
	err := runValidate(testContext(t), &buf, config.Default(), validateOptions{}, []string{testdata("petstore.yaml")})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "petstore.yaml: ")
	assert.Contains(t, out, "3 warning(s)")
	assert.Contains(t, out, "X_Trace_Id contains an underscore.")
	assert.Contains(t, out, "X_Request_Id contains an underscore.")
	assert.NotContains(t, out, "X-Request-Id contains")
}

func TestRunValidate_FailOnWarning(t *testing.T) {
	var buf bytes.Buffer
	err := runValidate(testContext(t), &buf, config.Default(),
		validateOptions{failOn: "warning"}, []string{testdata("petstore.yaml")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidationFailed))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "3 issue(s)")
}

func TestRunValidate_FailOnFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output.FailOn = "warning"

	err := runValidate(testContext(t), &bytes.Buffer{}, cfg, validateOptions{}, []string{testdata("petstore.yaml")})
	assert.True(t, errors.Is(err, errors.ErrValidationFailed))

	err = runValidate(testContext(t), &bytes.Buffer{}, cfg,
		validateOptions{failOn: "none"}, []string{testdata("petstore.yaml")})
	assert.NoError(t, err)
}

func TestRunValidate_DisableFlag(t *testing.T) {
	tests := []struct {
		name string
		flag string
	}{
		{"master switch", validator.FlagEnableRecommendations},
		{"rule switch", validator.FlagEnableApacheNginxUnderscoreRecommendation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runValidate(testContext(t), &buf, config.Default(),
				validateOptions{failOn: "info", disable: []string{tt.flag}},
				[]string{testdata("petstore.yaml")})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "Validation passed (8 parameter(s), 0 check(s))")
		})
	}
}

func TestRunValidate_EnableFlag(t *testing.T) {
	cfg := config.Default()
	cfg.Rules[config.RuleKey(validator.FlagEnableApacheNginxUnderscoreRecommendation)] = false

	var buf bytes.Buffer
	err := runValidate(testContext(t), &buf, cfg,
		validateOptions{enable: []string{validator.FlagEnableApacheNginxUnderscoreRecommendation}},
		[]string{testdata("petstore.yaml")})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "3 warning(s)")
}

func TestRunValidate_UnknownFlag(t *testing.T) {
	err := runValidate(testContext(t), &bytes.Buffer{}, config.Default(),
		validateOptions{enable: []string{"enableEverything"}}, []string{testdata("petstore.yaml")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownFlag))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestRunValidate_InvalidFailOn(t *testing.T) {
	err := runValidate(testContext(t), &bytes.Buffer{}, config.Default(),
		validateOptions{failOn: "critical"}, []string{testdata("petstore.yaml")})
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestRunValidate_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := runValidate(testContext(t), &buf, config.Default(),
		validateOptions{json: true}, []string{testdata("petstore.yaml")})
	require.NoError(t, err)

	var report validator.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, testdata("petstore.yaml"), report.Source)
	assert.Equal(t, 8, report.Summary.Subjects)
	assert.Equal(t, 3, report.Summary.Warnings)
	require.Len(t, report.Issues, 3)
	for _, issue := range report.Issues {
		assert.Equal(t, validator.SeverityWarning, issue.Severity)
		assert.Equal(t, "header", issue.Context["in"])
	}
}

func TestRunValidate_MultipleFiles(t *testing.T) {
	var buf bytes.Buffer
	err := runValidate(testContext(t), &buf, config.Default(),
		validateOptions{failOn: "warning"},
		[]string{testdata("clean.yaml"), testdata("petstore.yaml")})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "clean.yaml: ✓ Validation passed (2 parameter(s), 2 check(s))")
	assert.Contains(t, out, "petstore.yaml: Validation found")
}

func TestRunValidate_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr error
	}{
		{"missing file", testdata("nope.yaml"), errors.ErrNotFound},
		{"unresolved ref", testdata("broken.yaml"), errors.ErrInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runValidate(testContext(t), &bytes.Buffer{}, config.Default(), validateOptions{}, []string{tt.file})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
		})
	}
}

func TestRunValidate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	err := runValidate(ctx, &bytes.Buffer{}, config.Default(), validateOptions{}, []string{testdata("petstore.yaml")})
	assert.ErrorIs(t, err, context.Canceled)
}
