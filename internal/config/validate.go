package config

import (
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/internal/oas/validations"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidFailOn indicates an unknown failure threshold.
	ErrInvalidFailOn = errors.New("invalid fail_on value")
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json"}

// FailOnValues lists the accepted failure thresholds.
var FailOnValues = []string{"error", "warning", "info", "none"}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "version %d", cfg.Version))
	}
	if !slices.Contains(Formats, cfg.Output.Format) {
		errs = append(errs, errors.Wrapf(ErrInvalidFormat, "%q", cfg.Output.Format))
	}
	if !slices.Contains(FailOnValues, cfg.Output.FailOn) {
		errs = append(errs, errors.Wrapf(ErrInvalidFailOn, "%q", cfg.Output.FailOn))
	}
	for _, key := range slices.Sorted(maps.Keys(cfg.Rules)) {
		if !validations.KnownFlag(FlagName(key)) {
			errs = append(errs, errors.Wrapf(errors.ErrUnknownFlag, "rules.%s", key))
		}
	}

	return errs
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, fs.ErrNotExist)
}
