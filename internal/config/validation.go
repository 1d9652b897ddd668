package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// sizePattern matches maintenance size thresholds like 128MB or 1GB.
var sizePattern = regexp.MustCompile(`^[0-9]+(kB|MB|GB|TB)$`)

// durationPattern matches Trino duration literals like 7d, 12h, 30m.
var durationPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(ns|us|ms|s|m|h|d)$`)

// IsValidSize reports whether s is an acceptable size threshold literal.
// Anything else is rejected before reaching query text.
func IsValidSize(s string) bool {
	return sizePattern.MatchString(s)
}

// IsValidDuration reports whether s is an acceptable retention duration literal.
func IsValidDuration(s string) bool {
	return durationPattern.MatchString(s)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Trino.Host == "" {
		errs = append(errs, ValidationError{Field: "trino.host", Message: "host is required"})
	}
	if c.Trino.Port <= 0 || c.Trino.Port > 65535 {
		errs = append(errs, ValidationError{Field: "trino.port", Message: fmt.Sprintf("invalid port %d", c.Trino.Port)})
	}
	if c.Trino.User == "" {
		errs = append(errs, ValidationError{Field: "trino.user", Message: "user is required"})
	}
	if c.Trino.Catalog == "" {
		errs = append(errs, ValidationError{Field: "trino.catalog", Message: "catalog is required"})
	}
	switch c.Trino.HTTPScheme {
	case "http", "https":
	default:
		errs = append(errs, ValidationError{Field: "trino.http_scheme", Message: "must be http or https"})
	}

	if c.Stats.SmallFileThresholdBytes <= 0 {
		errs = append(errs, ValidationError{Field: "stats.small_file_threshold_bytes", Message: "must be positive"})
	}

	if !sizePattern.MatchString(c.Maintenance.FileSizeThreshold) {
		errs = append(errs, ValidationError{
			Field:   "maintenance.file_size_threshold",
			Message: fmt.Sprintf("%q is not a valid size (expected e.g. 128MB)", c.Maintenance.FileSizeThreshold),
		})
	}
	if !durationPattern.MatchString(c.Maintenance.SnapshotRetention) {
		errs = append(errs, ValidationError{
			Field:   "maintenance.snapshot_retention",
			Message: fmt.Sprintf("%q is not a valid duration (expected e.g. 7d)", c.Maintenance.SnapshotRetention),
		})
	}
	if !durationPattern.MatchString(c.Maintenance.OrphanRetention) {
		errs = append(errs, ValidationError{
			Field:   "maintenance.orphan_retention",
			Message: fmt.Sprintf("%q is not a valid duration (expected e.g. 7d)", c.Maintenance.OrphanRetention),
		})
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)})
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errs = append(errs, ValidationError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
