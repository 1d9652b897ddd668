package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "missing host",
			mutate: func(c *Config) { c.Trino.Host = "" },
			field:  "trino.host",
		},
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Trino.Port = 70000 },
			field:  "trino.port",
		},
		{
			name:   "missing user",
			mutate: func(c *Config) { c.Trino.User = "" },
			field:  "trino.user",
		},
		{
			name:   "missing catalog",
			mutate: func(c *Config) { c.Trino.Catalog = "" },
			field:  "trino.catalog",
		},
		{
			name:   "bad scheme",
			mutate: func(c *Config) { c.Trino.HTTPScheme = "ftp" },
			field:  "trino.http_scheme",
		},
		{
			name:   "non-positive small file threshold",
			mutate: func(c *Config) { c.Stats.SmallFileThresholdBytes = 0 },
			field:  "stats.small_file_threshold_bytes",
		},
		{
			name:   "bad file size threshold",
			mutate: func(c *Config) { c.Maintenance.FileSizeThreshold = "128 megabytes" },
			field:  "maintenance.file_size_threshold",
		},
		{
			name:   "bad snapshot retention",
			mutate: func(c *Config) { c.Maintenance.SnapshotRetention = "weekly" },
			field:  "maintenance.snapshot_retention",
		},
		{
			name:   "bad orphan retention",
			mutate: func(c *Config) { c.Maintenance.OrphanRetention = "7" },
			field:  "maintenance.orphan_retention",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
			field:  "logging.level",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			field:  "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trino.Host = ""
	cfg.Trino.User = ""
	cfg.Maintenance.SnapshotRetention = "soon"

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestDurationAndSizePatterns(t *testing.T) {
	validDurations := []string{"7d", "12h", "30m", "1.5h", "90s"}
	for _, d := range validDurations {
		assert.True(t, durationPattern.MatchString(d), d)
	}
	invalidDurations := []string{"d", "7days", "-1d", ""}
	for _, d := range invalidDurations {
		assert.False(t, durationPattern.MatchString(d), d)
	}

	validSizes := []string{"128MB", "1GB", "512kB", "2TB"}
	for _, s := range validSizes {
		assert.True(t, sizePattern.MatchString(s), s)
	}
	invalidSizes := []string{"128", "128mb", "MB", "1.5GB"}
	for _, s := range invalidSizes {
		assert.False(t, sizePattern.MatchString(s), s)
	}
}
