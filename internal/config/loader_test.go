package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.Trino.Host)
	assert.Equal(t, 8080, cfg.Trino.Port)
	assert.Equal(t, "trino", cfg.Trino.User)
	assert.Equal(t, "iceberg", cfg.Trino.Catalog)
	assert.Equal(t, "http", cfg.Trino.HTTPScheme)
	assert.Equal(t, DefaultSmallFileThresholdBytes, cfg.Stats.SmallFileThresholdBytes)
	assert.Equal(t, "128MB", cfg.Maintenance.FileSizeThreshold)
	assert.Equal(t, "7d", cfg.Maintenance.SnapshotRetention)
	assert.Equal(t, "7d", cfg.Maintenance.OrphanRetention)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "icelens.yaml")

	content := `trino:
  host: trino.internal
  port: 8443
  user: ops
  password: secret
  catalog: lake
  schema: prod
  http_scheme: https

stats:
  small_file_threshold_bytes: 52428800

maintenance:
  file_size_threshold: 256MB
  snapshot_retention: 3d
  orphan_retention: 14d

logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "trino.internal", cfg.Trino.Host)
	assert.Equal(t, 8443, cfg.Trino.Port)
	assert.Equal(t, "https", cfg.Trino.HTTPScheme)
	assert.Equal(t, int64(52428800), cfg.Stats.SmallFileThresholdBytes)
	assert.Equal(t, "256MB", cfg.Maintenance.FileSizeThreshold)
	assert.Equal(t, "3d", cfg.Maintenance.SnapshotRetention)
	assert.Equal(t, "14d", cfg.Maintenance.OrphanRetention)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trino: [not: a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("ICELENS_TEST_HOST", "coordinator.example.com")
	t.Setenv("ICELENS_TEST_PASS", "hunter2")

	path := filepath.Join(t.TempDir(), "icelens.yaml")
	content := `trino:
  host: ${ICELENS_TEST_HOST}
  password: $ICELENS_TEST_PASS
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "coordinator.example.com", cfg.Trino.Host)
	assert.Equal(t, "hunter2", cfg.Trino.Password)
}

func TestLoad_EnvSubstitutionMissingVarKeptVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icelens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trino:\n  host: ${ICELENS_NO_SUCH_VAR}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "${ICELENS_NO_SUCH_VAR}", cfg.Trino.Host)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("trino.host", "10.0.0.5")
	v.Set("trino.port", 9090)

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Trino.Host)
	assert.Equal(t, 9090, cfg.Trino.Port)
	// Untouched sections keep defaults
	assert.Equal(t, "iceberg", cfg.Trino.Catalog)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("debug", "json", "other-host", 8888, "alice", "hive")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "other-host", cfg.Trino.Host)
	assert.Equal(t, 8888, cfg.Trino.Port)
	assert.Equal(t, "alice", cfg.Trino.User)
	assert.Equal(t, "hive", cfg.Trino.Catalog)

	// Zero values do not override
	cfg.ApplyOverrides("", "", "", 0, "", "")
	assert.Equal(t, "other-host", cfg.Trino.Host)
	assert.Equal(t, 8888, cfg.Trino.Port)
}

func TestApplyMaintenanceOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyMaintenanceOverrides("512MB", "30d")
	assert.Equal(t, "512MB", cfg.Maintenance.FileSizeThreshold)
	assert.Equal(t, "30d", cfg.Maintenance.SnapshotRetention)
	assert.Equal(t, "30d", cfg.Maintenance.OrphanRetention)

	cfg.ApplyMaintenanceOverrides("", "")
	assert.Equal(t, "512MB", cfg.Maintenance.FileSizeThreshold)
}
