// Package config provides configuration structures and loading for icelens.
package config

// Config represents the complete application configuration.
type Config struct {
	Trino       TrinoConfig       `yaml:"trino" mapstructure:"trino"`
	Stats       StatsConfig       `yaml:"stats" mapstructure:"stats"`
	Maintenance MaintenanceConfig `yaml:"maintenance" mapstructure:"maintenance"`
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`
}

// TrinoConfig represents the Trino coordinator connection configuration.
type TrinoConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Catalog            string `yaml:"catalog" mapstructure:"catalog"`
	Schema             string `yaml:"schema" mapstructure:"schema"`
	HTTPScheme         string `yaml:"http_scheme" mapstructure:"http_scheme"` // http or https
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// StatsConfig represents table statistics tuning.
type StatsConfig struct {
	// SmallFileThresholdBytes is the size below which a data file counts as small.
	SmallFileThresholdBytes int64 `yaml:"small_file_threshold_bytes" mapstructure:"small_file_threshold_bytes"`
}

// MaintenanceConfig represents defaults for maintenance procedure parameters.
type MaintenanceConfig struct {
	FileSizeThreshold string `yaml:"file_size_threshold" mapstructure:"file_size_threshold"` // optimize target, e.g. "128MB"
	SnapshotRetention string `yaml:"snapshot_retention" mapstructure:"snapshot_retention"`   // expire_snapshots retention, e.g. "7d"
	OrphanRetention   string `yaml:"orphan_retention" mapstructure:"orphan_retention"`       // remove_orphan_files retention, e.g. "7d"
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// Default maintenance parameters. These surface in config and flags so
// operators can tune retention and target sizes per environment.
const (
	DefaultFileSizeThreshold = "128MB"
	DefaultRetention         = "7d"
)

// DefaultSmallFileThresholdBytes is 100 MiB, the conventional cutoff below
// which a data file indicates fragmentation.
const DefaultSmallFileThresholdBytes int64 = 100 * 1024 * 1024

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Trino: TrinoConfig{
			Host:               "localhost",
			Port:               8080,
			User:               "trino",
			Catalog:            "iceberg",
			Schema:             "default",
			HTTPScheme:         "http",
			MaxConnections:     4,
			MaxIdleConnections: 2,
		},
		Stats: StatsConfig{
			SmallFileThresholdBytes: DefaultSmallFileThresholdBytes,
		},
		Maintenance: MaintenanceConfig{
			FileSizeThreshold: DefaultFileSizeThreshold,
			SnapshotRetention: DefaultRetention,
			OrphanRetention:   DefaultRetention,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
