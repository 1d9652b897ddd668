package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
// A missing file is not an error: defaults apply, so the CLI works against a
// local Trino without any configuration.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)

	return cfg, nil
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)

	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func substituteEnvVars(cfg *Config) {
	cfg.Trino.Host = expandEnvVar(cfg.Trino.Host)
	cfg.Trino.User = expandEnvVar(cfg.Trino.User)
	cfg.Trino.Password = expandEnvVar(cfg.Trino.Password)
	cfg.Trino.Catalog = expandEnvVar(cfg.Trino.Catalog)
	cfg.Trino.Schema = expandEnvVar(cfg.Trino.Schema)
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, host string, port int, user, catalog string) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if host != "" {
		c.Trino.Host = host
	}
	if port > 0 {
		c.Trino.Port = port
	}
	if user != "" {
		c.Trino.User = user
	}
	if catalog != "" {
		c.Trino.Catalog = catalog
	}
}

// ApplyMaintenanceOverrides applies CLI flag overrides to maintenance defaults.
func (c *Config) ApplyMaintenanceOverrides(fileSizeThreshold, retention string) {
	if fileSizeThreshold != "" {
		c.Maintenance.FileSizeThreshold = fileSizeThreshold
	}
	if retention != "" {
		c.Maintenance.SnapshotRetention = retention
		c.Maintenance.OrphanRetention = retention
	}
}
