package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/icelens/icelens/internal/config"
	"github.com/icelens/icelens/internal/database"
	"github.com/icelens/icelens/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	host      string
	port      int
	user      string
	catalog   string
)

// outputWriter is used for printing rendered output, can be overridden in tests
var outputWriter io.Writer = os.Stdout

// setOutputWriter sets the output writer (used for testing)
func setOutputWriter(w io.Writer) {
	outputWriter = w
}

// resetOutputWriter resets output to stdout (used for testing)
func resetOutputWriter() {
	outputWriter = os.Stdout
}

var rootCmd = &cobra.Command{
	Use:   "icelens",
	Short: "Iceberg Table Metadata Inspector",
	Long: `A CLI tool for inspecting Apache Iceberg tables through a Trino
coordinator: metadata views, file statistics, snapshot timelines and
table maintenance.

Features:
  - All eleven $-suffixed metadata views as formatted tables
  - File-level statistics with small-file detection
  - Chronological snapshot timeline
  - Maintenance procedures (optimize, expire_snapshots, ...) and ANALYZE`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "icelens.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Connection overrides
	rootCmd.PersistentFlags().StringVar(&host, "host", "",
		"Override Trino coordinator host")
	rootCmd.PersistentFlags().IntVar(&port, "port", 0,
		"Override Trino coordinator port")
	rootCmd.PersistentFlags().StringVar(&user, "user", "",
		"Override Trino user")
	rootCmd.PersistentFlags().StringVar(&catalog, "catalog", "",
		"Override Iceberg catalog name")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Host      string
	Port      int
	User      string
	Catalog   string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Host:      host,
		Port:      port,
		User:      user,
		Catalog:   catalog,
	}
}

// loadConfig loads the configuration file, applies CLI overrides and
// validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Host, overrides.Port, overrides.User, overrides.Catalog)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openSession loads configuration, initializes logging and connects to the
// coordinator. The caller owns the returned manager and must Close it.
func openSession(ctx context.Context) (*config.Config, *logger.Logger, *database.Manager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	dbManager := database.NewManager(cfg)
	if err := dbManager.Connect(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to coordinator: %w", err)
	}

	return cfg, log, dbManager, nil
}
