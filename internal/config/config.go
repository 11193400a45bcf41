package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/placementhub/joblist/internal/dataset"
)

// Directory and file names under the joblist home.
const (
	homeDirName     = ".joblist"
	configFileName  = "config.yaml"
	storageDirName  = "storage"
	logFileName     = "joblist.log"
	outputTypeFile  = "file"
	defaultLogLevel = "info"
)

// Supported output formats for non-interactive listing.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config is the joblist configuration file.
type Config struct {
	Data    dataset.Sources `yaml:"data"`
	Output  OutputConfig    `yaml:"output"`
	Logging LoggingConfig   `yaml:"logging"`
	Storage StorageConfig   `yaml:"storage"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`

	// Caller adds the source file and line to every log line.
	Caller bool `yaml:"caller"`
}

// StorageConfig controls where preferences such as the theme are stored.
type StorageConfig struct {
	Directory string `yaml:"directory"`
}

// HomeDir returns the joblist home directory: $JOBLIST_HOME, or ~/.joblist.
func HomeDir() string {
	if env := os.Getenv("JOBLIST_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return homeDirName
	}
	return filepath.Join(home, homeDirName)
}

// DefaultConfigPath returns the global configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	home := HomeDir()
	return &Config{
		Output: OutputConfig{DefaultFormat: OutputTable},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: "json",
			File:   filepath.Join(home, "logs", logFileName),
		},
		Storage: StorageConfig{Directory: filepath.Join(home, storageDirName)},
	}
}

// New returns the defaults overlaid with the global configuration file, if present.
// A malformed global file is ignored so the CLI stays usable; Load reports it.
func New() *Config {
	cfg := Default()
	path := DefaultConfigPath()
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return Default()
	}
	return cfg
}

// Load reads the configuration at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.DefaultFormat) {
	case "", OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output.default_format %q (want table, json or yaml)",
			ErrInvalidConfig, c.Output.DefaultFormat)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "text", "console":
	default:
		return fmt.Errorf("%w: logging.format %q (want json, text or console)", ErrInvalidConfig, c.Logging.Format)
	}
	for i, src := range c.Data.SQLite {
		if src.Path == "" || src.Table == "" {
			return fmt.Errorf("%w: data.sqlite[%d] needs path and table", ErrInvalidConfig, i)
		}
	}
	return nil
}

// GetOutputFormat returns the requested format, or the configured default when empty.
func (c *Config) GetOutputFormat(requested string) string {
	if requested != "" {
		return strings.ToLower(requested)
	}
	if c.Output.DefaultFormat == "" {
		return OutputTable
	}
	return strings.ToLower(c.Output.DefaultFormat)
}
