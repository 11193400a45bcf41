package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/placementhub/joblist/internal/logging"
)

// Environment variables that override the logging section.
const (
	EnvLogLevel  = "JOBLIST_LOG_LEVEL"
	EnvLogFormat = "JOBLIST_LOG_FORMAT"
)

// ToLoggingConfig converts config.LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// The conversion applies these rules:
//   - Level, Format and Caller are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: lc.Caller,
	}
}

// WithEnvOverrides returns a copy with JOBLIST_LOG_LEVEL and JOBLIST_LOG_FORMAT applied.
func (lc LoggingConfig) WithEnvOverrides(lookupEnv func(string) (string, bool)) LoggingConfig {
	if level, ok := lookupEnv(EnvLogLevel); ok && level != "" {
		lc.Level = level
	}
	if format, ok := lookupEnv(EnvLogFormat); ok && format != "" {
		lc.Format = format
	}
	return lc
}

// EnsureLogDir creates the directory holding the configured log file.
func (lc LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(lc.File), 0750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
