package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/placementhub/joblist/internal/logging"
)

//nolint:gochecknoglobals // Resolved once per invocation by the root command.
var (
	resolvedProjectDir   string
	resolvedProjectDirMu sync.RWMutex
)

// SetResolvedProjectDir stores the project directory resolved for this invocation.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the stored resolved project directory.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// ResolveProjectDir determines the project-local .joblist directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. JOBLIST_PROJECT_DIR env var
//  3. walking up from startDir for an existing .joblist directory
//
// Returns an absolute path, or empty string if no project is found.
// Does NOT create the directory.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv("JOBLIST_PROJECT_DIR"); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	return findProjectDir(startDir)
}

// findProjectDir walks up from startDir looking for a .joblist directory.
// The user's global home directory is not treated as a project.
func findProjectDir(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	global, _ := filepath.Abs(HomeDir())

	for {
		candidate := filepath.Join(dir, homeDirName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() && candidate != global {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewWithProjectDir creates a Config by loading global config then
// shallow-merging project-local config on top. If projectDir is empty,
// behaves identically to New().
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()

	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		// Missing project config is not an error; use global settings.
		return cfg
	}

	merged := New()
	if err := ShallowMergeYAML(merged, overlayPath); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global settings")
		return cfg
	}

	return merged
}

// toAbsProjectDir converts dir to an absolute path and appends ".joblist".
// If the path already ends with ".joblist", it is returned as-is.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == homeDirName {
		return abs
	}

	return filepath.Join(abs, homeDirName)
}
