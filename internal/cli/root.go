package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/placementhub/joblist/internal/config"
	"github.com/placementhub/joblist/internal/logging"
	"github.com/placementhub/joblist/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the joblist CLI.
// It wires up configuration, logging, tracing, and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "joblist",
		Short:         "Browse job listings in the terminal",
		Long:          "joblist: filter, search and page through job listings loaded from local files or SQLite.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd, lookupEnv)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().String("config", "", "configuration file (default $JOBLIST_HOME/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .joblist/config.yaml")
	cmd.PersistentFlags().Bool("plain", false, "print plain text; never start the interactive browser")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("color", false, "force colored output when stdout is not a terminal")
	cmd.AddCommand(
		newBrowseCmd(),
		newListCmd(),
		newCategoriesCmd(),
		newThemeCmd(),
		newConfigCmd(),
	)

	return cmd
}

// loadConfig resolves the project directory and installs the effective
// configuration. An explicit --config file must exist and be valid; the
// implicit global and project files are best-effort.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()
	projectFlag, _ := cmd.Flags().GetString("project-dir")
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	projectDir := config.ResolveProjectDir(ctx, projectFlag, cwd)
	config.SetResolvedProjectDir(projectDir)

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		config.SetGlobalConfig(config.NewWithProjectDir(ctx, projectDir))
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading --config: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// outputMode applies the --color, --no-color and --plain flags to terminal detection.
func outputMode(cmd *cobra.Command) tui.OutputMode {
	forceColor, _ := cmd.Flags().GetBool("color")
	noColor, _ := cmd.Flags().GetBool("no-color")
	plain, _ := cmd.Flags().GetBool("plain")
	return tui.DetectOutputMode(forceColor, noColor, plain)
}

const rootCmdExample = `  # Browse the jobs configured in config.yaml
  joblist browse

  # Browse jobs from files (JSON, NDJSON, YAML, optionally .gz or .zst)
  joblist browse --data 'jobs/**/*.json'

  # Print the second page of internships as JSON
  joblist list --data jobs.json --filter Intern --page 2 --output json

  # Search every field, case-insensitively
  joblist list --data jobs.ndjson --search golang

  # Read jobs from a SQLite table
  joblist list --sqlite placement.db --table jobs

  # Show the available categories
  joblist categories --data jobs.json

  # Switch between the light and dark theme
  joblist theme toggle

  # Initialize configuration
  joblist config init`
