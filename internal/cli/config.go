package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/placementhub/joblist/internal/config"
	"github.com/placementhub/joblist/internal/storage"
)

var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage joblist configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

// newConfigInitCmd creates the config init command. Inside a project (a
// .joblist directory found from the working directory, JOBLIST_PROJECT_DIR,
// or --project-dir) it writes the project config and a .gitignore; otherwise
// it writes the global config.
func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create global configuration
  joblist config init

  # Create project-local configuration in the current directory
  joblist config init --project-dir .

  # Overwrite existing configuration
  joblist config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()
			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "initialize the global configuration even inside a project")
	return cmd
}

func checkConfigAbsent(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errConfigExists
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

// initProjectConfig creates projectDir/config.yaml with a .gitignore. The
// project file starts with only a data section so it overrides nothing else.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, "config.yaml")
	if err := checkConfigAbsent(configPath, force); err != nil {
		return err
	}

	if err := os.MkdirAll(projectDir, 0o750); err != nil {
		return fmt.Errorf("failed to create project config directory: %w", err)
	}
	const projectTemplate = `# joblist project configuration. Sections present here replace the
# matching section of the global configuration.
data:
  files:
    - jobs/*.json
`
	if err := os.WriteFile(configPath, []byte(projectTemplate), 0o600); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore to keep preferences and logs out of version control\n")
	}
	return nil
}

// initGlobalConfig creates the global config with built-in defaults.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	path := config.DefaultConfigPath()
	if err := checkConfigAbsent(path, force); err != nil {
		return err
	}
	if err := config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after merging defaults, the global file and the project file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if dir := config.GetResolvedProjectDir(); dir != "" {
				_, _ = fmt.Fprintf(out, "# project: %s\n", dir)
			}
			cfg := config.GetGlobalConfig()
			if err := renderYAML(out, cfg); err != nil {
				return err
			}
			return writeStoredValues(out, cfg.Storage.Directory)
		},
	}
}

// writeStoredValues appends the stored preferences as YAML comments, so the
// output stays a loadable configuration.
func writeStoredValues(w io.Writer, directory string) error {
	store, err := storage.NewLocalStore(directory)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	keys, err := store.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	_, _ = fmt.Fprintf(w, "# stored in %s:\n", store.Directory())
	for _, key := range keys {
		entry, getErr := store.GetEntry(key)
		if getErr != nil {
			logger.Debug().Err(getErr).Str("key", key).Msg("skipping unreadable stored value")
			continue
		}
		_, _ = fmt.Fprintf(w, "#   %s: %s (updated %s ago)\n",
			entry.Key, entry.Value, entry.Age().Truncate(time.Second))
	}
	return nil
}
