package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/placementhub/joblist/internal/cli/pagination"
	"github.com/placementhub/joblist/internal/config"
	"github.com/placementhub/joblist/internal/listing"
	"github.com/placementhub/joblist/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	var data dataFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse job listings interactively",
		Long: `Opens the interactive job browser: type / to search, tab to change category,
n and p to page, t to switch theme, q to quit.

When stdout is not a terminal the first page is printed as with 'joblist list'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := outputMode(cmd)
			if mode != tui.OutputModeInteractive {
				logger.Debug().Ctx(cmd.Context()).Str("mode", mode.String()).Msg("not a terminal, printing first page")
				return runList(cmd, *pagination.NewListParams(), data, mode)
			}
			return runBrowse(cmd, data)
		},
	}

	data.addFlags(cmd)
	return cmd
}

func runBrowse(cmd *cobra.Command, data dataFlags) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	src, err := data.sources(cmd, cfg)
	if err != nil {
		return &UsageError{Err: err}
	}

	pref, err := openPreference(cfg)
	if err != nil {
		logger.Warn().Ctx(ctx).Err(err).Msg("theme preference unavailable, toggles will not be saved")
		pref = nil
	}

	load := func(ctx context.Context) (listing.Dataset, error) {
		return loadDataset(ctx, src)
	}

	p := tea.NewProgram(
		tui.NewBrowseModel(ctx, load, pref),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}

	if m, ok := finalModel.(tui.BrowseModel); ok {
		if loadErr := m.Err(); loadErr != nil {
			return loadErr
		}
	}
	return nil
}
