package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placementhub/joblist/internal/config"
	"github.com/placementhub/joblist/internal/theme"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme",
		Long:  "Shows the stored theme preference. Use 'toggle' or 'set' to change it and 'reset' to forget it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runThemeShow(cmd)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runThemeShow(cmd)
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				pref, err := openPreference(config.GetGlobalConfig())
				if err != nil {
					return err
				}
				next, err := pref.Toggle()
				if err != nil {
					return err
				}
				logger.Info().Ctx(cmd.Context()).Str("theme", next.String()).Msg("theme toggled")
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), next)
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Forget the stored theme and return to the default",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				pref, err := openPreference(config.GetGlobalConfig())
				if err != nil {
					return err
				}
				if err = pref.Reset(); err != nil {
					return err
				}
				current, err := pref.Load()
				if err != nil {
					return err
				}
				logger.Info().Ctx(cmd.Context()).Msg("theme preference reset")
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), current)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Set the theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(theme.Light), string(theme.Dark)},
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := theme.Parse(args[0])
				if err != nil {
					return &UsageError{Err: err}
				}
				pref, err := openPreference(config.GetGlobalConfig())
				if err != nil {
					return err
				}
				if err = pref.Save(t); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			},
		},
	)
	return cmd
}

func runThemeShow(cmd *cobra.Command) error {
	pref, err := openPreference(config.GetGlobalConfig())
	if err != nil {
		return err
	}
	t, err := pref.Load()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}
