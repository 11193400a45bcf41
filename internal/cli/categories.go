package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placementhub/joblist/internal/config"
	"github.com/placementhub/joblist/internal/listing"
)

func newCategoriesCmd() *cobra.Command {
	var (
		data   dataFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category selector options",
		Long: `Prints the options offered by the category selector: "All" followed by
every distinct Type value in the dataset, sorted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			src, err := data.sources(cmd, cfg)
			if err != nil {
				return &UsageError{Err: err}
			}
			ds, err := loadDataset(cmd.Context(), src)
			if err != nil {
				return err
			}

			categories := listing.Categories(ds)
			switch cfg.GetOutputFormat(output) {
			case config.OutputJSON:
				return renderJSON(cmd.OutOrStdout(), categories)
			case config.OutputYAML:
				return renderYAML(cmd.OutOrStdout(), categories)
			default:
				for _, c := range categories {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return nil
			}
		},
	}

	data.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml")
	return cmd
}
