package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placementhub/joblist/internal/config"
	"github.com/placementhub/joblist/internal/dataset"
	"github.com/placementhub/joblist/internal/listing"
	"github.com/placementhub/joblist/internal/storage"
	"github.com/placementhub/joblist/internal/theme"
)

var errTableWithoutSQLite = errors.New("--table requires --sqlite")

// dataFlags are the dataset source flags shared by browse, list and categories.
// When any is set they replace the configured data section.
type dataFlags struct {
	files  []string
	sqlite string
	table  string
}

func (f *dataFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.files, "data", nil,
		"dataset files or glob patterns (.json, .ndjson, .jsonl, .yaml; optionally .gz or .zst)")
	cmd.Flags().StringVar(&f.sqlite, "sqlite", "", "SQLite database holding job records")
	cmd.Flags().StringVar(&f.table, "table", "jobs", "table to read with --sqlite")
}

func (f dataFlags) sources(cmd *cobra.Command, cfg *config.Config) (dataset.Sources, error) {
	if cmd.Flags().Changed("table") && f.sqlite == "" {
		return dataset.Sources{}, errTableWithoutSQLite
	}
	if len(f.files) == 0 && f.sqlite == "" {
		return cfg.Data, nil
	}
	src := dataset.Sources{Files: f.files}
	if f.sqlite != "" {
		src.SQLite = []dataset.SQLiteSource{{Path: f.sqlite, Table: f.table}}
	}
	return src, nil
}

// loadDataset reads src, adding a hint when nothing is configured.
func loadDataset(ctx context.Context, src dataset.Sources) (listing.Dataset, error) {
	ds, err := dataset.Load(ctx, src)
	if errors.Is(err, dataset.ErrNoSources) {
		return nil, fmt.Errorf("%w: pass --data or --sqlite, or set data.files in %s",
			err, config.DefaultConfigPath())
	}
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return ds, nil
}

// openPreference opens the theme preference in the configured storage directory.
func openPreference(cfg *config.Config) (*theme.Preference, error) {
	store, err := storage.NewLocalStore(cfg.Storage.Directory)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}
	return theme.NewPreference(store), nil
}
