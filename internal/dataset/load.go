package dataset

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/placementhub/joblist/internal/listing"
	"github.com/placementhub/joblist/internal/logging"
)

// Loader errors.
var (
	ErrNoSources           = errors.New("no dataset sources configured")
	ErrNoMatches           = errors.New("pattern matched no files")
	ErrUnsupportedFormat   = errors.New("unsupported dataset format")
	ErrIncompatibleVersion = errors.New("incompatible dataset version")
	ErrInvalidTable        = errors.New("invalid table name")
	ErrMalformedRecord     = errors.New("record is not an object")
	ErrTrailingData        = errors.New("unexpected data after dataset")
)

// SQLiteSource names a table in a SQLite database file.
type SQLiteSource struct {
	Path  string `yaml:"path"  json:"path"`
	Table string `yaml:"table" json:"table"`
}

// Sources lists where records come from.
type Sources struct {
	// Files are doublestar glob patterns such as "data/**/*.json".
	Files []string `yaml:"files" json:"files"`

	// SQLite tables are appended after all file records.
	SQLite []SQLiteSource `yaml:"sqlite" json:"sqlite"`
}

// IsEmpty reports whether no source is configured.
func (s Sources) IsEmpty() bool {
	return len(s.Files) == 0 && len(s.SQLite) == 0
}

// Load reads every source and returns the combined Dataset.
func Load(ctx context.Context, src Sources) (listing.Dataset, error) {
	if src.IsEmpty() {
		return nil, ErrNoSources
	}

	logger := logging.FromContext(ctx)

	paths, err := expandFiles(src.Files)
	if err != nil {
		return nil, err
	}

	perFile := make([]listing.Dataset, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if ctxErr := gCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			records, decodeErr := DecodeFile(path)
			if decodeErr != nil {
				return decodeErr
			}
			perFile[i] = records
			return nil
		})
	}
	if waitErr := g.Wait(); waitErr != nil {
		return nil, waitErr
	}

	var ds listing.Dataset
	for i, records := range perFile {
		logger.Debug().
			Str("component", "dataset").
			Str("path", paths[i]).
			Int("records", len(records)).
			Msg("file loaded")
		ds = append(ds, records...)
	}

	for _, table := range src.SQLite {
		records, sqlErr := LoadSQLite(ctx, table)
		if sqlErr != nil {
			return nil, sqlErr
		}
		logger.Debug().
			Str("component", "dataset").
			Str("path", table.Path).
			Str("table", table.Table).
			Int("records", len(records)).
			Msg("table loaded")
		ds = append(ds, records...)
	}

	logger.Info().
		Str("component", "dataset").
		Int("files", len(paths)).
		Int("tables", len(src.SQLite)).
		Int("records", len(ds)).
		Msg("dataset loaded")

	return ds, nil
}

// expandFiles resolves glob patterns into a sorted, de-duplicated file list.
func expandFiles(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
