package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/placementhub/joblist/internal/listing"
)

// tableNamePattern restricts table names to plain identifiers, since the
// name is interpolated into the query.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads every row of src.Table ordered by rowid. Views and
// WITHOUT ROWID tables have no rowid and are read in the order SQLite returns
// them. Each column becomes a field; NULL columns are left out of the record.
func LoadSQLite(ctx context.Context, src SQLiteSource) (listing.Dataset, error) {
	if !tableNamePattern.MatchString(src.Table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, src.Table)
	}

	dsn, err := readOnlyDSN(src.Path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s" ORDER BY rowid`, src.Table))
	if err != nil {
		var unorderedErr error
		rows, unorderedErr = db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, src.Table))
		if unorderedErr != nil {
			return nil, fmt.Errorf("query %s in %s: %w", src.Table, src.Path, unorderedErr)
		}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", src.Table, err)
	}

	ds := listing.Dataset{}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if scanErr := rows.Scan(ptrs...); scanErr != nil {
			return nil, fmt.Errorf("scan %s: %w", src.Table, scanErr)
		}
		rec := make(listing.Record, len(columns))
		for i, col := range columns {
			if v := columnValue(values[i]); v != nil {
				rec[col] = v
			}
		}
		ds = append(ds, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", src.Table, err)
	}

	return ds, nil
}

// columnValue converts a scanned driver value into a record value.
func columnValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return val
	}
}

// readOnlyDSN builds a read-only SQLite URI for path. The path is escaped so
// names containing '?' or '#' are not read as URI syntax.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve sqlite path %s: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String(), nil
}
