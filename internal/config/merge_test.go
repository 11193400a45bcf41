package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementhub/joblist/internal/config"
	"github.com/placementhub/joblist/internal/dataset"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Data: dataset.Sources{
			Files: []string{"data/*.json"},
		},
		Output: config.OutputConfig{
			DefaultFormat: "table",
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Storage: config.StorageConfig{
			Directory: "/var/lib/joblist",
		},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "json", target.Output.DefaultFormat)

	// Other sections should be unchanged.
	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, []string{"data/*.json"}, target.Data.Files)
	assert.Equal(t, "/var/lib/joblist", target.Storage.Directory)
}

func TestShallowMergeYAML_SectionIsReplacedNotMerged(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
data:
  sqlite:
    - path: jobs.db
      table: jobs
logging:
  level: debug
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Empty(t, target.Data.Files, "data section replaced wholesale")
	require.Len(t, target.Data.SQLite, 1)
	assert.Equal(t, dataset.SQLiteSource{Path: "jobs.db", Table: "jobs"}, target.Data.SQLite[0])
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Empty(t, target.Logging.Format)
}

func TestShallowMergeYAML_EmptyOverlayFile(t *testing.T) {
	target := newDefaultTarget()
	original := *target
	overlay := writeOverlay(t, "# only a comment\n")

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, original, *target)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
output:
  default_format: yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "yaml", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, config.ShallowMergeYAML(nil, "x.yaml"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		overlay := writeOverlay(t, "output: [unclosed\n")
		assert.Error(t, config.ShallowMergeYAML(newDefaultTarget(), overlay))
	})

	t.Run("wrong section shape", func(t *testing.T) {
		overlay := writeOverlay(t, "logging: [1, 2]\n")
		err := config.ShallowMergeYAML(newDefaultTarget(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"logging"`)
	})
}
