package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementhub/joblist/internal/listing"
	"github.com/placementhub/joblist/internal/theme"
	"github.com/placementhub/joblist/internal/tui"
)

func widestLine(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}

func TestRenderTable_WidthComesFromCaller(t *testing.T) {
	c := listing.New(listing.Dataset{{"JobTitle": "Go Developer", "Type": "Full-time"}}, tui.CardTemplate)
	palette := theme.PaletteFor(theme.Light)

	var natural bytes.Buffer
	require.NoError(t, renderTable(&natural, c.View(), palette, true, 0))

	var fitted bytes.Buffer
	require.NoError(t, renderTable(&fitted, c.View(), palette, true, 80))

	assert.Less(t, widestLine(natural.String()), 40, "zero width keeps cards at their natural width")
	assert.Greater(t, widestLine(fitted.String()), 60)
	assert.LessOrEqual(t, widestLine(fitted.String()), 80)
}

func TestRenderTable_BufferHasNoTerminalWidth(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 0, tui.WriterWidth(&buf, 0))
}
