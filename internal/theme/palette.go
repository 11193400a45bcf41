package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the styles for one theme.
type Palette struct {
	Theme Theme

	Header       lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardTitle    lipgloss.Style
	Label        lipgloss.Style
	Subtle       lipgloss.Style
	Control      lipgloss.Style
	ActiveOption lipgloss.Style
	EndMarker    lipgloss.Style
	Error        lipgloss.Style
}

type colors struct {
	fg, muted, accent, border, selected, danger lipgloss.Color
}

//nolint:gochecknoglobals // Fixed color tables.
var (
	lightColors = colors{
		fg:       lipgloss.Color("#1f2328"),
		muted:    lipgloss.Color("#6e7781"),
		accent:   lipgloss.Color("#0969da"),
		border:   lipgloss.Color("#d0d7de"),
		selected: lipgloss.Color("#8250df"),
		danger:   lipgloss.Color("#cf222e"),
	}
	darkColors = colors{
		fg:       lipgloss.Color("#e6edf3"),
		muted:    lipgloss.Color("#8b949e"),
		accent:   lipgloss.Color("#58a6ff"),
		border:   lipgloss.Color("#30363d"),
		selected: lipgloss.Color("#d2a8ff"),
		danger:   lipgloss.Color("#ff7b72"),
	}
)

// PaletteFor returns the styles for t.
func PaletteFor(t Theme) Palette {
	c := lightColors
	if t == Dark {
		c = darkColors
	}

	card := lipgloss.NewStyle().
		Foreground(c.fg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.border).
		Padding(0, 1)

	return Palette{
		Theme:        t,
		Header:       lipgloss.NewStyle().Bold(true).Foreground(c.accent),
		Card:         card,
		SelectedCard: card.BorderForeground(c.selected),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(c.fg),
		Label:        lipgloss.NewStyle().Foreground(c.muted),
		Subtle:       lipgloss.NewStyle().Foreground(c.muted).Italic(true),
		Control:      lipgloss.NewStyle().Foreground(c.accent).Bold(true),
		ActiveOption: lipgloss.NewStyle().Foreground(c.selected).Bold(true).Underline(true),
		EndMarker:    lipgloss.NewStyle().Foreground(c.muted).Italic(true).Padding(0, 1),
		Error:        lipgloss.NewStyle().Foreground(c.danger).Bold(true),
	}
}
