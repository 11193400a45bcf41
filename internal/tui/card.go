package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/placementhub/joblist/internal/listing"
	"github.com/placementhub/joblist/internal/theme"
)

const untitled = "Untitled"

// fieldSeparator separates a label from its value on a card line.
const fieldSeparator = ": "

// titleFields are tried in order for the card heading.
//
//nolint:gochecknoglobals // Fixed template.
var titleFields = []string{"JobTitle", "Title", "title", "Name", "name"}

// detailFields are listed first, in this order, when present.
//
//nolint:gochecknoglobals // Fixed template.
var detailFields = []string{
	"CompanyName",
	listing.TypeField,
	"JobType",
	"CompanyLocation",
	"JobSalary",
	"JobPosition",
	"SkillsRequired",
}

// CardTemplate renders a record as an unstyled job card: a title line
// followed by one "Field: value" line per populated field. The known job
// fields come first and any others follow in key order.
func CardTemplate(rec listing.Record) string {
	used := make(map[string]bool, len(rec))
	title := untitled
	for _, name := range titleFields {
		if v, ok := rec.Field(name); ok && v != "" {
			title = v
			used[name] = true
			break
		}
	}

	lines := []string{title}
	appendField := func(name string) {
		if used[name] {
			return
		}
		used[name] = true
		if v, ok := rec.Field(name); ok && v != "" {
			lines = append(lines, name+fieldSeparator+oneLine(v))
		}
	}
	for _, name := range detailFields {
		appendField(name)
	}
	for _, name := range rec.Keys() {
		appendField(name)
	}
	return strings.Join(lines, "\n")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StyleCard applies a palette to a card produced by CardTemplate. A width of
// zero or less leaves the card at its natural width.
func StyleCard(p theme.Palette, card string, selected bool, width int) string {
	lines := strings.Split(card, "\n")
	styled := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 {
			styled[i] = p.CardTitle.Render(line)
			continue
		}
		if label, value, ok := strings.Cut(line, fieldSeparator); ok {
			styled[i] = p.Label.Render(label+":") + " " + value
			continue
		}
		styled[i] = line
	}

	box := p.Card
	if selected {
		box = p.SelectedCard
	}
	if width > borderPadding {
		box = box.Width(width - borderPadding)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, styled...))
}
