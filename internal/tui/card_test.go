package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placementhub/joblist/internal/listing"
	"github.com/placementhub/joblist/internal/theme"
)

func TestCardTemplate_FieldOrder(t *testing.T) {
	rec := listing.Record{
		"Extra":       "x",
		"JobSalary":   120000.0,
		"Type":        "Full-time",
		"CompanyName": "Acme",
		"JobTitle":    "Go Developer",
	}

	got := CardTemplate(rec)

	assert.Equal(t, strings.Join([]string{
		"Go Developer",
		"CompanyName: Acme",
		"Type: Full-time",
		"JobSalary: 120000",
		"Extra: x",
	}, "\n"), got)
}

func TestCardTemplate_Untitled(t *testing.T) {
	got := CardTemplate(listing.Record{"Type": "Intern", "Notes": nil})

	assert.Equal(t, "Untitled\nType: Intern", got, "nil fields are skipped")
}

func TestCardTemplate_TitleFallbackAndMultiline(t *testing.T) {
	rec := listing.Record{
		"Title":          "Analyst",
		"JobDescription": "line one\n  line two",
	}

	got := CardTemplate(rec)

	assert.Equal(t, "Analyst\nJobDescription: line one line two", got)
}

func TestStyleCard(t *testing.T) {
	card := CardTemplate(listing.Record{"JobTitle": "Go Developer", "CompanyName": "Acme"})

	for _, selected := range []bool{false, true} {
		out := StyleCard(theme.PaletteFor(theme.Dark), card, selected, 60)
		assert.Contains(t, out, "Go Developer")
		assert.Contains(t, out, "Acme")
		assert.Contains(t, out, "CompanyName:")
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 4, "two content lines plus top and bottom border")
	}
}
