package listing

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleDataset is the three-record dataset used by the documented examples.
func sampleDataset() Dataset {
	return Dataset{
		{"Type": "Job", "Title": "A"},
		{"Type": "Internship", "Title": "B"},
		{"Type": "Job", "Title": "C"},
	}
}

// randomDataset builds a deterministic dataset with mixed categories and values.
func randomDataset(seed uint64, n int) Dataset {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b9))
	types := []string{"Job", "Internship", "Part-time Job", "Fellowship"}
	words := []string{"Go", "Backend", "Data", "Frontend", "Remote", "Pune", "Delhi", "ACME", "Initech"}
	ds := make(Dataset, n)
	for i := range ds {
		ds[i] = Record{
			"Type":     types[r.IntN(len(types))],
			"Title":    words[r.IntN(len(words))] + " " + words[r.IntN(len(words))],
			"Company":  words[r.IntN(len(words))],
			"Salary":   float64(r.IntN(100) * 1000),
			"Openings": r.IntN(5),
		}
	}
	return ds
}

func titles(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i], _ = rec.Field("Title")
	}
	return out
}

func TestFilterByType_Example(t *testing.T) {
	ds := sampleDataset()

	rs := FilterByType(ds, "Job")

	assert.Equal(t, []int{0, 2}, rs.Positions())
	assert.Equal(t, []string{"A", "C"}, titles(rs.Records()))
}

func TestFilterByType_AllReturnsDataset(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		ds := randomDataset(seed, 37)
		rs := FilterByType(ds, AllCategories)
		if diff := cmp.Diff([]Record(ds), rs.Records()); diff != "" {
			t.Errorf("FilterByType(All) mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestFilterByType_Partition(t *testing.T) {
	ds := randomDataset(7, 60)

	for _, category := range []string{"Job", "Intern", "ship", "job", "Fellowship", "Nope"} {
		t.Run(category, func(t *testing.T) {
			rs := FilterByType(ds, category)
			for pos, rec := range ds {
				typ, _ := rec.Field(TypeField)
				assert.Equal(t, strings.Contains(typ, category), rs.Contains(pos),
					"record %d with Type %q", pos, typ)
			}
		})
	}
}

func TestFilterByType_CaseSensitive(t *testing.T) {
	rs := FilterByType(sampleDataset(), "job")
	assert.Equal(t, 0, rs.Len())
}

func TestFilterByType_MissingTypeNeverMatches(t *testing.T) {
	ds := Dataset{
		{"Title": "no type"},
		{"Type": nil, "Title": "nil type"},
		{"Type": "Job", "Title": "typed"},
	}

	assert.Equal(t, []int{2}, FilterByType(ds, "Job").Positions())
	assert.Equal(t, []int{2}, FilterByType(ds, "").Positions())
	assert.Equal(t, 3, FilterByType(ds, AllCategories).Len())
}

func TestSearch_Example(t *testing.T) {
	rs := Search(sampleDataset(), "b")
	assert.Equal(t, []int{1}, rs.Positions())
}

func TestSearch_EmptyQueryReturnsDataset(t *testing.T) {
	ds := randomDataset(11, 25)
	assert.True(t, Search(ds, "").Equal(All(ds)))
}

func TestSearch_EveryMatchContainsQuery(t *testing.T) {
	ds := randomDataset(5, 80)

	for _, query := range []string{"go", "GO", "acme", "pune", "000", "ship", "zzz"} {
		t.Run(query, func(t *testing.T) {
			rs := Search(ds, query)
			q := strings.ToLower(query)
			for pos, rec := range ds {
				matched := false
				for _, s := range rec.Strings() {
					if strings.Contains(strings.ToLower(s), q) {
						matched = true
						break
					}
				}
				assert.Equal(t, matched, rs.Contains(pos), "record %d", pos)
			}
		})
	}
}

func TestSearch_CoercesNonStringValues(t *testing.T) {
	ds := Dataset{
		{"Title": "Engineer", "Salary": float64(50000)},
		{"Title": "Analyst", "Remote": true},
		{"Title": "Intern", "Tags": []any{"golang", map[string]any{"level": "Senior"}}},
		{"Title": "Nothing", "Missing": nil},
	}

	tests := []struct {
		query string
		want  []int
	}{
		{query: "50000", want: []int{0}},
		{query: "true", want: []int{1}},
		{query: "golang", want: []int{2}},
		{query: "senior", want: []int{2}},
		{query: "nil", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Search(ds, tt.query).Positions())
		})
	}
}

func TestFilterAndSearch_Idempotent(t *testing.T) {
	ds := randomDataset(3, 45)

	assert.True(t, FilterByType(ds, "Job").Equal(FilterByType(ds, "Job")))
	assert.True(t, Search(ds, "data").Equal(Search(ds, "data")))
}

func TestResultSet_IsSubsequence(t *testing.T) {
	ds := randomDataset(9, 50)

	for _, rs := range []ResultSet{FilterByType(ds, "Job"), Search(ds, "re"), All(ds)} {
		positions := rs.Positions()
		for i := 1; i < len(positions); i++ {
			require.Less(t, positions[i-1], positions[i])
		}
		for i, pos := range positions {
			assert.Equal(t, fmt.Sprint(ds[pos]), fmt.Sprint(rs.At(i)))
		}
	}
}

func TestResultSet_EmptyDataset(t *testing.T) {
	var ds Dataset

	assert.Equal(t, 0, All(ds).Len())
	assert.Equal(t, 0, Search(ds, "x").Len())
	assert.Empty(t, FilterByType(ds, "Job").Records())
	assert.False(t, All(ds).Contains(0))
	assert.True(t, All(ds).Equal(Search(ds, "x")))
}

func TestCategories(t *testing.T) {
	ds := Dataset{
		{"Type": "Job"},
		{"Type": "Internship"},
		{"Title": "untyped"},
		{"Type": "Job"},
		{"Type": "All"},
	}

	assert.Equal(t, []string{AllCategories, "Internship", "Job"}, Categories(ds))
	assert.Equal(t, []string{AllCategories}, Categories(nil))
}
