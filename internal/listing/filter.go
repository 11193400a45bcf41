package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllCategories is the category value that selects the whole Dataset.
const AllCategories = "All"

// FilterByType returns the records whose Type field contains category
// as a case-sensitive substring. AllCategories selects every record.
// Records without a Type field never match a specific category.
func FilterByType(ds Dataset, category string) ResultSet {
	if category == AllCategories {
		return All(ds)
	}
	return selectWhere(ds, func(rec Record) bool {
		typ, ok := rec.Field(TypeField)
		return ok && strings.Contains(typ, category)
	})
}

// Search returns the records with at least one field whose lower-cased
// string form contains the lower-cased query. An empty query selects
// every record.
func Search(ds Dataset, query string) ResultSet {
	lower := cases.Lower(language.Und)
	q := lower.String(query)
	if q == "" {
		return All(ds)
	}
	return selectWhere(ds, func(rec Record) bool {
		for _, s := range rec.Strings() {
			if strings.Contains(lower.String(s), q) {
				return true
			}
		}
		return false
	})
}

// Categories returns the options for the category selector: AllCategories
// followed by every distinct Type value in ds, sorted.
func Categories(ds Dataset) []string {
	seen := make(map[string]struct{})
	var types []string
	for _, rec := range ds {
		typ, ok := rec.Field(TypeField)
		if !ok || typ == "" || typ == AllCategories {
			continue
		}
		if _, dup := seen[typ]; dup {
			continue
		}
		seen[typ] = struct{}{}
		types = append(types, typ)
	}
	sort.Strings(types)
	return append([]string{AllCategories}, types...)
}
