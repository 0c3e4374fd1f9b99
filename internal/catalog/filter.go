package catalog

import "strings"

// AllCategories selects every category when passed to Filter.
const AllCategories = 0

// Filter returns the models matching both the category selector and the
// free-text query, preserving the input order (the repository already
// sorts by order_index, so the output stays sorted too).
//
// A categoryID of AllCategories matches every category. An empty query
// matches every model; otherwise the query is a case-insensitive substring
// test against title and description.
func Filter(models []Model, categoryID int, query string) []Model {
	q := strings.ToLower(query)
	out := make([]Model, 0, len(models))
	for _, m := range models {
		if categoryID != AllCategories && m.CategoryID != categoryID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Title), q) &&
			!strings.Contains(strings.ToLower(m.Description), q) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// CountByCategory tallies the full model list per category. Counts are
// always global: the active category selection or search query never
// changes them, so callers must pass the unfiltered list.
func CountByCategory(models []Model) map[int]int {
	counts := make(map[int]int, len(models))
	for _, m := range models {
		counts[m.CategoryID]++
	}
	return counts
}
