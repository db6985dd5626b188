package rowmap

import "sort"

// Row is the per-record view into a dataset: a mapping from column
// names to raw cell values. Fields look their column up in it during
// import and never mutate it.
type Row map[string]any

// Columns returns the available column names in sorted order.
// Used for diagnostics when a column lookup fails.
func (r Row) Columns() []string {
	cols := make([]string, 0, len(r))
	for k := range r {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Has reports whether the row carries the given column.
func (r Row) Has(column string) bool {
	_, ok := r[column]
	return ok
}
