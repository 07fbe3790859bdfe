// Package catalog implements the element catalog core: the immutable
// dataset, semantic column roles, filtering, ranked search, session
// selection state, and view resolution.
package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Row is one element record. Values are stringified scalars keyed by
// column name; a missing column reads as the empty string.
type Row struct {
	index  int
	values map[string]string
}

// Index returns the row's position in the original dataset order
func (r Row) Index() int {
	return r.index
}

// Get returns the stringified value for the given column
func (r Row) Get(column string) string {
	return r.values[column]
}

// ContainsFold reports whether any column value contains the given
// lowercase needle, case-insensitively
func (r Row) ContainsFold(needle string) bool {
	for _, v := range r.values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// Dataset is an ordered, immutable table of rows sharing a column set.
// It is loaded once at startup and safely shared across sessions.
type Dataset struct {
	columns []string
	rows    []Row
}

// NewDataset builds a dataset from loader output. Row order is preserved.
func NewDataset(columns []string, records []map[string]string) *Dataset {
	cols := make([]string, len(columns))
	copy(cols, columns)

	rows := make([]Row, 0, len(records))
	for i, record := range records {
		values := make(map[string]string, len(record))
		for k, v := range record {
			values[k] = v
		}
		rows = append(rows, Row{index: i, values: values})
	}

	return &Dataset{columns: cols, rows: rows}
}

// Columns returns the dataset's column names in sheet order
func (d *Dataset) Columns() []string {
	return d.columns
}

// HasColumn reports whether a column with the given name exists
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Rows returns all rows in original order
func (d *Dataset) Rows() []Row {
	return d.rows
}

// Len returns the number of data rows
func (d *Dataset) Len() int {
	return len(d.rows)
}

// DistinctValues returns the sorted distinct non-empty values of a column
func (d *Dataset) DistinctValues(column string) []string {
	seen := make(map[string]bool)
	for _, row := range d.rows {
		if v := row.Get(column); v != "" {
			seen[v] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// parseNumber parses a stringified numeric cell value
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatNumber renders a numeric cell the way row keys and links expect:
// integral values print without a decimal point
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
