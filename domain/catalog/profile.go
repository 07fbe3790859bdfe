package catalog

import (
	"gonum.org/v1/gonum/stat"
)

// ValueCount is one tallied value of a categorical column
type ValueCount struct {
	Value string
	Count int
}

// NumberSummary describes the Number column's distribution
type NumberSummary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Profile is the dataset overview shown alongside results: shown/total
// counts plus per-category and per-action tallies and a numeric summary.
type Profile struct {
	TotalRows  int
	ShownRows  int
	Categories []ValueCount
	Actions    []ValueCount
	Numbers    *NumberSummary
}

// BuildProfile computes the overview for the full dataset and the
// currently shown subset. Sections whose role is absent stay empty.
func BuildProfile(ds *Dataset, rm RoleMap, shown []Row) Profile {
	p := Profile{
		TotalRows: ds.Len(),
		ShownRows: len(shown),
	}

	if rm.Has(RoleCategory) {
		p.Categories = tallyColumn(ds, rm.Column(RoleCategory))
	}
	if rm.Has(RoleAction) {
		p.Actions = tallyColumn(ds, rm.Column(RoleAction))
	}

	if rm.Numeric(RoleNumber) {
		var numbers []float64
		for _, row := range ds.Rows() {
			if n, ok := rm.NumberOf(row); ok {
				numbers = append(numbers, n)
			}
		}
		if len(numbers) > 0 {
			min, max, _ := NumberBounds(ds, rm)
			mean := stat.Mean(numbers, nil)
			p.Numbers = &NumberSummary{
				Min:    min,
				Max:    max,
				Mean:   mean,
				StdDev: stat.StdDev(numbers, nil),
			}
		}
	}

	return p
}

// tallyColumn counts rows per distinct non-empty value, sorted by value
func tallyColumn(ds *Dataset, column string) []ValueCount {
	counts := make(map[string]int)
	for _, row := range ds.Rows() {
		if v := row.Get(column); v != "" {
			counts[v]++
		}
	}

	out := make([]ValueCount, 0, len(counts))
	for _, v := range ds.DistinctValues(column) {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	return out
}
