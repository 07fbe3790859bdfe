package catalog

import (
	"github.com/montanaflynn/stats"
)

// NumberRange is an inclusive bound on the Number role
type NumberRange struct {
	Min float64
	Max float64
}

// Criteria describes one interaction's filter settings. A nil category or
// action slice means "no constraint"; a nil range means the same.
type Criteria struct {
	Categories []string
	Actions    []string
	Range      *NumberRange
}

// ApplyFilters returns the rows passing every criterion, preserving
// dataset order. Filters compose by logical AND; a criterion whose role
// is absent from the dataset is a no-op.
func ApplyFilters(ds *Dataset, rm RoleMap, c Criteria) []Row {
	categorySet := toSet(c.Categories)
	actionSet := toSet(c.Actions)

	// The range filter is decided once from the column binding, not per row
	rangeActive := c.Range != nil && rm.Numeric(RoleNumber)

	var out []Row
	for _, row := range ds.Rows() {
		if categorySet != nil && rm.Has(RoleCategory) {
			if !categorySet[rm.Value(row, RoleCategory)] {
				continue
			}
		}
		if actionSet != nil && rm.Has(RoleAction) {
			if !actionSet[rm.Value(row, RoleAction)] {
				continue
			}
		}
		if rangeActive {
			n, ok := rm.NumberOf(row)
			if !ok || n < c.Range.Min || n > c.Range.Max {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if values == nil {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// CategoryOptions returns the sorted distinct category values, or nil
// when the dataset carries no category column
func CategoryOptions(ds *Dataset, rm RoleMap) []string {
	if !rm.Has(RoleCategory) {
		return nil
	}
	return ds.DistinctValues(rm.Column(RoleCategory))
}

// ActionOptions returns the sorted distinct action values, or nil when
// the dataset carries no action column
func ActionOptions(ds *Dataset, rm RoleMap) []string {
	if !rm.Has(RoleAction) {
		return nil
	}
	return ds.DistinctValues(rm.Column(RoleAction))
}

// NumberBounds returns the dataset's [min,max] element numbers for the
// range control. ok is false when the Number role is absent or non-numeric.
func NumberBounds(ds *Dataset, rm RoleMap) (min, max float64, ok bool) {
	if !rm.Numeric(RoleNumber) {
		return 0, 0, false
	}

	var numbers []float64
	for _, row := range ds.Rows() {
		if n, parsed := rm.NumberOf(row); parsed {
			numbers = append(numbers, n)
		}
	}
	if len(numbers) == 0 {
		return 0, 0, false
	}

	min, err := stats.Min(numbers)
	if err != nil {
		return 0, 0, false
	}
	max, err = stats.Max(numbers)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}
