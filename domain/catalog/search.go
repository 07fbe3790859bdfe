package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Score weights. Only the relative order matters: an exact element-number
// hit outranks an exact symbol, which outranks an exact name, which
// outranks a plain substring match.
const (
	scoreExactNumber = 100
	scoreExactSymbol = 80
	scoreExactName   = 60
)

// Search applies the free-text query to rows and returns the survivors
// ranked by relevance. An empty (or all-whitespace) query is the
// identity. A row survives only if some column value contains the query
// case-insensitively; ranking never resurrects a non-match.
func Search(rows []Row, rm RoleMap, query string) []Row {
	query = strings.TrimSpace(query)
	if query == "" {
		return rows
	}
	needle := strings.ToLower(query)

	queryNumber, queryIsInt := 0, false
	if n, err := strconv.Atoi(needle); err == nil {
		queryNumber, queryIsInt = n, true
	}

	type scored struct {
		row   Row
		score int
	}
	var survivors []scored
	for _, row := range rows {
		if !row.ContainsFold(needle) {
			continue
		}

		score := 0
		if queryIsInt {
			if n, ok := rm.NumberOf(row); ok && n == float64(queryNumber) {
				score += scoreExactNumber
			}
		}
		if rm.Has(RoleSymbol) && strings.ToLower(rm.Value(row, RoleSymbol)) == needle {
			score += scoreExactSymbol
		}
		if strings.ToLower(rm.Value(row, RoleName)) == needle {
			score += scoreExactName
		}
		survivors = append(survivors, scored{row: row, score: score})
	}

	numericTieBreak := rm.Numeric(RoleNumber)
	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].score != survivors[j].score {
			return survivors[i].score > survivors[j].score
		}
		if numericTieBreak {
			return sortNumber(rm, survivors[i].row) < sortNumber(rm, survivors[j].row)
		}
		return false
	})

	out := make([]Row, len(survivors))
	for i, s := range survivors {
		out[i] = s.row
	}
	return out
}

// sortNumber returns the row's element number for ordering; rows with an
// empty Number cell sort last
func sortNumber(rm RoleMap, row Row) float64 {
	if n, ok := rm.NumberOf(row); ok {
		return n
	}
	return math.Inf(1)
}

// sortByNumber orders rows by element number ascending when the Number
// role is numeric, otherwise leaves original order intact
func sortByNumber(rows []Row, rm RoleMap) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	if !rm.Numeric(RoleNumber) {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortNumber(rm, out[i]) < sortNumber(rm, out[j])
	})
	return out
}
