package catalog

// ViewResult is what the presentation layer renders: the resolved mode,
// the rows in display order, the separately surfaced deep-link row (when
// one resolved), and the compare view's insufficient-selection signal.
type ViewResult struct {
	Mode ViewMode
	Rows []Row

	// DeepLink is the row the `el` parameter resolved to, surfaced ahead
	// of the filtered rows. Nil when no target is set or it didn't match.
	DeepLink *Row

	// Insufficient marks a compare view with fewer than two selections.
	// Distinct from an empty Rows result, which means nothing matched.
	Insufficient bool
}

// ResolveView decides which rows to present for the current interaction.
// Filters and search apply only in the normal view; favorites and compare
// are terminal row selections of their own.
func ResolveView(ds *Dataset, rm RoleMap, c Criteria, query string, state *SelectionState) ViewResult {
	switch state.ViewMode() {
	case ViewFavorites:
		return ViewResult{
			Mode: ViewFavorites,
			Rows: sortByNumber(rowsByKey(ds, rm, state.FavoriteKeys()), rm),
		}

	case ViewCompare:
		if state.CompareCount() < 2 {
			return ViewResult{Mode: ViewCompare, Insufficient: true}
		}
		return ViewResult{
			Mode: ViewCompare,
			Rows: sortByNumber(rowsByKey(ds, rm, state.CompareKeys()), rm),
		}

	default:
		result := ViewResult{
			Mode: ViewNormal,
			Rows: Search(ApplyFilters(ds, rm, c), rm, query),
		}
		// Deep links always resolve against the full dataset, bypassing
		// whatever filters are active. An unmatched target is a no-op.
		if target := state.DeepLinkTarget(); target != "" {
			result.DeepLink = LookupRow(ds, rm, target)
		}
		return result
	}
}

// LookupRow resolves a row key against the full dataset: exact Number
// match when the Number role is numeric, exact Name match otherwise.
// Returns nil when nothing matches.
func LookupRow(ds *Dataset, rm RoleMap, key string) *Row {
	if rm.Numeric(RoleNumber) {
		target, ok := parseNumber(key)
		if !ok {
			// Not a parseable number; fall through to name matching
			return lookupByName(ds, rm, key)
		}
		for _, row := range ds.Rows() {
			if n, parsed := rm.NumberOf(row); parsed && n == target {
				r := row
				return &r
			}
		}
		return nil
	}
	return lookupByName(ds, rm, key)
}

func lookupByName(ds *Dataset, rm RoleMap, key string) *Row {
	for _, row := range ds.Rows() {
		if rm.Value(row, RoleName) == key {
			r := row
			return &r
		}
	}
	return nil
}

// rowsByKey returns the dataset rows whose RowKey is in keys, in original
// dataset order. Keys that match no row are skipped.
func rowsByKey(ds *Dataset, rm RoleMap, keys []string) []Row {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	var out []Row
	for _, row := range ds.Rows() {
		if want[rm.RowKey(row)] {
			out = append(out, row)
		}
	}
	return out
}
