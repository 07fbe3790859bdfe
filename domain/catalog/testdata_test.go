package catalog

// newTestDataset builds the small element sheet the core tests share.
// Note row 7's definition contains the substring "12", which the search
// ranking tests rely on.
func newTestDataset() (*Dataset, RoleMap) {
	columns := []string{"Element No", "Element Name", "Symbol", "Category", "Action", "Definition"}
	records := []map[string]string{
		{
			"Element No": "1", "Element Name": "Research Paradigm", "Symbol": "RP",
			"Category": "Theory", "Action": "Define",
			"Definition": "The worldview guiding a study.",
		},
		{
			"Element No": "7", "Element Name": "Sampling Frame", "Symbol": "SF",
			"Category": "Method", "Action": "Collect",
			"Definition": "A list of all 12 units eligible for sampling.",
		},
		{
			"Element No": "12", "Element Name": "Data Integrity", "Symbol": "DI",
			"Category": "Ethics", "Action": "Verify",
			"Definition": "Keeping records accurate and complete.",
		},
		{
			"Element No": "3", "Element Name": "Grounded Theory", "Symbol": "GT",
			"Category": "Theory", "Action": "Define",
			"Definition": "Theory built inductively from data.",
		},
		{
			"Element No": "5", "Element Name": "Construct Validity", "Symbol": "CV",
			"Category": "Theory", "Action": "Verify",
			"Definition": "Whether a measure captures its construct.",
		},
	}

	ds := NewDataset(columns, records)
	return ds, ResolveRoles(ds)
}

// newNameOnlyDataset has no numeric identifier column, so names carry
// row identity
func newNameOnlyDataset() (*Dataset, RoleMap) {
	columns := []string{"Element Name", "Category"}
	records := []map[string]string{
		{"Element Name": "Research Paradigm", "Category": "Theory"},
		{"Element Name": "Sampling Frame", "Category": "Method"},
		{"Element Name": "Data Integrity", "Category": "Ethics"},
	}

	ds := NewDataset(columns, records)
	return ds, ResolveRoles(ds)
}

func names(rm RoleMap, rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, rm.Value(r, RoleName))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
