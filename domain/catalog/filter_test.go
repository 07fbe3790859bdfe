package catalog

import (
	"testing"
)

func TestApplyFilters_NoConstraintReturnsAll(t *testing.T) {
	ds, rm := newTestDataset()

	got := ApplyFilters(ds, rm, Criteria{})
	if len(got) != ds.Len() {
		t.Fatalf("Expected all %d rows, got %d", ds.Len(), len(got))
	}
	for i, row := range got {
		if row.Index() != i {
			t.Errorf("Expected original order, row %d has index %d", i, row.Index())
		}
	}
}

func TestApplyFilters_AllObservedValuesIsIdentity(t *testing.T) {
	ds, rm := newTestDataset()
	min, max, ok := NumberBounds(ds, rm)
	if !ok {
		t.Fatalf("Expected numeric bounds")
	}

	criteria := Criteria{
		Categories: CategoryOptions(ds, rm),
		Actions:    ActionOptions(ds, rm),
		Range:      &NumberRange{Min: min, Max: max},
	}
	got := ApplyFilters(ds, rm, criteria)
	if len(got) != ds.Len() {
		t.Errorf("Expected full dataset with all-values criteria, got %d of %d rows", len(got), ds.Len())
	}
}

func TestApplyFilters_Category(t *testing.T) {
	ds, rm := newTestDataset()

	got := ApplyFilters(ds, rm, Criteria{Categories: []string{"Theory"}})
	want := []string{"Research Paradigm", "Grounded Theory", "Construct Validity"}
	if !equalStrings(names(rm, got), want) {
		t.Errorf("Expected %v in original relative order, got %v", want, names(rm, got))
	}
}

func TestApplyFilters_ComposeByAND(t *testing.T) {
	ds, rm := newTestDataset()

	got := ApplyFilters(ds, rm, Criteria{
		Categories: []string{"Theory"},
		Actions:    []string{"Verify"},
	})
	want := []string{"Construct Validity"}
	if !equalStrings(names(rm, got), want) {
		t.Errorf("Expected %v, got %v", want, names(rm, got))
	}
}

func TestApplyFilters_NumericRange(t *testing.T) {
	ds, rm := newTestDataset()

	tests := []struct {
		name  string
		r     NumberRange
		wantN int
	}{
		{"inclusive bounds", NumberRange{Min: 3, Max: 7}, 3},
		{"single element", NumberRange{Min: 12, Max: 12}, 1},
		{"empty window", NumberRange{Min: 8, Max: 11}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(ds, rm, Criteria{Range: &tt.r})
			if len(got) != tt.wantN {
				t.Errorf("Expected %d rows, got %d", tt.wantN, len(got))
			}
		})
	}
}

func TestApplyFilters_RangeSkippedWithoutNumericRole(t *testing.T) {
	ds, rm := newNameOnlyDataset()

	got := ApplyFilters(ds, rm, Criteria{Range: &NumberRange{Min: 100, Max: 200}})
	if len(got) != ds.Len() {
		t.Errorf("Expected range filter to be a no-op without a numeric Number role, got %d rows", len(got))
	}
}

func TestApplyFilters_AbsentRoleIsNoOp(t *testing.T) {
	ds, rm := newNameOnlyDataset()

	// No Action column in this dataset
	got := ApplyFilters(ds, rm, Criteria{Actions: []string{"Collect"}})
	if len(got) != ds.Len() {
		t.Errorf("Expected action filter to be a no-op for absent role, got %d rows", len(got))
	}
}

func TestApplyFilters_EmptySelectionMatchesNothing(t *testing.T) {
	ds, rm := newTestDataset()

	got := ApplyFilters(ds, rm, Criteria{Categories: []string{}})
	if len(got) != 0 {
		t.Errorf("Expected deselecting every category to match nothing, got %d rows", len(got))
	}
}

func TestNumberBounds(t *testing.T) {
	ds, rm := newTestDataset()
	min, max, ok := NumberBounds(ds, rm)
	if !ok || min != 1 || max != 12 {
		t.Errorf("Expected bounds [1,12], got [%v,%v] ok=%v", min, max, ok)
	}

	nameDS, nameRM := newNameOnlyDataset()
	if _, _, ok := NumberBounds(nameDS, nameRM); ok {
		t.Errorf("Expected no bounds without a numeric Number role")
	}
}
