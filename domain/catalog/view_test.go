package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveView_NormalRanksFilteredRows(t *testing.T) {
	ds, rm := newTestDataset()
	state := NewSelectionState()

	result := ResolveView(ds, rm, Criteria{Categories: []string{"Theory"}}, "theory", state)
	require.Equal(t, ViewNormal, result.Mode)
	assert.Equal(t, []string{"Research Paradigm", "Grounded Theory", "Construct Validity"}, names(rm, result.Rows))
	assert.Nil(t, result.DeepLink)
	assert.False(t, result.Insufficient)
}

func TestResolveView_DeepLinkBypassesFilters(t *testing.T) {
	ds, rm := newTestDataset()
	state := NewSelectionState()
	state.SetDeepLinkTarget("12")

	// Element 12 is Ethics, excluded by the active category filter, but
	// the deep link still resolves
	result := ResolveView(ds, rm, Criteria{Categories: []string{"Theory"}}, "", state)
	require.NotNil(t, result.DeepLink)
	assert.Equal(t, "Data Integrity", rm.Value(*result.DeepLink, RoleName))
	assert.Equal(t, 3, len(result.Rows))
}

func TestResolveView_UnmatchedDeepLinkIsNoOp(t *testing.T) {
	ds, rm := newTestDataset()
	state := NewSelectionState()
	state.SetDeepLinkTarget("999")

	result := ResolveView(ds, rm, Criteria{}, "", state)
	assert.Nil(t, result.DeepLink)
	assert.Equal(t, ds.Len(), len(result.Rows))
}

func TestResolveView_FavoritesIgnoresFiltersAndSearch(t *testing.T) {
	ds, rm := newTestDataset()
	state := NewSelectionState()
	state.ToggleFavorite("12")
	state.ToggleFavorite("1")
	state.SetViewMode(ViewFavorites)
	state.SetDeepLinkTarget("7")

	// Criteria and query would exclude both favorites; the favorites
	// view ignores them, and the deep link too
	result := ResolveView(ds, rm, Criteria{Categories: []string{"Method"}}, "zzz-no-match", state)
	require.Equal(t, ViewFavorites, result.Mode)
	assert.Equal(t, []string{"Research Paradigm", "Data Integrity"}, names(rm, result.Rows))
	assert.Nil(t, result.DeepLink)
}

func TestResolveView_FavoritesSortedByNumber(t *testing.T) {
	ds, rm := newTestDataset()
	state := NewSelectionState()
	for _, key := range []string{"12", "3", "1"} {
		state.ToggleFavorite(key)
	}
	state.SetViewMode(ViewFavorites)

	result := ResolveView(ds, rm, Criteria{}, "", state)
	assert.Equal(t, []string{"Research Paradigm", "Grounded Theory", "Data Integrity"}, names(rm, result.Rows))
}

func TestResolveView_FavoriteOfUnknownKeyResolvesToNothing(t *testing.T) {
	ds, rm := newTestDataset()
	state := NewSelectionState()
	state.ToggleFavorite("no-such-key")
	state.SetViewMode(ViewFavorites)

	result := ResolveView(ds, rm, Criteria{}, "", state)
	assert.Empty(t, result.Rows)
	assert.False(t, result.Insufficient)
}

func TestResolveView_CompareInsufficientSelection(t *testing.T) {
	ds, rm := newTestDataset()

	for _, keys := range [][]string{{}, {"12"}} {
		state := NewSelectionState()
		for _, k := range keys {
			state.ToggleCompare(k)
		}
		state.SetViewMode(ViewCompare)

		result := ResolveView(ds, rm, Criteria{}, "", state)
		require.Equal(t, ViewCompare, result.Mode)
		// Insufficient selection is a distinct signal, not "no rows match"
		assert.True(t, result.Insufficient, "with %d keys", len(keys))
		assert.Empty(t, result.Rows)
	}
}

func TestResolveView_CompareWithTwoSelections(t *testing.T) {
	ds, rm := newTestDataset()
	state := NewSelectionState()
	state.ToggleCompare("7")
	state.ToggleCompare("3")
	state.SetViewMode(ViewCompare)

	result := ResolveView(ds, rm, Criteria{}, "", state)
	require.False(t, result.Insufficient)
	assert.Equal(t, []string{"Grounded Theory", "Sampling Frame"}, names(rm, result.Rows))
}

func TestLookupRow(t *testing.T) {
	ds, rm := newTestDataset()

	tests := []struct {
		key      string
		wantName string
	}{
		{"12", "Data Integrity"},
		{"1", "Research Paradigm"},
		{"999", ""},
		{"not-a-number", ""},
	}
	for _, tt := range tests {
		row := LookupRow(ds, rm, tt.key)
		if tt.wantName == "" {
			assert.Nil(t, row, "key %q", tt.key)
			continue
		}
		require.NotNil(t, row, "key %q", tt.key)
		assert.Equal(t, tt.wantName, rm.Value(*row, RoleName))
	}
}

func TestLookupRow_ByNameWithoutNumberRole(t *testing.T) {
	ds, rm := newNameOnlyDataset()

	row := LookupRow(ds, rm, "Sampling Frame")
	require.NotNil(t, row)
	assert.Equal(t, "Sampling Frame", rm.Value(*row, RoleName))
	assert.Nil(t, LookupRow(ds, rm, "Unknown Element"))
}
