package catalog

import (
	"sort"
)

// ViewMode is the top-level display state controlling which rows are
// eligible for display
type ViewMode string

const (
	ViewNormal    ViewMode = "normal"
	ViewFavorites ViewMode = "favorites"
	ViewCompare   ViewMode = "compare"
)

// ParseViewMode maps the `view` query parameter onto a mode. Unrecognized
// values fall back to the normal view.
func ParseViewMode(s string) ViewMode {
	switch s {
	case string(ViewFavorites):
		return ViewFavorites
	case string(ViewCompare):
		return ViewCompare
	default:
		return ViewNormal
	}
}

// SelectionState is the only cross-interaction memory: session-scoped
// favorite and compare sets keyed by RowKey, the current view mode, and
// the deep-link target. One instance exists per session; it is never a
// process-wide global, so multi-session deployments stay isolated.
type SelectionState struct {
	favorites      map[string]bool
	compare        map[string]bool
	viewMode       ViewMode
	deepLinkTarget string
}

// NewSelectionState creates the empty state a session starts with
func NewSelectionState() *SelectionState {
	return &SelectionState{
		favorites: make(map[string]bool),
		compare:   make(map[string]bool),
		viewMode:  ViewNormal,
	}
}

// ToggleFavorite adds the key to the favorites set, or removes it when
// already present. Keys are not validated against the dataset; unknown
// keys simply resolve to nothing at render time.
func (s *SelectionState) ToggleFavorite(key string) {
	toggle(s.favorites, key)
}

// ToggleCompare adds the key to the compare set, or removes it when
// already present
func (s *SelectionState) ToggleCompare(key string) {
	toggle(s.compare, key)
}

func toggle(set map[string]bool, key string) {
	if set[key] {
		delete(set, key)
	} else {
		set[key] = true
	}
}

// SetViewMode switches the current view. The mode persists until
// explicitly changed again.
func (s *SelectionState) SetViewMode(mode ViewMode) {
	s.viewMode = mode
}

// SetDeepLinkTarget records the deep-link target key; "" clears it
func (s *SelectionState) SetDeepLinkTarget(key string) {
	s.deepLinkTarget = key
}

// IsFavorite reports whether the key is in the favorites set
func (s *SelectionState) IsFavorite(key string) bool {
	return s.favorites[key]
}

// InCompare reports whether the key is in the compare set
func (s *SelectionState) InCompare(key string) bool {
	return s.compare[key]
}

// FavoriteCount returns the size of the favorites set
func (s *SelectionState) FavoriteCount() int {
	return len(s.favorites)
}

// CompareCount returns the size of the compare set
func (s *SelectionState) CompareCount() int {
	return len(s.compare)
}

// ViewMode returns the current view mode
func (s *SelectionState) ViewMode() ViewMode {
	return s.viewMode
}

// DeepLinkTarget returns the current deep-link target, or ""
func (s *SelectionState) DeepLinkTarget() string {
	return s.deepLinkTarget
}

// FavoriteKeys returns the favorited keys in sorted order
func (s *SelectionState) FavoriteKeys() []string {
	return sortedKeys(s.favorites)
}

// CompareKeys returns the compare keys in sorted order
func (s *SelectionState) CompareKeys() []string {
	return sortedKeys(s.compare)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
