// Package session isolates one SelectionState per browser session so the
// shared dataset can serve many users without shared mutable state.
package session

import (
	"sync"

	"elemdex/domain/catalog"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token
const CookieName = "elemdex_session"

// Manager maps session tokens to their SelectionState. The dataset and
// role map are read-only and shared; this is the only mutable store.
type Manager struct {
	mu     sync.RWMutex
	states map[string]*catalog.SelectionState
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		states: make(map[string]*catalog.SelectionState),
	}
}

// NewToken mints a fresh session token
func (m *Manager) NewToken() string {
	return uuid.NewString()
}

// Get returns the SelectionState for a token, creating an empty one for
// first-time sessions. Within a session, interactions are sequential, so
// the returned state needs no further locking.
func (m *Manager) Get(token string) *catalog.SelectionState {
	m.mu.RLock()
	state, ok := m.states[token]
	m.mu.RUnlock()
	if ok {
		return state
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.states[token]; ok {
		return state
	}
	state = catalog.NewSelectionState()
	m.states[token] = state
	return state
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states)
}
