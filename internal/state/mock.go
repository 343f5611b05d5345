package state

import (
	"database/sql"
	"sync"

	"github.com/llehouerou/lyrifi/internal/playback"
)

// Mock is a test double for Manager. Saves are applied immediately.
type Mock struct {
	mu        sync.Mutex
	navState  *NavigationState
	players   map[string]playback.Persisted
	saveCount int
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{players: make(map[string]playback.Persisted)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveNavigation(state NavigationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.navState = &state
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.navState, nil
}

func (m *Mock) SavePlayer(namespace string, p playback.Persisted) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[namespace] = p
	m.saveCount++
}

func (m *Mock) SavePlayerNow(namespace string, p playback.Persisted) error {
	m.SavePlayer(namespace, p)
	return nil
}

func (m *Mock) GetPlayer(namespace string) (*playback.Persisted, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[namespace]
	if !ok {
		return nil, nil //nolint:nilnil // nothing stored
	}
	return &p, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPlayer(namespace string, p playback.Persisted) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[namespace] = p
}

func (m *Mock) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCount
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
