package state

import (
	"database/sql"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/db"
	"github.com/llehouerou/lyrifi/internal/playback"
)

const saveDebounce = 500 * time.Millisecond

type Manager struct {
	db     *sql.DB
	ownsDB bool

	saveMu        sync.Mutex
	saveTimer     *time.Timer
	pendingNav    *NavigationState
	pendingPlayer map[string]playback.Persisted
}

// Open opens the sqlite database at path and prepares the state tables.
func Open(path string) (*Manager, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	m, err := New(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	m.ownsDB = true
	return m, nil
}

// New prepares the state tables on an existing connection. Close does not
// close a connection passed to New.
func New(conn *sql.DB) (*Manager, error) {
	if err := initSchema(conn); err != nil {
		return nil, err
	}
	return &Manager{
		db:            conn,
		pendingPlayer: make(map[string]playback.Persisted),
	}, nil
}

// Close flushes pending saves.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	// Flush pending state
	m.flush()

	if m.ownsDB {
		return m.db.Close()
	}
	return nil
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

// SaveNavigation stores the UI position after a short debounce.
func (m *Manager) SaveNavigation(state NavigationState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pendingNav = &state
	m.scheduleLocked()
}

// GetPlayer returns the persisted player fields for namespace, or nil.
func (m *Manager) GetPlayer(namespace string) (*playback.Persisted, error) {
	return getPlayer(m.db, namespace)
}

// SavePlayer stores the player fields for namespace after a short debounce.
// The latest value per namespace wins.
func (m *Manager) SavePlayer(namespace string, p playback.Persisted) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pendingPlayer[namespace] = p
	m.scheduleLocked()
}

// SavePlayerNow stores the player fields immediately, dropping any pending
// debounced save for the same namespace.
func (m *Manager) SavePlayerNow(namespace string, p playback.Persisted) error {
	m.saveMu.Lock()
	delete(m.pendingPlayer, namespace)
	m.saveMu.Unlock()

	return savePlayer(m.db, namespace, p)
}

func (m *Manager) scheduleLocked() {
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, m.flush)
}

func (m *Manager) flush() {
	m.saveMu.Lock()
	nav := m.pendingNav
	players := m.pendingPlayer
	m.pendingNav = nil
	m.pendingPlayer = make(map[string]playback.Persisted)
	m.saveMu.Unlock()

	if nav != nil {
		if err := saveNavigation(m.db, *nav); err != nil {
			logrus.WithError(err).Warn("state: save navigation")
		}
	}
	for namespace, p := range players {
		if err := savePlayer(m.db, namespace, p); err != nil {
			logrus.WithError(err).WithField("namespace", namespace).Warn("state: save player")
		}
	}
}
