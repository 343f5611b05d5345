package state

import (
	"database/sql"

	"github.com/llehouerou/lyrifi/internal/playback"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	SavePlayer(namespace string, p playback.Persisted)
	SavePlayerNow(namespace string, p playback.Persisted) error
	GetPlayer(namespace string) (*playback.Persisted, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
