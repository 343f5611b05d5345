package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/lyrifi/internal/db"
)

// NavigationState is the TUI position restored on the next launch.
type NavigationState struct {
	Query      string // last search query
	Focus      string // "search", "results", or "queue"
	SelectedID string // id of the selected result or queue track
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`SELECT query, focus, selected_id FROM navigation_state WHERE id = 1`)

	var query, focus, selectedID sql.NullString
	err := row.Scan(&query, &focus, &selectedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &NavigationState{
		Query:      dbutil.NullStringValue(query),
		Focus:      dbutil.NullStringValue(focus),
		SelectedID: dbutil.NullStringValue(selectedID),
	}, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, query, focus, selected_id)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			query = excluded.query,
			focus = excluded.focus,
			selected_id = excluded.selected_id
	`, dbutil.NullString(state.Query), dbutil.NullString(state.Focus), dbutil.NullString(state.SelectedID))

	return err
}
