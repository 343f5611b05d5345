package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS state_schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			query TEXT,
			focus TEXT,
			selected_id TEXT
		);

		CREATE TABLE IF NOT EXISTS player_state (
			namespace TEXT PRIMARY KEY,
			volume REAL NOT NULL DEFAULT 1,
			shuffle INTEGER NOT NULL DEFAULT 0,
			repeat_mode TEXT NOT NULL DEFAULT 'none',
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS player_tracks (
			namespace TEXT NOT NULL REFERENCES player_state(namespace) ON DELETE CASCADE,
			slot TEXT NOT NULL CHECK (slot IN ('queue', 'current')),
			position INTEGER NOT NULL,
			track_id TEXT NOT NULL,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			album TEXT,
			cover_art TEXT,
			youtube_id TEXT,
			duration INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (namespace, slot, position)
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO state_schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
