package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/lyrifi/internal/db"
	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playlist"
)

const (
	slotQueue   = "queue"
	slotCurrent = "current"
)

func getPlayer(db *sql.DB, namespace string) (*playback.Persisted, error) {
	var p playback.Persisted
	var repeatMode string
	row := db.QueryRow(`SELECT volume, shuffle, repeat_mode FROM player_state WHERE namespace = ?`, namespace)
	err := row.Scan(&p.Volume, &p.IsShuffle, &repeatMode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	p.RepeatMode = playback.ParseRepeatMode(repeatMode)

	rows, err := db.Query(`
		SELECT slot, track_id, title, artist, album, cover_art, youtube_id, duration
		FROM player_tracks
		WHERE namespace = ?
		ORDER BY slot, position
	`, namespace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p.Queue = []playlist.Track{}
	for rows.Next() {
		var slot string
		var t playlist.Track
		var album, coverArt, youtubeID sql.NullString

		err := rows.Scan(&slot, &t.ID, &t.Title, &t.Artist, &album, &coverArt, &youtubeID, &t.Duration)
		if err != nil {
			return nil, err
		}
		t.Album = dbutil.NullStringValue(album)
		t.CoverArt = dbutil.NullStringValue(coverArt)
		t.YouTubeID = dbutil.NullStringValue(youtubeID)

		if slot == slotCurrent {
			p.CurrentTrack = &t
		} else {
			p.Queue = append(p.Queue, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}

func savePlayer(sqlDB *sql.DB, namespace string, p playback.Persisted) error {
	return dbutil.WithTx(context.Background(), sqlDB, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO player_state (namespace, volume, shuffle, repeat_mode, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(namespace) DO UPDATE SET
				volume = excluded.volume,
				shuffle = excluded.shuffle,
				repeat_mode = excluded.repeat_mode,
				updated_at = excluded.updated_at
		`, namespace, p.Volume, p.IsShuffle, string(p.RepeatMode), time.Now().Unix())
		if err != nil {
			return err
		}

		// Clear existing tracks
		if _, err := tx.Exec(`DELETE FROM player_tracks WHERE namespace = ?`, namespace); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO player_tracks (namespace, slot, position, track_id, title, artist, album, cover_art, youtube_id, duration)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		insert := func(slot string, position int, t playlist.Track) error {
			_, err := stmt.Exec(namespace, slot, position, t.ID, t.Title, t.Artist,
				dbutil.NullString(t.Album), dbutil.NullString(t.CoverArt), dbutil.NullString(t.YouTubeID), t.Duration)
			return err
		}

		for i, t := range p.Queue {
			if err := insert(slotQueue, i, t); err != nil {
				return err
			}
		}
		if p.CurrentTrack != nil {
			if err := insert(slotCurrent, 0, *p.CurrentTrack); err != nil {
				return err
			}
		}
		return nil
	})
}

// PlayerStorage binds a state store to one namespace so it can be handed to
// playback.Store.Rehydrate and playback.Store.Autosave.
type PlayerStorage struct {
	state     Interface
	namespace string
}

// ForNamespace returns the player storage for namespace.
func ForNamespace(s Interface, namespace string) PlayerStorage {
	return PlayerStorage{state: s, namespace: namespace}
}

// LoadPlayer implements playback.Loader.
func (p PlayerStorage) LoadPlayer() (*playback.Persisted, error) {
	return p.state.GetPlayer(p.namespace)
}

// SavePlayer implements playback.Saver with a debounced write.
func (p PlayerStorage) SavePlayer(persisted playback.Persisted) error {
	p.state.SavePlayer(p.namespace, persisted)
	return nil
}

var (
	_ playback.Loader = PlayerStorage{}
	_ playback.Saver  = PlayerStorage{}
)
