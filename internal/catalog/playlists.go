package catalog

import (
	"context"
	"database/sql"
	"fmt"

	dbutil "github.com/llehouerou/lyrifi/internal/db"
)

const playlistColumns = `id, name, description, cover_url, created_by, privacy, created_at, updated_at`

// SavePlaylist inserts or updates p, assigning an id when empty.
// An empty privacy defaults to Private.
func (c *Catalog) SavePlaylist(ctx context.Context, p *Playlist) error {
	return dbutil.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		return c.savePlaylist(ctx, tx, p)
	})
}

func (c *Catalog) savePlaylist(ctx context.Context, ex execer, p *Playlist) error {
	if err := required("playlist", "name", p.Name, "createdBy", p.CreatedBy); err != nil {
		return err
	}
	switch p.Privacy {
	case "":
		p.Privacy = Private
	case Public, Private:
	default:
		return fmt.Errorf("%w: playlist privacy %q", ErrInvalid, p.Privacy)
	}
	if p.TrackIDs == nil {
		p.TrackIDs = []string{}
	}
	c.stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	_, err := ex.ExecContext(ctx, `
		INSERT INTO playlists (id, name, description, cover_url, created_by, privacy, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			cover_url = excluded.cover_url,
			created_by = excluded.created_by,
			privacy = excluded.privacy,
			updated_at = excluded.updated_at
	`, p.ID, p.Name, dbutil.NullString(p.Description), dbutil.NullString(p.CoverURL), p.CreatedBy,
		string(p.Privacy), p.CreatedAt.Unix(), p.UpdatedAt.Unix())
	if err != nil {
		return wrapWriteErr("playlist", err)
	}
	return wrapWriteErr("playlist", replaceRefs(ctx, ex,
		`DELETE FROM playlist_tracks WHERE playlist_id = ?`,
		`INSERT INTO playlist_tracks (playlist_id, position, track_id) VALUES (?, ?, ?)`,
		p.ID, p.TrackIDs))
}

// Playlist returns the playlist with the given id and its ordered track ids.
func (c *Catalog) Playlist(ctx context.Context, id string) (*Playlist, error) {
	row := c.db.QueryRowContext(ctx, `SELECT `+playlistColumns+` FROM playlists WHERE id = ?`, id)
	p, err := scanPlaylist(row)
	if err != nil {
		return nil, notFound("playlist", id, err)
	}
	if err := c.loadPlaylistTracks(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Catalog) loadPlaylistTracks(ctx context.Context, p *Playlist) error {
	ids, err := c.refs(ctx, `SELECT track_id FROM playlist_tracks WHERE playlist_id = ? ORDER BY position`, p.ID)
	if err != nil {
		return err
	}
	p.TrackIDs = ids
	return nil
}

func (c *Catalog) queryPlaylists(ctx context.Context, query string, args ...any) ([]Playlist, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	playlists := []Playlist{}
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		playlists = append(playlists, *p)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}

	// Track ids are read after the cursor is released.
	for i := range playlists {
		if err := c.loadPlaylistTracks(ctx, &playlists[i]); err != nil {
			return nil, err
		}
	}
	return playlists, nil
}

func scanPlaylist(s scanner) (*Playlist, error) {
	var p Playlist
	var description, coverURL sql.NullString
	var privacy string
	var createdAt, updatedAt int64

	if err := s.Scan(&p.ID, &p.Name, &description, &coverURL, &p.CreatedBy, &privacy,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Description = dbutil.NullStringValue(description)
	p.CoverURL = dbutil.NullStringValue(coverURL)
	p.Privacy = Privacy(privacy)
	p.CreatedAt = unixTime(createdAt)
	p.UpdatedAt = unixTime(updatedAt)
	return &p, nil
}
