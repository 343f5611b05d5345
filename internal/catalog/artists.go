package catalog

import (
	"context"
	"database/sql"
	"encoding/json"

	dbutil "github.com/llehouerou/lyrifi/internal/db"
)

const artistColumns = `id, name, mbid, bio, image_url, genres, created_at, updated_at`

// SaveArtist inserts or updates a, assigning an id when empty.
func (c *Catalog) SaveArtist(ctx context.Context, a *Artist) error {
	return c.saveArtist(ctx, c.db, a)
}

func (c *Catalog) saveArtist(ctx context.Context, ex execer, a *Artist) error {
	if err := required("artist", "name", a.Name, "mbid", a.MBID); err != nil {
		return err
	}
	if a.Genres == nil {
		a.Genres = []string{}
	}
	genres, err := json.Marshal(a.Genres)
	if err != nil {
		return err
	}
	c.stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	_, err = ex.ExecContext(ctx, `
		INSERT INTO artists (id, name, mbid, bio, image_url, genres, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			mbid = excluded.mbid,
			bio = excluded.bio,
			image_url = excluded.image_url,
			genres = excluded.genres,
			updated_at = excluded.updated_at
	`, a.ID, a.Name, a.MBID, dbutil.NullString(a.Bio), dbutil.NullString(a.ImageURL), string(genres),
		a.CreatedAt.Unix(), a.UpdatedAt.Unix())
	return wrapWriteErr("artist", err)
}

// Artist returns the artist with the given id.
func (c *Catalog) Artist(ctx context.Context, id string) (*Artist, error) {
	row := c.db.QueryRowContext(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = ?`, id)
	a, err := scanArtist(row)
	if err != nil {
		return nil, notFound("artist", id, err)
	}
	return a, nil
}

func (c *Catalog) queryArtists(ctx context.Context, query string, args ...any) ([]Artist, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := []Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, *a)
	}
	return artists, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

func scanArtist(s scanner) (*Artist, error) {
	var a Artist
	var bio, imageURL sql.NullString
	var genres string
	var createdAt, updatedAt int64

	if err := s.Scan(&a.ID, &a.Name, &a.MBID, &bio, &imageURL, &genres, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	a.Bio = dbutil.NullStringValue(bio)
	a.ImageURL = dbutil.NullStringValue(imageURL)
	if err := json.Unmarshal([]byte(genres), &a.Genres); err != nil || a.Genres == nil {
		a.Genres = []string{}
	}
	a.CreatedAt = unixTime(createdAt)
	a.UpdatedAt = unixTime(updatedAt)
	return &a, nil
}
