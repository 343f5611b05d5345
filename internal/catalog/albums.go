package catalog

import (
	"context"
	"database/sql"

	dbutil "github.com/llehouerou/lyrifi/internal/db"
)

const albumSelect = `
	SELECT al.id, al.title, al.mbid, al.artist_id, al.release_date, al.cover_art_url,
	       al.created_at, al.updated_at, ar.name
	FROM albums al
	JOIN artists ar ON ar.id = al.artist_id
`

// SaveAlbum inserts or updates a, assigning an id when empty.
func (c *Catalog) SaveAlbum(ctx context.Context, a *Album) error {
	return c.saveAlbum(ctx, c.db, a)
}

func (c *Catalog) saveAlbum(ctx context.Context, ex execer, a *Album) error {
	if err := required("album", "title", a.Title, "mbid", a.MBID, "artistId", a.ArtistID); err != nil {
		return err
	}
	c.stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	var releaseDate sql.NullInt64
	if a.ReleaseDate != nil {
		releaseDate = sql.NullInt64{Int64: a.ReleaseDate.Unix(), Valid: true}
	}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO albums (id, title, mbid, artist_id, release_date, cover_art_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			mbid = excluded.mbid,
			artist_id = excluded.artist_id,
			release_date = excluded.release_date,
			cover_art_url = excluded.cover_art_url,
			updated_at = excluded.updated_at
	`, a.ID, a.Title, a.MBID, a.ArtistID, releaseDate, dbutil.NullString(a.CoverArtURL),
		a.CreatedAt.Unix(), a.UpdatedAt.Unix())
	return wrapWriteErr("album", err)
}

// Album returns the album with the given id, artist populated.
func (c *Catalog) Album(ctx context.Context, id string) (*Album, error) {
	row := c.db.QueryRowContext(ctx, albumSelect+` WHERE al.id = ?`, id)
	a, err := scanAlbum(row)
	if err != nil {
		return nil, notFound("album", id, err)
	}
	return a, nil
}

// AlbumsByArtist returns the albums of an artist, oldest release first.
func (c *Catalog) AlbumsByArtist(ctx context.Context, artistID string) ([]Album, error) {
	return c.queryAlbums(ctx, albumSelect+`
		WHERE al.artist_id = ?
		ORDER BY al.release_date IS NULL, al.release_date, al.title
	`, artistID)
}

func (c *Catalog) queryAlbums(ctx context.Context, query string, args ...any) ([]Album, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	albums := []Album{}
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		albums = append(albums, *a)
	}
	return albums, rows.Err()
}

func scanAlbum(s scanner) (*Album, error) {
	var a Album
	var releaseDate sql.NullInt64
	var coverArtURL sql.NullString
	var createdAt, updatedAt int64

	if err := s.Scan(&a.ID, &a.Title, &a.MBID, &a.ArtistID, &releaseDate, &coverArtURL,
		&createdAt, &updatedAt, &a.ArtistName); err != nil {
		return nil, err
	}
	if releaseDate.Valid {
		t := unixTime(dbutil.NullInt64Value(releaseDate))
		a.ReleaseDate = &t
	}
	a.CoverArtURL = dbutil.NullStringValue(coverArtURL)
	a.CreatedAt = unixTime(createdAt)
	a.UpdatedAt = unixTime(updatedAt)
	return &a, nil
}
