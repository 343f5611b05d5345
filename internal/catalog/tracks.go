package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/samber/lo"

	dbutil "github.com/llehouerou/lyrifi/internal/db"
)

const trackSelect = `
	SELECT t.id, t.title, t.mbid, t.album_id, t.artist_id, t.duration, t.youtube_id, t.thumbnail_url,
	       t.created_at, t.updated_at, ar.name, al.title, al.cover_art_url
	FROM tracks t
	JOIN artists ar ON ar.id = t.artist_id
	JOIN albums al ON al.id = t.album_id
`

// SaveTrack inserts or updates t, assigning an id when empty.
func (c *Catalog) SaveTrack(ctx context.Context, t *Track) error {
	return c.saveTrack(ctx, c.db, t)
}

func (c *Catalog) saveTrack(ctx context.Context, ex execer, t *Track) error {
	if err := required("track", "title", t.Title, "mbid", t.MBID, "albumId", t.AlbumID, "artistId", t.ArtistID); err != nil {
		return err
	}
	if t.Duration < 0 {
		return fmt.Errorf("%w: track duration must not be negative", ErrInvalid)
	}
	c.stamp(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	_, err := ex.ExecContext(ctx, `
		INSERT INTO tracks (id, title, mbid, album_id, artist_id, duration, youtube_id, thumbnail_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			mbid = excluded.mbid,
			album_id = excluded.album_id,
			artist_id = excluded.artist_id,
			duration = excluded.duration,
			youtube_id = excluded.youtube_id,
			thumbnail_url = excluded.thumbnail_url,
			updated_at = excluded.updated_at
	`, t.ID, t.Title, t.MBID, t.AlbumID, t.ArtistID, t.Duration,
		dbutil.NullString(t.YouTubeID), dbutil.NullString(t.ThumbnailURL),
		t.CreatedAt.Unix(), t.UpdatedAt.Unix())
	return wrapWriteErr("track", err)
}

// SetTrackYouTubeID stores the video id found for a track.
func (c *Catalog) SetTrackYouTubeID(ctx context.Context, id, youtubeID string) error {
	res, err := c.db.ExecContext(ctx, `
		UPDATE tracks SET youtube_id = ?, updated_at = ? WHERE id = ?
	`, dbutil.NullString(youtubeID), c.now().Unix(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("track %s: %w", id, ErrNotFound)
	}
	return nil
}

// Track returns the track with the given id, artist and album populated.
func (c *Catalog) Track(ctx context.Context, id string) (*Track, error) {
	row := c.db.QueryRowContext(ctx, trackSelect+` WHERE t.id = ?`, id)
	t, err := scanTrack(row)
	if err != nil {
		return nil, notFound("track", id, err)
	}
	return t, nil
}

// TracksByAlbum returns the tracks of an album in insertion order.
func (c *Catalog) TracksByAlbum(ctx context.Context, albumID string) ([]Track, error) {
	return c.queryTracks(ctx, trackSelect+` WHERE t.album_id = ? ORDER BY t.rowid`, albumID)
}

// TracksByArtist returns the tracks of an artist sorted by title.
func (c *Catalog) TracksByArtist(ctx context.Context, artistID string) ([]Track, error) {
	return c.queryTracks(ctx, trackSelect+` WHERE t.artist_id = ? ORDER BY t.title, t.id`, artistID)
}

// TracksByIDs returns the tracks in the order of ids. Unknown ids are skipped;
// repeated ids are repeated.
func (c *Catalog) TracksByIDs(ctx context.Context, ids []string) ([]Track, error) {
	if len(ids) == 0 {
		return []Track{}, nil
	}
	unique := lo.Uniq(ids)
	found, err := c.queryTracks(ctx, trackSelect+` WHERE t.id IN (`+placeholders(len(unique))+`)`,
		lo.ToAnySlice(unique)...)
	if err != nil {
		return nil, err
	}

	byID := lo.KeyBy(found, func(t Track) string { return t.ID })
	tracks := make([]Track, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			tracks = append(tracks, t)
		}
	}
	return tracks, nil
}

func (c *Catalog) queryTracks(ctx context.Context, query string, args ...any) ([]Track, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := []Track{}
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, *t)
	}
	return tracks, rows.Err()
}

func scanTrack(s scanner) (*Track, error) {
	var t Track
	var youtubeID, thumbnailURL, albumCover sql.NullString
	var createdAt, updatedAt int64

	if err := s.Scan(&t.ID, &t.Title, &t.MBID, &t.AlbumID, &t.ArtistID, &t.Duration, &youtubeID, &thumbnailURL,
		&createdAt, &updatedAt, &t.ArtistName, &t.AlbumTitle, &albumCover); err != nil {
		return nil, err
	}
	t.YouTubeID = dbutil.NullStringValue(youtubeID)
	t.ThumbnailURL = dbutil.NullStringValue(thumbnailURL)
	t.CreatedAt = unixTime(createdAt)
	t.UpdatedAt = unixTime(updatedAt)

	t.CoverURL = t.ThumbnailURL
	if t.CoverURL == "" {
		t.CoverURL = dbutil.NullStringValue(albumCover)
	}
	return &t, nil
}
