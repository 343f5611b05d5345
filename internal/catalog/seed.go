package catalog

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	dbutil "github.com/llehouerou/lyrifi/internal/db"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

// DefaultFixtures returns the fixture set shipped with the package.
func DefaultFixtures() fs.FS {
	sub, err := fs.Sub(embeddedFixtures, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

// SeedStats counts the entities inserted by Seed.
type SeedStats struct {
	Artists   int
	Albums    int
	Tracks    int
	Users     int
	Playlists int
}

// Total returns the number of inserted entities.
func (s SeedStats) Total() int {
	return s.Artists + s.Albums + s.Tracks + s.Users + s.Playlists
}

// Tables in deletion order (children first).
var seedTables = []string{
	"playlist_tracks",
	"playlists",
	"user_favorites",
	"users",
	"tracks",
	"albums",
	"artists",
}

// Seed replaces the whole catalog with the fixtures found in fsys
// (artists.json, albums.json, tracks.json, users.json, playlists.json).
// Missing files count as empty. Everything happens in one transaction.
func (c *Catalog) Seed(ctx context.Context, fsys fs.FS) (SeedStats, error) {
	var fx struct {
		artists   []Artist
		albums    []Album
		tracks    []Track
		users     []User
		playlists []Playlist
	}
	loads := []struct {
		name string
		dst  any
	}{
		{"artists.json", &fx.artists},
		{"albums.json", &fx.albums},
		{"tracks.json", &fx.tracks},
		{"users.json", &fx.users},
		{"playlists.json", &fx.playlists},
	}
	for _, l := range loads {
		if err := readFixture(fsys, l.name, l.dst); err != nil {
			return SeedStats{}, err
		}
	}

	var stats SeedStats
	err := dbutil.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		for _, table := range seedTables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for i := range fx.artists {
			if err := c.saveArtist(ctx, tx, &fx.artists[i]); err != nil {
				return fmt.Errorf("artist %q: %w", fx.artists[i].Name, err)
			}
			stats.Artists++
		}
		for i := range fx.albums {
			if err := c.saveAlbum(ctx, tx, &fx.albums[i]); err != nil {
				return fmt.Errorf("album %q: %w", fx.albums[i].Title, err)
			}
			stats.Albums++
		}
		for i := range fx.tracks {
			if err := c.saveTrack(ctx, tx, &fx.tracks[i]); err != nil {
				return fmt.Errorf("track %q: %w", fx.tracks[i].Title, err)
			}
			stats.Tracks++
		}
		for i := range fx.users {
			if err := c.saveUser(ctx, tx, &fx.users[i]); err != nil {
				return fmt.Errorf("user %q: %w", fx.users[i].Email, err)
			}
			stats.Users++
		}
		for i := range fx.playlists {
			if err := c.savePlaylist(ctx, tx, &fx.playlists[i]); err != nil {
				return fmt.Errorf("playlist %q: %w", fx.playlists[i].Name, err)
			}
			stats.Playlists++
		}
		return nil
	})
	if err != nil {
		return SeedStats{}, err
	}
	return stats, nil
}

func readFixture(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
