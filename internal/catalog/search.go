package catalog

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/llehouerou/lyrifi/internal/db"
)

// searchLimit caps each result list.
const searchLimit = 20

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns q into a substring pattern matched literally against
// case-folded columns.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(db.Fold(q)) + "%"
}

// folded wraps column in the case-folding SQL function.
func folded(column string) string {
	return db.FoldFunc + "(" + column + ")"
}

// Search matches artists by name, tracks and albums by title or matched artist,
// and public playlists by name. A blank query returns empty lists without
// touching the database.
func (c *Catalog) Search(ctx context.Context, query string) (*Results, error) {
	if strings.TrimSpace(query) == "" {
		return EmptyResults(), nil
	}
	pattern := likePattern(query)

	artists, err := c.queryArtists(ctx, `SELECT `+artistColumns+` FROM artists
		WHERE `+folded("name")+` LIKE ? ESCAPE '\'
		ORDER BY name, id
		LIMIT ?`, pattern, searchLimit)
	if err != nil {
		return nil, err
	}

	artistIDs := lo.Map(artists, func(a Artist, _ int) string { return a.ID })
	artistFilter, filterArgs := inArtists(artistIDs)

	trackArgs := append([]any{pattern}, filterArgs...)
	tracks, err := c.queryTracks(ctx, trackSelect+`
		WHERE `+folded("t.title")+` LIKE ? ESCAPE '\'`+strings.ReplaceAll(artistFilter, "%s", "t.artist_id")+`
		ORDER BY t.title, t.id
		LIMIT ?`, append(trackArgs, searchLimit)...)
	if err != nil {
		return nil, err
	}

	albumArgs := append([]any{pattern}, filterArgs...)
	albums, err := c.queryAlbums(ctx, albumSelect+`
		WHERE `+folded("al.title")+` LIKE ? ESCAPE '\'`+strings.ReplaceAll(artistFilter, "%s", "al.artist_id")+`
		ORDER BY al.title, al.id
		LIMIT ?`, append(albumArgs, searchLimit)...)
	if err != nil {
		return nil, err
	}

	playlists, err := c.queryPlaylists(ctx, `SELECT `+playlistColumns+` FROM playlists
		WHERE `+folded("name")+` LIKE ? ESCAPE '\' AND privacy = ?
		ORDER BY name, id
		LIMIT ?`, pattern, string(Public), searchLimit)
	if err != nil {
		return nil, err
	}

	return &Results{
		Tracks:    tracks,
		Artists:   artists,
		Albums:    albums,
		Playlists: playlists,
	}, nil
}

// inArtists returns an " OR %s IN (...)" clause for the matched artist ids,
// or nothing when no artist matched.
func inArtists(ids []string) (string, []any) {
	if len(ids) == 0 {
		return "", nil
	}
	return ` OR %s IN (` + placeholders(len(ids)) + `)`, lo.ToAnySlice(ids)
}
