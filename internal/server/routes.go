package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/youtube"
)

// RegisterRoutes wires the catalog routes to the router.
func (s *Server) RegisterRoutes(router chi.Router) {
	router.Method(http.MethodGet, "/search", s.wrap(s.search))
	router.Method(http.MethodGet, "/tracks/{id}", s.wrap(s.getTrack))
	router.Method(http.MethodGet, "/tracks/{id}/youtube", s.wrap(s.getTrackVideo))
	router.Method(http.MethodGet, "/albums/{id}", s.wrap(s.getAlbum))
	router.Method(http.MethodGet, "/artists/{id}", s.wrap(s.getArtist))
	router.Method(http.MethodGet, "/playlists/{id}", s.wrap(s.getPlaylist))
	router.Method(http.MethodGet, "/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
}

// search handles GET /search?q=
func (s *Server) search(w http.ResponseWriter, r *http.Request) error {
	results, err := s.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, results)
	return nil
}

// getTrack handles GET /tracks/{id}
func (s *Server) getTrack(w http.ResponseWriter, r *http.Request) error {
	track, err := s.catalog.Track(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, track)
	return nil
}

type videoResponse struct {
	YouTubeID string `json:"youtube_id"`
	URL       string `json:"url"`
}

// getTrackVideo handles GET /tracks/{id}/youtube
func (s *Server) getTrackVideo(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	track, err := s.catalog.Track(r.Context(), id)
	if err != nil {
		return err
	}

	videoID := track.YouTubeID
	if videoID == "" && s.resolver != nil {
		if videoID, err = s.resolver.Resolve(r.Context(), id); err != nil {
			return err
		}
	}
	writeJSON(w, http.StatusOK, videoResponse{
		YouTubeID: youtube.VideoID(videoID),
		URL:       youtube.PlaybackURL(videoID),
	})
	return nil
}

type albumResponse struct {
	Album  *catalog.Album  `json:"album"`
	Tracks []catalog.Track `json:"tracks"`
}

// getAlbum handles GET /albums/{id}
func (s *Server) getAlbum(w http.ResponseWriter, r *http.Request) error {
	album, err := s.catalog.Album(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	tracks, err := s.catalog.TracksByAlbum(r.Context(), album.ID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, albumResponse{Album: album, Tracks: tracks})
	return nil
}

type artistResponse struct {
	Artist *catalog.Artist `json:"artist"`
	Albums []catalog.Album `json:"albums"`
	Tracks []catalog.Track `json:"tracks"`
}

// getArtist handles GET /artists/{id}
func (s *Server) getArtist(w http.ResponseWriter, r *http.Request) error {
	artist, err := s.catalog.Artist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	albums, err := s.catalog.AlbumsByArtist(r.Context(), artist.ID)
	if err != nil {
		return err
	}
	tracks, err := s.catalog.TracksByArtist(r.Context(), artist.ID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, artistResponse{Artist: artist, Albums: albums, Tracks: tracks})
	return nil
}

type playlistResponse struct {
	Playlist *catalog.Playlist `json:"playlist"`
	Tracks   []catalog.Track   `json:"tracks"`
}

// getPlaylist handles GET /playlists/{id}. Private playlists are not served.
func (s *Server) getPlaylist(w http.ResponseWriter, r *http.Request) error {
	playlist, err := s.catalog.Playlist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	if playlist.Privacy != catalog.Public {
		return catalog.ErrNotFound
	}
	tracks, err := s.catalog.TracksByIDs(r.Context(), playlist.TrackIDs)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, playlistResponse{Playlist: playlist, Tracks: tracks})
	return nil
}
