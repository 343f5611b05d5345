// Package server exposes the catalog over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/catalog"
)

const shutdownTimeout = 5 * time.Second

// Catalog is the read side of the catalog the routes serve.
type Catalog interface {
	catalog.Searcher
	Track(ctx context.Context, id string) (*catalog.Track, error)
	Album(ctx context.Context, id string) (*catalog.Album, error)
	Artist(ctx context.Context, id string) (*catalog.Artist, error)
	Playlist(ctx context.Context, id string) (*catalog.Playlist, error)
	AlbumsByArtist(ctx context.Context, artistID string) ([]catalog.Album, error)
	TracksByAlbum(ctx context.Context, albumID string) ([]catalog.Track, error)
	TracksByArtist(ctx context.Context, artistID string) ([]catalog.Track, error)
	TracksByIDs(ctx context.Context, ids []string) ([]catalog.Track, error)
}

var _ Catalog = (*catalog.Catalog)(nil)

// Resolver finds the YouTube id of a track.
type Resolver interface {
	Resolve(ctx context.Context, trackID string) (string, error)
}

// Option configures a Server.
type Option func(*Server)

// WithSearcher answers /search with s instead of the catalog (e.g. a cache).
func WithSearcher(s catalog.Searcher) Option {
	return func(srv *Server) {
		srv.searcher = s
	}
}

// WithResolver looks up missing YouTube ids through r.
func WithResolver(r Resolver) Option {
	return func(srv *Server) {
		srv.resolver = r
	}
}

type Server struct {
	catalog  Catalog
	searcher catalog.Searcher
	resolver Resolver
	log      *logrus.Entry
}

func New(cat Catalog, opts ...Option) *Server {
	s := &Server{
		catalog:  cat,
		searcher: cat,
		log:      logrus.WithField("op", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router with every route registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	s.RegisterRoutes(r)
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.WithField("addr", addr).Info("catalog server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
			"request":  middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}

// handler is an HTTP handler that reports failures as errors.
type handler func(w http.ResponseWriter, r *http.Request) error

func (s *Server) wrap(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		if errors.Is(err, catalog.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "Not Found"})
			return
		}
		s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Server Error"})
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
