// Package catalog stores artists, albums, tracks, users and playlists in
// sqlite and answers the catalog search.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/lyrifi/internal/db"
)

var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned when a required field is missing or malformed.
	ErrInvalid = errors.New("invalid entity")
	// ErrDuplicate is returned when a unique field (mbid, email) is already taken.
	ErrDuplicate = errors.New("duplicate entity")
)

// Searcher answers catalog search queries.
type Searcher interface {
	Search(ctx context.Context, query string) (*Results, error)
}

type Catalog struct {
	db     *sql.DB
	ownsDB bool
	now    func() time.Time
}

// Verify Catalog implements Searcher at compile time.
var _ Searcher = (*Catalog)(nil)

// Open opens the sqlite database at path and prepares the catalog tables.
func Open(path string) (*Catalog, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	c, err := New(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	c.ownsDB = true
	return c, nil
}

// New prepares the catalog tables on an existing connection.
func New(conn *sql.DB) (*Catalog, error) {
	if err := initSchema(conn); err != nil {
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}
	return &Catalog{db: conn, now: time.Now}, nil
}

// Close closes the connection when it was opened by Open.
func (c *Catalog) Close() error {
	if c.ownsDB {
		return c.db.Close()
	}
	return nil
}

func (c *Catalog) DB() *sql.DB {
	return c.db
}

// stamp assigns an id when missing and refreshes the timestamps.
func (c *Catalog) stamp(id *string, createdAt, updatedAt *time.Time) {
	now := time.Unix(c.now().Unix(), 0).UTC()
	if *id == "" {
		*id = uuid.NewString()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// required checks name/value pairs in order.
func required(kind string, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w: %s %s is required", ErrInvalid, kind, pairs[i])
		}
	}
	return nil
}

// wrapWriteErr maps constraint failures to ErrDuplicate.
func wrapWriteErr(kind string, err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %s: %v", ErrDuplicate, kind, err)
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return fmt.Errorf("%w: %s references a missing entity", ErrInvalid, kind)
	}
	return fmt.Errorf("save %s: %w", kind, err)
}

func notFound(kind, id string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return err
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
