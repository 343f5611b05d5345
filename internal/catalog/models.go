package catalog

import "time"

// Privacy controls who can see a playlist.
type Privacy string

const (
	Public  Privacy = "Public"
	Private Privacy = "Private"
)

type Artist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MBID      string    `json:"mbid"`
	Bio       string    `json:"bio,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Genres    []string  `json:"genres"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Album struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	MBID        string     `json:"mbid"`
	ArtistID    string     `json:"artistId"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	CoverArtURL string     `json:"coverArtUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Populated on reads
	ArtistName string `json:"artistName,omitempty"`
}

type Track struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MBID         string    `json:"mbid"`
	AlbumID      string    `json:"albumId"`
	ArtistID     string    `json:"artistId"`
	Duration     int       `json:"duration"` // seconds
	YouTubeID    string    `json:"youtube_id,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Populated on reads
	ArtistName string `json:"artistName,omitempty"`
	AlbumTitle string `json:"albumTitle,omitempty"`
	CoverURL   string `json:"coverUrl,omitempty"` // thumbnail, else album cover
}

type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	TrackIDs    []string  `json:"tracks"`
	Privacy     Privacy   `json:"privacy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// User exists only as a playlist owner; there is no credential handling.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Favorites []string  `json:"favorites"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Results groups the four search result lists.
type Results struct {
	Tracks    []Track    `json:"tracks"`
	Artists   []Artist   `json:"artists"`
	Albums    []Album    `json:"albums"`
	Playlists []Playlist `json:"playlists"`
}

// EmptyResults returns results with non-nil empty lists.
func EmptyResults() *Results {
	return &Results{
		Tracks:    []Track{},
		Artists:   []Artist{},
		Albums:    []Album{},
		Playlists: []Playlist{},
	}
}

// IsEmpty reports whether every list is empty.
func (r *Results) IsEmpty() bool {
	return len(r.Tracks) == 0 && len(r.Artists) == 0 && len(r.Albums) == 0 && len(r.Playlists) == 0
}
