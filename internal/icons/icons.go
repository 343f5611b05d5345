// Package icons provides the glyphs used for catalog entities and player modes.
package icons

import "github.com/llehouerou/lyrifi/internal/playback"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Track     string
	Artist    string
	Album     string
	Playlist  string
	Video     string
	Playing   string
	Paused    string
	Shuffle   string
	RepeatAll string
	RepeatOne string
}

var (
	nerdIcons = Icons{
		Track:     "\uf001 ", // nf-fa-music
		Artist:    "\uf007 ", // nf-fa-user
		Album:     "󰀥 ",      // nf-md-album
		Playlist:  "󰲸 ",      // nf-md-playlist_music
		Video:     "󰗃",       // nf-md-youtube
		Playing:   "\uf04b",  // nf-fa-play
		Paused:    "\uf04c",  // nf-fa-pause
		Shuffle:   "󰒟",       // nf-md-shuffle
		RepeatAll: "󰑖",       // nf-md-repeat
		RepeatOne: "󰑘",       // nf-md-repeat_once
	}

	unicodeIcons = Icons{
		Track:     "🎵 ",
		Artist:    "👤 ",
		Album:     "💿 ",
		Playlist:  "📋 ",
		Video:     "📺",
		Playing:   "▶",
		Paused:    "⏸",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
	}

	noneIcons = Icons{
		Video:     "[V]",
		Playing:   ">",
		Paused:    "||",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
	}

	current = noneIcons
)

var styles = map[Style]Icons{
	StyleNerd:    nerdIcons,
	StyleUnicode: unicodeIcons,
	StyleNone:    noneIcons,
}

// Init selects the icon set named by the config. Unknown names select none.
func Init(style string) {
	set, ok := styles[Style(style)]
	if !ok {
		set = noneIcons
	}
	current = set
}

func FormatTrack(title string) string { return current.Track + title }

func FormatArtist(name string) string { return current.Artist + name }

func FormatAlbum(name string) string { return current.Album + name }

func FormatPlaylist(name string) string { return current.Playlist + name }

// Video returns the indicator shown while the video is visible.
func Video() string {
	return current.Video
}

// PlayState returns the play or pause indicator.
func PlayState(playing bool) string {
	if playing {
		return current.Playing
	}
	return current.Paused
}

// Shuffle returns the shuffle indicator.
func Shuffle() string {
	return current.Shuffle
}

// Repeat returns the indicator for mode, or "" when nothing repeats.
func Repeat(mode playback.RepeatMode) string {
	switch mode {
	case playback.RepeatAll:
		return current.RepeatAll
	case playback.RepeatOne:
		return current.RepeatOne
	case playback.RepeatNone:
	}
	return ""
}
