//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"strings"
	"testing"

	"github.com/llehouerou/lyrifi/internal/playback"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected %+v, want %+v", tt.style, current, tt.expected)
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		style  string
		format func(string) string
		want   string
	}{
		{"none", FormatTrack, "Teardrop"},
		{"none", FormatArtist, "Teardrop"},
		{"none", FormatAlbum, "Teardrop"},
		{"none", FormatPlaylist, "Teardrop"},
		{"unicode", FormatTrack, "🎵 Teardrop"},
		{"unicode", FormatArtist, "👤 Teardrop"},
		{"unicode", FormatAlbum, "💿 Teardrop"},
		{"unicode", FormatPlaylist, "📋 Teardrop"},
		{"nerd", FormatTrack, "\uf001 Teardrop"},
		{"nerd", FormatArtist, "\uf007 Teardrop"},
	}

	for _, tt := range tests {
		t.Run(tt.style+"/"+tt.want, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := tt.format("Teardrop"); got != tt.want {
				t.Errorf("format(%q) = %q, want %q", "Teardrop", got, tt.want)
			}
		})
	}
}

func TestPlayState(t *testing.T) {
	Init("none")

	if got := PlayState(true); got != ">" {
		t.Errorf("PlayState(true) = %q, want %q", got, ">")
	}
	if got := PlayState(false); got != "||" {
		t.Errorf("PlayState(false) = %q, want %q", got, "||")
	}
}

func TestModeIcons(t *testing.T) {
	tests := []struct {
		style     string
		shuffle   string
		repeatAll string
		repeatOne string
	}{
		{"none", "[S]", "[R]", "[1]"},
		{"unicode", "🔀", "🔁", "🔂"},
		{"nerd", "󰒟", "󰑖", "󰑘"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := Shuffle(); got != tt.shuffle {
				t.Errorf("Shuffle() = %q, want %q", got, tt.shuffle)
			}
			if got := Repeat(playback.RepeatAll); got != tt.repeatAll {
				t.Errorf("Repeat(all) = %q, want %q", got, tt.repeatAll)
			}
			if got := Repeat(playback.RepeatOne); got != tt.repeatOne {
				t.Errorf("Repeat(one) = %q, want %q", got, tt.repeatOne)
			}
			if got := Repeat(playback.RepeatNone); got != "" {
				t.Errorf("Repeat(none) = %q, want empty", got)
			}
		})
	}
}

func TestEntityIconsHaveTrailingSpace(t *testing.T) {
	for _, set := range []Icons{nerdIcons, unicodeIcons} {
		for _, icon := range []string{set.Track, set.Artist, set.Album, set.Playlist} {
			if !strings.HasSuffix(icon, " ") {
				t.Errorf("entity icon %q should end with a space", icon)
			}
		}
	}
}

func TestVideo(t *testing.T) {
	Init("none")
	if Video() != "[V]" {
		t.Errorf("Video() = %q, want [V]", Video())
	}
}
