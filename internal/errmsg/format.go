// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Search operations
	OpSearch Op = "search catalog"

	// Catalog operations
	OpCatalogOpen  Op = "open catalog"
	OpCatalogSeed  Op = "seed catalog"
	OpTrackLoad    Op = "load track"
	OpAlbumLoad    Op = "load album"
	OpArtistLoad   Op = "load artist"
	OpPlaylistLoad Op = "load playlist"

	// YouTube operations
	OpVideoResolve Op = "resolve video"

	// Player state operations
	OpPlayerLoad Op = "load player state"
	OpPlayerSave Op = "save player state"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpWidgetLoad    Op = "load video widget"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
