package keymap

import "github.com/samber/lo"

// Binding contexts, in the order the help panel lists them.
const (
	ContextGlobal     = "global"
	ContextPlayback   = "playback"
	ContextNavigation = "navigation"
	ContextResults    = "results"
	ContextQueue      = "queue"
)

// Binding maps keys to an action, with help text.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings. Keys are bubbletea key strings.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Switch between results and queue", ContextGlobal},
	{ActionSearch, []string{"/"}, "Search the catalog", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", ContextPlayback},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", ContextPlayback},
	{ActionSeekForward, []string{"shift+right"}, "Seek +10s", ContextPlayback},
	{ActionSeekBack, []string{"shift+left"}, "Seek -10s", ContextPlayback},
	{ActionToggleVideo, []string{"v"}, "Show/hide video", ContextPlayback},
	{ActionCycleRepeat, []string{"R"}, "Cycle repeat mode", ContextPlayback},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayback},

	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextNavigation},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextNavigation},
	{ActionJumpStart, []string{"g", "home"}, "First item", ContextNavigation},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", ContextNavigation},

	{ActionSelect, []string{"enter"}, "Play", ContextResults},
	{ActionAdd, []string{"a"}, "Add to queue", ContextResults},
	{ActionReplace, []string{"r"}, "Replace queue and play", ContextResults},

	{ActionSelect, []string{"enter"}, "Play track", ContextQueue},
	{ActionClear, []string{"c"}, "Clear queue", ContextQueue},
}

// ByContext returns the bindings of one context.
func ByContext(context string) []Binding {
	return lo.Filter(Bindings, func(b Binding, _ int) bool {
		return b.Context == context
	})
}
