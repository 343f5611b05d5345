package keymap

import (
	"slices"
	"testing"
)

func testBindings() []Binding {
	return []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "navigation"},
		{ActionReplace, []string{"r"}, "Replace queue", "results"},
		{ActionSelect, []string{"enter"}, "Play", "results"},
		{ActionClear, []string{"c", "r"}, "Clear queue", "queue"},
		{ActionSelect, []string{"enter"}, "Play track", "queue"},
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testBindings())

	tests := []struct {
		name     string
		key      string
		contexts []string
		want     Action
	}{
		{"global key", "q", []string{"global", "results"}, ActionQuit},
		{"second key of binding", "ctrl+c", []string{"global"}, ActionQuit},
		{"space", " ", []string{"playback"}, ActionPlayPause},
		{"results context", "r", []string{"global", "results"}, ActionReplace},
		{"queue context", "r", []string{"global", "queue"}, ActionClear},
		{"context order wins", "r", []string{"queue", "results"}, ActionClear},
		{"key outside given contexts", "k", []string{"global", "results"}, ""},
		{"all contexts", "k", nil, ActionMoveUp},
		{"all contexts in binding order", "r", nil, ActionReplace},
		{"unknown context", "q", []string{"popup"}, ""},
		{"unbound key", "x", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.key, tt.contexts...); got != tt.want {
				t.Errorf("Resolve(%q, %v) = %q, want %q", tt.key, tt.contexts, got, tt.want)
			}
		})
	}
}

func TestResolver_FirstBindingWinsInContext(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionNextTrack, []string{"n"}, "Next", "playback"},
		{ActionPrevTrack, []string{"n"}, "Previous", "playback"},
	})

	if got := r.Resolve("n", "playback"); got != ActionNextTrack {
		t.Errorf("Resolve(n) = %q, want %q", got, ActionNextTrack)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(testBindings())

	tests := []struct {
		action Action
		want   []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionSelect, []string{"enter"}},
		{ActionClear, []string{"c", "r"}},
		{ActionHelp, nil},
	}

	for _, tt := range tests {
		if got := r.KeysFor(tt.action); !slices.Equal(got, tt.want) {
			t.Errorf("KeysFor(%q) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestResolver_DefaultBindings(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key      string
		contexts []string
		want     Action
	}{
		{"enter", []string{"global", "playback", "navigation", "results"}, ActionSelect},
		{"enter", []string{"global", "playback", "navigation", "queue"}, ActionSelect},
		{"c", []string{"global", "playback", "navigation", "queue"}, ActionClear},
		{"c", []string{"global", "playback", "navigation", "results"}, ""},
		{"a", []string{"global", "playback", "navigation", "results"}, ActionAdd},
		{"shift+right", []string{"playback"}, ActionSeekForward},
		{"R", []string{"playback"}, ActionCycleRepeat},
		{"r", []string{"results"}, ActionReplace},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.key, tt.contexts...); got != tt.want {
			t.Errorf("Resolve(%q, %v) = %q, want %q", tt.key, tt.contexts, got, tt.want)
		}
	}
}
