package widget

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateUnstarted, "Unstarted"},
		{StateEnded, "Ended"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateBuffering, "Buffering"},
		{StateCued, "Cued"},
		{State(4), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.expected)
		}
	}
}

func TestState_YouTubeValues(t *testing.T) {
	if StateEnded != 0 || StateUnstarted != -1 || StateCued != 5 {
		t.Error("state values must match the YouTube iframe API")
	}
}

func TestMockRuntime_InPlace(t *testing.T) {
	r := NewMockRuntime()
	h, err := r.Construct("player", "abc", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := h.(VideoLoader); ok {
		t.Error("plain handle should not implement VideoLoader")
	}

	r.InPlace = true
	h, err = r.Construct("player", "def", Options{})
	if err != nil {
		t.Fatal(err)
	}
	loader, ok := h.(VideoLoader)
	if !ok {
		t.Fatal("in-place handle should implement VideoLoader")
	}
	loader.LoadVideoByID("ghi")
	if got := r.Last().VideoID(); got != "ghi" {
		t.Errorf("VideoID() = %q, want ghi", got)
	}
}
