package playerview

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playlist"
	"github.com/llehouerou/lyrifi/internal/widget"
)

var (
	trackA = playlist.Track{ID: "a", Title: "Teardrop", Artist: "Massive Attack", YouTubeID: "https://www.youtube.com/watch?v=u7K72X4eo_s&t=10", Duration: 330}
	trackB = playlist.Track{ID: "b", Title: "Angel", Artist: "Massive Attack", YouTubeID: "hbe3CQamF8k", Duration: 379}
	trackC = playlist.Track{ID: "c", Title: "Glory Box", Artist: "Portishead", YouTubeID: "4qQyUi4zfDs", Duration: 306}
	silent = playlist.Track{ID: "s", Title: "No Video", Artist: "Nobody", Duration: 100}
)

// mount creates a mounted controller; it is unmounted when fn returns.
func mount(t *testing.T, store *playback.Store, rt *widget.MockRuntime, loader playback.Loader) *Controller {
	t.Helper()
	c := New(store, rt)
	c.Mount(context.Background(), loader)
	synctest.Wait()
	return c
}

// bindReady plays track and fires the widget ready callback.
func bindReady(t *testing.T, store *playback.Store, rt *widget.MockRuntime, track playlist.Track) *widget.Mock {
	t.Helper()
	store.PlayTrack(track)
	synctest.Wait()
	h := rt.Last()
	require.NotNil(t, h, "no widget constructed")
	h.FireReady()
	synctest.Wait()
	return h
}

func TestMount_LoadsRuntime(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rt := widget.NewMockRuntime()
		c := mount(t, playback.New(), rt, nil)
		defer c.Unmount()

		assert.Equal(t, Ready, c.Binding())
		assert.Equal(t, 1, rt.LoadCalls())
		assert.Nil(t, rt.Last(), "no widget without a current track")
	})
}

func TestMount_Idempotent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rt := widget.NewMockRuntime()
		c := mount(t, playback.New(), rt, nil)
		defer c.Unmount()

		c.Mount(context.Background(), nil)
		synctest.Wait()
		assert.Equal(t, 1, rt.LoadCalls())
	})
}

func TestMount_RehydratesAndResetsTransient(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		store.SetIsPlaying(true)
		store.SetIsVideoVisible(true)

		loader := playback.LoaderFunc(func() (*playback.Persisted, error) {
			return &playback.Persisted{
				Volume:       0.3,
				RepeatMode:   playback.RepeatAll,
				Queue:        []playlist.Track{trackA, trackB},
				CurrentTrack: &trackB,
			}, nil
		})

		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, loader)
		defer c.Unmount()

		st := store.State()
		assert.False(t, st.IsPlaying)
		assert.False(t, st.IsVideoVisible)
		assert.Equal(t, 0.3, st.Volume)
		assert.Equal(t, playback.RepeatAll, st.RepeatMode)
		assert.Len(t, st.Queue, 2)

		// The restored track is bound but not started
		assert.Equal(t, Bound, c.Binding())
		h := rt.Last()
		require.NotNil(t, h)
		h.FireReady()
		assert.Equal(t, []int{30}, h.VolumeCalls())
		assert.Equal(t, 0, h.PlayCalls())
	})
}

func TestMount_RehydrateErrorKeepsDefaults(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		loader := playback.LoaderFunc(func() (*playback.Persisted, error) {
			return nil, errors.New("disk I/O error")
		})

		c := mount(t, store, widget.NewMockRuntime(), loader)
		defer c.Unmount()

		st := store.State()
		assert.Equal(t, playback.DefaultVolume, st.Volume)
		assert.Nil(t, st.CurrentTrack)
	})
}

func TestBind_NormalizesVideoID(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		store.PlayTrack(trackA)
		synctest.Wait()

		assert.Equal(t, Bound, c.Binding())
		assert.Equal(t, "a", c.BoundTrackID())
		h := rt.Last()
		require.NotNil(t, h)
		assert.Equal(t, "u7K72X4eo_s", h.VideoID())
		// Nothing is sent before the widget is ready
		assert.Equal(t, 0, h.PlayCalls())
		assert.Empty(t, h.VolumeCalls())
	})
}

func TestOnReady_PushesVolumeAndDuration(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		store.SetVolume(0.25)
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		store.PlayTrack(trackA)
		synctest.Wait()
		h := rt.Last()
		h.SetDuration(331)
		h.FireReady()

		assert.Equal(t, []int{25}, h.VolumeCalls())
		assert.Equal(t, 331.0, c.Duration())
		assert.Equal(t, 1, h.PlayCalls())
	})
}

func TestPlaying_PollsProgress(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		h := bindReady(t, store, rt, trackA)

		h.SetCurrentTime(42)
		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, 42.0, c.Progress())

		h.SetCurrentTime(43)
		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, 43.0, c.Progress())
	})
}

func TestPause_StopsPoll(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		h := bindReady(t, store, rt, trackA)
		h.SetCurrentTime(42)
		time.Sleep(time.Second)
		synctest.Wait()

		store.SetIsPlaying(false)
		synctest.Wait()
		assert.Equal(t, 1, h.PauseCalls())

		h.SetCurrentTime(99)
		time.Sleep(5 * time.Second)
		synctest.Wait()
		assert.Equal(t, 42.0, c.Progress())

		store.SetIsPlaying(true)
		synctest.Wait()
		assert.Equal(t, 2, h.PlayCalls())
		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, 99.0, c.Progress())
	})
}

func TestVolume_PushedToWidget(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		h := bindReady(t, store, rt, trackA)
		store.SetVolume(0.25)
		synctest.Wait()

		assert.Equal(t, []int{100, 25}, h.VolumeCalls())
	})
}

func TestSeek(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		h := bindReady(t, store, rt, trackA)
		c.Seek(95.5)

		assert.Equal(t, 95.5, c.Progress())
		assert.Equal(t, []float64{95.5}, h.SeekCalls())
	})
}

func TestEnded_AdvancesStore(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		store.SetQueue([]playlist.Track{trackA, trackB, trackC})
		first := bindReady(t, store, rt, trackA)

		first.FireStateChange(widget.StateEnded)
		synctest.Wait()

		assert.Equal(t, "b", store.State().CurrentTrack.ID)
		assert.True(t, first.IsDestroyed())
		assert.Len(t, rt.Handles(), 2)
		assert.Equal(t, "hbe3CQamF8k", rt.Last().VideoID())
		assert.Equal(t, "b", c.BoundTrackID())

		// Callbacks of a destroyed widget are ignored
		first.FireStateChange(widget.StateEnded)
		synctest.Wait()
		assert.Equal(t, "b", store.State().CurrentTrack.ID)
	})
}

func TestEnded_OtherStatesIgnored(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		store.SetQueue([]playlist.Track{trackA, trackB})
		h := bindReady(t, store, rt, trackA)

		for _, s := range []widget.State{widget.StatePaused, widget.StateBuffering, widget.StatePlaying, widget.StateCued} {
			h.FireStateChange(s)
		}
		synctest.Wait()
		assert.Equal(t, "a", store.State().CurrentTrack.ID)
	})
}

func TestEnded_LastTrackStops(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		h := bindReady(t, store, rt, trackA)
		h.FireStateChange(widget.StateEnded)
		synctest.Wait()

		st := store.State()
		assert.False(t, st.IsPlaying)
		assert.Equal(t, "a", st.CurrentTrack.ID)
		assert.Equal(t, 1, h.PauseCalls())
		assert.False(t, h.IsDestroyed())
	})
}

func TestTrackChange_LoadsInPlace(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		rt.InPlace = true
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		h := bindReady(t, store, rt, trackA)
		store.PlayTrack(trackB)
		synctest.Wait()

		assert.Len(t, rt.Handles(), 1)
		assert.Equal(t, []string{"hbe3CQamF8k"}, h.LoadCalls())
		assert.False(t, h.IsDestroyed())
		assert.Equal(t, "b", c.BoundTrackID())
	})
}

func TestTrackWithoutVideo_Unbinds(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		h := bindReady(t, store, rt, trackA)
		store.PlayTrack(silent)
		synctest.Wait()

		assert.True(t, h.IsDestroyed())
		assert.Equal(t, Ready, c.Binding())
		assert.Empty(t, c.BoundTrackID())
		assert.Len(t, rt.Handles(), 1)

		// Store commands keep working and stay no-ops for the widget
		c.Seek(12)
		store.SetVolume(0.5)
		synctest.Wait()
		assert.Equal(t, 12.0, c.Progress())
		assert.Equal(t, []int{100}, h.VolumeCalls())
	})
}

func TestVisibility(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		rt.InPlace = true
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		h := bindReady(t, store, rt, trackA)
		assert.False(t, h.Visible())

		store.ToggleVideoVisible()
		synctest.Wait()
		assert.True(t, h.Visible())
	})
}

func TestRepeatOneReplay_RestartsVideo(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New(playback.WithRepeatOneReplay(true))
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		store.SetQueue([]playlist.Track{trackA, trackB})
		store.SetRepeatMode(playback.RepeatOne)
		h := bindReady(t, store, rt, trackA)
		h.SetCurrentTime(329)

		h.FireStateChange(widget.StateEnded)
		synctest.Wait()

		assert.Equal(t, "a", store.State().CurrentTrack.ID)
		assert.Len(t, rt.Handles(), 1)
		assert.Equal(t, []float64{0}, h.SeekCalls())
		assert.Equal(t, 2, h.PlayCalls())
		assert.Equal(t, 0.0, c.Progress())
	})
}

func TestEnded_NextOntoSameTrackRestartsVideo(t *testing.T) {
	tests := []struct {
		name  string
		setup func(store *playback.Store)
		opts  []playback.Option
	}{
		{
			name: "repeat all with a single track",
			setup: func(store *playback.Store) {
				store.SetQueue([]playlist.Track{trackA})
				store.SetRepeatMode(playback.RepeatAll)
			},
		},
		{
			name: "shuffle draws the current track",
			setup: func(store *playback.Store) {
				store.SetQueue([]playlist.Track{trackA, trackB})
				store.ToggleShuffle()
			},
			opts: []playback.Option{playback.WithRandom(func() float64 { return 0 })},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				store := playback.New(tt.opts...)
				rt := widget.NewMockRuntime()
				c := mount(t, store, rt, nil)
				defer c.Unmount()

				tt.setup(store)
				h := bindReady(t, store, rt, trackA)
				h.SetCurrentTime(329)
				require.Equal(t, 1, h.PlayCalls())

				h.FireStateChange(widget.StateEnded)
				synctest.Wait()

				st := store.State()
				assert.Equal(t, "a", st.CurrentTrack.ID)
				assert.True(t, st.IsPlaying)
				assert.Len(t, rt.Handles(), 1)
				assert.Equal(t, []float64{0}, h.SeekCalls())
				assert.Equal(t, 2, h.PlayCalls())
				assert.Equal(t, 0.0, c.Progress())
			})
		})
	}
}

func TestCued_RefreshesDurationWhilePaused(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		rt.InPlace = true
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		store.SetQueue([]playlist.Track{trackA, trackB})
		h := bindReady(t, store, rt, trackA)
		store.SetIsPlaying(false)
		synctest.Wait()

		store.SetCurrentTrack(&trackB)
		synctest.Wait()
		require.Equal(t, []string{"hbe3CQamF8k"}, h.LoadCalls())
		assert.Equal(t, 0.0, c.Duration())

		h.SetDuration(379)
		h.FireStateChange(widget.StateCued)
		assert.Equal(t, 379.0, c.Duration())
	})
}

func TestLoadFailure_NeverBinds(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		rt.SetLoadError(errors.New("script blocked"))
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		assert.True(t, c.Failed())
		assert.Equal(t, Loading, c.Binding())

		store.PlayTrack(trackA)
		store.SetVolume(0.5)
		c.Seek(10)
		synctest.Wait()

		assert.True(t, store.State().IsPlaying)
		assert.Empty(t, rt.Handles())
		assert.Equal(t, 10.0, c.Progress())
		assert.Equal(t, 1, rt.LoadCalls())
	})
}

func TestLoading_BindsWhenRuntimeArrives(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		rt.Hold()
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		assert.Equal(t, Loading, c.Binding())
		store.PlayTrack(trackA)
		synctest.Wait()
		assert.Empty(t, rt.Handles())

		rt.Release()
		synctest.Wait()
		assert.Equal(t, Bound, c.Binding())
		assert.Equal(t, "a", c.BoundTrackID())
	})
}

func TestConstructFailure_StaysReady(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		rt.SetConstructError(errors.New("no display"))
		c := mount(t, store, rt, nil)
		defer c.Unmount()

		store.PlayTrack(trackA)
		synctest.Wait()
		assert.Equal(t, Ready, c.Binding())
	})
}

func TestUnmount(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)

		store.SetQueue([]playlist.Track{trackA, trackB})
		h := bindReady(t, store, rt, trackA)
		h.SetCurrentTime(10)
		time.Sleep(time.Second)
		synctest.Wait()

		c.Unmount()
		assert.True(t, h.IsDestroyed())
		assert.Equal(t, Ready, c.Binding())

		// No longer following the store
		store.Next()
		synctest.Wait()
		assert.Len(t, rt.Handles(), 1)

		// Remounting reuses the loaded runtime
		c.Mount(context.Background(), nil)
		synctest.Wait()
		assert.Equal(t, 1, rt.LoadCalls())
		assert.Equal(t, Bound, c.Binding())
		assert.Equal(t, "b", c.BoundTrackID())
		c.Unmount()
	})
}

func TestUnmount_WhileLoading(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rt := widget.NewMockRuntime()
		rt.Hold()
		c := mount(t, playback.New(), rt, nil)

		c.Unmount()
		synctest.Wait()
		assert.Equal(t, Unloaded, c.Binding())
		assert.False(t, c.Failed())

		rt.Release()
		c.Mount(context.Background(), nil)
		synctest.Wait()
		assert.Equal(t, Ready, c.Binding())
		assert.Equal(t, 2, rt.LoadCalls())
		c.Unmount()
	})
}

func TestStoreClose_StopsLoop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		store := playback.New()
		rt := widget.NewMockRuntime()
		c := mount(t, store, rt, nil)

		require.NoError(t, store.Close())
		synctest.Wait()
		c.Unmount()
	})
}

func TestBindingString(t *testing.T) {
	tests := map[Binding]string{
		Unloaded:    "Unloaded",
		Loading:     "Loading",
		Ready:       "Ready",
		Bound:       "Bound",
		Binding(42): "Unknown",
	}
	for b, want := range tests {
		if got := b.String(); got != want {
			t.Errorf("Binding(%d).String() = %q, want %q", int(b), got, want)
		}
	}
}
