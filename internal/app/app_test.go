package app

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playerview"
	"github.com/llehouerou/lyrifi/internal/playlist"
	"github.com/llehouerou/lyrifi/internal/search"
	"github.com/llehouerou/lyrifi/internal/state"
	"github.com/llehouerou/lyrifi/internal/ui/helpbindings"
	"github.com/llehouerou/lyrifi/internal/ui/testutil"
)

// fakeCatalog answers from fixed data and records the calls it receives.
type fakeCatalog struct {
	mu        sync.Mutex
	results   *catalog.Results
	resolved  string
	albums    map[string][]catalog.Track
	playlists map[string][]catalog.Track
	queries   []string
	resolves  []string
}

func (f *fakeCatalog) Search(_ context.Context, query string) *catalog.Results {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.results == nil {
		return catalog.EmptyResults()
	}
	return f.results
}

func (f *fakeCatalog) Resolve(_ context.Context, trackID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolves = append(f.resolves, trackID)
	return f.resolved
}

func (f *fakeCatalog) AlbumTracks(_ context.Context, albumID string) []catalog.Track {
	return f.albums[albumID]
}

func (f *fakeCatalog) PlaylistTracks(_ context.Context, playlistID string) []catalog.Track {
	return f.playlists[playlistID]
}

// fakeView is a player view with a settable position.
type fakeView struct {
	progress float64
	duration float64
	seeks    []float64
}

func (f *fakeView) Progress() float64 { return f.progress }
func (f *fakeView) Duration() float64 { return f.duration }
func (f *fakeView) Binding() playerview.Binding { return playerview.Ready }
func (f *fakeView) Failed() bool { return false }

func (f *fakeView) Seek(seconds float64) {
	f.seeks = append(f.seeks, seconds)
	f.progress = seconds
}

var (
	teardrop = catalog.Track{ID: "t1", Title: "Teardrop", ArtistName: "Massive Attack", Duration: 330, YouTubeID: "u7K72X4eo_s"}
	angel    = catalog.Track{ID: "t2", Title: "Angel", ArtistName: "Massive Attack", Duration: 379}
	glory    = catalog.Track{ID: "t3", Title: "Glory Box", ArtistName: "Portishead", Duration: 305, YouTubeID: "4qQyUi4zfDs"}
)

func testResults() *catalog.Results {
	return &catalog.Results{
		Tracks:    []catalog.Track{teardrop, angel},
		Artists:   []catalog.Artist{{ID: "a1", Name: "Massive Attack"}},
		Albums:    []catalog.Album{{ID: "al1", Title: "Mezzanine", ArtistName: "Massive Attack"}},
		Playlists: []catalog.Playlist{{ID: "p1", Name: "Bristol Nights", TrackIDs: []string{"t3", "t1"}}},
	}
}

// Result rows after Flatten: tracks, artists, albums, playlists.
const (
	rowTeardrop = iota
	rowAngel
	rowArtist
	rowAlbum
	rowPlaylist
)

func newTestModel(t *testing.T) (Model, *playback.Store, *fakeCatalog, *fakeView) {
	t.Helper()
	store := playback.New()
	t.Cleanup(func() { _ = store.Close() })

	cat := &fakeCatalog{
		results:   testResults(),
		resolved:  "resolved-id",
		albums:    map[string][]catalog.Track{"al1": {teardrop, angel}},
		playlists: map[string][]catalog.Track{"p1": {glory, teardrop}},
	}
	view := &fakeView{}

	m := New(store, view, cat)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, store, cat, view
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, key(k))
	}
	return m
}

// withResults leaves the search box and shows the test results, cursor on row.
func withResults(t *testing.T, m Model, row int) Model {
	t.Helper()
	m = press(t, m, "esc")
	m.search.SetQuery("massive")
	m = update(t, m, ResultsMsg{Query: "massive", Results: testResults()})
	for range row {
		m = press(t, m, "j")
	}
	return m
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func queueIDs(s playback.State) []string {
	ids := make([]string, len(s.Queue))
	for i, tr := range s.Queue {
		ids[i] = tr.ID
	}
	return ids
}

func TestNew_FocusesSearchBox(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	assert.True(t, m.search.InputFocused())
	assert.Equal(t, FocusResults, m.Focus())
}

func TestSearch_QueryReachesCatalog(t *testing.T) {
	m, _, cat, _ := newTestModel(t)

	for _, r := range "massive" {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := updateCmd(t, m, key("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(search.QueryMsg)
	require.True(t, ok)
	assert.Equal(t, "massive", msg.Query)

	m, cmd = updateCmd(t, m, msg)
	m = run(t, m, cmd)

	assert.Equal(t, []string{"massive"}, cat.queries)
	assert.Equal(t, 5, m.search.Len())
	assert.False(t, m.search.Loading())
}

func TestSearch_BlankQuerySkipsCatalog(t *testing.T) {
	m, _, cat, _ := newTestModel(t)

	m, cmd := updateCmd(t, m, search.QueryMsg{Query: "   "})

	assert.Nil(t, cmd)
	assert.Empty(t, cat.queries)
	assert.Equal(t, 0, m.search.Len())
}

func TestSearch_StaleResultsDropped(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "esc")
	m.search.SetQuery("new")

	m = update(t, m, ResultsMsg{Query: "old", Results: testResults()})

	assert.Equal(t, 0, m.search.Len())
}

func TestSelectTrack_PlaysIt(t *testing.T) {
	m, store, cat, _ := newTestModel(t)
	m = withResults(t, m, rowTeardrop)

	m = press(t, m, "enter")

	st := store.State()
	require.NotNil(t, st.CurrentTrack)
	assert.Equal(t, "t1", st.CurrentTrack.ID)
	assert.True(t, st.IsPlaying)
	assert.Equal(t, []string{"t1"}, queueIDs(st))
	assert.Empty(t, cat.resolves, "track with a video should not be resolved")
}

func TestSelectTrack_ResolvesMissingVideo(t *testing.T) {
	m, store, cat, _ := newTestModel(t)
	m = withResults(t, m, rowAngel)

	m, cmd := updateCmd(t, m, key("enter"))
	assert.Contains(t, m.Status(), "Looking up video")
	assert.Nil(t, store.CurrentTrack(), "playback waits for the lookup")

	m = run(t, m, cmd)

	assert.Equal(t, []string{"t2"}, cat.resolves)
	current := store.CurrentTrack()
	require.NotNil(t, current)
	assert.Equal(t, "resolved-id", current.YouTubeID)
	assert.Empty(t, m.Status())
}

func TestSelectTrack_NoVideoFound(t *testing.T) {
	m, store, cat, _ := newTestModel(t)
	cat.resolved = ""
	m = withResults(t, m, rowAngel)

	m, cmd := updateCmd(t, m, key("enter"))
	m = run(t, m, cmd)

	assert.Contains(t, m.Status(), "No video found for 'Angel'")
	current := store.CurrentTrack()
	require.NotNil(t, current)
	assert.Equal(t, "t2", current.ID)
	assert.False(t, current.HasVideo())
}

func TestAddTrack_AppendsToQueue(t *testing.T) {
	m, store, _, _ := newTestModel(t)
	m = withResults(t, m, rowTeardrop)

	m = press(t, m, "a", "a")

	st := store.State()
	assert.Equal(t, []string{"t1", "t1"}, queueIDs(st))
	assert.Nil(t, st.CurrentTrack)
	assert.Contains(t, m.Status(), "Added 'Teardrop'")
}

func TestReplaceWithTrack(t *testing.T) {
	m, store, _, _ := newTestModel(t)
	store.SetQueue(playlist.FromCatalogTracks([]catalog.Track{glory, angel}))
	m = withResults(t, m, rowTeardrop)

	press(t, m, "r")

	st := store.State()
	assert.Equal(t, []string{"t1"}, queueIDs(st))
	require.NotNil(t, st.CurrentTrack)
	assert.Equal(t, "t1", st.CurrentTrack.ID)
	assert.True(t, st.IsPlaying)
}

func TestSelectAlbum_ReplacesQueueAndPlaysFirst(t *testing.T) {
	m, store, _, _ := newTestModel(t)
	store.SetQueue(playlist.FromCatalogTracks([]catalog.Track{glory}))
	m = withResults(t, m, rowAlbum)

	m, cmd := updateCmd(t, m, key("enter"))
	assert.Contains(t, m.Status(), "Loading 'Mezzanine'")
	run(t, m, cmd)

	st := store.State()
	assert.Equal(t, []string{"t1", "t2"}, queueIDs(st))
	require.NotNil(t, st.CurrentTrack)
	assert.Equal(t, "t1", st.CurrentTrack.ID)
	assert.True(t, st.IsPlaying)
}

func TestAddPlaylist_AppendsTracks(t *testing.T) {
	m, store, _, _ := newTestModel(t)
	store.SetQueue(playlist.FromCatalogTracks([]catalog.Track{angel}))
	m = withResults(t, m, rowPlaylist)

	m, cmd := updateCmd(t, m, key("a"))
	run(t, m, cmd)

	st := store.State()
	assert.Equal(t, []string{"t2", "t3", "t1"}, queueIDs(st))
	assert.Nil(t, st.CurrentTrack)
}

func TestSelectCollection_Empty(t *testing.T) {
	m, store, cat, _ := newTestModel(t)
	cat.albums = nil
	m = withResults(t, m, rowAlbum)

	m, cmd := updateCmd(t, m, key("enter"))
	m = run(t, m, cmd)

	assert.Equal(t, "No tracks in 'Mezzanine'", m.Status())
	assert.Empty(t, store.State().Queue)
}

func TestSelectArtist_SearchesByName(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = withResults(t, m, rowArtist)

	m, cmd := updateCmd(t, m, key("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(search.QueryMsg)
	require.True(t, ok)
	assert.Equal(t, "Massive Attack", msg.Query)
	assert.True(t, m.search.Loading())
}

func TestPlaybackKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		check func(t *testing.T, s playback.State)
	}{
		{"space pauses", []string{" "}, func(t *testing.T, s playback.State) {
			assert.False(t, s.IsPlaying)
		}},
		{"space twice resumes", []string{" ", " "}, func(t *testing.T, s playback.State) {
			assert.True(t, s.IsPlaying)
		}},
		{"v shows video", []string{"v"}, func(t *testing.T, s playback.State) {
			assert.True(t, s.IsVideoVisible)
		}},
		{"R cycles repeat", []string{"R"}, func(t *testing.T, s playback.State) {
			assert.Equal(t, playback.RepeatAll, s.RepeatMode)
		}},
		{"R twice turns repeat off", []string{"R", "R"}, func(t *testing.T, s playback.State) {
			assert.Equal(t, playback.RepeatNone, s.RepeatMode)
		}},
		{"S toggles shuffle", []string{"S"}, func(t *testing.T, s playback.State) {
			assert.True(t, s.IsShuffle)
		}},
		{"volume down", []string{"-", "-"}, func(t *testing.T, s playback.State) {
			assert.InDelta(t, 0.9, s.Volume, 1e-9)
		}},
		{"volume up is capped", []string{"+", "="}, func(t *testing.T, s playback.State) {
			assert.InDelta(t, 1.0, s.Volume, 1e-9)
		}},
		{"next advances", []string{"n"}, func(t *testing.T, s playback.State) {
			require.NotNil(t, s.CurrentTrack)
			assert.Equal(t, "t2", s.CurrentTrack.ID)
		}},
		{"previous wraps", []string{"p"}, func(t *testing.T, s playback.State) {
			require.NotNil(t, s.CurrentTrack)
			assert.Equal(t, "t3", s.CurrentTrack.ID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store, _, _ := newTestModel(t)
			tracks := playlist.FromCatalogTracks([]catalog.Track{teardrop, angel, glory})
			store.SetQueue(tracks)
			store.PlayTrack(tracks[0])
			m = press(t, m, "esc")

			press(t, m, tt.keys...)

			tt.check(t, store.State())
		})
	}
}

func TestPlayPause_NoTrack(t *testing.T) {
	m, store, _, _ := newTestModel(t)
	m = press(t, m, "esc")

	press(t, m, " ")

	assert.False(t, store.IsPlaying())
}

func TestVolumeDown_Floor(t *testing.T) {
	m, store, _, _ := newTestModel(t)
	store.SetVolume(0.02)
	m = press(t, m, "esc")

	press(t, m, "-")

	assert.InDelta(t, 0.0, store.State().Volume, 1e-9)
}

func TestSeek(t *testing.T) {
	m, store, _, view := newTestModel(t)
	store.PlayTrack(playlist.FromCatalogTrack(teardrop))
	view.progress = 30
	view.duration = 35
	m = press(t, m, "esc")

	m = press(t, m, "shift+right")
	press(t, m, "shift+left", "shift+left", "shift+left", "shift+left")

	assert.Equal(t, []float64{35, 25, 15, 5, 0}, view.seeks)
}

func TestSeek_NoTrack(t *testing.T) {
	m, _, _, view := newTestModel(t)
	m = press(t, m, "esc")

	press(t, m, "shift+right")

	assert.Empty(t, view.seeks)
}

func TestQueuePanel(t *testing.T) {
	m, store, _, _ := newTestModel(t)
	store.SetQueue(playlist.FromCatalogTracks([]catalog.Track{teardrop, angel, glory}))
	m = update(t, m, StoreChangedMsg{})
	m = press(t, m, "esc", "tab")
	require.Equal(t, FocusQueue, m.Focus())

	m = press(t, m, "j", "enter")

	st := store.State()
	require.NotNil(t, st.CurrentTrack)
	assert.Equal(t, "t2", st.CurrentTrack.ID)
	assert.True(t, st.IsPlaying)

	m = press(t, m, "c")
	assert.Empty(t, store.State().Queue)
	assert.Equal(t, "Queue cleared", m.Status())
	assert.NotNil(t, store.CurrentTrack(), "clearing the queue keeps the current track")
}

func TestSwitchFocus(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "esc")

	m = press(t, m, "tab")
	assert.Equal(t, FocusQueue, m.Focus())
	assert.True(t, m.queue.IsFocused())
	assert.False(t, m.search.IsFocused())

	m = press(t, m, "tab")
	assert.Equal(t, FocusResults, m.Focus())

	m = press(t, m, "tab", "/")
	assert.Equal(t, FocusResults, m.Focus())
	assert.True(t, m.search.InputFocused())
}

func TestHelp(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "esc", "?")
	require.True(t, m.showHelp)
	assert.Contains(t, testutil.StripANSI(m.View()), "Global")

	m, cmd := updateCmd(t, m, key("esc"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, helpbindings.CloseMsg{}, msg)

	m = update(t, m, msg)
	assert.False(t, m.showHelp)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, _, _, _ := newTestModel(t)
			m = press(t, m, "esc")

			_, cmd := updateCmd(t, m, key(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())

			select {
			case <-m.sub.Done:
			default:
				t.Error("quitting should close the store subscription")
			}
		})
	}
}

func TestWaitForChange(t *testing.T) {
	store := playback.New()
	defer store.Close()
	sub := store.Subscribe()

	store.SetIsPlaying(true)
	assert.Equal(t, StoreChangedMsg{}, waitForChange(sub)())

	store.Unsubscribe(sub)
	assert.Nil(t, waitForChange(sub)())
}

func TestStoreChanged_SyncsQueue(t *testing.T) {
	m, store, _, _ := newTestModel(t)
	store.SetQueue(playlist.FromCatalogTracks([]catalog.Track{teardrop, angel}))

	m, cmd := updateCmd(t, m, StoreChangedMsg{})

	assert.Equal(t, 2, m.queue.Len())
	assert.NotNil(t, cmd, "the model keeps listening for store changes")
}

func TestView(t *testing.T) {
	m, store, _, _ := newTestModel(t)

	out := testutil.StripANSI(m.View())
	for _, want := range []string{"Results", "Queue (0/0)", "? help"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 30, strings.Count(out, "\n")+1)

	store.PlayTrack(playlist.FromCatalogTrack(teardrop))
	m = update(t, m, StoreChangedMsg{})

	out = testutil.StripANSI(m.View())
	assert.Contains(t, out, "Queue (1/1)")
	assert.Contains(t, testutil.FindLine(out, "05:30"), "Teardrop")
	assert.Equal(t, 30, strings.Count(out, "\n")+1)
}

func TestView_Narrow(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Results")
	assert.Contains(t, out, "Queue (0/0)")
	assert.Equal(t, 30, strings.Count(out, "\n")+1)
}

func TestView_ZeroSize(t *testing.T) {
	store := playback.New()
	defer store.Close()

	assert.Empty(t, New(store, &fakeView{}, &fakeCatalog{}).View())
}

func TestNavigation_RestoresQueryAndSelection(t *testing.T) {
	store := playback.New()
	defer store.Close()
	nav := state.NewMock()
	nav.SaveNavigation(state.NavigationState{Query: "massive", Focus: "results", SelectedID: "al1"})

	m := New(store, &fakeView{}, &fakeCatalog{results: testResults()}, WithNavigation(nav))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.False(t, m.search.InputFocused())
	assert.Equal(t, "massive", m.search.Query())

	require.NotNil(t, m.initCmd)
	msg, ok := m.initCmd().(search.QueryMsg)
	require.True(t, ok)
	m, cmd := updateCmd(t, m, msg)
	m = run(t, m, cmd)

	item, ok := m.search.Selected()
	require.True(t, ok)
	assert.Equal(t, "al1", item.ID)
}

func TestNavigation_RestoresQueueFocus(t *testing.T) {
	store := playback.New()
	defer store.Close()
	store.SetQueue(playlist.FromCatalogTracks([]catalog.Track{teardrop, angel, glory}))
	nav := state.NewMock()
	nav.SaveNavigation(state.NavigationState{Focus: "queue", SelectedID: "t3"})

	m := New(store, &fakeView{}, &fakeCatalog{}, WithNavigation(nav))

	assert.Equal(t, FocusQueue, m.Focus())
	sel, ok := m.queue.Selected()
	require.True(t, ok)
	assert.Equal(t, "t3", sel.ID)
	assert.Nil(t, m.initCmd)
}

func TestNavigation_SavedOnQuit(t *testing.T) {
	store := playback.New()
	defer store.Close()
	nav := state.NewMock()

	m := New(store, &fakeView{}, &fakeCatalog{results: testResults()}, WithNavigation(nav))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = withResults(t, m, rowAlbum)

	press(t, m, "q")

	saved, err := nav.GetNavigation()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, state.NavigationState{Query: "massive", Focus: "results", SelectedID: "al1"}, *saved)
}

func TestNavigation_FirstRunFocusesSearch(t *testing.T) {
	store := playback.New()
	defer store.Close()

	m := New(store, &fakeView{}, &fakeCatalog{}, WithNavigation(state.NewMock()))

	assert.True(t, m.search.InputFocused())
}
