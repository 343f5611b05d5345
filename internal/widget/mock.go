package widget

import (
	"context"
	"sync"
)

// Mock is a test double for Handle.
type Mock struct {
	mu sync.Mutex

	videoID     string
	opts        Options
	currentTime float64
	duration    float64
	visible     bool

	playCalls   int
	pauseCalls  int
	seekCalls   []float64
	volumeCalls []int
	loadCalls   []string
	destroyed   bool
}

// NewMock creates a mock handle bound to videoID.
func NewMock(videoID string, opts Options) *Mock {
	return &Mock{videoID: videoID, opts: opts, visible: true}
}

func (m *Mock) PlayVideo() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
}

func (m *Mock) PauseVideo() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
}

func (m *Mock) SeekTo(seconds float64, _ bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, seconds)
	m.currentTime = seconds
}

func (m *Mock) SetVolume(percent int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumeCalls = append(m.volumeCalls, percent)
}

func (m *Mock) CurrentTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

func (m *Mock) Duration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed = true
}

// Test helpers

func (m *Mock) SetCurrentTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = seconds
}

func (m *Mock) SetDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = seconds
}

// FireReady invokes the OnReady callback as the widget would.
func (m *Mock) FireReady() {
	if m.opts.OnReady != nil {
		m.opts.OnReady()
	}
}

// FireStateChange invokes the OnStateChange callback as the widget would.
func (m *Mock) FireStateChange(s State) {
	if m.opts.OnStateChange != nil {
		m.opts.OnStateChange(s)
	}
}

func (m *Mock) VideoID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.videoID
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.seekCalls...)
}

func (m *Mock) VolumeCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.volumeCalls...)
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

func (m *Mock) IsDestroyed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

// LoaderMock is a Mock that also switches videos in place and toggles visibility.
type LoaderMock struct {
	*Mock
}

func (m LoaderMock) LoadVideoByID(videoID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, videoID)
	m.videoID = videoID
}

func (m LoaderMock) SetVisible(visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = visible
}

// MockRuntime is a test double for Runtime.
type MockRuntime struct {
	mu sync.Mutex

	// InPlace makes constructed handles implement VideoLoader and Visibility.
	InPlace bool

	loadErr      error
	gate         chan struct{}
	loadCalls    int
	constructErr error
	containers   []string
	handles      []*Mock
}

// NewMockRuntime creates a runtime whose Load succeeds immediately.
func NewMockRuntime() *MockRuntime {
	return &MockRuntime{}
}

func (r *MockRuntime) Load(ctx context.Context) error {
	r.mu.Lock()
	r.loadCalls++
	gate := r.gate
	err := r.loadErr
	r.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (r *MockRuntime) Construct(container, videoID string, opts Options) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.constructErr != nil {
		return nil, r.constructErr
	}
	m := NewMock(videoID, opts)
	r.containers = append(r.containers, container)
	r.handles = append(r.handles, m)
	if r.InPlace {
		return LoaderMock{Mock: m}, nil
	}
	return m, nil
}

// Test helpers

// Hold makes Load block until Release is called.
func (r *MockRuntime) Hold() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gate = make(chan struct{})
}

// Release unblocks a held Load.
func (r *MockRuntime) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gate != nil {
		close(r.gate)
		r.gate = nil
	}
}

func (r *MockRuntime) SetLoadError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadErr = err
}

func (r *MockRuntime) SetConstructError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructErr = err
}

func (r *MockRuntime) LoadCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadCalls
}

// Handles returns every constructed handle, oldest first.
func (r *MockRuntime) Handles() []*Mock {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Mock(nil), r.handles...)
}

// Last returns the most recently constructed handle, or nil.
func (r *MockRuntime) Last() *Mock {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.handles) == 0 {
		return nil
	}
	return r.handles[len(r.handles)-1]
}

// Verify mocks implement the widget interfaces at compile time.
var (
	_ Handle      = (*Mock)(nil)
	_ VideoLoader = LoaderMock{}
	_ Visibility  = LoaderMock{}
	_ Runtime     = (*MockRuntime)(nil)
)
