// Package mpv implements the video widget on top of an mpv process
// driven over its JSON IPC socket.
package mpv

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/widget"
	"github.com/llehouerou/lyrifi/internal/youtube"
)

const quitTimeout = 2 * time.Second

var (
	errNotLoaded = errors.New("mpv runtime not loaded")
	errExited    = errors.New("mpv exited before socket was ready")
)

// Runtime starts one mpv process per constructed widget.
type Runtime struct {
	path string

	mu  sync.Mutex
	bin string
}

var _ widget.Runtime = (*Runtime)(nil)

// NewRuntime creates a runtime for the mpv binary at path ("mpv" from PATH when empty).
func NewRuntime(path string) *Runtime {
	if path == "" {
		path = "mpv"
	}
	return &Runtime{path: path}
}

// Load resolves the mpv binary.
func (r *Runtime) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bin, err := exec.LookPath(r.path)
	if err != nil {
		return fmt.Errorf("find mpv: %w", err)
	}
	r.mu.Lock()
	r.bin = bin
	r.mu.Unlock()
	return nil
}

// Construct starts a paused mpv on videoID. OnReady fires once the file is loaded.
func (r *Runtime) Construct(container, videoID string, opts widget.Options) (widget.Handle, error) {
	r.mu.Lock()
	bin := r.bin
	r.mu.Unlock()
	if bin == "" {
		return nil, errNotLoaded
	}

	socketPath, err := newSocketPath(container)
	if err != nil {
		return nil, err
	}
	p := newPlayer(socketPath, opts)
	p.url = youtube.PlaybackURL(videoID)

	cmd := exec.Command(bin, commandArgs(socketPath, container, videoID)...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}
	p.cmd = cmd

	// Reap the process to avoid zombies
	go func() {
		_ = cmd.Wait()
		close(p.exited)
	}()
	go p.attach()

	return p, nil
}

func commandArgs(socketPath, title, videoID string) []string {
	return []string{
		"--no-terminal",
		"--really-quiet",
		"--idle=yes",
		"--force-window=yes",
		"--keep-open=no",
		"--pause=yes",
		"--input-ipc-server=" + socketPath,
		"--title=" + title,
		youtube.PlaybackURL(videoID),
	}
}

func newSocketPath(container string) (string, error) {
	random := make([]byte, 4)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("generate socket name: %w", err)
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%x.sock", container, random)), nil
}

// Player is a widget handle backed by one mpv process.
// Command failures are logged and otherwise ignored.
type Player struct {
	socketPath string
	opts       widget.Options
	log        *logrus.Entry

	cmd    *exec.Cmd
	exited chan struct{}

	mu        sync.Mutex // serializes commands
	requestID int

	connMu sync.Mutex
	conn   net.Conn

	stop      chan struct{}
	stopOnce  sync.Once
	readyOnce sync.Once

	// mpv unloads the file at eof, so a seek after the end reloads url.
	fileMu      sync.Mutex
	url         string
	ended       bool
	pendingSeek float64
}

var (
	_ widget.Handle      = (*Player)(nil)
	_ widget.VideoLoader = (*Player)(nil)
	_ widget.Visibility  = (*Player)(nil)
)

func newPlayer(socketPath string, opts widget.Options) *Player {
	return &Player{
		socketPath: socketPath,
		opts:       opts,
		log:        logrus.WithFields(logrus.Fields{"op": "mpv", "socket": socketPath}),
		exited:     make(chan struct{}),
		stop:       make(chan struct{}),
	}
}

func (p *Player) run(args ...any) {
	if _, err := p.command(args...); err != nil && !errors.Is(err, errDestroyed) {
		p.log.WithError(err).WithField("command", args[0]).Debug("mpv command failed")
	}
}

func (p *Player) floatProperty(name string) float64 {
	data, err := p.command("get_property", name)
	if err != nil {
		return 0
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0
	}
	return v
}

func (p *Player) PlayVideo() {
	p.run("set_property", "pause", false)
}

func (p *Player) PauseVideo() {
	p.run("set_property", "pause", true)
}

// SeekTo seeks in the loaded file. After the end of the file it reloads
// the video and seeks once the file is loaded again.
func (p *Player) SeekTo(seconds float64, _ bool) {
	p.fileMu.Lock()
	ended, url := p.ended, p.url
	if ended {
		p.ended = false
		p.pendingSeek = seconds
	}
	p.fileMu.Unlock()

	if ended && url != "" {
		p.run("loadfile", url, "replace")
		return
	}
	p.run("seek", seconds, "absolute")
}

func (p *Player) SetVolume(percent int) {
	p.run("set_property", "volume", percent)
}

func (p *Player) CurrentTime() float64 {
	return p.floatProperty("time-pos")
}

func (p *Player) Duration() float64 {
	return p.floatProperty("duration")
}

// LoadVideoByID replaces the playing file in the running mpv.
func (p *Player) LoadVideoByID(videoID string) {
	url := youtube.PlaybackURL(videoID)
	p.fileMu.Lock()
	p.url = url
	p.ended = false
	p.pendingSeek = 0
	p.fileMu.Unlock()
	p.run("loadfile", url, "replace")
}

// SetVisible switches the video track on or off; audio keeps playing.
func (p *Player) SetVisible(visible bool) {
	vid := "no"
	if visible {
		vid = "auto"
	}
	p.run("set_property", "vid", vid)
}

// Destroy asks mpv to quit and kills it if it does not exit in time.
func (p *Player) Destroy() {
	p.stopOnce.Do(func() {
		close(p.stop)

		p.mu.Lock()
		p.requestID++
		_, _ = doCommand(p.socketPath, p.requestID, []any{"quit"})
		p.mu.Unlock()

		p.connMu.Lock()
		if p.conn != nil {
			p.conn.Close()
		}
		p.connMu.Unlock()

		if p.cmd != nil {
			go func() {
				select {
				case <-p.exited:
				case <-time.After(quitTimeout):
					p.log.Warn("killing mpv: quit timed out")
					_ = killProcess(p.cmd)
				}
				_ = os.Remove(p.socketPath)
			}()
		}
	})
}
