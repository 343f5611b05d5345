package mpv

import (
	"bufio"
	"encoding/json"
	"net"
	"time"

	"github.com/llehouerou/lyrifi/internal/widget"
)

const (
	socketWaitRetries = 20
	socketWaitDelay   = 150 * time.Millisecond
)

// observed properties, registered on the event connection.
var observed = []struct {
	id   int
	name string
}{
	{1, "pause"},
}

// attach waits for the IPC socket, then reads events until the player is
// destroyed or mpv exits.
func (p *Player) attach() {
	conn, err := p.waitForSocket()
	if err != nil {
		p.log.WithError(err).Warn("mpv socket not ready")
		return
	}

	p.connMu.Lock()
	select {
	case <-p.stop:
		p.connMu.Unlock()
		conn.Close()
		return
	default:
	}
	p.conn = conn
	p.connMu.Unlock()
	defer conn.Close()

	for _, prop := range observed {
		payload, _ := json.Marshal(ipcCommand{Command: []any{"observe_property", prop.id, prop.name}})
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			p.log.WithError(err).Warn("observe " + prop.name)
			return
		}
	}
	p.catchUp()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		p.handleEvent(scanner.Bytes())
	}
}

func (p *Player) waitForSocket() (net.Conn, error) {
	var lastErr error
	for range socketWaitRetries {
		select {
		case <-p.stop:
			return nil, errDestroyed
		case <-p.exited:
			return nil, errExited
		default:
		}

		conn, err := net.DialTimeout("unix", p.socketPath, dialTimeout)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		time.Sleep(socketWaitDelay)
	}
	return nil, lastErr
}

// catchUp marks the player ready when the file finished loading before
// the event connection was attached.
func (p *Player) catchUp() {
	if _, err := p.command("get_property", "duration"); err == nil {
		p.markReady()
	}
}

func (p *Player) markReady() {
	p.readyOnce.Do(func() {
		if p.opts.OnReady != nil {
			p.opts.OnReady()
		}
	})
}

func (p *Player) handleEvent(line []byte) {
	var msg ipcMessage
	if err := json.Unmarshal(line, &msg); err != nil || msg.Event == "" {
		return
	}

	switch msg.Event {
	case "file-loaded":
		p.markReady()
		p.fileMu.Lock()
		seek := p.pendingSeek
		p.pendingSeek = 0
		p.fileMu.Unlock()
		if seek > 0 {
			p.run("seek", seek, "absolute")
		}
		p.fireState(widget.StateCued)
	case "end-file":
		if msg.Reason == "eof" {
			p.fileMu.Lock()
			p.ended = true
			p.fileMu.Unlock()
			p.fireState(widget.StateEnded)
		}
	case "property-change":
		if msg.Name != "pause" {
			return
		}
		var paused bool
		if err := json.Unmarshal(msg.Data, &paused); err != nil {
			return
		}
		if paused {
			p.fireState(widget.StatePaused)
		} else {
			p.fireState(widget.StatePlaying)
		}
	case "seek":
		p.fireState(widget.StateBuffering)
	}
}

func (p *Player) fireState(s widget.State) {
	if p.opts.OnStateChange != nil {
		p.opts.OnStateChange(s)
	}
}
