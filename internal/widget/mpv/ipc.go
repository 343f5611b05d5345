package mpv

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id"`
}

// ipcMessage is a line received from mpv: a command reply or an event.
type ipcMessage struct {
	RequestID *int            `json:"request_id"`
	Error     string          `json:"error"`
	Data      json.RawMessage `json:"data"`

	Event  string `json:"event"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	dialTimeout  = time.Second
	readDeadline = time.Second
)

var errDestroyed = errors.New("mpv player destroyed")

// command sends args to mpv, retrying transient connection errors.
func (p *Player) command(args ...any) (json.RawMessage, error) {
	select {
	case <-p.stop:
		return nil, errDestroyed
	default:
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}
		p.requestID++
		data, err := doCommand(p.socketPath, p.requestID, args)
		if err == nil {
			return data, nil
		}
		var mpvErr *replyError
		if errors.As(err, &mpvErr) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", maxRetries, lastErr)
}

// replyError is an error reported by mpv itself; it is not retried.
type replyError struct {
	msg string
}

func (e *replyError) Error() string { return "mpv error: " + e.msg }

// doCommand performs a single request on a fresh connection. Events that
// mpv broadcasts before the reply are skipped.
func doCommand(socketPath string, id int, args []any) (json.RawMessage, error) {
	conn, err := net.DialTimeout("unix", socketPath, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	payload, err := json.Marshal(ipcCommand{Command: args, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var msg ipcMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}
		if msg.RequestID == nil || *msg.RequestID != id {
			continue
		}
		if msg.Error != "" && msg.Error != "success" {
			return nil, &replyError{msg: msg.Error}
		}
		return msg.Data, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return nil, errors.New("read: connection closed before reply")
}
