// SPDX-License-Identifier: MIT
// Package: cella/sink
//
// live.go — asynchronous websocket sink broadcasting frames to web clients.
//
// Design contract (strict):
//   • Live is an http.Handler: every upgraded connection gets its own send
//     queue and writer goroutine; a slow client drops frames rather than
//     stalling the simulation (frames are idempotent snapshots, the latest
//     one fully specifies the view).
//   • Liveness uses websocket pings on a channerics ticker; a failed write
//     tears the client down.
//   • IsAsync reports true so the driver yields between frames.

package sink

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"

	"github.com/katalvlaran/cella/grid"
)

const (
	// liveWriteWait bounds a single websocket write.
	liveWriteWait = time.Second
	// livePingPeriod is the ping cadence for client liveness.
	livePingPeriod = 200 * time.Millisecond
	// liveQueueDepth is the per-client frame queue; overflow drops frames.
	liveQueueDepth = 4
)

// frameMsg is the JSON wire form of one frame.
type frameMsg struct {
	T      float64   `json:"t"`
	Frame  int       `json:"frame"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  []float64 `json:"cells"` // row-major, length width*height
}

// Live broadcasts every pushed frame to all connected websocket clients as
// JSON, and stores frames so the run can still be resumed. Register it on
// any mux: http.Handle("/frames", liveSink).
type Live struct {
	State
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[chan []byte]struct{}
	done    chan struct{}
	once    sync.Once
}

// NewLive returns a Live sink ready to serve websocket upgrades.
func NewLive() *Live {
	return &Live{
		clients: make(map[chan []byte]struct{}),
		done:    make(chan struct{}),
	}
}

// IsAsync reports true: the driver yields between frames so the HTTP
// machinery can service clients.
func (l *Live) IsAsync() bool { return true }

// ServeHTTP upgrades the request and streams frames until the client leaves
// or the sink finalizes.
func (l *Live) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}
	send := make(chan []byte, liveQueueDepth)
	l.mu.Lock()
	l.clients[send] = struct{}{}
	l.mu.Unlock()

	go l.writePump(ws, send)
}

// writePump owns one client connection: frames from the send queue, pings on
// the ticker, teardown on the first failed write or on finalize.
func (l *Live) writePump(ws *websocket.Conn, send chan []byte) {
	defer func() {
		l.drop(send)
		_ = ws.Close()
	}()

	frames := channerics.OrDone(l.done, (<-chan []byte)(send))
	pinger := channerics.NewTicker(l.done, livePingPeriod)
	for {
		select {
		case msg, ok := <-frames:
			if !ok {
				return
			}
			_ = ws.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case _, ok := <-pinger:
			if !ok {
				return
			}
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return
			}
		}
	}
}

// drop unregisters a client queue.
func (l *Live) drop(send chan []byte) {
	l.mu.Lock()
	delete(l.clients, send)
	l.mu.Unlock()
}

// PushFrame stores the frame and broadcasts it; clients whose queue is full
// miss this frame and pick up the next.
func (l *Live) PushFrame(g *grid.Grid, t float64) error {
	l.store(g, t)

	msg, err := json.Marshal(frameMsg{
		T:      t,
		Frame:  l.Len() - 1,
		Width:  g.Width(),
		Height: g.Height(),
		Cells:  g.Data(),
	})
	if err != nil {
		return err
	}
	l.mu.Lock()
	for send := range l.clients {
		select {
		case send <- msg:
		default: // slow client: drop this frame
		}
	}
	l.mu.Unlock()

	return nil
}

// Finalize disconnects all clients. Safe to call more than once.
func (l *Live) Finalize() error {
	l.once.Do(func() { close(l.done) })

	return nil
}

// Compile-time assertion: *Live satisfies the Sink contract.
var _ Sink = (*Live)(nil)
