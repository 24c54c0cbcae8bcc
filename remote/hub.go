// Package remote exposes a session over a websocket: clients send commands
// and input, and receive state snapshots and events.
package remote

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jtestard/pingpong/pong"
	"golang.org/x/net/websocket"
)

// Enqueuer accepts commands for the frame driver.
type Enqueuer interface {
	Enqueue(pong.Command) bool
}

const clientQueue = 16

type client struct {
	id  string
	out chan interface{}
}

// Hub fans snapshots and events out to every connected client and forwards
// client commands to the session. Publish and HandleEvent are meant to be
// called from the frame driver; the rest of the hub runs on connection
// goroutines.
type Hub struct {
	target Enqueuer

	mu      sync.Mutex
	clients map[string]*client
	last    *WsGameState
}

// NewHub returns a hub that forwards commands to target.
func NewHub(target Enqueuer) *Hub {
	return &Hub{
		target:  target,
		clients: make(map[string]*client),
	}
}

// Clients returns the number of open connections.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish sends a snapshot to every client. Clients that are behind miss it.
func (h *Hub) Publish(s pong.Snapshot) {
	msg := &WsGameState{Type: "state", Snapshot: s}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	h.broadcast(msg)
}

// Frame publishes the session's snapshot. It is meant as the frame callback
// of Session.Run and publishes even with no clients attached, so the next
// client to connect starts from the current state.
func (h *Hub) Frame(s *pong.Session) {
	h.Publish(s.Snapshot())
}

// HandleEvent implements pong.EventSink.
func (h *Hub) HandleEvent(e pong.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.broadcast(&WsEvent{Type: "event", Event: e})
}

func (h *Hub) broadcast(msg interface{}) {
	for _, c := range h.clients {
		select {
		case c.out <- msg:
		default:
		}
	}
}

// Handler returns the websocket endpoint. Origin is not checked so that
// local pages and tools can connect.
func (h *Hub) Handler() http.Handler {
	return websocket.Server{Handler: websocket.Handler(h.handleWsConnection)}
}

func (h *Hub) handleWsConnection(ws *websocket.Conn) {
	c := &client{
		id:  uuid.New().String(),
		out: make(chan interface{}, clientQueue),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	if h.last != nil {
		c.out <- h.last
	}
	h.mu.Unlock()
	log.Printf("remote: client %s connected from %s", c.id, ws.Request().RemoteAddr)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range c.out {
			if err := websocket.JSON.Send(ws, msg); err != nil {
				return
			}
		}
	}()

	for {
		var data WsMessage
		if err := websocket.JSON.Receive(ws, &data); err != nil {
			break
		}
		cmd, err := data.Command()
		if err != nil {
			log.Printf("remote: client %s: %v", c.id, err)
			continue
		}
		if !h.target.Enqueue(cmd) {
			log.Printf("remote: client %s: command queue full, dropping %s", c.id, cmd.Type)
		}
	}

	h.mu.Lock()
	delete(h.clients, c.id)
	close(c.out)
	h.mu.Unlock()
	ws.Close()
	<-done
	log.Printf("remote: client %s disconnected", c.id)
}

// ListenAndServe serves the hub on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", h.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
