// Package ws delivers live events to authenticated browser sessions. Each
// client registers under its user id; the hub fans an event out to every
// open connection that user has.
package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/dom/job-board-website/internal/domain"
)

type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const EventTypeNewMessage = "new_message"

type notification struct {
	userID string
	data   []byte
}

type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	notify     chan notification
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopOnce   sync.Once
	stopped    bool
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		notify:     make(chan notification, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for _, conns := range h.clients {
				for client := range conns {
					client.Close()
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				conns, ok := h.clients[client.userID]
				if !ok {
					conns = make(map[*Client]bool)
					h.clients[client.userID] = conns
				}
				conns[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if !h.stopped {
				if conns, ok := h.clients[client.userID]; ok && conns[client] {
					delete(conns, client)
					if len(conns) == 0 {
						delete(h.clients, client.userID)
					}
					client.Close()
				}
			}
			h.mu.Unlock()

		case n := <-h.notify:
			h.mu.Lock()
			for client := range h.clients[n.userID] {
				select {
				case client.send <- n.data:
				default:
					// Slow consumer; drop the event rather than block the hub.
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop shuts the hub down and waits for Run to exit. Idempotent.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// NotifyNewMessage implements service.Notifier.
func (h *Hub) NotifyNewMessage(userID string, msg *domain.Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("ERROR [ws.NotifyNewMessage] failed to marshal message: %v", err)
		return
	}
	data, err := json.Marshal(Event{Type: EventTypeNewMessage, Payload: payload})
	if err != nil {
		log.Printf("ERROR [ws.NotifyNewMessage] failed to marshal event: %v", err)
		return
	}

	select {
	case h.notify <- notification{userID: userID, data: data}:
	case <-h.done:
	}
}
