package main

import (
	"sync"

	"cursor-arcade/arcade"
)

const (
	maxConnsPerIP = 5
	maxTotalConns = 1000
)

// Hub owns the connected clients and their sessions
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	sessions   *SessionManager
	// Connection limiting (mutex-protected, accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int
	// Storage & telemetry
	db        *DB
	auth      *Auth
	analytics *Analytics
	metrics   *Metrics
}

// NewHub creates a new Hub. db may be nil, in which case credits live only as
// long as the connection.
func NewHub(db *DB, cfg *arcade.Config) *Hub {
	analytics := NewAnalytics(db)
	metrics := NewMetrics()
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		sessions:   NewSessionManager(cfg, db, analytics, metrics),
		ipConns:    make(map[string]int),
		db:         db,
		auth:       NewAuth(db),
		analytics:  analytics,
		metrics:    metrics,
	}
}

func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= maxTotalConns || h.ipConns[ip] >= maxConnsPerIP {
		h.metrics.Rejected.Inc()
		return false
	}
	return true
}

func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]++
	h.totalConns++
	h.metrics.Connections.Set(float64(h.totalConns))
}

func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
	h.metrics.Connections.Set(float64(h.totalConns))
}

// Attach gives a freshly upgraded client its session and sends the welcome
func (h *Hub) Attach(c *Client, token string) error {
	sess, err := h.sessions.CreateSession(c.guestID, c)
	if err != nil {
		return err
	}
	c.sessionID = sess.ID
	c.SendJSON(Envelope{T: MsgWelcome, Data: WelcomeMsg{
		SID:     sess.ID,
		Token:   token,
		Credits: sess.Credits(),
	}})
	return nil
}

// Run processes register/unregister events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			// Stop the session first so it never writes to a closed channel
			if client.sessionID != "" {
				h.sessions.RemoveSession(client.sessionID)
			}
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
		}
	}
}

// Shutdown stops every session and flushes analytics
func (h *Hub) Shutdown() {
	h.sessions.StopAll()
	h.analytics.Stop()
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TotalConns returns the tracked connection count
func (h *Hub) TotalConns() int {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns
}
