package main

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/skip2/go-qrcode"

	"cursor-arcade/arcade"
	"cursor-arcade/credits"
)

const (
	qrSize      = 256
	maxQRLength = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // Non-browser clients don't send Origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

// Options configures the HTTP surface
type Options struct {
	ClientDir    string // static files; "" disables
	ChatUpstream string // "" makes /api/chat answer 503
	PublicURL    string // default share URL for /api/qr
}

func extractIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// SetupRoutes configures HTTP routes
func SetupRoutes(hub *Hub, opts Options) *http.ServeMux {
	mux := http.NewServeMux()

	if opts.ClientDir != "" {
		// Serve static files with no-cache so browsers always revalidate
		fs := http.FileServer(http.Dir(opts.ClientDir))
		mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache")
			fs.ServeHTTP(w, r)
		}))
	}

	// WebSocket endpoint
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)
		if !hub.CanAccept(ip) {
			http.Error(w, "too many connections", http.StatusServiceUnavailable)
			return
		}
		guestID, token, err := hub.auth.Resume(r.URL.Query().Get("token"), ip)
		if err != nil {
			http.Error(w, err.Error(), http.StatusTooManyRequests)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade error: %v", err)
			return
		}

		hub.TrackConnect(ip)

		client := NewClient(hub, conn, ip, guestID)
		hub.register <- client
		if err := hub.Attach(client, token); err != nil {
			log.Printf("attach %s: %v", ip, err)
			client.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: err.Error()}})
		}

		go client.WritePump()
		go client.ReadPump()
	})

	mux.HandleFunc("/api/credits", func(w http.ResponseWriter, r *http.Request) {
		guestID, err := hub.auth.ValidateToken(bearerToken(r))
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if hub.db == nil {
			writeJSON(w, CreditsMsg{})
			return
		}
		counter, err := credits.Open(hub.db.GuestStore(guestID), credits.DefaultKey)
		if err != nil {
			log.Printf("api credits: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "storage error")
			return
		}
		writeJSON(w, CreditsMsg{Credits: counter.Value()})
	})

	mux.Handle("/api/chat", NewChatRelay(opts.ChatUpstream))

	mux.HandleFunc("/api/qr", func(w http.ResponseWriter, r *http.Request) {
		target := r.URL.Query().Get("url")
		if target == "" {
			target = opts.PublicURL
		}
		if target == "" || len(target) > maxQRLength {
			writeJSONError(w, http.StatusBadRequest, "missing or oversized url")
			return
		}
		if u, err := url.Parse(target); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			writeJSONError(w, http.StatusBadRequest, "url must be http or https")
			return
		}
		png, err := qrcode.Encode(target, qrcode.Medium, qrSize)
		if err != nil {
			log.Printf("qr encode: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "qr encode failed")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write(png)
	})

	mux.HandleFunc("/api/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		mode, err := arcade.ParseMode(r.URL.Query().Get("mode"))
		if err != nil {
			mode = arcade.ModeAsteroids
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if hub.db == nil {
			writeJSON(w, []LeaderboardEntry{})
			return
		}
		entries, err := hub.db.GetLeaderboard(string(mode), limit)
		if err != nil {
			log.Printf("api leaderboard: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "storage error")
			return
		}
		if entries == nil {
			entries = []LeaderboardEntry{}
		}
		writeJSON(w, entries)
	})

	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		stats := map[string]interface{}{
			"connections": hub.TotalConns(),
			"clients":     hub.ClientCount(),
			"sessions":    hub.sessions.Count(),
		}
		if dau, err := hub.analytics.DAUCount(); err == nil {
			stats["dau"] = dau
		}
		if counts, err := hub.analytics.EventCounts(7); err == nil && counts != nil {
			stats["events_7d"] = counts
		}
		if reach, err := hub.analytics.WaveReach(7); err == nil && reach != nil {
			stats["wave_reach_7d"] = reach
		}
		writeJSON(w, stats)
	})

	mux.Handle("/metrics", hub.metrics.Handler())

	return mux
}
