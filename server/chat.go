package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	maxChatBody    = 4096
	maxChatReply   = 64 * 1024
	chatTimeout    = 15 * time.Second
	maxChatMessage = 1000
)

var errNotJSON = errors.New("upstream reply is not JSON")

// ChatRequest is the body accepted by /api/chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatRelay forwards chat messages to an upstream HTTP service unchanged and
// returns its JSON reply. It adds no logic of its own.
type ChatRelay struct {
	upstream string
	client   *http.Client
}

// NewChatRelay creates a relay; an empty upstream disables it
func NewChatRelay(upstream string) *ChatRelay {
	return &ChatRelay{
		upstream: upstream,
		client:   &http.Client{Timeout: chatTimeout},
	}
}

func (cr *ChatRelay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if cr.upstream == "" {
		writeJSONError(w, http.StatusServiceUnavailable, "chat is not configured")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxChatBody)).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" || len(req.Message) > maxChatMessage {
		writeJSONError(w, http.StatusBadRequest, "message must be 1-1000 characters")
		return
	}

	reply, status, err := cr.forward(r.Context(), req)
	if err != nil {
		log.Printf("chat: upstream error: %v", err)
		writeJSONError(w, http.StatusBadGateway, "chat upstream unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(reply)
}

func (cr *ChatRelay) forward(ctx context.Context, req ChatRequest) ([]byte, int, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, 0, err
	}
	up, err := http.NewRequestWithContext(ctx, http.MethodPost, cr.upstream, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	up.Header.Set("Content-Type", "application/json")

	resp, err := cr.client.Do(up)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(io.LimitReader(resp.Body, maxChatReply))
	if err != nil {
		return nil, 0, err
	}
	if !json.Valid(reply) {
		return nil, 0, errNotJSON
	}
	return reply, resp.StatusCode, nil
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorMsg{Msg: msg})
}
