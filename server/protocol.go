package main

import (
	"encoding/json"

	"cursor-arcade/arcade"
)

// Client -> Server message types
const (
	MsgInput   = "input"
	MsgStart   = "start"
	MsgRestart = "restart"
	MsgMode    = "mode"
)

// Server -> Client message types
const (
	MsgState   = "state" // binary msgpack GameState, never sent as JSON
	MsgWelcome = "welcome"
	MsgEvent   = "event"
	MsgCredits = "credits"
	MsgError   = "error"
)

const (
	maxViewportSide = 16384
	maxBounds       = 64
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages; json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// InputMsg is sent by the client on every pointer or scroll change
type InputMsg struct {
	MX     float64      `json:"mx"` // pointer, screen coords
	MY     float64      `json:"my"`
	SX     float64      `json:"sx"` // page scroll offset
	SY     float64      `json:"sy"`
	VW     float64      `json:"vw"` // viewport size
	VH     float64      `json:"vh"`
	Fire   bool         `json:"fire"`
	Boost  bool         `json:"boost"`
	Bounds [][4]float64 `json:"bounds,omitempty"` // [left, top, right, bottom] in page coords
}

// ModeMsg selects the mini-game for the next start
type ModeMsg struct {
	Mode string `json:"mode"`
}

// WelcomeMsg is sent once after the socket is accepted
type WelcomeMsg struct {
	SID     string `json:"sid"`
	Token   string `json:"token"`
	Credits int    `json:"credits"`
}

// EventMsg mirrors the UI-relevant fields of an arcade event
type EventMsg struct {
	Type   string `json:"type"`
	Wave   int    `json:"wave,omitempty"`
	Label  string `json:"label,omitempty"`
	Points int    `json:"points,omitempty"`
	Value  int    `json:"value,omitempty"`
	Lives  int    `json:"lives,omitempty"`
	Text   string `json:"text,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// CreditsMsg reports the persisted balance
type CreditsMsg struct {
	Credits int `json:"credits"`
}

// ErrorMsg is sent on errors
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// GameState is the binary snapshot broadcast to the client
type GameState = arcade.Snapshot

// toInput converts a wire input into simulation input, dropping anything that
// can't describe a real browser viewport.
func (m InputMsg) toInput() (arcade.Input, bool) {
	if m.VW <= 0 || m.VH <= 0 || m.VW > maxViewportSide || m.VH > maxViewportSide {
		return arcade.Input{}, false
	}
	in := arcade.Input{
		X: arcade.Clamp(m.MX, 0, m.VW),
		Y: arcade.Clamp(m.MY, 0, m.VH),
		Viewport: arcade.Viewport{
			Width:   m.VW,
			Height:  m.VH,
			ScrollX: m.SX,
			ScrollY: m.SY,
		},
		Fire:  m.Fire,
		Boost: m.Boost,
	}
	bounds := m.Bounds
	if len(bounds) > maxBounds {
		bounds = bounds[:maxBounds]
	}
	for _, b := range bounds {
		if b[2] <= b[0] || b[3] <= b[1] {
			continue
		}
		in.Boundaries = append(in.Boundaries, arcade.Rect{Left: b[0], Top: b[1], Right: b[2], Bottom: b[3]})
	}
	return in, true
}

// eventMsg projects an arcade event onto the wire. Collision events are
// internal and return false.
func eventMsg(ev arcade.Event) (EventMsg, bool) {
	switch ev.Type {
	case arcade.EventBulletHitEnemy, arcade.EventPlayerHitEnemy, arcade.EventPlayerCollectPowerUp:
		return EventMsg{}, false
	}
	msg := EventMsg{
		Type:   string(ev.Type),
		Wave:   ev.Wave,
		Label:  ev.Label,
		Points: ev.Points,
		Value:  ev.Value,
		Lives:  ev.Lives,
		Text:   ev.Text,
	}
	if ev.Enemy != nil {
		msg.Kind = ev.Enemy.Kind().String()
	}
	return msg, true
}
