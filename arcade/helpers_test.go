package arcade

import (
	"math"
	"math/rand"
)

var testVP = Viewport{Width: 800, Height: 600}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func abs(v float64) float64 {
	return math.Abs(v)
}

func newCtx(cfg *Config, rng Rand, p *Player, bounds ...Rect) *FrameContext {
	return &FrameContext{
		Viewport:   testVP,
		Boundaries: bounds,
		Player:     p,
		Config:     cfg,
		Rand:       rng,
	}
}

// placedPlayer returns a player already positioned at screen (x, y)
func placedPlayer(cfg *Config, x, y float64) *Player {
	p := NewPlayer(cfg)
	p.MoveTo(x, y, cfg.Player.MoveEpsilon)
	return p
}

// recorder collects emitted events
type recorder struct {
	events []Event
}

func (r *recorder) HandleEvent(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) count(t EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
