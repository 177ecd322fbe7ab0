package arcade

import "math"

// Coin is a collectible dropped by destroyed enemies. In chase mode coins are
// the pellets and never expire.
type Coin struct {
	X, Y            float64
	Value           int
	Radius          float64
	Life            int // frames left; non-positive at creation means no expiry
	PulseSeed       float64
	ShouldBeRemoved bool

	expires bool
}

// NewCoin creates a coin that expires after lifespan frames. A lifespan of zero
// or less creates a coin that stays until collected.
func NewCoin(cfg *Config, rng Rand, x, y float64, value, lifespan int) *Coin {
	return &Coin{
		X:         x,
		Y:         y,
		Value:     value,
		Radius:    cfg.Coin.Radius,
		Life:      lifespan,
		PulseSeed: rng.Float64() * 2 * math.Pi,
		expires:   lifespan > 0,
	}
}

func (c *Coin) Kind() Kind                { return KindCoin }
func (c *Coin) Circle() (x, y, r float64) { return c.X, c.Y, c.Radius }
func (c *Coin) Removed() bool             { return c.ShouldBeRemoved }
func (c *Coin) Remove()                   { c.ShouldBeRemoved = true }

// Update ticks down the coin lifetime
func (c *Coin) Update(ctx *FrameContext) []Entity {
	if c.ShouldBeRemoved || !c.expires {
		return nil
	}
	c.Life--
	if c.Life <= 0 {
		c.ShouldBeRemoved = true
	}
	return nil
}

// Pulse returns the draw scale for the given frame
func (c *Coin) Pulse(frame uint64) float64 {
	return 1 + 0.15*math.Sin(float64(frame)*0.1+c.PulseSeed)
}
