package arcade

// PowerUpType identifies the effect a power-up grants
type PowerUpType string

const (
	PowerUpShield    PowerUpType = "shield"     // absorbs the next hit
	PowerUpRapidFire PowerUpType = "rapid_fire" // halves the fire cooldown
	PowerUpMultiShot PowerUpType = "multi_shot" // three-way spread
)

var powerUpTypes = [3]PowerUpType{PowerUpShield, PowerUpRapidFire, PowerUpMultiShot}

// PowerUp is a pickup that applies a timed effect to the player
type PowerUp struct {
	X, Y            float64
	Type            PowerUpType
	Radius          float64
	Life            int
	ShouldBeRemoved bool
}

// NewPowerUp creates a power-up of a random type at the given page position
func NewPowerUp(cfg *Config, rng Rand, x, y float64) *PowerUp {
	return &PowerUp{
		X:      x,
		Y:      y,
		Type:   powerUpTypes[rng.Intn(len(powerUpTypes))],
		Radius: cfg.PowerUp.Radius,
		Life:   cfg.PowerUp.Lifespan,
	}
}

func (p *PowerUp) Kind() Kind                { return KindPowerUp }
func (p *PowerUp) Circle() (x, y, r float64) { return p.X, p.Y, p.Radius }
func (p *PowerUp) Removed() bool             { return p.ShouldBeRemoved }
func (p *PowerUp) Remove()                   { p.ShouldBeRemoved = true }

// Update ticks the power-up lifetime
func (p *PowerUp) Update(ctx *FrameContext) []Entity {
	if p.ShouldBeRemoved {
		return nil
	}
	p.Life--
	if p.Life <= 0 {
		p.ShouldBeRemoved = true
	}
	return nil
}
