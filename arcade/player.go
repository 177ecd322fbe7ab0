package arcade

import "math"

// Player is the cursor ship. Unlike every other entity it lives in screen
// coordinates; the Game feeds it the pointer position each frame.
type Player struct {
	X, Y         float64 // screen coordinates
	VX, VY       float64 // pointer travel over the last frame
	Radius       float64
	Angle        float64 // facing, follows the direction of travel
	Lives        int
	IsBoosting   bool
	BoostT       int // boost frames left
	BoostCD      int // cooldown frames before the next boost
	IsRespawning bool
	RespawnT     int // frames of invulnerability left
	Firing       bool
	FireCD       int
	Shield       bool
	RapidFireT   int
	MultiShotT   int

	placed        bool
	boostFrames   int
	boostCooldown int
}

// NewPlayer creates a player with full lives
func NewPlayer(cfg *Config) *Player {
	return &Player{
		Radius:        cfg.Player.Radius,
		Lives:         cfg.Player.Lives,
		Angle:         -math.Pi / 2,
		boostFrames:   cfg.Player.BoostFrames,
		boostCooldown: cfg.Player.BoostCooldown,
	}
}

// Alive reports whether the player has lives left
func (p *Player) Alive() bool { return p.Lives > 0 }

// MoveTo sets the pointer position. The facing angle only follows movement
// larger than eps so a resting pointer doesn't jitter.
func (p *Player) MoveTo(x, y, eps float64) {
	if !p.placed {
		p.X, p.Y = x, y
		p.placed = true
		return
	}
	p.VX = x - p.X
	p.VY = y - p.Y
	if p.VX*p.VX+p.VY*p.VY > eps*eps {
		p.Angle = math.Atan2(p.VY, p.VX)
	}
	p.X, p.Y = x, y
}

// Boost feeds the boost key state. Holding it starts a boost once the cooldown
// is over; releasing it or running out of boost frames ends the boost and
// starts the cooldown.
func (p *Player) Boost(held bool) {
	switch {
	case p.IsBoosting && (!held || p.BoostT <= 0):
		p.IsBoosting = false
		p.BoostT = 0
		p.BoostCD = p.boostCooldown
	case !p.IsBoosting && held && p.BoostCD <= 0:
		p.IsBoosting = true
		p.BoostT = p.boostFrames
	}
}

// CoolingDown reports whether a finished boost is still recharging
func (p *Player) CoolingDown() bool { return !p.IsBoosting && p.BoostCD > 0 }

// Update ticks the player's timers one frame
func (p *Player) Update() {
	if p.IsBoosting {
		p.BoostT--
	} else if p.BoostCD > 0 {
		p.BoostCD--
	}
	if p.FireCD > 0 {
		p.FireCD--
	}
	if p.RapidFireT > 0 {
		p.RapidFireT--
	}
	if p.MultiShotT > 0 {
		p.MultiShotT--
	}
	if p.IsRespawning {
		p.RespawnT--
		if p.RespawnT <= 0 {
			p.RespawnT = 0
			p.IsRespawning = false
		}
	}
}

// Hit applies one hit. A shield absorbs it and grants half the respawn
// window; otherwise a life is lost and the player becomes invulnerable for the
// full window.
func (p *Player) Hit(cfg *Config) (absorbed, died bool) {
	if p.IsRespawning || !p.Alive() {
		return false, false
	}
	if p.Shield {
		p.Shield = false
		p.IsRespawning = true
		p.RespawnT = cfg.Player.RespawnFrames / 2
		return true, false
	}
	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		return false, true
	}
	p.IsRespawning = true
	p.RespawnT = cfg.Player.RespawnFrames
	return false, false
}

// CanFire returns true if the player can shoot this frame
func (p *Player) CanFire() bool {
	return p.Alive() && p.Firing && p.FireCD <= 0 && !p.IsRespawning
}

// Fire spawns the player's bullets in page coordinates and starts the cooldown
func (p *Player) Fire(cfg *Config, vp Viewport) []Entity {
	x, y := vp.ToPage(p.X, p.Y)
	x += math.Cos(p.Angle) * p.Radius
	y += math.Sin(p.Angle) * p.Radius

	var out []Entity
	if p.MultiShotT > 0 {
		for _, off := range [3]float64{-cfg.Bullet.Spread, 0, cfg.Bullet.Spread} {
			out = append(out, NewBullet(cfg, OwnerPlayer, x, y, p.Angle+off))
		}
	} else {
		out = append(out, NewBullet(cfg, OwnerPlayer, x, y, p.Angle))
	}

	p.FireCD = cfg.Player.FireCooldown
	if p.RapidFireT > 0 {
		p.FireCD /= 2
	}
	return out
}

// ApplyPowerUp grants the power-up's effect
func (p *Player) ApplyPowerUp(t PowerUpType, cfg *Config) {
	switch t {
	case PowerUpShield:
		p.Shield = true
	case PowerUpRapidFire:
		p.RapidFireT = cfg.PowerUp.Duration
	case PowerUpMultiShot:
		p.MultiShotT = cfg.PowerUp.Duration
	}
}
