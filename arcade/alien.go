package arcade

import "math"

// AlienState is the alien ship's AI state
type AlienState int

const (
	AlienEntering AlienState = iota
	AlienActive
	AlienRetreating
)

func (s AlienState) String() string {
	switch s {
	case AlienEntering:
		return "entering"
	case AlienActive:
		return "active"
	case AlienRetreating:
		return "retreating"
	}
	return "unknown"
}

// AlienShip flies in from a side edge, hovers around the player firing
// aimed shots, and leaves once its lifetime runs out or it is badly hurt.
type AlienShip struct {
	X, Y            float64
	VX, VY          float64
	Radius          float64
	Health          int
	MaxHealth       int
	State           AlienState
	TargetX         float64
	TargetY         float64
	SpeedFactor     float64
	FireCD          int
	Age             int
	FromLeft        bool
	OrbitAngle      float64
	ShouldBeRemoved bool

	cfg *Config
	rng Rand
}

// NewAlienShip places a ship just outside the left or right viewport edge at
// a random height. Coordinates are page space.
func NewAlienShip(cfg *Config, rng Rand, vp Viewport, fromLeft bool) *AlienShip {
	ac := cfg.Alien
	m := ac.Radius + cfg.Spawn.Margin
	s := &AlienShip{
		Y:           vp.Top() + ac.Radius + rng.Float64()*math.Max(0, vp.Height-2*ac.Radius),
		Radius:      ac.Radius,
		Health:      ac.Health,
		MaxHealth:   ac.Health,
		SpeedFactor: randRange(rng, 0.9, 1.1),
		FireCD:      ac.FireInterval,
		FromLeft:    fromLeft,
		OrbitAngle:  rng.Float64() * 2 * math.Pi,
		cfg:         cfg,
		rng:         rng,
	}
	if fromLeft {
		s.X = vp.Left() - m
	} else {
		s.X = vp.Right() + m
	}
	return s
}

func (s *AlienShip) Kind() Kind                { return KindAlienShip }
func (s *AlienShip) Circle() (x, y, r float64) { return s.X, s.Y, s.Radius }
func (s *AlienShip) Removed() bool             { return s.ShouldBeRemoved }
func (s *AlienShip) Remove()                   { s.ShouldBeRemoved = true }
func (s *AlienShip) Points() int               { return s.cfg.Alien.Points }

// Update runs the AI for one frame. It returns a one-element slice holding an
// enemy bullet on frames the ship fires.
func (s *AlienShip) Update(ctx *FrameContext) []Entity {
	if s.ShouldBeRemoved {
		return nil
	}
	ac := s.cfg.Alien
	vp := ctx.Viewport
	s.Age++
	if s.FireCD > 0 {
		s.FireCD--
	}

	var shot []Entity
	switch s.State {
	case AlienEntering:
		if s.FromLeft {
			s.TargetX = vp.Left() + ac.EntryInset
		} else {
			s.TargetX = vp.Right() - ac.EntryInset
		}
		s.TargetY = s.Y
		if s.X-s.Radius >= vp.Left() && s.X+s.Radius <= vp.Right() {
			s.State = AlienActive
		}

	case AlienActive:
		s.OrbitAngle += 0.01
		if ctx.Player != nil {
			px, py := vp.ToPage(ctx.Player.X, ctx.Player.Y)
			s.TargetX = px + math.Cos(s.OrbitAngle)*ac.HoverDistance
			s.TargetY = py + math.Sin(s.OrbitAngle)*ac.HoverDistance
			if s.FireCD <= 0 && !ctx.Player.IsRespawning {
				s.FireCD = ac.FireInterval
				angle := math.Atan2(py-s.Y, px-s.X)
				shot = []Entity{NewBullet(s.cfg, OwnerEnemy, s.X, s.Y, angle)}
			}
		} else {
			// No player to chase: idle around the viewport center
			s.TargetX, s.TargetY = vp.Center()
		}
		if s.Age >= ac.Lifetime || (s.MaxHealth > 1 && s.Health == 1) {
			s.State = AlienRetreating
		}

	case AlienRetreating:
		m := s.Radius + s.cfg.Spawn.Margin
		if s.X < (vp.Left()+vp.Right())/2 {
			s.TargetX = vp.Left() - 2*m
		} else {
			s.TargetX = vp.Right() + 2*m
		}
		s.TargetY = s.Y
		if s.X < vp.Left()-m || s.X > vp.Right()+m {
			s.ShouldBeRemoved = true
			return nil
		}
	}

	s.VX, s.VY = seek(s.X, s.Y, s.VX, s.VY, s.TargetX, s.TargetY, ac.Speed*s.SpeedFactor, 0.1)
	s.X += s.VX
	s.Y += s.VY
	return shot
}

// TakeDamage reduces health and removes the ship at zero
func (s *AlienShip) TakeDamage(dmg int) []Entity {
	if dmg <= 0 || s.Health <= 0 {
		return nil
	}
	s.Health -= dmg
	if s.Health <= 0 {
		s.Health = 0
		s.ShouldBeRemoved = true
	}
	return nil
}
