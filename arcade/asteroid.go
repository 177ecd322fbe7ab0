package arcade

import "math"

// Vertex is one point of an asteroid outline on the unit circle, scaled 0.7–1.3
type Vertex struct {
	X, Y float64
}

// Asteroid drifts across the page, bounces off UI chrome and wraps at the viewport edges
type Asteroid struct {
	X, Y            float64
	VX, VY          float64
	Type            AsteroidType
	Health          int
	Radius          float64
	Shape           []Vertex
	Rotation        float64
	RotationSpeed   float64
	SpawnProgress   float64
	ShouldBeRemoved bool

	cfg *Config
	rng Rand
}

// NewAsteroid creates an asteroid with the stats of its type. The outline is
// generated here, once, from rng.
func NewAsteroid(cfg *Config, rng Rand, t AsteroidType, x, y, vx, vy float64) *Asteroid {
	stats := cfg.stats(t)
	a := &Asteroid{
		X:             x,
		Y:             y,
		VX:            vx,
		VY:            vy,
		Type:          t,
		Health:        stats.Health,
		Radius:        stats.Radius,
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: randSigned(rng, cfg.Asteroid.MaxRotationSpeed),
		cfg:           cfg,
		rng:           rng,
	}

	n := 8 + rng.Intn(5)
	a.Shape = make([]Vertex, n)
	for i := range a.Shape {
		angle := float64(i) / float64(n) * 2 * math.Pi
		scale := randRange(rng, 0.7, 1.3)
		a.Shape[i] = Vertex{X: math.Cos(angle) * scale, Y: math.Sin(angle) * scale}
	}
	return a
}

func (a *Asteroid) Kind() Kind                { return KindAsteroid }
func (a *Asteroid) Circle() (x, y, r float64) { return a.X, a.Y, a.Radius }
func (a *Asteroid) Removed() bool             { return a.ShouldBeRemoved }
func (a *Asteroid) Remove()                   { a.ShouldBeRemoved = true }

// Points returns the score for destroying this asteroid
func (a *Asteroid) Points() int { return a.cfg.stats(a.Type).Points }

// Update moves the asteroid one frame
func (a *Asteroid) Update(ctx *FrameContext) []Entity {
	if a.ShouldBeRemoved {
		return nil
	}

	if a.SpawnProgress < 1 {
		a.SpawnProgress = math.Min(1, a.SpawnProgress+1/float64(a.cfg.Asteroid.SpawnFrames))
	}

	if a.Type == AsteroidHoming {
		a.steer(ctx)
	}

	a.X += a.VX
	a.Y += a.VY
	a.Rotation += a.RotationSpeed

	// Boundary bounce must run before the edge wrap.
	if a.bounce(ctx.Boundaries) {
		return nil
	}
	a.wrap(ctx.Viewport, ctx.Boundaries)
	return nil
}

// steer nudges velocity toward the player, then caps the speed
func (a *Asteroid) steer(ctx *FrameContext) {
	tune := a.cfg.Asteroid
	if ctx.Player != nil {
		px, py := ctx.Viewport.ToPage(ctx.Player.X, ctx.Player.Y)
		dx := px - a.X
		dy := py - a.Y
		if dist := math.Hypot(dx, dy); dist > 0 {
			a.VX += dx / dist * tune.HomingAccel
			a.VY += dy / dist * tune.HomingAccel
		}
	}
	if speed := math.Hypot(a.VX, a.VY); speed > tune.HomingMaxSpeed {
		scale := tune.HomingMaxSpeed / speed
		a.VX *= scale
		a.VY *= scale
	}
}

// bounce reflects off the first overlapping boundary and reports whether it did
func (a *Asteroid) bounce(bounds []Rect) bool {
	for _, r := range bounds {
		if !r.IntersectsCircle(a.X, a.Y, a.Radius) {
			continue
		}
		dx, dy, alongX := pushOut(r, a.X, a.Y, a.Radius)
		a.X += dx
		a.Y += dy
		if alongX {
			if (dx < 0 && a.VX > 0) || (dx > 0 && a.VX < 0) {
				a.VX = -a.VX
			}
		} else {
			if (dy < 0 && a.VY > 0) || (dy > 0 && a.VY < 0) {
				a.VY = -a.VY
			}
		}
		return true
	}
	return false
}

// wrap moves an asteroid that drifted past a viewport edge to the opposite edge,
// or removes it when the destination overlaps a boundary.
func (a *Asteroid) wrap(vp Viewport, bounds []Rect) {
	m := a.Radius + a.cfg.Spawn.Margin
	x, y := a.X, a.Y
	wrapped := false

	if a.X < vp.Left()-m {
		x = vp.Right() + m
		wrapped = true
	} else if a.X > vp.Right()+m {
		x = vp.Left() - m
		wrapped = true
	}
	if a.Y < vp.Top()-m {
		y = vp.Bottom() + m
		wrapped = true
	} else if a.Y > vp.Bottom()+m {
		y = vp.Top() - m
		wrapped = true
	}

	if !wrapped {
		return
	}
	if intersectsAny(bounds, x, y, a.Radius) {
		a.ShouldBeRemoved = true
		return
	}
	a.X, a.Y = x, y
}

// TakeDamage reduces health. On the hit that takes health from positive to
// zero the asteroid is removed and, for splitting types, returns its debris.
func (a *Asteroid) TakeDamage(dmg int) []Entity {
	if dmg <= 0 || a.Health <= 0 {
		return nil
	}
	a.Health -= dmg
	if a.Health > 0 {
		return nil
	}
	a.Health = 0
	a.ShouldBeRemoved = true

	splits := a.cfg.stats(a.Type).Splits
	if splits == 0 {
		return nil
	}
	mul := a.cfg.Asteroid.DebrisSpeedMultiplier
	debris := make([]Entity, 0, splits)
	for i := 0; i < splits; i++ {
		d := NewAsteroid(a.cfg, a.rng, AsteroidDebris, a.X, a.Y, randSigned(a.rng, mul), randSigned(a.rng, mul))
		d.SpawnProgress = 1
		debris = append(debris, d)
	}
	return debris
}
