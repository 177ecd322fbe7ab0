package arcade

import "math"

// GhostName identifies one of the chase-mode hunters
type GhostName string

const (
	Blinky GhostName = "blinky" // chases the player directly
	Pinky  GhostName = "pinky"  // ambushes ahead of the player
	Inky   GhostName = "inky"   // flanks from the side
	Clyde  GhostName = "clyde"  // backs off when close
	Spooky GhostName = "spooky" // wanders
)

var ghostOrder = []GhostName{Blinky, Pinky, Inky, Clyde, Spooky}

// GhostState is the hunter's AI state
type GhostState int

const (
	GhostEntering GhostState = iota
	GhostScatter
	GhostChase
	GhostRetreating
)

func (s GhostState) String() string {
	switch s {
	case GhostEntering:
		return "entering"
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostRetreating:
		return "retreating"
	}
	return "unknown"
}

// releaseFrames staggers ghosts leaving the pen
const releaseFrames = 45

// Ghost is a chase-mode hunter. Each one keeps its own target point and
// alternates between scattering to its corner and chasing the player.
type Ghost struct {
	Name            GhostName
	X, Y            float64
	VX, VY          float64
	Radius          float64
	State           GhostState
	TargetX         float64
	TargetY         float64
	SpeedFactor     float64
	Enraged         bool
	ModeT           int // frames left in the current scatter/chase phase
	ReleaseT        int // frames left in the pen while entering
	ShouldBeRemoved bool

	homeX, homeY float64
	wanderX      float64
	wanderY      float64
	wanderT      int
	cfg          *Config
	rng          Rand
}

// NewGhost places a ghost in the pen at the viewport center. index staggers
// its release.
func NewGhost(cfg *Config, rng Rand, name GhostName, index int, vp Viewport) *Ghost {
	cx, cy := vp.Center()
	x := cx + float64(index-len(ghostOrder)/2)*cfg.Ghost.Radius*2.5
	return &Ghost{
		Name:        name,
		X:           x,
		Y:           cy,
		Radius:      cfg.Ghost.Radius,
		SpeedFactor: cfg.Ghost.SpeedFactors[name],
		ReleaseT:    index * releaseFrames,
		homeX:       x,
		homeY:       cy,
		cfg:         cfg,
		rng:         rng,
	}
}

func (g *Ghost) Kind() Kind                { return KindGhost }
func (g *Ghost) Circle() (x, y, r float64) { return g.X, g.Y, g.Radius }
func (g *Ghost) Removed() bool             { return g.ShouldBeRemoved }
func (g *Ghost) Remove()                   { g.ShouldBeRemoved = true }
func (g *Ghost) Points() int               { return g.cfg.Ghost.Points }

// Collidable reports whether the ghost can hurt the player. Ghosts in the pen
// or heading home are harmless.
func (g *Ghost) Collidable() bool {
	return !g.ShouldBeRemoved && (g.State == GhostScatter || g.State == GhostChase)
}

// Retreat sends the ghost back to the pen
func (g *Ghost) Retreat() {
	g.State = GhostRetreating
}

// TakeDamage makes the ghost retreat; ghosts cannot be destroyed
func (g *Ghost) TakeDamage(dmg int) []Entity {
	if dmg > 0 && g.Collidable() {
		g.Retreat()
	}
	return nil
}

// Speed returns the ghost's current top speed
func (g *Ghost) Speed() float64 {
	s := g.cfg.Ghost.Speed * g.SpeedFactor
	if g.Enraged {
		s *= g.cfg.Ghost.EnragedMultiplier
	}
	return s
}

// Update runs the hunter AI for one frame
func (g *Ghost) Update(ctx *FrameContext) []Entity {
	if g.ShouldBeRemoved {
		return nil
	}
	gc := g.cfg.Ghost
	// Only an engaged boost enrages; cooldown after a boost does not.
	g.Enraged = ctx.Player != nil && ctx.Player.IsBoosting

	turn := 0.15
	speed := g.Speed()
	switch g.State {
	case GhostEntering:
		g.TargetX, g.TargetY = g.homeX, g.homeY
		if g.ReleaseT > 0 {
			g.ReleaseT--
		} else {
			g.State = GhostScatter
			g.ModeT = gc.ScatterFrames
		}
	case GhostScatter, GhostChase:
		g.ModeT--
		if g.ModeT <= 0 {
			if g.State == GhostScatter {
				g.State = GhostChase
				g.ModeT = gc.ChaseFrames
			} else {
				g.State = GhostScatter
				g.ModeT = gc.ScatterFrames
			}
		}
		if g.State == GhostChase && ctx.Player != nil {
			g.TargetX, g.TargetY = g.chaseTarget(ctx)
		} else {
			g.TargetX, g.TargetY = g.corner(ctx.Viewport)
		}
	case GhostRetreating:
		speed *= 1.5
		turn = 0.3
		g.TargetX, g.TargetY = g.homeX, g.homeY
		if Distance(g.X, g.Y, g.homeX, g.homeY) <= speed {
			g.X, g.Y = g.homeX, g.homeY
			g.VX, g.VY = 0, 0
			g.State = GhostEntering
			g.ReleaseT = releaseFrames
			return nil
		}
	}

	g.VX, g.VY = seek(g.X, g.Y, g.VX, g.VY, g.TargetX, g.TargetY, speed, turn)
	if v := math.Hypot(g.VX, g.VY); v > speed {
		g.VX *= speed / v
		g.VY *= speed / v
	}
	g.X += g.VX
	g.Y += g.VY
	return nil
}

// corner returns the ghost's scatter corner in page coordinates
func (g *Ghost) corner(vp Viewport) (float64, float64) {
	inset := g.Radius * 2
	switch g.Name {
	case Blinky:
		return vp.Right() - inset, vp.Top() + inset
	case Pinky:
		return vp.Left() + inset, vp.Top() + inset
	case Inky:
		return vp.Right() - inset, vp.Bottom() - inset
	case Clyde:
		return vp.Left() + inset, vp.Bottom() - inset
	}
	cx, _ := vp.Center()
	return cx, vp.Bottom() - inset
}

// chaseTarget picks the ghost's personal target around the player
func (g *Ghost) chaseTarget(ctx *FrameContext) (float64, float64) {
	gc := g.cfg.Ghost
	p := ctx.Player
	px, py := ctx.Viewport.ToPage(p.X, p.Y)
	switch g.Name {
	case Pinky:
		return px + math.Cos(p.Angle)*gc.AheadDistance, py + math.Sin(p.Angle)*gc.AheadDistance
	case Inky:
		a := p.Angle + math.Pi/2
		return px + math.Cos(a)*gc.AheadDistance, py + math.Sin(a)*gc.AheadDistance
	case Clyde:
		if Distance(g.X, g.Y, px, py) < gc.ShyDistance {
			return g.corner(ctx.Viewport)
		}
		return px, py
	case Spooky:
		if g.wanderT <= 0 {
			vp := ctx.Viewport
			g.wanderX = vp.Left() + g.rng.Float64()*vp.Width
			g.wanderY = vp.Top() + g.rng.Float64()*vp.Height
			g.wanderT = gc.WanderFrames
		}
		g.wanderT--
		return g.wanderX, g.wanderY
	}
	return px, py
}
