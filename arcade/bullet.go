package arcade

import "math"

// Owner identifies who fired a bullet
type Owner string

const (
	OwnerPlayer Owner = "player"
	OwnerEnemy  Owner = "enemy"
)

// Bullet flies straight, reflecting off the viewport edges while it has bounces left
type Bullet struct {
	X, Y            float64
	VX, VY          float64
	Radius          float64
	Color           string
	Owner           Owner
	Damage          int
	Bounces         int
	HitBoundary     bool
	ShouldBeRemoved bool
}

// NewBullet creates a bullet at page position (x, y) heading along angle
func NewBullet(cfg *Config, owner Owner, x, y, angle float64) *Bullet {
	b := &Bullet{
		X:      x,
		Y:      y,
		Radius: cfg.Bullet.Radius,
		Owner:  owner,
		Damage: cfg.Bullet.Damage,
	}
	speed := cfg.Bullet.PlayerSpeed
	b.Color = cfg.Bullet.PlayerColor
	b.Bounces = cfg.Bullet.PlayerBounces
	if owner == OwnerEnemy {
		speed = cfg.Bullet.EnemySpeed
		b.Color = cfg.Bullet.EnemyColor
		b.Bounces = cfg.Bullet.EnemyBounces
	}
	b.VX = math.Cos(angle) * speed
	b.VY = math.Sin(angle) * speed
	return b
}

func (b *Bullet) Kind() Kind                { return KindBullet }
func (b *Bullet) Circle() (x, y, r float64) { return b.X, b.Y, b.Radius }
func (b *Bullet) Removed() bool             { return b.ShouldBeRemoved }
func (b *Bullet) Remove()                   { b.ShouldBeRemoved = true }

// Update moves the bullet one frame
func (b *Bullet) Update(ctx *FrameContext) []Entity {
	if b.ShouldBeRemoved {
		return nil
	}
	b.X += b.VX
	b.Y += b.VY

	if intersectsAny(ctx.Boundaries, b.X, b.Y, b.Radius) {
		b.HitBoundary = true
		b.ShouldBeRemoved = true
		return nil
	}

	vp := ctx.Viewport
	outX := b.X < vp.Left() || b.X > vp.Right()
	outY := b.Y < vp.Top() || b.Y > vp.Bottom()
	if !outX && !outY {
		return nil
	}

	if b.Bounces > 0 {
		if outX {
			b.VX = -b.VX
			b.X = Clamp(b.X, vp.Left(), vp.Right())
		}
		if outY {
			b.VY = -b.VY
			b.Y = Clamp(b.Y, vp.Top(), vp.Bottom())
		}
		b.Bounces--
		return nil
	}
	b.ShouldBeRemoved = true
	return nil
}
