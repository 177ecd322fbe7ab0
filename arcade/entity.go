package arcade

// Kind discriminates entity variants so collections can be partitioned with a switch
type Kind int

const (
	KindAsteroid Kind = iota
	KindBullet
	KindCoin
	KindPowerUp
	KindAlienShip
	KindGhost
)

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindCoin:
		return "coin"
	case KindPowerUp:
		return "powerup"
	case KindAlienShip:
		return "alien"
	case KindGhost:
		return "ghost"
	}
	return "unknown"
}

// FrameContext is the read-only input to one frame of entity updates.
type FrameContext struct {
	Frame      uint64
	Now        float64 // milliseconds on the game clock
	Viewport   Viewport
	Boundaries []Rect // page coordinates
	Player     *Player
	Config     *Config
	Rand       Rand
}

// Entity is a simulation object living in page coordinates.
//
// Update advances one frame and returns any entities it spawned. It must only
// touch the receiver; cross-entity effects go through collision events.
type Entity interface {
	Kind() Kind
	Circle() (x, y, r float64)
	Update(ctx *FrameContext) []Entity
	Removed() bool
	Remove()
}

// Enemy is an entity player bullets can damage
type Enemy interface {
	Entity
	// TakeDamage applies damage and returns entities spawned by it (debris).
	TakeDamage(dmg int) []Entity
	Points() int
}

// IsCollidingEntities reports whether two entities' circles overlap. Both must
// be in the same coordinate space.
func IsCollidingEntities(a, b Entity) bool {
	ax, ay, ar := a.Circle()
	bx, by, br := b.Circle()
	return CheckCollision(ax, ay, ar, bx, by, br)
}
