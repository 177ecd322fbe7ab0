package arcade

import "math"

// CheckCollision checks if two circles overlap. Touching circles do not collide.
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	return math.Hypot(x2-x1, y2-y1) < r1+r2
}

// CollisionManager turns overlapping entities into events. It never mutates
// the entities it inspects; the Game applies the events afterwards. The grid
// is scratch space, so a CollisionManager must not be shared between games.
type CollisionManager struct {
	grid *spatialGrid
}

// NewCollisionManager creates a CollisionManager
func NewCollisionManager() *CollisionManager {
	return &CollisionManager{grid: newSpatialGrid(gridCellSize)}
}

// collisionGroups is the per-call partition of the entity list
type collisionGroups struct {
	enemies       []Enemy
	playerBullets []*Bullet
	enemyBullets  []*Bullet
	powerUps      []*PowerUp
	coins         []*Coin
}

func partition(entities []Entity) collisionGroups {
	var g collisionGroups
	for _, e := range entities {
		if e.Removed() {
			continue
		}
		switch e.Kind() {
		case KindAsteroid, KindAlienShip:
			g.enemies = append(g.enemies, e.(Enemy))
		case KindGhost:
			if gh := e.(*Ghost); gh.Collidable() {
				g.enemies = append(g.enemies, gh)
			}
		case KindBullet:
			b := e.(*Bullet)
			if b.Owner == OwnerPlayer {
				g.playerBullets = append(g.playerBullets, b)
			} else {
				g.enemyBullets = append(g.enemyBullets, b)
			}
		case KindPowerUp:
			g.powerUps = append(g.powerUps, e.(*PowerUp))
		case KindCoin:
			g.coins = append(g.coins, e.(*Coin))
		}
	}
	return g
}

// CheckCollisions runs every pairwise test for one frame. player may be nil.
// The player is in screen coordinates, everything else in page coordinates.
func (cm *CollisionManager) CheckCollisions(player *Player, entities []Entity, vp Viewport) []Event {
	g := partition(entities)
	var events []Event

	cm.grid.Clear()
	for i, e := range g.enemies {
		x, y, r := e.Circle()
		cm.grid.InsertCircle(x, y, r, i)
	}
	for _, b := range g.playerBullets {
		x, y, r := b.Circle()
		i := cm.grid.First(x, y, r, func(i int) bool { return IsCollidingEntities(b, g.enemies[i]) })
		if i >= 0 {
			events = append(events, Event{Type: EventBulletHitEnemy, Bullet: b, Enemy: g.enemies[i]})
		}
	}

	// Respawn grants full immunity, pickups included.
	if player == nil || player.IsRespawning || !player.Alive() {
		return events
	}

	hitsPlayer := func(e Entity) bool {
		x, y, r := e.Circle()
		sx, sy := vp.ToScreen(x, y)
		return CheckCollision(player.X, player.Y, player.Radius, sx, sy, r)
	}

	for _, e := range g.enemies {
		if hitsPlayer(e) {
			events = append(events, Event{Type: EventPlayerHitEnemy, Enemy: e})
		}
	}
	for _, b := range g.enemyBullets {
		if hitsPlayer(b) {
			events = append(events, Event{Type: EventPlayerHitEnemy, Bullet: b})
		}
	}
	for _, p := range g.powerUps {
		if hitsPlayer(p) {
			events = append(events, Event{Type: EventPlayerCollectPowerUp, PowerUp: p})
		}
	}
	for _, c := range g.coins {
		if hitsPlayer(c) {
			events = append(events, Event{Type: EventPlayerCollectCoin, Coin: c, Value: c.Value})
		}
	}
	return events
}
