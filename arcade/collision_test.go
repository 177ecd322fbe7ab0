package arcade

import "testing"

func TestCheckCollisionStrict(t *testing.T) {
	const rA, rB = 10.0, 5.0
	if !CheckCollision(0, 0, rA, rA+rB-1e-6, 0, rB) {
		t.Error("circles closer than the radius sum should collide")
	}
	if CheckCollision(0, 0, rA, rA+rB, 0, rB) {
		t.Error("touching circles should not collide")
	}
	if CheckCollision(0, 0, rA, 0, 100, rB) {
		t.Error("distant circles should not collide")
	}
}

func TestIsCollidingEntities(t *testing.T) {
	a := &Coin{X: 0, Y: 0, Radius: 8}
	b := &Coin{X: 16, Y: 0, Radius: 8}
	if IsCollidingEntities(a, b) {
		t.Error("touching coins should not collide")
	}
	b.X = 15.9
	if !IsCollidingEntities(a, b) {
		t.Error("overlapping coins should collide")
	}
}

func TestPlayerHitsAsteroid(t *testing.T) {
	cfg := DefaultConfig()
	p := placedPlayer(cfg, 100, 100)
	p.Radius = 10
	a := NewAsteroid(cfg, newRand(1), AsteroidNormal, 105, 105, 0, 0)
	a.Radius = 8

	events := NewCollisionManager().CheckCollisions(p, []Entity{a}, Viewport{Width: 800, Height: 600})

	if len(events) != 1 || events[0].Type != EventPlayerHitEnemy {
		t.Fatalf("expected one player_hit_enemy, got %+v", events)
	}
	if events[0].Enemy != a {
		t.Error("event should reference the asteroid")
	}
}

func TestCollisionSubtractsScroll(t *testing.T) {
	cfg := DefaultConfig()
	p := placedPlayer(cfg, 100, 100)
	vp := Viewport{Width: 800, Height: 600, ScrollY: 500}
	cm := NewCollisionManager()

	below := NewAsteroid(cfg, newRand(1), AsteroidNormal, 105, 605, 0, 0)
	if events := cm.CheckCollisions(p, []Entity{below}, vp); len(events) != 1 {
		t.Errorf("asteroid at the player's page position should hit, got %d events", len(events))
	}

	atScreen := NewAsteroid(cfg, newRand(1), AsteroidNormal, 105, 105, 0, 0)
	if events := cm.CheckCollisions(p, []Entity{atScreen}, vp); len(events) != 0 {
		t.Errorf("asteroid scrolled out of view should not hit, got %d events", len(events))
	}
}

func TestRespawningPlayerIsImmune(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(1)
	p := placedPlayer(cfg, 100, 100)
	p.IsRespawning = true

	entities := []Entity{
		NewAsteroid(cfg, rng, AsteroidNormal, 100, 100, 0, 0),
		&Bullet{X: 100, Y: 100, Radius: 3, Owner: OwnerEnemy},
		NewCoin(cfg, rng, 100, 100, 1, 100),
		NewPowerUp(cfg, rng, 100, 100),
	}
	if events := NewCollisionManager().CheckCollisions(p, entities, testVP); len(events) != 0 {
		t.Errorf("respawning player should get no events, got %+v", events)
	}
}

func TestRespawningPlayerBulletsStillHit(t *testing.T) {
	cfg := DefaultConfig()
	p := placedPlayer(cfg, 700, 500)
	p.IsRespawning = true
	a := NewAsteroid(cfg, newRand(1), AsteroidNormal, 200, 200, 0, 0)
	b := &Bullet{X: 200, Y: 200, Radius: 3, Owner: OwnerPlayer, Damage: 1}

	events := NewCollisionManager().CheckCollisions(p, []Entity{a, b}, testVP)
	if len(events) != 1 || events[0].Type != EventBulletHitEnemy {
		t.Errorf("expected one bullet_hit_enemy, got %+v", events)
	}
}

func TestBulletHitsOnlyOneEnemy(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(1)
	a1 := NewAsteroid(cfg, rng, AsteroidNormal, 200, 200, 0, 0)
	a2 := NewAsteroid(cfg, rng, AsteroidNormal, 210, 200, 0, 0)
	b := &Bullet{X: 205, Y: 200, Radius: 3, Owner: OwnerPlayer, Damage: 1}

	events := NewCollisionManager().CheckCollisions(nil, []Entity{a1, a2, b}, testVP)
	if len(events) != 1 {
		t.Fatalf("a bullet should register one hit per frame, got %d", len(events))
	}
	if events[0].Bullet != b {
		t.Error("event should reference the bullet")
	}
}

func TestCollisionDoesNotMutate(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAsteroid(cfg, newRand(1), AsteroidNormal, 200, 200, 0, 0)
	b := &Bullet{X: 200, Y: 200, Radius: 3, Owner: OwnerPlayer, Damage: 1}

	NewCollisionManager().CheckCollisions(nil, []Entity{a, b}, testVP)

	if a.Health != 3 || a.ShouldBeRemoved || b.ShouldBeRemoved {
		t.Error("CheckCollisions must not change entities")
	}
}

func TestCollisionSkipsRemovedEntities(t *testing.T) {
	cfg := DefaultConfig()
	p := placedPlayer(cfg, 100, 100)
	a := NewAsteroid(cfg, newRand(1), AsteroidNormal, 100, 100, 0, 0)
	a.Remove()

	if events := NewCollisionManager().CheckCollisions(p, []Entity{a}, testVP); len(events) != 0 {
		t.Errorf("removed asteroid should be ignored, got %d events", len(events))
	}
}

func TestPlayerCollectsPickups(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(1)
	p := placedPlayer(cfg, 100, 100)
	coin := NewCoin(cfg, rng, 100, 105, 3, 100)
	pu := NewPowerUp(cfg, rng, 95, 100)
	enemyShot := &Bullet{X: 104, Y: 100, Radius: 3, Owner: OwnerEnemy}

	events := NewCollisionManager().CheckCollisions(p, []Entity{coin, pu, enemyShot}, testVP)

	got := map[EventType]int{}
	for _, ev := range events {
		got[ev.Type]++
		if ev.Type == EventPlayerCollectCoin && ev.Value != 3 {
			t.Errorf("coin event value should be 3, got %d", ev.Value)
		}
		if ev.Type == EventPlayerHitEnemy && (ev.Bullet != enemyShot || ev.Enemy != nil) {
			t.Error("enemy bullet hit should carry the bullet only")
		}
	}
	if got[EventPlayerCollectCoin] != 1 || got[EventPlayerCollectPowerUp] != 1 || got[EventPlayerHitEnemy] != 1 {
		t.Errorf("unexpected events: %v", got)
	}
}

func TestGhostInPenIsHarmless(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGhost(cfg, newRand(1), Pinky, 1, testVP)
	p := placedPlayer(cfg, g.X, g.Y)

	cm := NewCollisionManager()
	if events := cm.CheckCollisions(p, []Entity{g}, testVP); len(events) != 0 {
		t.Errorf("entering ghost should not collide, got %d events", len(events))
	}
	g.State = GhostChase
	if events := cm.CheckCollisions(p, []Entity{g}, testVP); len(events) != 1 {
		t.Errorf("chasing ghost should collide, got %d events", len(events))
	}
}
