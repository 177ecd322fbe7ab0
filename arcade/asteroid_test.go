package arcade

import (
	"math"
	"testing"
)

func TestAsteroidNormalSplitsIntoTwoDebris(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAsteroid(cfg, newRand(1), AsteroidNormal, 0, 0, 0, 0)
	if a.Health != 3 {
		t.Fatalf("normal asteroid should start with 3 health, got %d", a.Health)
	}

	debris := a.TakeDamage(3)
	if !a.ShouldBeRemoved {
		t.Error("asteroid should be removed at zero health")
	}
	if len(debris) != 2 {
		t.Fatalf("expected 2 debris, got %d", len(debris))
	}
	mul := cfg.Asteroid.DebrisSpeedMultiplier
	for _, e := range debris {
		d := e.(*Asteroid)
		if d.Type != AsteroidDebris || d.Health != 1 {
			t.Errorf("bad debris: type=%s health=%d", d.Type, d.Health)
		}
		if abs(d.VX) > mul || abs(d.VY) > mul {
			t.Errorf("debris velocity (%f,%f) exceeds multiplier %f", d.VX, d.VY, mul)
		}
	}
}

func TestAsteroidLargeSplitsIntoThreeDebris(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAsteroid(cfg, newRand(2), AsteroidLarge, 50, 50, 0, 0)
	debris := a.TakeDamage(a.Health)
	if len(debris) != 3 {
		t.Fatalf("expected 3 debris, got %d", len(debris))
	}
}

func TestAsteroidOtherTypesDoNotSplit(t *testing.T) {
	cfg := DefaultConfig()
	for _, typ := range []AsteroidType{AsteroidFast, AsteroidHoming, AsteroidDebris} {
		a := NewAsteroid(cfg, newRand(3), typ, 0, 0, 0, 0)
		if debris := a.TakeDamage(100); len(debris) != 0 {
			t.Errorf("%s should not split, got %d debris", typ, len(debris))
		}
		if !a.ShouldBeRemoved {
			t.Errorf("%s should be removed", typ)
		}
	}
}

func TestAsteroidDamageAccumulates(t *testing.T) {
	cfg := DefaultConfig()
	once := NewAsteroid(cfg, newRand(4), AsteroidNormal, 0, 0, 0, 0)
	onceDebris := once.TakeDamage(3)

	steps := NewAsteroid(cfg, newRand(4), AsteroidNormal, 0, 0, 0, 0)
	var stepDebris []Entity
	for i := 0; i < 3; i++ {
		d := steps.TakeDamage(1)
		if i < 2 && len(d) != 0 {
			t.Fatalf("hit %d should not split", i+1)
		}
		stepDebris = append(stepDebris, d...)
	}

	if once.Health != steps.Health || once.ShouldBeRemoved != steps.ShouldBeRemoved {
		t.Errorf("end states differ: (%d,%v) vs (%d,%v)",
			once.Health, once.ShouldBeRemoved, steps.Health, steps.ShouldBeRemoved)
	}
	if len(onceDebris) != len(stepDebris) {
		t.Errorf("debris counts differ: %d vs %d", len(onceDebris), len(stepDebris))
	}
}

func TestAsteroidSplitsOnlyOnce(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAsteroid(cfg, newRand(5), AsteroidNormal, 0, 0, 0, 0)
	a.TakeDamage(5)
	if d := a.TakeDamage(1); d != nil {
		t.Errorf("destroyed asteroid should not split again, got %d debris", len(d))
	}
	if a.Health != 0 {
		t.Errorf("health should stay at 0, got %d", a.Health)
	}
}

func TestAsteroidShape(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(6)
	for i := 0; i < 50; i++ {
		a := NewAsteroid(cfg, rng, AsteroidNormal, 0, 0, 0, 0)
		if n := len(a.Shape); n < 8 || n > 12 {
			t.Fatalf("shape should have 8-12 vertices, got %d", n)
		}
		for _, v := range a.Shape {
			r := math.Hypot(v.X, v.Y)
			if r < 0.7-1e-9 || r > 1.3+1e-9 {
				t.Fatalf("vertex radius %f outside [0.7, 1.3]", r)
			}
		}
	}
}

func TestHomingAsteroidSpeedCap(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(7)
	a := NewAsteroid(cfg, rng, AsteroidHoming, 400, 300, 5, -5)
	ctx := newCtx(cfg, rng, placedPlayer(cfg, 100, 100))

	for i := 0; i < 1000; i++ {
		ctx.Player.X = float64(i % 800)
		a.Update(ctx)
		if s := math.Hypot(a.VX, a.VY); s > cfg.Asteroid.HomingMaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %f exceeds cap", i, s)
		}
	}
}

func TestHomingAsteroidAcceleratesBeforeClamp(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(8)
	a := NewAsteroid(cfg, rng, AsteroidHoming, 100, 300, 0, 0)
	ctx := newCtx(cfg, rng, placedPlayer(cfg, 500, 300))

	a.Update(ctx)
	if abs(a.VX-cfg.Asteroid.HomingAccel) > 1e-9 || abs(a.VY) > 1e-9 {
		t.Errorf("expected velocity (%f,0), got (%f,%f)", cfg.Asteroid.HomingAccel, a.VX, a.VY)
	}
}

func TestHomingAsteroidTargetsPlayerInPageSpace(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(9)
	// Player is at screen (400,100); scrolled 1000 down that is page y 1100.
	a := NewAsteroid(cfg, rng, AsteroidHoming, 400, 1300, 0, 0)
	ctx := newCtx(cfg, rng, placedPlayer(cfg, 400, 100))
	ctx.Viewport.ScrollY = 1000

	a.Update(ctx)
	if a.VY >= 0 {
		t.Errorf("asteroid below the player should steer up, got vy=%f", a.VY)
	}
}

func TestAsteroidBouncesOffBoundary(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(10)
	a := NewAsteroid(cfg, rng, AsteroidNormal, 100, 100, 1, 0)
	rect := Rect{Left: 125, Top: 50, Right: 300, Bottom: 150}

	a.Update(newCtx(cfg, rng, nil, rect))

	if a.VX != -1 {
		t.Errorf("vx should reflect to -1, got %f", a.VX)
	}
	if rect.IntersectsCircle(a.X, a.Y, a.Radius) {
		t.Errorf("asteroid should be pushed out of the boundary, at (%f,%f)", a.X, a.Y)
	}
}

func TestAsteroidBounceTakesPrecedenceOverWrap(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(11)
	// Past the left wrap line and overlapping a boundary at the same time.
	a := NewAsteroid(cfg, rng, AsteroidNormal, -100, 300, -1, 0)
	rect := Rect{Left: -200, Top: 0, Right: -90, Bottom: 600}

	a.Update(newCtx(cfg, rng, nil, rect))

	if a.ShouldBeRemoved {
		t.Fatal("bounced asteroid should not be removed")
	}
	if a.X > 0 || a.VX <= 0 {
		t.Errorf("asteroid should bounce rightwards without wrapping, got x=%f vx=%f", a.X, a.VX)
	}
}

func TestAsteroidWrapsAcrossViewport(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(12)
	m := cfg.stats(AsteroidNormal).Radius + cfg.Spawn.Margin
	a := NewAsteroid(cfg, rng, AsteroidNormal, -m+0.5, 300, -1, 0)

	a.Update(newCtx(cfg, rng, nil))

	if a.X != testVP.Right()+m {
		t.Errorf("asteroid should wrap to the right edge, got x=%f", a.X)
	}
	if a.ShouldBeRemoved {
		t.Error("wrapped asteroid should stay alive")
	}
}

func TestAsteroidWrapIntoBoundaryRemoves(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(13)
	m := cfg.stats(AsteroidNormal).Radius + cfg.Spawn.Margin
	a := NewAsteroid(cfg, rng, AsteroidNormal, -m+0.5, 300, -1, 0)
	// Covers the wrap destination only.
	rect := Rect{Left: 850, Top: 250, Right: 950, Bottom: 350}

	a.Update(newCtx(cfg, rng, nil, rect))

	if !a.ShouldBeRemoved {
		t.Error("asteroid wrapping into a boundary should be removed")
	}
}

func TestAsteroidSpawnProgressGrows(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(14)
	a := NewAsteroid(cfg, rng, AsteroidNormal, 400, 300, 0, 0)
	ctx := newCtx(cfg, rng, nil)
	for i := 0; i < cfg.Asteroid.SpawnFrames+5; i++ {
		a.Update(ctx)
	}
	if a.SpawnProgress != 1 {
		t.Errorf("spawn progress should reach 1, got %f", a.SpawnProgress)
	}
}
