package arcade

import "testing"

func TestGhostEnragedOnlyWhileBoosting(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(1)
	g := NewGhost(cfg, rng, Blinky, 0, testVP)
	p := placedPlayer(cfg, 100, 100)
	ctx := newCtx(cfg, rng, p)

	p.Boost(true)
	p.Update()
	g.Update(ctx)
	if !g.Enraged {
		t.Fatal("ghost should be enraged while the player boosts")
	}
	want := cfg.Ghost.Speed * cfg.Ghost.SpeedFactors[Blinky] * cfg.Ghost.EnragedMultiplier
	if abs(g.Speed()-want) > 1e-9 {
		t.Errorf("enraged speed should be %f, got %f", want, g.Speed())
	}

	p.Boost(false)
	p.Update()
	if !p.CoolingDown() {
		t.Fatal("releasing the boost should start the cooldown")
	}
	g.Update(ctx)
	if g.Enraged {
		t.Error("ghost should calm down as soon as the boost ends, cooldown or not")
	}

	// holding the key again during the cooldown does not boost
	p.Boost(true)
	p.Update()
	g.Update(ctx)
	if g.Enraged || p.IsBoosting {
		t.Error("boost key during cooldown should not enrage the ghost")
	}
}

func TestGhostNeverEnragedWithoutPlayer(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(2)
	g := NewGhost(cfg, rng, Spooky, 4, testVP)
	g.Enraged = true

	g.Update(newCtx(cfg, rng, nil))

	if g.Enraged {
		t.Error("ghost should not be enraged with no player")
	}
}

func TestGhostReleaseStagger(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(3)
	ctx := newCtx(cfg, rng, placedPlayer(cfg, 100, 100))
	first := NewGhost(cfg, rng, Blinky, 0, testVP)
	second := NewGhost(cfg, rng, Pinky, 1, testVP)

	first.Update(ctx)
	second.Update(ctx)
	if first.State != GhostScatter || !first.Collidable() {
		t.Errorf("first ghost should leave the pen at once, state=%s", first.State)
	}
	if second.State != GhostEntering || second.Collidable() {
		t.Errorf("second ghost should still be in the pen, state=%s", second.State)
	}
}

func TestPinkyAmbushesAhead(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(4)
	p := placedPlayer(cfg, 400, 300)
	p.Angle = 0
	g := NewGhost(cfg, rng, Pinky, 1, testVP)
	g.State = GhostChase
	g.ModeT = 100

	g.Update(newCtx(cfg, rng, p))

	if abs(g.TargetX-(400+cfg.Ghost.AheadDistance)) > 1e-9 || abs(g.TargetY-300) > 1e-9 {
		t.Errorf("pinky should target ahead of the player, got (%f,%f)", g.TargetX, g.TargetY)
	}
}

func TestBlinkyChasesPlayerInPageSpace(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(5)
	ctx := newCtx(cfg, rng, placedPlayer(cfg, 200, 150))
	ctx.Viewport.ScrollY = 900
	g := NewGhost(cfg, rng, Blinky, 0, ctx.Viewport)
	g.State = GhostChase
	g.ModeT = 100

	g.Update(ctx)

	if g.TargetX != 200 || g.TargetY != 1050 {
		t.Errorf("blinky should target the player's page position, got (%f,%f)", g.TargetX, g.TargetY)
	}
}

func TestClydeBacksOffWhenClose(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(6)
	p := placedPlayer(cfg, 400, 300)
	g := NewGhost(cfg, rng, Clyde, 3, testVP)
	g.X, g.Y = 420, 300
	g.State = GhostChase
	g.ModeT = 100

	g.Update(newCtx(cfg, rng, p))

	cx, cy := g.corner(testVP)
	if g.TargetX != cx || g.TargetY != cy {
		t.Errorf("clyde should head to its corner when close, got (%f,%f)", g.TargetX, g.TargetY)
	}
}

func TestGhostWithoutPlayerScatters(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(7)
	g := NewGhost(cfg, rng, Inky, 2, testVP)
	g.State = GhostChase
	g.ModeT = 100

	g.Update(newCtx(cfg, rng, nil))

	cx, cy := g.corner(testVP)
	if g.TargetX != cx || g.TargetY != cy {
		t.Errorf("ghost should fall back to its corner, got (%f,%f)", g.TargetX, g.TargetY)
	}
}

func TestGhostScatterChaseCycle(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(8)
	g := NewGhost(cfg, rng, Blinky, 0, testVP)
	ctx := newCtx(cfg, rng, placedPlayer(cfg, 400, 300))

	g.Update(ctx)
	for i := 0; i < cfg.Ghost.ScatterFrames; i++ {
		g.Update(ctx)
	}
	if g.State != GhostChase {
		t.Errorf("ghost should chase after scattering, state=%s", g.State)
	}
}

func TestGhostRetreatsHomeAndReenters(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(9)
	g := NewGhost(cfg, rng, Blinky, 0, testVP)
	homeX, homeY := g.X, g.Y
	g.State = GhostChase
	g.X, g.Y = homeX+200, homeY

	g.TakeDamage(1)
	if g.State != GhostRetreating || g.Collidable() {
		t.Fatalf("hit ghost should retreat, state=%s", g.State)
	}

	ctx := newCtx(cfg, rng, placedPlayer(cfg, 100, 100))
	for i := 0; i < 1000 && g.State == GhostRetreating; i++ {
		g.Update(ctx)
	}
	if g.State != GhostEntering || g.X != homeX || g.Y != homeY {
		t.Errorf("ghost should be back in the pen, state=%s at (%f,%f)", g.State, g.X, g.Y)
	}
	if g.ShouldBeRemoved {
		t.Error("ghosts are never destroyed")
	}
}
