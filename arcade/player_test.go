package arcade

import (
	"math"
	"testing"
)

func TestPlayerAngleIgnoresJitter(t *testing.T) {
	cfg := DefaultConfig()
	p := placedPlayer(cfg, 100, 100)
	start := p.Angle

	p.MoveTo(101, 100, cfg.Player.MoveEpsilon)
	if p.Angle != start {
		t.Errorf("sub-epsilon move should keep the angle, got %f", p.Angle)
	}
	p.MoveTo(101, 120, cfg.Player.MoveEpsilon)
	if abs(p.Angle-math.Pi/2) > 1e-9 {
		t.Errorf("moving down should face down, got %f", p.Angle)
	}
}

func TestPlayerFiresInPageSpace(t *testing.T) {
	cfg := DefaultConfig()
	p := placedPlayer(cfg, 100, 100)
	p.Angle = 0
	vp := Viewport{Width: 800, Height: 600, ScrollY: 400}

	out := p.Fire(cfg, vp)

	if len(out) != 1 {
		t.Fatalf("expected one bullet, got %d", len(out))
	}
	b := out[0].(*Bullet)
	if b.X != 100+p.Radius || b.Y != 500 || b.Owner != OwnerPlayer {
		t.Errorf("bullet should start at the nose in page space, got (%f,%f)", b.X, b.Y)
	}
	if p.FireCD != cfg.Player.FireCooldown {
		t.Errorf("cooldown should be %d, got %d", cfg.Player.FireCooldown, p.FireCD)
	}
}

func TestPlayerPowerUps(t *testing.T) {
	cfg := DefaultConfig()
	p := placedPlayer(cfg, 100, 100)
	p.ApplyPowerUp(PowerUpMultiShot, cfg)
	p.ApplyPowerUp(PowerUpRapidFire, cfg)

	out := p.Fire(cfg, testVP)

	if len(out) != 3 {
		t.Errorf("multi-shot should fire 3 bullets, got %d", len(out))
	}
	if p.FireCD != cfg.Player.FireCooldown/2 {
		t.Errorf("rapid fire should halve the cooldown, got %d", p.FireCD)
	}
}

func TestPlayerHitAndDeath(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)
	for i := 1; i < cfg.Player.Lives; i++ {
		if _, died := p.Hit(cfg); died {
			t.Fatalf("player died early on hit %d", i)
		}
		if !p.IsRespawning {
			t.Fatal("player should respawn after a hit")
		}
		if _, died := p.Hit(cfg); died {
			t.Fatal("respawning player should ignore hits")
		}
		for p.IsRespawning {
			p.Update()
		}
	}
	if _, died := p.Hit(cfg); !died || p.Alive() {
		t.Error("last life should end the run")
	}
}

func TestPlayerBoostRunsOutThenCoolsDown(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)

	for i := 0; i < cfg.Player.BoostFrames; i++ {
		p.Boost(true)
		if !p.IsBoosting {
			t.Fatalf("boost should last %d frames, ended at %d", cfg.Player.BoostFrames, i)
		}
		p.Update()
	}
	p.Boost(true)
	if p.IsBoosting {
		t.Fatal("boost should end when its frames run out even if the key is held")
	}
	if !p.CoolingDown() || p.BoostCD != cfg.Player.BoostCooldown {
		t.Fatalf("expected a %d frame cooldown, got %d", cfg.Player.BoostCooldown, p.BoostCD)
	}

	for i := 0; i < cfg.Player.BoostCooldown; i++ {
		p.Update()
		p.Boost(true)
		if i < cfg.Player.BoostCooldown-1 && p.IsBoosting {
			t.Fatalf("boost restarted during cooldown at frame %d", i)
		}
	}
	if !p.IsBoosting {
		t.Error("holding the key should boost again once the cooldown is over")
	}
}

func TestPlayerBoostReleaseStartsCooldown(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg)

	p.Boost(true)
	p.Update()
	p.Boost(false)
	if p.IsBoosting || !p.CoolingDown() {
		t.Error("releasing the key should end the boost and start the cooldown")
	}
}

func TestRectIntersectsCircle(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 100, Bottom: 50}
	if !r.IntersectsCircle(110, 25, 10.5) {
		t.Error("circle overlapping the right edge should intersect")
	}
	if r.IntersectsCircle(110, 25, 10) {
		t.Error("circle touching the edge should not intersect")
	}
	if !r.IntersectsCircle(50, 25, 1) {
		t.Error("circle inside the rect should intersect")
	}
}
