package arcade

import "testing"

func TestSpawnAvoidsRightHalfBoundary(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(42)
	vp := Viewport{Width: 800, Height: 600}
	rect := Rect{Left: 400, Top: 0, Right: 800, Bottom: 600}
	const radius = 30.0

	clear := 0
	for i := 0; i < 1000; i++ {
		x, y, _ := SpawnPosition(radius, vp, []Rect{rect}, cfg.Spawn, rng)
		if !rect.IntersectsCircle(x, y, radius) {
			clear++
		}
	}
	if clear < 990 {
		t.Errorf("expected >=99%% of spawns outside the boundary, got %d/1000", clear)
	}
}

func TestSpawnAvoidsBoundaryReachingPastEdges(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(43)
	vp := Viewport{Width: 800, Height: 600}
	// Right half, extended past the top, right and bottom spawn lines.
	rect := Rect{Left: 400, Top: -300, Right: 1200, Bottom: 900}
	const radius = 30.0

	clear := 0
	for i := 0; i < 1000; i++ {
		x, y, ok := SpawnPosition(radius, vp, []Rect{rect}, cfg.Spawn, rng)
		if ok && !rect.IntersectsCircle(x, y, radius) {
			clear++
		}
	}
	if clear < 990 {
		t.Errorf("expected >=99%% clear spawns, got %d/1000", clear)
	}
}

func TestSpawnOnEdgeWithMargin(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(44)
	vp := Viewport{Width: 800, Height: 600, ScrollX: 100, ScrollY: 2000}
	const radius = 20.0
	m := radius + cfg.Spawn.Margin

	for i := 0; i < 200; i++ {
		x, y, ok := SpawnPosition(radius, vp, nil, cfg.Spawn, rng)
		if !ok {
			t.Fatal("spawn without boundaries should always succeed")
		}
		onEdge := x == vp.Left()-m || x == vp.Right()+m || y == vp.Top()-m || y == vp.Bottom()+m
		if !onEdge {
			t.Fatalf("spawn (%f,%f) should sit on an edge line in page coordinates", x, y)
		}
	}
}

func TestSpawnFallbackAcceptsLastSample(t *testing.T) {
	cfg := DefaultConfig()
	rng := newRand(45)
	vp := Viewport{Width: 800, Height: 600}
	everything := Rect{Left: -1000, Top: -1000, Right: 2000, Bottom: 2000}

	x, y, ok := SpawnPosition(10, vp, []Rect{everything}, cfg.Spawn, rng)
	if ok {
		t.Error("spawn should report failure when every position is blocked")
	}
	if x < vp.Left() || x > vp.Right() || y < vp.Top() || y > vp.Bottom() {
		t.Errorf("fallback sample (%f,%f) should lie inside the viewport", x, y)
	}
}

func TestInteriorPositionRespectsInset(t *testing.T) {
	rng := newRand(46)
	vp := Viewport{Width: 800, Height: 600, ScrollY: 300}
	for i := 0; i < 200; i++ {
		x, y, ok := InteriorPosition(8, 50, vp, nil, 10, rng)
		if !ok {
			t.Fatal("interior spawn without boundaries should succeed")
		}
		if x < 50 || x > 750 || y < 350 || y > 850 {
			t.Fatalf("position (%f,%f) outside the inset viewport", x, y)
		}
	}
}
