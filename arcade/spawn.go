package arcade

// Edges of the viewport a spawn can come from
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// SpawnPosition finds a page position just outside a random viewport edge
// where a circle of the given radius does not overlap any boundary.
//
// After cfg.EdgeAttempts failures it samples inside the viewport instead, and
// after cfg.FallbackAttempts more it returns the last sample even if it
// still overlaps. ok reports whether the position is clear.
func SpawnPosition(radius float64, vp Viewport, bounds []Rect, cfg SpawnConfig, rng Rand) (x, y float64, ok bool) {
	m := radius + cfg.Margin
	for i := 0; i < cfg.EdgeAttempts; i++ {
		var sx, sy float64
		switch rng.Intn(4) {
		case edgeTop:
			sx, sy = rng.Float64()*vp.Width, -m
		case edgeRight:
			sx, sy = vp.Width+m, rng.Float64()*vp.Height
		case edgeBottom:
			sx, sy = rng.Float64()*vp.Width, vp.Height+m
		default:
			sx, sy = -m, rng.Float64()*vp.Height
		}
		x, y = vp.ToPage(sx, sy)
		if !intersectsAny(bounds, x, y, radius) {
			return x, y, true
		}
	}

	for i := 0; i < cfg.FallbackAttempts; i++ {
		x, y = randomInside(vp, rng)
		if !intersectsAny(bounds, x, y, radius) {
			return x, y, true
		}
	}
	return x, y, false
}

// InteriorPosition samples inside the viewport, keeping inset away from the
// edges, until the circle clears every boundary. It returns the last sample
// when the budget runs out.
func InteriorPosition(radius, inset float64, vp Viewport, bounds []Rect, attempts int, rng Rand) (x, y float64, ok bool) {
	inner := Viewport{
		Width:   vp.Width - 2*inset,
		Height:  vp.Height - 2*inset,
		ScrollX: vp.ScrollX + inset,
		ScrollY: vp.ScrollY + inset,
	}
	if inner.Width <= 0 || inner.Height <= 0 {
		inner = vp
	}
	for i := 0; i < attempts; i++ {
		x, y = randomInside(inner, rng)
		if !intersectsAny(bounds, x, y, radius) {
			return x, y, true
		}
	}
	return x, y, false
}

func randomInside(vp Viewport, rng Rand) (float64, float64) {
	return vp.ToPage(rng.Float64()*vp.Width, rng.Float64()*vp.Height)
}
