package arcade

import "math"

// Rand is the random source the simulation draws from. *math/rand.Rand satisfies it,
// so tests can pass a seeded generator and get reproducible spawns.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// randRange returns a value in [min, max)
func randRange(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// randSigned returns a value in [-mag, mag)
func randSigned(rng Rand, mag float64) float64 {
	return (rng.Float64()*2 - 1) * mag
}

// seek steers (vx, vy) toward (tx, ty) at the given speed, blending by turn in (0, 1].
func seek(x, y, vx, vy, tx, ty, speed, turn float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist < 1e-9 {
		return vx * (1 - turn), vy * (1 - turn)
	}
	if dist < speed {
		speed = dist
	}
	wantX := dx / dist * speed
	wantY := dy / dist * speed
	return vx + (wantX-vx)*turn, vy + (wantY-vy)*turn
}

// facing returns the heading of a velocity vector
func facing(vx, vy float64) float64 {
	return math.Atan2(vy, vx)
}
