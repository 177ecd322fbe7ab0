package arcade

import (
	"log"
	"math"
)

// ScheduledSpawn is an entity to add after Delay milliseconds
type ScheduledSpawn struct {
	Entity Entity
	Delay  float64
}

// WaveStart is the result of StartNextWave. When Win is set the table is
// exhausted and Spawns is empty.
type WaveStart struct {
	Wave   int
	Label  string
	Spawns []ScheduledSpawn
	Win    bool
}

// WaveManager walks the wave table and builds each wave's spawns. It does not
// run timers; the caller schedules the returned spawns.
type WaveManager struct {
	CurrentWave     int
	IsTransitioning bool

	transitionEnds float64
	cfg            *Config
	rng            Rand
}

// NewWaveManager creates a WaveManager positioned before the first wave
func NewWaveManager(cfg *Config, rng Rand) *WaveManager {
	return &WaveManager{CurrentWave: -1, cfg: cfg, rng: rng}
}

// Label returns the current wave's label, or "" before the first wave
func (wm *WaveManager) Label() string {
	if wm.CurrentWave < 0 || wm.CurrentWave >= len(wm.cfg.Waves) {
		return ""
	}
	return wm.cfg.Waves[wm.CurrentWave].Label
}

// StartNextWave advances to the next wave and returns what to spawn. Once the
// last wave has started every further call returns Win without advancing.
func (wm *WaveManager) StartNextWave(now float64, vp Viewport, bounds []Rect) WaveStart {
	if wm.CurrentWave >= wm.cfg.LastWave() {
		return WaveStart{Wave: wm.CurrentWave, Win: true}
	}
	wm.CurrentWave++
	wm.IsTransitioning = true
	row := wm.cfg.Waves[wm.CurrentWave]
	initial := wm.cfg.Spawn.InitialDelayMs

	ws := WaveStart{Wave: wm.CurrentWave, Label: row.Label}
	maxDelay := 0.0
	cx, cy := vp.Center()

	for _, t := range asteroidTypeOrder {
		n := row.Asteroids[t]
		if n == 0 {
			continue
		}
		stats := wm.cfg.stats(t)
		for i := 0; i < n; i++ {
			x, y, ok := SpawnPosition(stats.Radius, vp, bounds, wm.cfg.Spawn, wm.rng)
			if !ok {
				log.Printf("wave: no clear spawn for %s asteroid, using (%.0f, %.0f)", t, x, y)
			}
			// 0.5..1.0 per axis, scaled by the unit direction to center
			vx, vy := aimAt(x, y, cx, cy)
			vx *= randRange(wm.rng, 0.5, 1.0)
			vy *= randRange(wm.rng, 0.5, 1.0)
			a := NewAsteroid(wm.cfg, wm.rng, t, x, y, vx, vy)
			ws.Spawns = append(ws.Spawns, ScheduledSpawn{Entity: a, Delay: initial})
			maxDelay = math.Max(maxDelay, initial)
		}
	}

	for i := 0; i < row.Aliens; i++ {
		delay := initial + float64(i)*row.AlienDelayMs
		ship := NewAlienShip(wm.cfg, wm.rng, vp, i%2 == 0)
		ws.Spawns = append(ws.Spawns, ScheduledSpawn{Entity: ship, Delay: delay})
		maxDelay = math.Max(maxDelay, delay)
	}

	wm.transitionEnds = now + maxDelay
	return ws
}

// Update clears the transition flag once every spawn of the wave is due
func (wm *WaveManager) Update(now float64) {
	if wm.IsTransitioning && now >= wm.transitionEnds {
		wm.IsTransitioning = false
	}
}

// Reset rewinds to before the first wave
func (wm *WaveManager) Reset() {
	wm.CurrentWave = -1
	wm.IsTransitioning = false
	wm.transitionEnds = 0
}

// aimAt returns the unit vector from (x, y) toward (tx, ty)
func aimAt(x, y, tx, ty float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0
	}
	return dx / d, dy / d
}
