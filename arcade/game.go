package arcade

import (
	"fmt"
	"log"
)

// Mode selects which mini-game runs
type Mode string

const (
	ModeAsteroids Mode = "asteroids"
	ModeChase     Mode = "chase"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAsteroids, ModeChase:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}

// Phase is the game's lifecycle state
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
	PhaseWon      Phase = "won"
)

// Input is what the frame driver supplies each frame
type Input struct {
	X, Y       float64 // pointer, screen coordinates
	Viewport   Viewport
	Boundaries []Rect // page coordinates
	Fire       bool
	Boost      bool
}

// Game owns the entity collection and runs one frame per Tick. It is not safe
// for concurrent use; drive it from a single goroutine.
type Game struct {
	cfg        *Config
	rng        Rand
	mode       Mode
	phase      Phase
	player     *Player
	entities   []Entity
	waves      *WaveManager
	sched      *Scheduler
	collisions *CollisionManager
	ui         *UIManager
	sinks      []EventSink
	frame      uint64
	now        float64
	round      int
	vp         Viewport
	bounds     []Rect
}

// NewGame creates an idle game
func NewGame(cfg *Config, rng Rand) *Game {
	return &Game{
		cfg:        cfg,
		rng:        rng,
		mode:       ModeAsteroids,
		phase:      PhaseIdle,
		waves:      NewWaveManager(cfg, rng),
		sched:      NewScheduler(),
		collisions: NewCollisionManager(),
		ui:         NewUIManager(cfg.LastWave()),
	}
}

// AddSink registers an observer for every event the game emits
func (g *Game) AddSink(s EventSink) {
	g.sinks = append(g.sinks, s)
}

func (g *Game) Config() *Config     { return g.cfg }
func (g *Game) Mode() Mode          { return g.mode }
func (g *Game) Phase() Phase        { return g.phase }
func (g *Game) Player() *Player     { return g.player }
func (g *Game) UI() *UIManager      { return g.ui }
func (g *Game) Waves() *WaveManager { return g.waves }
func (g *Game) Frame() uint64       { return g.frame }

// Entities returns the live entity slice. Callers must not modify it.
func (g *Game) Entities() []Entity { return g.entities }

// Snapshot returns a copy of the current frame's state
func (g *Game) Snapshot() Snapshot  { return g.snapshot() }

// Start resets the game and begins a run in the given mode. The first wave
// or round starts on the next Tick.
func (g *Game) Start(mode Mode) {
	g.Reset()
	g.mode = mode
	g.phase = PhasePlaying
	g.player = NewPlayer(g.cfg)
	g.emit(Event{Type: EventGameStarted, Lives: g.player.Lives, Label: string(mode)})
}

// Reset returns to idle and cancels every pending spawn so nothing from the
// previous run appears later.
func (g *Game) Reset() {
	g.sched.Reset()
	g.waves.Reset()
	g.entities = nil
	g.player = nil
	g.round = 0
	g.phase = PhaseIdle
	g.ui.Reset()
}

// Tick advances the simulation by one frame. now is the game clock in
// milliseconds.
func (g *Game) Tick(now float64, in Input) {
	g.now = now
	g.frame++
	g.vp = in.Viewport
	g.bounds = in.Boundaries
	g.ui.Update()

	if g.phase != PhasePlaying {
		return
	}

	p := g.player
	p.MoveTo(in.X, in.Y, g.cfg.Player.MoveEpsilon)
	p.Boost(in.Boost)
	p.Firing = in.Fire && g.mode == ModeAsteroids
	p.Update()

	g.entities = append(g.entities, g.sched.Due(now)...)
	g.waves.Update(now)

	ctx := &FrameContext{
		Frame:      g.frame,
		Now:        now,
		Viewport:   g.vp,
		Boundaries: g.bounds,
		Player:     p,
		Config:     g.cfg,
		Rand:       g.rng,
	}
	var spawned []Entity
	for _, e := range g.entities {
		spawned = append(spawned, g.safeUpdate(e, ctx)...)
	}
	if p.CanFire() {
		spawned = append(spawned, p.Fire(g.cfg, g.vp)...)
	}
	g.entities = append(g.entities, spawned...)

	for _, ev := range g.collisions.CheckCollisions(p, g.entities, g.vp) {
		g.apply(ev)
		if g.phase != PhasePlaying {
			break
		}
	}
	g.compact()

	if g.phase == PhasePlaying {
		g.advance()
	}
}

// safeUpdate runs one entity update. A panicking entity is removed and the
// frame carries on.
func (g *Game) safeUpdate(e Entity, ctx *FrameContext) (out []Entity) {
	if e.Removed() {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("game: %s update panicked, removing it: %v", e.Kind(), r)
			e.Remove()
			out = nil
		}
	}()
	return e.Update(ctx)
}

func (g *Game) emit(ev Event) {
	g.ui.HandleEvent(ev)
	for _, s := range g.sinks {
		s.HandleEvent(ev)
	}
}

// apply turns a collision event into state changes
func (g *Game) apply(ev Event) {
	p := g.player
	switch ev.Type {
	case EventBulletHitEnemy:
		if ev.Bullet.Removed() || ev.Enemy.Removed() {
			return
		}
		ev.Bullet.Remove()
		g.entities = append(g.entities, ev.Enemy.TakeDamage(ev.Bullet.Damage)...)
		g.emit(ev)
		if ev.Enemy.Removed() {
			g.destroyed(ev.Enemy)
		}

	case EventPlayerHitEnemy:
		if p.IsRespawning || !p.Alive() {
			return
		}
		if ev.Bullet != nil {
			if ev.Bullet.Removed() {
				return
			}
			ev.Bullet.Remove()
		} else if ev.Enemy != nil {
			if ev.Enemy.Removed() {
				return
			}
			if ev.Enemy.Kind() == KindGhost {
				ev.Enemy.(*Ghost).Retreat()
			}
		}
		g.emit(ev)
		g.hitPlayer()

	case EventPlayerCollectPowerUp:
		if ev.PowerUp.Removed() {
			return
		}
		ev.PowerUp.Remove()
		p.ApplyPowerUp(ev.PowerUp.Type, g.cfg)
		g.emit(ev)

	case EventPlayerCollectCoin:
		if ev.Coin.Removed() {
			return
		}
		ev.Coin.Remove()
		g.emit(ev)
	}
}

func (g *Game) hitPlayer() {
	absorbed, died := g.player.Hit(g.cfg)
	switch {
	case absorbed:
		g.emit(Event{Type: EventShieldBroken})
	case died:
		g.emit(Event{Type: EventPlayerDamaged, Lives: 0})
		g.phase = PhaseGameOver
		g.sched.Reset()
		g.emit(Event{Type: EventGameOver, Points: g.ui.Score, Wave: g.waves.CurrentWave, Label: string(g.mode)})
	default:
		g.emit(Event{Type: EventPlayerDamaged, Lives: g.player.Lives})
	}
}

// destroyed scores an enemy and rolls its drops
func (g *Game) destroyed(e Enemy) {
	g.emit(Event{Type: EventEnemyDestroyed, Enemy: e, Points: e.Points()})

	x, y, _ := e.Circle()
	switch e.Kind() {
	case KindAsteroid:
		a := e.(*Asteroid)
		if g.rng.Float64() < g.cfg.stats(a.Type).CoinChance {
			g.entities = append(g.entities, NewCoin(g.cfg, g.rng, x, y, g.cfg.Coin.Value, g.cfg.Coin.Lifespan))
		}
		if a.Type != AsteroidDebris && g.rng.Float64() < g.cfg.PowerUp.DropChance {
			g.entities = append(g.entities, NewPowerUp(g.cfg, g.rng, x, y))
		}
	case KindAlienShip:
		g.entities = append(g.entities, NewCoin(g.cfg, g.rng, x, y, g.cfg.Alien.CoinValue, g.cfg.Coin.Lifespan))
	}
}

// compact drops removed entities. It runs between update passes only.
func (g *Game) compact() {
	kept := g.entities[:0]
	for _, e := range g.entities {
		if !e.Removed() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(g.entities); i++ {
		g.entities[i] = nil
	}
	g.entities = kept
}

// advance starts the next wave or round once the current one is cleared
func (g *Game) advance() {
	switch g.mode {
	case ModeAsteroids:
		if g.waves.IsTransitioning || g.sched.Pending() > 0 || g.count(KindAsteroid, KindAlienShip) > 0 {
			return
		}
		ws := g.waves.StartNextWave(g.now, g.vp, g.bounds)
		if ws.Win {
			g.phase = PhaseWon
			g.emit(Event{Type: EventGameWin, Points: g.ui.Score, Wave: ws.Wave})
			return
		}
		g.sched.Schedule(g.now, ws.Spawns)
		g.emit(Event{Type: EventWaveStarted, Wave: ws.Wave, Label: ws.Label})

	case ModeChase:
		if g.count(KindGhost) == 0 {
			for i, name := range ghostOrder {
				g.entities = append(g.entities, NewGhost(g.cfg, g.rng, name, i, g.vp))
			}
		}
		if g.count(KindCoin) > 0 {
			return
		}
		g.round++
		g.spawnPellets()
		g.emit(Event{Type: EventRoundStarted, Wave: g.round, Label: fmt.Sprintf("ROUND %d", g.round)})
	}
}

func (g *Game) spawnPellets() {
	inset := g.cfg.Spawn.Margin
	for i := 0; i < g.cfg.Ghost.Pellets; i++ {
		x, y, ok := InteriorPosition(g.cfg.Coin.Radius, inset, g.vp, g.bounds, g.cfg.Spawn.FallbackAttempts, g.rng)
		if !ok {
			log.Printf("game: no clear pellet spot, using (%.0f, %.0f)", x, y)
		}
		g.entities = append(g.entities, NewCoin(g.cfg, g.rng, x, y, g.cfg.Ghost.PelletValue, 0))
	}
}

func (g *Game) count(kinds ...Kind) int {
	n := 0
	for _, e := range g.entities {
		if e.Removed() {
			continue
		}
		for _, k := range kinds {
			if e.Kind() == k {
				n++
				break
			}
		}
	}
	return n
}
