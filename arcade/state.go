package arcade

// Snapshot is a copy of everything a renderer needs for one frame. It shares
// no memory with the Game, so it can be serialized on another goroutine.
type Snapshot struct {
	Frame         uint64         `msgpack:"f" json:"f"`
	Mode          Mode           `msgpack:"m" json:"m"`
	Phase         Phase          `msgpack:"ph" json:"ph"`
	Wave          int            `msgpack:"w" json:"w"`
	WaveLabel     string         `msgpack:"wl" json:"wl"`
	Score         int            `msgpack:"sc" json:"sc"`
	Lives         int            `msgpack:"l" json:"l"`
	Credits       int            `msgpack:"cr" json:"cr"`
	Viewport      Viewport       `msgpack:"vp" json:"vp"`
	Player        *PlayerView    `msgpack:"p,omitempty" json:"p,omitempty"`
	Asteroids     []AsteroidView `msgpack:"a" json:"a"`
	Bullets       []BulletView   `msgpack:"b" json:"b"`
	Coins         []CoinView     `msgpack:"c" json:"c"`
	PowerUps      []PowerUpView  `msgpack:"pu" json:"pu"`
	Aliens        []AlienView    `msgpack:"al" json:"al"`
	Ghosts        []GhostView    `msgpack:"g" json:"g"`
	Notifications []string       `msgpack:"n" json:"n"`
}

// PlayerView is the player in screen coordinates
type PlayerView struct {
	X          float64 `msgpack:"x" json:"x"`
	Y          float64 `msgpack:"y" json:"y"`
	R          float64 `msgpack:"r" json:"r"`
	Angle      float64 `msgpack:"an" json:"an"`
	Boost      bool    `msgpack:"bo,omitempty" json:"bo,omitempty"`
	Respawning bool    `msgpack:"rs,omitempty" json:"rs,omitempty"`
	Shield     bool    `msgpack:"sh,omitempty" json:"sh,omitempty"`
	RapidFire  bool    `msgpack:"rf,omitempty" json:"rf,omitempty"`
	MultiShot  bool    `msgpack:"ms,omitempty" json:"ms,omitempty"`
}

// AsteroidView is an asteroid in page coordinates
type AsteroidView struct {
	X        float64      `msgpack:"x" json:"x"`
	Y        float64      `msgpack:"y" json:"y"`
	R        float64      `msgpack:"r" json:"r"`
	Type     AsteroidType `msgpack:"t" json:"t"`
	Rotation float64      `msgpack:"ro" json:"ro"`
	Scale    float64      `msgpack:"s" json:"s"` // spawn growth, 0..1
	Shape    []Vertex     `msgpack:"sh" json:"sh"`
}

// BulletView is a bullet in page coordinates
type BulletView struct {
	X     float64 `msgpack:"x" json:"x"`
	Y     float64 `msgpack:"y" json:"y"`
	R     float64 `msgpack:"r" json:"r"`
	Color string  `msgpack:"c" json:"c"`
	Owner Owner   `msgpack:"o" json:"o"`
}

// CoinView is a coin in page coordinates
type CoinView struct {
	X     float64 `msgpack:"x" json:"x"`
	Y     float64 `msgpack:"y" json:"y"`
	R     float64 `msgpack:"r" json:"r"`
	Pulse float64 `msgpack:"pl" json:"pl"`
}

// PowerUpView is a power-up in page coordinates
type PowerUpView struct {
	X    float64     `msgpack:"x" json:"x"`
	Y    float64     `msgpack:"y" json:"y"`
	R    float64     `msgpack:"r" json:"r"`
	Type PowerUpType `msgpack:"t" json:"t"`
}

// AlienView is an alien ship in page coordinates
type AlienView struct {
	X      float64 `msgpack:"x" json:"x"`
	Y      float64 `msgpack:"y" json:"y"`
	R      float64 `msgpack:"r" json:"r"`
	HP     int     `msgpack:"hp" json:"hp"`
	MaxHP  int     `msgpack:"mhp" json:"mhp"`
	State  string  `msgpack:"st" json:"st"`
	Facing float64 `msgpack:"fa" json:"fa"`
}

// GhostView is a ghost in page coordinates
type GhostView struct {
	Name    GhostName `msgpack:"n" json:"n"`
	X       float64   `msgpack:"x" json:"x"`
	Y       float64   `msgpack:"y" json:"y"`
	R       float64   `msgpack:"r" json:"r"`
	State   string    `msgpack:"st" json:"st"`
	Enraged bool      `msgpack:"en,omitempty" json:"en,omitempty"`
}

func (g *Game) snapshot() Snapshot {
	s := Snapshot{
		Frame:     g.frame,
		Mode:      g.mode,
		Phase:     g.phase,
		Wave:      g.waves.CurrentWave,
		WaveLabel: g.ui.WaveLabel,
		Score:     g.ui.Score,
		Lives:     g.ui.Lives,
		Credits:   g.ui.Credits,
		Viewport:  g.vp,
	}
	if p := g.player; p != nil {
		s.Player = &PlayerView{
			X:          p.X,
			Y:          p.Y,
			R:          p.Radius,
			Angle:      p.Angle,
			Boost:      p.IsBoosting,
			Respawning: p.IsRespawning,
			Shield:     p.Shield,
			RapidFire:  p.RapidFireT > 0,
			MultiShot:  p.MultiShotT > 0,
		}
	}
	for _, e := range g.entities {
		if e.Removed() {
			continue
		}
		switch e.Kind() {
		case KindAsteroid:
			a := e.(*Asteroid)
			shape := make([]Vertex, len(a.Shape))
			copy(shape, a.Shape)
			s.Asteroids = append(s.Asteroids, AsteroidView{
				X: a.X, Y: a.Y, R: a.Radius, Type: a.Type,
				Rotation: a.Rotation, Scale: a.SpawnProgress, Shape: shape,
			})
		case KindBullet:
			b := e.(*Bullet)
			s.Bullets = append(s.Bullets, BulletView{X: b.X, Y: b.Y, R: b.Radius, Color: b.Color, Owner: b.Owner})
		case KindCoin:
			c := e.(*Coin)
			s.Coins = append(s.Coins, CoinView{X: c.X, Y: c.Y, R: c.Radius, Pulse: c.Pulse(g.frame)})
		case KindPowerUp:
			p := e.(*PowerUp)
			s.PowerUps = append(s.PowerUps, PowerUpView{X: p.X, Y: p.Y, R: p.Radius, Type: p.Type})
		case KindAlienShip:
			a := e.(*AlienShip)
			s.Aliens = append(s.Aliens, AlienView{
				X: a.X, Y: a.Y, R: a.Radius, HP: a.Health, MaxHP: a.MaxHealth,
				State: a.State.String(), Facing: facing(a.VX, a.VY),
			})
		case KindGhost:
			gh := e.(*Ghost)
			s.Ghosts = append(s.Ghosts, GhostView{
				Name: gh.Name, X: gh.X, Y: gh.Y, R: gh.Radius,
				State: gh.State.String(), Enraged: gh.Enraged,
			})
		}
	}
	for _, n := range g.ui.Notifications {
		s.Notifications = append(s.Notifications, n.Text)
	}
	return s
}
