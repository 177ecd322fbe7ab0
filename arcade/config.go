package arcade

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrUnknownAsteroidType is returned when a config references an asteroid type with no stats
var ErrUnknownAsteroidType = errors.New("unknown asteroid type")

// AsteroidType distinguishes asteroid behaviour and stats
type AsteroidType string

const (
	AsteroidNormal AsteroidType = "normal"
	AsteroidFast   AsteroidType = "fast"
	AsteroidLarge  AsteroidType = "large"
	AsteroidHoming AsteroidType = "homing"
	AsteroidDebris AsteroidType = "debris"
)

// asteroidTypeOrder fixes iteration order so seeded spawns are reproducible
var asteroidTypeOrder = []AsteroidType{
	AsteroidNormal, AsteroidFast, AsteroidLarge, AsteroidHoming, AsteroidDebris,
}

// AsteroidStats holds the per-type asteroid values
type AsteroidStats struct {
	Radius     float64 `yaml:"radius"`
	Health     int     `yaml:"health"`
	Points     int     `yaml:"points"`
	Splits     int     `yaml:"splits"` // debris children on destruction
	CoinChance float64 `yaml:"coinChance"`
}

// AsteroidTuning holds values shared by all asteroid types
type AsteroidTuning struct {
	SpawnFrames           int     `yaml:"spawnFrames"` // frames for the grow-in animation
	DebrisSpeedMultiplier float64 `yaml:"debrisSpeedMultiplier"`
	HomingAccel           float64 `yaml:"homingAccel"`
	HomingMaxSpeed        float64 `yaml:"homingMaxSpeed"`
	MaxRotationSpeed      float64 `yaml:"maxRotationSpeed"`
}

// PlayerConfig tunes the cursor player
type PlayerConfig struct {
	Radius        float64 `yaml:"radius"`
	Lives         int     `yaml:"lives"`
	RespawnFrames int     `yaml:"respawnFrames"`
	FireCooldown  int     `yaml:"fireCooldown"`
	MoveEpsilon   float64 `yaml:"moveEpsilon"` // min cursor travel before the facing angle updates
	BoostFrames   int     `yaml:"boostFrames"`
	BoostCooldown int     `yaml:"boostCooldown"` // frames after a boost before the next can start
}

// BulletConfig tunes player and enemy bullets
type BulletConfig struct {
	Radius        float64 `yaml:"radius"`
	PlayerSpeed   float64 `yaml:"playerSpeed"`
	EnemySpeed    float64 `yaml:"enemySpeed"`
	Damage        int     `yaml:"damage"`
	PlayerBounces int     `yaml:"playerBounces"`
	EnemyBounces  int     `yaml:"enemyBounces"`
	PlayerColor   string  `yaml:"playerColor"`
	EnemyColor    string  `yaml:"enemyColor"`
	Spread        float64 `yaml:"spread"` // radians between multi-shot bullets
}

// CoinConfig tunes dropped coins
type CoinConfig struct {
	Radius   float64 `yaml:"radius"`
	Value    int     `yaml:"value"`
	Lifespan int     `yaml:"lifespan"` // frames
}

// PowerUpConfig tunes power-up drops and their effect duration
type PowerUpConfig struct {
	Radius     float64 `yaml:"radius"`
	Lifespan   int     `yaml:"lifespan"`
	DropChance float64 `yaml:"dropChance"`
	Duration   int     `yaml:"duration"`
}

// AlienConfig tunes the alien ship AI
type AlienConfig struct {
	Radius        float64 `yaml:"radius"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	FireInterval  int     `yaml:"fireInterval"`
	Points        int     `yaml:"points"`
	HoverDistance float64 `yaml:"hoverDistance"`
	Lifetime      int     `yaml:"lifetime"` // frames active before retreating
	CoinValue     int     `yaml:"coinValue"`
	EntryInset    float64 `yaml:"entryInset"`
}

// GhostConfig tunes the chase-mode hunters
type GhostConfig struct {
	Radius            float64               `yaml:"radius"`
	Speed             float64               `yaml:"speed"`
	EnragedMultiplier float64               `yaml:"enragedMultiplier"`
	ScatterFrames     int                   `yaml:"scatterFrames"`
	ChaseFrames       int                   `yaml:"chaseFrames"`
	AheadDistance     float64               `yaml:"aheadDistance"`
	ShyDistance       float64               `yaml:"shyDistance"`
	WanderFrames      int                   `yaml:"wanderFrames"`
	Pellets           int                   `yaml:"pellets"`
	PelletValue       int                   `yaml:"pelletValue"`
	Points            int                   `yaml:"points"`
	SpeedFactors      map[GhostName]float64 `yaml:"speedFactors"`
}

// SpawnConfig tunes spawn placement and wave scheduling
type SpawnConfig struct {
	Margin           float64 `yaml:"margin"` // added to the entity radius outside the viewport edge
	EdgeAttempts     int     `yaml:"edgeAttempts"`
	FallbackAttempts int     `yaml:"fallbackAttempts"`
	InitialDelayMs   float64 `yaml:"initialDelayMs"`
}

// WaveSpec declares one wave of the table
type WaveSpec struct {
	Label        string               `yaml:"label"`
	Asteroids    map[AsteroidType]int `yaml:"asteroids"`
	Aliens       int                  `yaml:"aliens"`
	AlienDelayMs float64              `yaml:"alienDelayMs"`
}

// Config is the full simulation configuration. It is built once and never
// mutated afterwards; every component receives the same pointer.
type Config struct {
	Player    PlayerConfig                   `yaml:"player"`
	Asteroid  AsteroidTuning                 `yaml:"asteroid"`
	Asteroids map[AsteroidType]AsteroidStats `yaml:"asteroids"`
	Bullet    BulletConfig                   `yaml:"bullet"`
	Coin      CoinConfig                     `yaml:"coin"`
	PowerUp   PowerUpConfig                  `yaml:"powerUp"`
	Alien     AlienConfig                    `yaml:"alien"`
	Ghost     GhostConfig                    `yaml:"ghost"`
	Spawn     SpawnConfig                    `yaml:"spawn"`
	Waves     []WaveSpec                     `yaml:"waves"`
}

// DefaultConfig returns the embedded default configuration.
// It panics if the embedded file is invalid.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(defaultYAML)
	if err != nil {
		panic("arcade: invalid embedded config: " + err.Error())
	}
	return cfg
}

// LoadConfig reads and validates a YAML config file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates YAML config data
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Stats returns the stats for an asteroid type
func (c *Config) Stats(t AsteroidType) (AsteroidStats, error) {
	s, ok := c.Asteroids[t]
	if !ok {
		return AsteroidStats{}, fmt.Errorf("%w: %q", ErrUnknownAsteroidType, t)
	}
	return s, nil
}

// stats is Stats for types already checked by validateConfig
func (c *Config) stats(t AsteroidType) AsteroidStats {
	if s, ok := c.Asteroids[t]; ok {
		return s
	}
	return c.Asteroids[AsteroidNormal]
}

// LastWave returns the index of the final wave
func (c *Config) LastWave() int {
	return len(c.Waves) - 1
}

func validateConfig(cfg *Config) error {
	for _, t := range asteroidTypeOrder {
		s, ok := cfg.Asteroids[t]
		if !ok {
			return fmt.Errorf("asteroids: missing stats for %q", t)
		}
		if s.Radius <= 0 {
			return fmt.Errorf("asteroids.%s: radius must be positive, got %v", t, s.Radius)
		}
		if s.Health <= 0 {
			return fmt.Errorf("asteroids.%s: health must be positive, got %d", t, s.Health)
		}
		if s.Splits < 0 {
			return fmt.Errorf("asteroids.%s: splits cannot be negative", t)
		}
	}
	if cfg.Asteroids[AsteroidDebris].Splits != 0 {
		return fmt.Errorf("asteroids.debris: debris cannot split")
	}
	if cfg.Asteroid.SpawnFrames <= 0 {
		return fmt.Errorf("asteroid.spawnFrames must be positive")
	}
	if cfg.Asteroid.HomingMaxSpeed <= 0 {
		return fmt.Errorf("asteroid.homingMaxSpeed must be positive")
	}
	if cfg.Player.Radius <= 0 || cfg.Player.Lives <= 0 {
		return fmt.Errorf("player: radius and lives must be positive")
	}
	if cfg.Player.BoostFrames <= 0 || cfg.Player.BoostCooldown < 0 {
		return fmt.Errorf("player: boostFrames must be positive and boostCooldown non-negative")
	}
	if cfg.Bullet.PlayerBounces < 0 || cfg.Bullet.EnemyBounces < 0 {
		return fmt.Errorf("bullet: bounces cannot be negative")
	}
	if cfg.Spawn.EdgeAttempts <= 0 || cfg.Spawn.FallbackAttempts <= 0 {
		return fmt.Errorf("spawn: attempt budgets must be positive")
	}
	if cfg.Alien.FireInterval <= 0 {
		return fmt.Errorf("alien.fireInterval must be positive")
	}
	if cfg.Ghost.Pellets <= 0 || cfg.Ghost.Speed <= 0 {
		return fmt.Errorf("ghost: pellets and speed must be positive")
	}
	for _, name := range ghostOrder {
		if cfg.Ghost.SpeedFactors[name] <= 0 {
			return fmt.Errorf("ghost.speedFactors: missing factor for %q", name)
		}
	}
	if len(cfg.Waves) == 0 {
		return fmt.Errorf("waves cannot be empty")
	}
	for i, w := range cfg.Waves {
		if w.Label == "" {
			return fmt.Errorf("wave %d: label is required", i)
		}
		total := w.Aliens
		for t, n := range w.Asteroids {
			if _, ok := cfg.Asteroids[t]; !ok {
				return fmt.Errorf("wave %d: %w: %q", i, ErrUnknownAsteroidType, t)
			}
			if n < 0 {
				return fmt.Errorf("wave %d: negative count for %q", i, t)
			}
			total += n
		}
		if w.Aliens < 0 || w.AlienDelayMs < 0 {
			return fmt.Errorf("wave %d: alien count and delay cannot be negative", i)
		}
		if total == 0 {
			return fmt.Errorf("wave %d: spawns nothing", i)
		}
	}
	return nil
}
