package arcade

// EventType names an event emitted by the collision pass or the game loop
type EventType string

// Collision events
const (
	EventBulletHitEnemy       EventType = "bullet_hit_enemy"
	EventPlayerHitEnemy       EventType = "player_hit_enemy"
	EventPlayerCollectPowerUp EventType = "player_collect_powerup"
	EventPlayerCollectCoin    EventType = "player_collect_coin"
)

// Game loop events
const (
	EventEnemyDestroyed EventType = "enemy_destroyed"
	EventPlayerDamaged  EventType = "player_damaged"
	EventShieldBroken   EventType = "shield_broken"
	EventWaveStarted    EventType = "wave_started"
	EventRoundStarted   EventType = "round_started"
	EventGameStarted    EventType = "game_started"
	EventGameOver       EventType = "game_over"
	EventGameWin        EventType = "game_win"
	EventNotification   EventType = "notification"
)

// Event is a typed notification. Only the fields relevant to Type are set.
type Event struct {
	Type    EventType
	Bullet  *Bullet
	Enemy   Enemy
	PowerUp *PowerUp
	Coin    *Coin

	Wave   int
	Label  string
	Points int
	Value  int
	Lives  int
	Text   string
}

// EventSink consumes events emitted by a Game
type EventSink interface {
	HandleEvent(ev Event)
}

// SinkFunc adapts a function to EventSink
type SinkFunc func(ev Event)

// HandleEvent calls f(ev)
func (f SinkFunc) HandleEvent(ev Event) { f(ev) }
