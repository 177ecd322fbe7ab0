package arcade

import "fmt"

const (
	notificationFrames = 150
	maxNotifications   = 4
	coinScore          = 10 // score per credit collected
)

// Milestone is a one-per-run notification unlocked by play
type Milestone struct {
	ID   string
	Text string
}

var Milestones = []Milestone{
	{"first_blood", "FIRST BLOOD"},
	{"ten_kills", "10 ENEMIES DOWN"},
	{"alien_hunter", "ALIEN HUNTER"},
	{"halfway", "HALFWAY THERE"},
	{"final_wave", "LAST STAND"},
	{"score_10k", "10,000 POINTS"},
	{"collector", "COLLECTOR"},
	{"pellet_round", "ROUND CLEARED"},
}

// Notification is a HUD message that fades after TTL frames
type Notification struct {
	Text string
	TTL  int
}

// UIManager keeps the HUD state up to date from game events. It only
// observes; nothing in the simulation reads it back except the score.
type UIManager struct {
	Score          int
	Lives          int
	Credits        int
	WaveLabel      string
	Kills          int
	AlienKills     int
	CoinsCollected int
	Notifications  []Notification

	unlocked  map[string]bool
	lastWave  int
	finalWave int
}

// NewUIManager creates an empty HUD. finalWave is the index of the last wave
// in the table.
func NewUIManager(finalWave int) *UIManager {
	return &UIManager{unlocked: make(map[string]bool), finalWave: finalWave}
}

// SetCredits sets the persisted credit balance shown on the HUD
func (u *UIManager) SetCredits(n int) {
	u.Credits = n
}

// Unlocked reports whether a milestone fired this run
func (u *UIManager) Unlocked(id string) bool {
	return u.unlocked[id]
}

// Notify queues a HUD message, dropping the oldest past the limit
func (u *UIManager) Notify(text string) {
	u.Notifications = append(u.Notifications, Notification{Text: text, TTL: notificationFrames})
	if len(u.Notifications) > maxNotifications {
		u.Notifications = u.Notifications[len(u.Notifications)-maxNotifications:]
	}
}

// HandleEvent implements EventSink
func (u *UIManager) HandleEvent(ev Event) {
	switch ev.Type {
	case EventGameStarted:
		u.reset()
		u.Lives = ev.Lives
	case EventEnemyDestroyed:
		u.Score += ev.Points
		u.Kills++
		if ev.Enemy != nil && ev.Enemy.Kind() == KindAlienShip {
			u.AlienKills++
		}
	case EventPlayerCollectCoin:
		u.Credits += ev.Value
		u.CoinsCollected += ev.Value
		u.Score += ev.Value * coinScore
	case EventPlayerCollectPowerUp:
		if ev.PowerUp != nil {
			u.Notify(powerUpText(ev.PowerUp.Type))
		}
	case EventPlayerDamaged:
		u.Lives = ev.Lives
	case EventShieldBroken:
		u.Notify("SHIELD DOWN")
	case EventWaveStarted:
		u.WaveLabel = ev.Label
		u.lastWave = ev.Wave
		u.Notify(ev.Label)
	case EventRoundStarted:
		u.WaveLabel = ev.Label
		if ev.Wave > 1 {
			u.unlock("pellet_round")
		}
		u.Notify(ev.Label)
	case EventGameOver:
		u.Notify(fmt.Sprintf("GAME OVER - %d", u.Score))
	case EventGameWin:
		u.Notify(fmt.Sprintf("YOU WIN - %d", u.Score))
	case EventNotification:
		u.Notify(ev.Text)
	}
	u.checkMilestones(ev)
}

// Update ages notifications by one frame
func (u *UIManager) Update() {
	kept := u.Notifications[:0]
	for _, n := range u.Notifications {
		n.TTL--
		if n.TTL > 0 {
			kept = append(kept, n)
		}
	}
	u.Notifications = kept
}

// Reset clears the run state. Credits persist across runs.
func (u *UIManager) Reset() {
	u.reset()
	u.Lives = 0
}

func (u *UIManager) reset() {
	u.Score = 0
	u.Kills = 0
	u.AlienKills = 0
	u.CoinsCollected = 0
	u.WaveLabel = ""
	u.Notifications = nil
	u.lastWave = 0
	u.unlocked = make(map[string]bool)
}

func (u *UIManager) checkMilestones(ev Event) {
	check := func(id string) bool {
		switch id {
		case "first_blood":
			return u.Kills >= 1
		case "ten_kills":
			return u.Kills >= 10
		case "alien_hunter":
			return u.AlienKills >= 1
		case "halfway":
			return ev.Type == EventWaveStarted && u.lastWave >= 4
		case "final_wave":
			return ev.Type == EventWaveStarted && ev.Wave == u.finalWave
		case "score_10k":
			return u.Score >= 10000
		case "collector":
			return u.CoinsCollected >= 50
		}
		return false
	}
	for _, m := range Milestones {
		if !u.unlocked[m.ID] && check(m.ID) {
			u.unlock(m.ID)
		}
	}
}

func (u *UIManager) unlock(id string) {
	if u.unlocked[id] {
		return
	}
	u.unlocked[id] = true
	for _, m := range Milestones {
		if m.ID == id {
			u.Notify(m.Text)
			return
		}
	}
}

func powerUpText(t PowerUpType) string {
	switch t {
	case PowerUpShield:
		return "SHIELD"
	case PowerUpRapidFire:
		return "RAPID FIRE"
	case PowerUpMultiShot:
		return "MULTI SHOT"
	}
	return string(t)
}
