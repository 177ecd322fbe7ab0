package main

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"cursor-arcade/arcade"
	"cursor-arcade/credits"
)

const (
	maxSessions = 100
	tickRate    = 60
	stateEvery  = 2 // frames per snapshot: 30 Hz
)

// ErrTooManySessions is returned when the server is at its session limit
var ErrTooManySessions = errors.New("too many active sessions")

// Broadcaster is the part of a connection a session writes to
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

type commandKind int

const (
	cmdStart commandKind = iota
	cmdRestart
	cmdMode
)

type command struct {
	kind commandKind
	mode arcade.Mode
}

// Session is one guest's game. The Game is only ever touched from the
// session's own goroutine; other goroutines hand it input and commands.
type Session struct {
	ID      string
	GuestID string
	Game    *arcade.Game

	credits   *credits.Counter
	out       Broadcaster
	db        *DB
	analytics *Analytics
	metrics   *Metrics

	mu       sync.Mutex
	input    arcade.Input
	hasInput bool
	pending  []command
	mode     arcade.Mode

	frames   uint64
	runStart time.Time

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// SetInput replaces the latest input; the next frame uses it
func (s *Session) SetInput(in arcade.Input) {
	s.mu.Lock()
	s.input = in
	s.hasInput = true
	s.mu.Unlock()
}

// Start queues a new run in the current mode
func (s *Session) Start() { s.enqueue(command{kind: cmdStart}) }

// Restart queues a reset followed by a new run
func (s *Session) Restart() { s.enqueue(command{kind: cmdRestart}) }

// SetMode queues a mode switch; a running game restarts in the new mode
func (s *Session) SetMode(m arcade.Mode) { s.enqueue(command{kind: cmdMode, mode: m}) }

func (s *Session) enqueue(c command) {
	s.mu.Lock()
	s.pending = append(s.pending, c)
	s.mu.Unlock()
}

func (s *Session) drain() (arcade.Input, bool, []command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmds := s.pending
	s.pending = nil
	in := s.input
	in.Boundaries = append([]arcade.Rect(nil), s.input.Boundaries...)
	return in, s.hasInput, cmds
}

// Credits returns the guest's persisted balance
func (s *Session) Credits() int { return s.credits.Value() }

// Run drives the game at tickRate until Stop is called
func (s *Session) Run() {
	defer close(s.done)
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	epoch := time.Now()

	for {
		select {
		case <-s.stop:
			s.endRun()
			return
		case t := <-ticker.C:
			s.tick(float64(t.Sub(epoch)) / float64(time.Millisecond))
		}
	}
}

// Stop ends the loop and waits for it to exit
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Session) tick(now float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("session %s: frame panicked, resetting: %v", s.ID, r)
			s.metrics.Panics.Inc()
			s.Game.Reset()
		}
	}()

	in, ok, cmds := s.drain()
	for _, c := range cmds {
		s.apply(c)
	}
	if !ok {
		return
	}

	began := time.Now()
	s.Game.Tick(now, in)
	s.metrics.Frames.Inc()
	s.metrics.FrameSeconds.Observe(time.Since(began).Seconds())

	s.frames++
	if s.frames%stateEvery == 0 {
		s.broadcast()
	}
}

func (s *Session) apply(c command) {
	switch c.kind {
	case cmdStart:
		if s.Game.Phase() == arcade.PhasePlaying {
			return
		}
		s.Game.Start(s.mode)
	case cmdRestart:
		s.endRun()
		s.Game.Start(s.mode)
	case cmdMode:
		if c.mode == s.mode {
			return
		}
		s.mode = c.mode
		if s.Game.Phase() == arcade.PhasePlaying {
			s.endRun()
			s.Game.Start(s.mode)
		}
	}
}

// endRun records an abandoned run so restarts still show up in analytics
func (s *Session) endRun() {
	if s.Game.Phase() != arcade.PhasePlaying {
		return
	}
	ui := s.Game.UI()
	s.finishRun("abandoned", ui.Score, s.Game.Waves().CurrentWave, false)
	s.Game.Reset()
}

func (s *Session) broadcast() {
	data, err := msgpack.Marshal(s.Game.Snapshot())
	if err != nil {
		log.Printf("session %s: marshal state: %v", s.ID, err)
		return
	}
	s.out.SendBinary(data)
}

// HandleEvent implements arcade.EventSink. It runs inside Game.Tick.
func (s *Session) HandleEvent(ev arcade.Event) {
	s.metrics.Events.WithLabelValues(string(ev.Type)).Inc()

	switch ev.Type {
	case arcade.EventPlayerCollectCoin:
		total, err := s.credits.Add(ev.Value)
		if err != nil {
			log.Printf("session %s: %v", s.ID, err)
			break
		}
		// the store total includes coins collected in the guest's other tabs
		s.Game.UI().SetCredits(total)
		s.metrics.CreditsEarned.Add(float64(ev.Value))
	case arcade.EventGameStarted:
		s.runStart = time.Now()
		s.analytics.Track(EvtRunStart, s.GuestID, s.ID, map[string]interface{}{"mode": ev.Label})
	case arcade.EventWaveStarted:
		s.analytics.Track(EvtWaveStart, s.GuestID, s.ID, map[string]interface{}{"wave": ev.Wave, "label": ev.Label})
	case arcade.EventGameOver:
		s.finishRun(EvtGameOver, ev.Points, ev.Wave, false)
	case arcade.EventGameWin:
		s.finishRun(EvtGameWin, ev.Points, s.Game.Waves().CurrentWave, true)
	}

	if msg, ok := eventMsg(ev); ok {
		s.out.SendJSON(Envelope{T: MsgEvent, Data: msg})
	}
}

func (s *Session) finishRun(outcome string, score, wave int, won bool) {
	mode := string(s.Game.Mode())
	dur := time.Since(s.runStart).Seconds()
	s.metrics.Runs.WithLabelValues(mode, outcome).Inc()
	if outcome != "abandoned" {
		s.analytics.Track(outcome, s.GuestID, s.ID, map[string]interface{}{
			"mode": mode, "score": score, "wave": wave, "duration": dur,
		})
	}
	if s.db == nil || score == 0 {
		return
	}
	if _, err := s.db.RecordRun(RunRow{
		GuestID:  s.GuestID,
		Mode:     mode,
		Score:    score,
		Wave:     wave,
		Won:      won,
		Duration: dur,
	}); err != nil {
		log.Printf("session %s: record run: %v", s.ID, err)
	}
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cfg       *arcade.Config
	db        *DB
	analytics *Analytics
	metrics   *Metrics
}

// NewSessionManager creates a new SessionManager
func NewSessionManager(cfg *arcade.Config, db *DB, analytics *Analytics, metrics *Metrics) *SessionManager {
	return &SessionManager{
		sessions:  make(map[string]*Session),
		cfg:       cfg,
		db:        db,
		analytics: analytics,
		metrics:   metrics,
	}
}

// CreateSession opens the guest's credit balance and starts a game loop
func (sm *SessionManager) CreateSession(guestID string, out Broadcaster) (*Session, error) {
	var kv credits.KV = credits.NewMemoryKV()
	if sm.db != nil {
		kv = sm.db.GuestStore(guestID)
	}
	counter, err := credits.Open(kv, credits.DefaultKey)
	if err != nil {
		return nil, err
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if len(sm.sessions) >= maxSessions {
		return nil, ErrTooManySessions
	}

	game := arcade.NewGame(sm.cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	game.UI().SetCredits(counter.Value())
	sess := &Session{
		ID:        uuid.NewString(),
		GuestID:   guestID,
		Game:      game,
		credits:   counter,
		out:       out,
		db:        sm.db,
		analytics: sm.analytics,
		metrics:   sm.metrics,
		mode:      arcade.ModeAsteroids,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	game.AddSink(sess)
	sm.sessions[sess.ID] = sess
	sm.metrics.Sessions.Set(float64(len(sm.sessions)))
	sm.analytics.Track(EvtSessionStart, guestID, sess.ID, nil)

	go sess.Run()
	return sess, nil
}

// GetSession returns a session by ID
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// RemoveSession stops a session's loop and forgets it
func (sm *SessionManager) RemoveSession(id string) {
	sm.mu.Lock()
	sess, ok := sm.sessions[id]
	if ok {
		delete(sm.sessions, id)
	}
	sm.metrics.Sessions.Set(float64(len(sm.sessions)))
	sm.mu.Unlock()
	if !ok {
		return
	}
	sess.Stop()
	sm.analytics.Track(EvtSessionEnd, sess.GuestID, sess.ID, nil)
}

// Count returns the number of running sessions
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// StopAll stops every session, used on shutdown
func (sm *SessionManager) StopAll() {
	sm.mu.RLock()
	ids := make([]string, 0, len(sm.sessions))
	for id := range sm.sessions {
		ids = append(ids, id)
	}
	sm.mu.RUnlock()
	for _, id := range ids {
		sm.RemoveSession(id)
	}
}
