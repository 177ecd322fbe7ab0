package arcade

import "sort"

type pendingSpawn struct {
	at     float64
	seq    int
	entity Entity
}

// Scheduler holds deferred spawns against the game clock. It is drained from
// the frame loop, so nothing fires between frames.
type Scheduler struct {
	pending []pendingSpawn
	seq     int
}

// NewScheduler creates an empty Scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues spawns relative to now
func (s *Scheduler) Schedule(now float64, spawns []ScheduledSpawn) {
	for _, sp := range spawns {
		s.seq++
		s.pending = append(s.pending, pendingSpawn{at: now + sp.Delay, seq: s.seq, entity: sp.Entity})
	}
}

// Due removes and returns every spawn whose time has come, in schedule order
func (s *Scheduler) Due(now float64) []Entity {
	var due []pendingSpawn
	kept := s.pending[:0]
	for _, p := range s.pending {
		if p.at <= now {
			due = append(due, p)
		} else {
			kept = append(kept, p)
		}
	}
	s.pending = kept
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	out := make([]Entity, len(due))
	for i, p := range due {
		out[i] = p.entity
	}
	return out
}

// Pending returns the number of queued spawns
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Reset drops every queued spawn
func (s *Scheduler) Reset() {
	s.pending = nil
}
