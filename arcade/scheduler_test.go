package arcade

import "testing"

func TestSchedulerReleasesInOrder(t *testing.T) {
	s := NewScheduler()
	a := &Coin{Value: 1}
	b := &Coin{Value: 2}
	c := &Coin{Value: 3}
	s.Schedule(100, []ScheduledSpawn{{Entity: b, Delay: 200}, {Entity: a, Delay: 50}})
	s.Schedule(120, []ScheduledSpawn{{Entity: c, Delay: 180}})

	if due := s.Due(149); len(due) != 0 {
		t.Fatalf("nothing should be due yet, got %d", len(due))
	}
	if due := s.Due(150); len(due) != 1 || due[0] != a {
		t.Fatalf("expected only a at 150, got %v", due)
	}
	due := s.Due(1000)
	if len(due) != 2 || due[0] != b || due[1] != c {
		t.Fatalf("expected b then c, got %v", due)
	}
	if s.Pending() != 0 {
		t.Errorf("scheduler should be drained, %d pending", s.Pending())
	}
}

func TestSchedulerResetDropsPending(t *testing.T) {
	s := NewScheduler()
	s.Schedule(0, []ScheduledSpawn{{Entity: &Coin{}, Delay: 2500}, {Entity: &Coin{}, Delay: 3000}})

	s.Reset()

	if s.Pending() != 0 {
		t.Errorf("reset should clear pending spawns, %d left", s.Pending())
	}
	if due := s.Due(10000); len(due) != 0 {
		t.Errorf("no spawn should fire after reset, got %d", len(due))
	}
}
