package timer

import (
	"errors"
	"sync"
	"testing"
	"time"
)

const ms = time.Millisecond

func TestWheelOrder(t *testing.T) {
	w := NewWheel()
	var got []int
	w.After(30*ms, func() { got = append(got, 3) })
	w.After(10*ms, func() { got = append(got, 1) })
	w.After(20*ms, func() { got = append(got, 2) })

	if n := w.Advance(15 * ms); n != 1 {
		t.Fatalf("fired %d at 15ms, want 1", n)
	}
	w.Advance(30 * ms)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("fired in order %v", got)
	}
	if w.Pending() != 0 {
		t.Fatalf("%d still pending", w.Pending())
	}
}

func TestWheelStop(t *testing.T) {
	w := NewWheel()
	fired := false
	h := w.After(5*ms, func() { fired = true })
	if !h.Stop() {
		t.Fatal("Stop of pending callback returned false")
	}
	if h.Stop() {
		t.Fatal("second Stop returned true")
	}
	w.Advance(10 * ms)
	if fired {
		t.Fatal("stopped callback fired")
	}
}

func TestModifierCompletes(t *testing.T) {
	w := NewWheel()
	done := 0
	m := NewModifier("warp", w, func() { done++ })

	m.Start(0, 600*ms)
	w.Advance(599 * ms)
	if done != 0 || m.State() != Running {
		t.Fatalf("fired early: done=%d state=%v", done, m.State())
	}
	if got := m.Remaining(599 * ms); got != ms {
		t.Fatalf("Remaining = %v, want 1ms", got)
	}
	w.Advance(600 * ms)
	if done != 1 || m.State() != Idle {
		t.Fatalf("done=%d state=%v after deadline", done, m.State())
	}
	w.Advance(2000 * ms)
	if done != 1 {
		t.Fatalf("completion fired %d times", done)
	}
}

func TestModifierRestartReplacesRun(t *testing.T) {
	w := NewWheel()
	done := 0
	m := NewModifier("warp", w, func() { done++ })

	m.Start(0, 100*ms)
	w.Advance(80 * ms)
	m.Start(80*ms, 100*ms)
	w.Advance(150 * ms)
	if done != 0 {
		t.Fatal("first run fired after restart")
	}
	w.Advance(180 * ms)
	if done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}
}

func TestModifierCancel(t *testing.T) {
	w := NewWheel()
	done := 0
	m := NewModifier("hyper", w, func() { done++ })

	m.Start(0, 50*ms)
	m.Cancel()
	w.Advance(100 * ms)
	if done != 0 || m.Active() {
		t.Fatalf("cancelled modifier fired or stayed active: done=%d", done)
	}
}

// staleScheduler hands out handles that cannot stop the callback, like a
// timer that already fired into a queue.
type staleScheduler struct {
	fires []func()
}

type noStop struct{}

func (noStop) Stop() bool { return false }

func (s *staleScheduler) After(_ time.Duration, fire func()) Handle {
	s.fires = append(s.fires, fire)
	return noStop{}
}

func TestStaleFireIgnoredAfterCancel(t *testing.T) {
	s := &staleScheduler{}
	done := 0
	m := NewModifier("hyper", s, func() { done++ })

	m.Start(0, 10*ms)
	m.Cancel()
	s.fires[0]()
	if done != 0 {
		t.Fatal("stale fire ran the completion after cancel")
	}

	m.Start(20*ms, 10*ms)
	s.fires[0]()
	if done != 0 || m.State() != Running {
		t.Fatal("fire from an earlier run completed the new run")
	}
	s.fires[1]()
	if done != 1 {
		t.Fatalf("current fire ignored: done=%d", done)
	}
}

func TestPauseResume(t *testing.T) {
	w := NewWheel()
	done := 0
	m := NewModifier("hyper", w, func() { done++ })

	m.Start(0, 1000*ms)
	w.Advance(400 * ms)
	if err := m.Pause(400 * ms); err != nil {
		t.Fatal(err)
	}
	w.Advance(5000 * ms)
	if done != 0 {
		t.Fatal("paused modifier fired")
	}
	if got := m.Remaining(5000 * ms); got != 600*ms {
		t.Fatalf("Remaining while paused = %v, want 600ms", got)
	}

	if err := m.Resume(5000 * ms); err != nil {
		t.Fatal(err)
	}
	w.Advance(5599 * ms)
	if done != 0 {
		t.Fatal("fired before the remaining time elapsed")
	}
	w.Advance(5600 * ms)
	if done != 1 {
		t.Fatalf("done = %d after resume deadline", done)
	}
}

func TestInvalidTransitions(t *testing.T) {
	w := NewWheel()
	m := NewModifier("warp", w, nil)

	if err := m.Pause(0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pause idle: %v", err)
	}
	m.Start(0, 10*ms)
	if err := m.Resume(0); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("resume running: %v", err)
	}
	if m.State() != Running {
		t.Fatalf("state changed to %v by rejected resume", m.State())
	}
	w.Advance(10 * ms)
	if m.Active() {
		t.Fatal("still active after completion")
	}
}

func TestRealSchedulerHoldsLock(t *testing.T) {
	var mu sync.Mutex
	s := NewRealScheduler(&mu)
	done := make(chan struct{})

	mu.Lock()
	s.After(time.Millisecond, func() { close(done) })
	select {
	case <-done:
		t.Fatal("callback ran while the lock was held")
	case <-time.After(20 * ms):
	}
	mu.Unlock()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback never ran")
	}
}
