// Package timer implements the pausable one-shot countdowns behind time warp
// and hyper mode, and the schedulers that deliver their completions.
package timer

import (
	"container/heap"
	"sync"
	"time"
)

// Handle cancels a scheduled callback. Stop reports whether the callback was
// still pending.
type Handle interface {
	Stop() bool
}

// Scheduler runs fire once after d has elapsed.
type Scheduler interface {
	After(d time.Duration, fire func()) Handle
}

// Wheel is a Scheduler driven by the game's tick clock. Callbacks run inside
// Advance, on the caller's goroutine, in deadline order.
type Wheel struct {
	now   time.Duration
	seq   uint64
	queue wheelQueue
}

func NewWheel() *Wheel {
	return &Wheel{}
}

// Now is the clock value of the last Advance.
func (w *Wheel) Now() time.Duration {
	return w.now
}

func (w *Wheel) After(d time.Duration, fire func()) Handle {
	w.seq++
	e := &wheelEntry{at: w.now + d, seq: w.seq, fire: fire}
	heap.Push(&w.queue, e)
	return e
}

// Advance moves the clock to now and runs every callback that has come due.
// Callbacks may schedule further callbacks; those run too if already due.
func (w *Wheel) Advance(now time.Duration) int {
	if now > w.now {
		w.now = now
	}
	fired := 0
	for w.queue.Len() > 0 {
		e := w.queue[0]
		if e.at > w.now {
			break
		}
		heap.Pop(&w.queue)
		if e.stopped {
			continue
		}
		e.stopped = true
		e.fire()
		fired++
	}
	return fired
}

// Pending returns the number of callbacks waiting to fire.
func (w *Wheel) Pending() int {
	n := 0
	for _, e := range w.queue {
		if !e.stopped {
			n++
		}
	}
	return n
}

type wheelEntry struct {
	at      time.Duration
	seq     uint64
	fire    func()
	stopped bool
}

func (e *wheelEntry) Stop() bool {
	if e.stopped {
		return false
	}
	e.stopped = true
	return true
}

type wheelQueue []*wheelEntry

func (q wheelQueue) Len() int { return len(q) }
func (q wheelQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q wheelQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *wheelQueue) Push(x any)   { *q = append(*q, x.(*wheelEntry)) }
func (q *wheelQueue) Pop() any {
	old := *q
	e := old[len(old)-1]
	*q = old[:len(old)-1]
	return e
}

// RealScheduler fires on wall-clock time from a runtime timer goroutine. Each
// callback runs holding mu, the same lock that guards the game state.
type RealScheduler struct {
	mu sync.Locker
}

func NewRealScheduler(mu sync.Locker) *RealScheduler {
	return &RealScheduler{mu: mu}
}

func (s *RealScheduler) After(d time.Duration, fire func()) Handle {
	return time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		fire()
	})
}
