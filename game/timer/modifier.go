package timer

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned for a pause or resume that does not apply
// to the modifier's current state. The call has no effect.
var ErrInvalidTransition = errors.New("invalid timer transition")

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Modifier is a pausable one-shot countdown. When it runs out while running,
// onDone is called once and the modifier goes back to Idle.
//
// Every Start, Cancel and Pause bumps the generation. A scheduler callback
// remembers the generation it was armed with and does nothing if it no longer
// matches, so a fire that races a cancel is dropped.
type Modifier struct {
	name      string
	sched     Scheduler
	onDone    func()
	state     State
	startedAt time.Duration
	remaining time.Duration
	gen       uint64
	handle    Handle
}

func NewModifier(name string, sched Scheduler, onDone func()) *Modifier {
	return &Modifier{name: name, sched: sched, onDone: onDone}
}

func (m *Modifier) Name() string { return m.name }

func (m *Modifier) State() State { return m.state }

// Active reports whether the modifier is running or paused.
func (m *Modifier) Active() bool { return m.state != Idle }

// Start (re)starts the countdown for d, discarding any run in progress.
func (m *Modifier) Start(now, d time.Duration) {
	m.disarm()
	m.state = Running
	m.startedAt = now
	m.remaining = d
	m.arm(d)
}

// Cancel stops the countdown without firing.
func (m *Modifier) Cancel() {
	m.disarm()
	m.state = Idle
	m.remaining = 0
}

// Pause freezes the remaining time.
func (m *Modifier) Pause(now time.Duration) error {
	if m.state != Running {
		return fmt.Errorf("pause %s while %s: %w", m.name, m.state, ErrInvalidTransition)
	}
	m.disarm()
	m.remaining = m.left(now)
	m.state = Paused
	return nil
}

// Resume schedules completion for the time left when it was paused.
func (m *Modifier) Resume(now time.Duration) error {
	if m.state != Paused {
		return fmt.Errorf("resume %s while %s: %w", m.name, m.state, ErrInvalidTransition)
	}
	m.state = Running
	m.startedAt = now
	m.arm(m.remaining)
	return nil
}

// Remaining returns the time left on the countdown as of now.
func (m *Modifier) Remaining(now time.Duration) time.Duration {
	switch m.state {
	case Running:
		return m.left(now)
	case Paused:
		return m.remaining
	default:
		return 0
	}
}

func (m *Modifier) left(now time.Duration) time.Duration {
	left := m.remaining - (now - m.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

func (m *Modifier) arm(d time.Duration) {
	gen := m.gen
	m.handle = m.sched.After(d, func() { m.fire(gen) })
}

func (m *Modifier) disarm() {
	m.gen++
	if m.handle != nil {
		m.handle.Stop()
		m.handle = nil
	}
}

func (m *Modifier) fire(gen uint64) {
	if gen != m.gen || m.state != Running {
		return
	}
	m.gen++
	m.handle = nil
	m.state = Idle
	m.remaining = 0
	if m.onDone != nil {
		m.onDone()
	}
}
