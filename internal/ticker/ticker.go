// Package ticker provides a cancellable periodic timer with serialized ticks.
package ticker

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrRunning is returned when Start is called on a running ticker.
var ErrRunning = errors.New("ticker already running")

// Timer is a pending one-shot callback.
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// System is the wall-clock Clock.
var System Clock = systemClock{}

// Ticker delivers one callback per interval until stopped.
//
// The next wait is armed only after the current callback returns, so ticks
// never overlap and there is no catch-up after a slow handler. Stop holds the
// same lock as delivery: once it returns no callback runs again. A callback
// must not call Start or Stop on its own Ticker.
type Ticker struct {
	clock Clock

	mu       sync.Mutex
	running  bool
	gen      uint64
	interval time.Duration
	onTick   func()
	timer    Timer
}

// New returns a stopped Ticker driven by clock. A nil clock means System.
func New(clock Clock) *Ticker {
	if clock == nil {
		clock = System
	}
	return &Ticker{clock: clock}
}

// Start begins delivering ticks every interval.
func (t *Ticker) Start(interval time.Duration, onTick func()) error {
	if interval <= 0 {
		return fmt.Errorf("invalid tick interval %s", interval)
	}
	if onTick == nil {
		return fmt.Errorf("tick handler is nil")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return ErrRunning
	}
	t.running = true
	t.gen++
	t.interval = interval
	t.onTick = onTick
	t.arm(t.gen)
	return nil
}

// Stop cancels delivery. It is safe to call on a stopped ticker.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.running = false
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.onTick = nil
}

// Running reports whether ticks are being delivered.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Interval returns the interval of the current or last run.
func (t *Ticker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// arm must be called with mu held.
func (t *Ticker) arm(gen uint64) {
	t.timer = t.clock.AfterFunc(t.interval, func() {
		t.fire(gen)
	})
}

func (t *Ticker) fire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// A stale generation means Stop (or Stop+Start) won the race.
	if !t.running || gen != t.gen {
		return
	}
	t.onTick()
	t.arm(gen)
}
