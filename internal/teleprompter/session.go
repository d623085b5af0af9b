// Package teleprompter implements the auto-scroll engine and its session.
package teleprompter

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/telecue/internal/model"
	"github.com/verte-zerg/telecue/internal/ticker"
)

const (
	MinSpeed     = 10
	MaxSpeed     = 100
	DefaultSpeed = 50
	// ScrollStep is the position advance per scroll tick.
	ScrollStep = 1
	// NoLimit leaves the scroll position unbounded.
	NoLimit = -1
)

// ClampSpeed bounds a speed percentage to [MinSpeed, MaxSpeed].
func ClampSpeed(p int) int {
	if p < MinSpeed {
		return MinSpeed
	}
	if p > MaxSpeed {
		return MaxSpeed
	}
	return p
}

// Interval returns the scroll tick interval for a speed: (101 - speed) ms.
func Interval(speed int) time.Duration {
	return time.Duration(MaxSpeed+1-ClampSpeed(speed)) * time.Millisecond
}

// Session owns the scrolling flag, speed and scroll position.
//
// mu guards the lifecycle (scrolling, speed, engine start/stop); posMu guards
// position and limit and is the only lock the scroll tick takes.
type Session struct {
	log    *zap.Logger
	engine *ticker.Ticker

	mu        sync.Mutex
	scrolling bool
	speed     int

	posMu    sync.Mutex
	position int
	limit    int
}

// NewSession returns a stopped session at the given speed.
func NewSession(clock ticker.Clock, speed int, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		log:    log,
		engine: ticker.New(clock),
		speed:  ClampSpeed(speed),
		limit:  NoLimit,
	}
}

// ToggleScroll starts or stops auto-scrolling and returns the new flag.
func (s *Session) ToggleScroll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scrolling {
		s.engine.Stop()
		s.scrolling = false
		s.log.Debug("scroll stopped", zap.Int("position", s.Position()))
		return false
	}
	if err := s.startEngine(); err != nil {
		s.log.Error("failed to start scroll engine", zap.Error(err))
		return false
	}
	s.scrolling = true
	s.log.Debug("scroll started", zap.Int("speed", s.speed))
	return true
}

// SetSpeed clamps p and applies it, restarting the engine when the interval
// changes mid-scroll. It returns the applied speed.
func (s *Session) SetSpeed(p int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	clamped := ClampSpeed(p)
	if clamped == s.speed {
		return clamped
	}
	s.speed = clamped
	if !s.scrolling {
		return clamped
	}
	s.engine.Stop()
	if err := s.startEngine(); err != nil {
		s.log.Error("failed to restart scroll engine", zap.Error(err))
		s.scrolling = false
	}
	return clamped
}

// Reset stops scrolling and rewinds to the top in one step.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Stop()
	s.scrolling = false
	s.posMu.Lock()
	s.position = 0
	s.posMu.Unlock()
}

// SetLimit sets the largest reachable position; NoLimit (or any negative
// value) removes the bound. A position past a new, smaller limit is pulled
// back to it.
func (s *Session) SetLimit(limit int) {
	if limit < 0 {
		limit = NoLimit
	}
	s.posMu.Lock()
	defer s.posMu.Unlock()
	s.limit = limit
	if limit >= 0 && s.position > limit {
		s.position = limit
	}
}

// Position returns the current scroll offset.
func (s *Session) Position() int {
	s.posMu.Lock()
	defer s.posMu.Unlock()
	return s.position
}

// State returns a snapshot of the session.
func (s *Session) State() model.TeleprompterState {
	s.mu.Lock()
	scrolling, speed := s.scrolling, s.speed
	s.mu.Unlock()
	s.posMu.Lock()
	defer s.posMu.Unlock()
	return model.TeleprompterState{
		Scrolling: scrolling,
		Speed:     speed,
		Position:  s.position,
		Limit:     s.limit,
	}
}

// Close stops the engine without altering state.
func (s *Session) Close() {
	s.engine.Stop()
}

func (s *Session) startEngine() error {
	if err := s.engine.Start(Interval(s.speed), s.advance); err != nil {
		return fmt.Errorf("failed to start scroll ticker: %w", err)
	}
	return nil
}

func (s *Session) advance() {
	s.posMu.Lock()
	defer s.posMu.Unlock()
	next := s.position + ScrollStep
	if s.limit >= 0 && next > s.limit {
		next = s.limit
	}
	s.position = next
}
