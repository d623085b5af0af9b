// Package recording implements the recording session state machine.
package recording

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/telecue/internal/model"
	"github.com/verte-zerg/telecue/internal/ticker"
)

// TickInterval is the elapsed-time counter resolution.
const TickInterval = time.Second

// Session tracks whether a take is being recorded and for how long.
//
// Elapsed seconds only advance while the status is Recording; in Paused the
// clock ticker is stopped, not ignored, so resuming never catches up.
type Session struct {
	log   *zap.Logger
	clock *ticker.Ticker

	mu      sync.Mutex
	status  model.RecordingStatus
	flags   model.DeviceFlags
	elapsed atomic.Int64
}

// NewSession returns an idle session with the given initial device flags.
func NewSession(clock ticker.Clock, flags model.DeviceFlags, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		log:   log,
		clock: ticker.New(clock),
		flags: flags,
	}
}

// Start begins a new take. It only applies from Idle.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != model.StatusIdle {
		s.log.Debug("ignoring start", zap.Stringer("status", s.status))
		return false
	}
	s.elapsed.Store(0)
	if err := s.startClock(); err != nil {
		s.log.Error("failed to start recording clock", zap.Error(err))
		return false
	}
	s.status = model.StatusRecording
	s.log.Info("recording started")
	return true
}

// TogglePause flips between Recording and Paused.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.status {
	case model.StatusRecording:
		return s.pauseLocked()
	case model.StatusPaused:
		return s.resumeLocked()
	default:
		s.log.Debug("ignoring pause toggle", zap.Stringer("status", s.status))
		return false
	}
}

// Pause freezes the elapsed counter. It only applies from Recording.
func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != model.StatusRecording {
		return false
	}
	return s.pauseLocked()
}

// Resume restarts the elapsed counter. It only applies from Paused.
func (s *Session) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != model.StatusPaused {
		return false
	}
	return s.resumeLocked()
}

// Stop ends the take from Recording or Paused and resets the counter.
func (s *Session) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == model.StatusIdle {
		return false
	}
	s.clock.Stop()
	final := s.elapsed.Swap(0)
	s.status = model.StatusIdle
	s.log.Info("recording stopped", zap.String("elapsed", FormatElapsed(final)))
	return true
}

// ToggleVideo flips the video flag. The status is never affected.
func (s *Session) ToggleVideo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Video = !s.flags.Video
	return s.flags.Video
}

// ToggleAudio flips the audio flag. The status is never affected.
func (s *Session) ToggleAudio() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.Audio = !s.flags.Audio
	return s.flags.Audio
}

// Snapshot returns the current status, elapsed seconds and flags.
func (s *Session) Snapshot() model.RecordingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.RecordingSnapshot{
		Status:         s.status,
		ElapsedSeconds: s.elapsed.Load(),
		Flags:          s.flags,
	}
}

// Status returns the current lifecycle state.
func (s *Session) Status() model.RecordingStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Elapsed returns the elapsed seconds of the current take.
func (s *Session) Elapsed() int64 {
	return s.elapsed.Load()
}

// FormattedElapsed renders Elapsed as MM:SS.
func (s *Session) FormattedElapsed() string {
	return FormatElapsed(s.Elapsed())
}

// Close stops the clock without changing the recorded state.
func (s *Session) Close() {
	s.clock.Stop()
}

func (s *Session) pauseLocked() bool {
	s.clock.Stop()
	s.status = model.StatusPaused
	s.log.Info("recording paused", zap.Int64("elapsed_seconds", s.elapsed.Load()))
	return true
}

func (s *Session) resumeLocked() bool {
	if err := s.startClock(); err != nil {
		s.log.Error("failed to resume recording clock", zap.Error(err))
		return false
	}
	s.status = model.StatusRecording
	s.log.Info("recording resumed")
	return true
}

func (s *Session) startClock() error {
	if err := s.clock.Start(TickInterval, s.tick); err != nil {
		return fmt.Errorf("failed to start clock ticker: %w", err)
	}
	return nil
}

// tick runs under the ticker lock only; it must not take s.mu, since Stop
// and Pause hold s.mu while waiting for an in-flight tick.
func (s *Session) tick() {
	s.elapsed.Add(1)
}

// FormatElapsed renders seconds as zero-padded MM:SS without hour rollover.
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// HeaderClock renders seconds as the compact ".MMSS" header readout.
func HeaderClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf(".%02d%02d", seconds/60, seconds%60)
}
