// Package studio wires the recording session, teleprompter and script store
// around a single device feed.
package studio

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/verte-zerg/telecue/internal/device"
	"github.com/verte-zerg/telecue/internal/model"
	"github.com/verte-zerg/telecue/internal/recording"
	"github.com/verte-zerg/telecue/internal/scripts"
	"github.com/verte-zerg/telecue/internal/teleprompter"
	"github.com/verte-zerg/telecue/internal/ticker"
)

// Options configures Open.
type Options struct {
	Clock    ticker.Clock
	Acquirer device.Acquirer
	Scripts  []model.Script
	ScriptID model.ScriptID
	Speed    int
	Flags    model.DeviceFlags
	Logger   *zap.Logger
}

// Studio is the in-process boundary between the core and the UI shell.
type Studio struct {
	log      *zap.Logger
	rec      *recording.Session
	prompter *teleprompter.Session
	scripts  *scripts.Store

	feed    device.Feed
	feedErr error
}

// Open builds the core and makes one attempt at acquiring the device feed.
// A failed acquisition is kept for display and does not fail Open.
func Open(ctx context.Context, opts Options) (*Studio, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	catalog := opts.Scripts
	if len(catalog) == 0 {
		catalog = scripts.Builtins()
	}
	store, err := scripts.NewStore(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build script catalog: %w", err)
	}
	if opts.ScriptID != "" && !store.Select(opts.ScriptID) {
		log.Warn("configured script not in catalog", zap.String("script", string(opts.ScriptID)))
	}

	s := &Studio{
		log:      log,
		rec:      recording.NewSession(opts.Clock, opts.Flags, log.Named("recording")),
		prompter: teleprompter.NewSession(opts.Clock, opts.Speed, log.Named("teleprompter")),
		scripts:  store,
	}
	if opts.Acquirer == nil {
		s.feedErr = &device.AcquisitionError{Err: errors.New("no acquirer configured")}
		return s, nil
	}
	// Both devices are always requested; the flags only gate display and mute.
	feed, err := opts.Acquirer.Acquire(ctx, true, true)
	if err != nil {
		log.Warn("device acquisition failed", zap.Error(err))
		s.feedErr = err
		return s, nil
	}
	log.Info("device acquired", zap.String("feed", feed.Describe()))
	s.feed = feed
	return s, nil
}

// Close stops both timers and releases the feed.
func (s *Studio) Close() error {
	s.rec.Close()
	s.prompter.Close()
	if s.feed == nil {
		return nil
	}
	if err := s.feed.Close(); err != nil {
		return fmt.Errorf("failed to release device feed: %w", err)
	}
	return nil
}

// Feed returns the device feed, or the acquisition error.
func (s *Studio) Feed() (device.Feed, error) {
	return s.feed, s.feedErr
}

// StartRecording begins a take from Idle.
func (s *Studio) StartRecording() bool { return s.rec.Start() }

// TogglePauseRecording flips between Recording and Paused.
func (s *Studio) TogglePauseRecording() bool { return s.rec.TogglePause() }

// StopRecording ends the take.
func (s *Studio) StopRecording() bool { return s.rec.Stop() }

// ToggleVideo flips the video preview flag.
func (s *Studio) ToggleVideo() bool { return s.rec.ToggleVideo() }

// ToggleAudio flips the audio flag.
func (s *Studio) ToggleAudio() bool { return s.rec.ToggleAudio() }

// Recording returns the recording snapshot.
func (s *Studio) Recording() model.RecordingSnapshot { return s.rec.Snapshot() }

// ToggleScroll starts or stops auto-scroll.
func (s *Studio) ToggleScroll() bool { return s.prompter.ToggleScroll() }

// SetScrollSpeed applies a clamped speed and returns it.
func (s *Studio) SetScrollSpeed(percent int) int { return s.prompter.SetSpeed(percent) }

// ResetTeleprompter stops scrolling and rewinds.
func (s *Studio) ResetTeleprompter() { s.prompter.Reset() }

// SetScrollLimit bounds the scroll position to the rendered script length.
func (s *Studio) SetScrollLimit(limit int) { s.prompter.SetLimit(limit) }

// Teleprompter returns the teleprompter state.
func (s *Studio) Teleprompter() model.TeleprompterState { return s.prompter.State() }

// Catalog returns the selectable scripts.
func (s *Studio) Catalog() []model.Script { return s.scripts.Catalog() }

// Selected returns the current script.
func (s *Studio) Selected() model.Script { return s.scripts.Selected() }

// SelectScript changes the selection. Scroll state is left untouched.
func (s *Studio) SelectScript(id model.ScriptID) bool {
	ok := s.scripts.Select(id)
	if !ok {
		s.log.Debug("ignoring unknown script", zap.String("script", string(id)))
	}
	return ok
}

// ImportFromText builds an unselected custom script.
func (s *Studio) ImportFromText(text string) model.Script { return s.scripts.ImportFromText(text) }

// CommitCustom imports text and selects it.
func (s *Studio) CommitCustom(text string) model.Script {
	sc := s.scripts.CommitCustom(text)
	s.log.Info("custom script selected", zap.String("script", string(sc.ID)), zap.Int("bytes", len(text)))
	return sc
}

// CustomText returns the body of the current custom script, if any.
func (s *Studio) CustomText() string {
	sc, ok := s.scripts.Custom()
	if !ok {
		return ""
	}
	return sc.Content
}

// ImportFile reads path as text for the custom editor. On failure the
// selection is unchanged and the *scripts.ReadError is returned.
func (s *Studio) ImportFile(path string) (model.Script, error) {
	text, err := scripts.ReadAsText(path)
	if err != nil {
		s.log.Warn("script import failed", zap.String("path", path), zap.Error(err))
		return model.Script{}, err
	}
	return s.scripts.ImportFromText(text), nil
}
