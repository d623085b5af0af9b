package studio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/telecue/internal/device"
	"github.com/verte-zerg/telecue/internal/model"
	"github.com/verte-zerg/telecue/internal/scripts"
	"github.com/verte-zerg/telecue/internal/ticker"
)

type fakeFeed struct {
	closed int
}

func (f *fakeFeed) Video() bool      { return true }
func (f *fakeFeed) Audio() bool      { return true }
func (f *fakeFeed) Describe() string { return "fake" }
func (f *fakeFeed) Close() error {
	f.closed++
	return nil
}

type fakeAcquirer struct {
	feed      *fakeFeed
	err       error
	calls     int
	wantVideo bool
	wantAudio bool
}

func (a *fakeAcquirer) Acquire(_ context.Context, video, audio bool) (device.Feed, error) {
	a.calls++
	a.wantVideo, a.wantAudio = video, audio
	if a.err != nil {
		return nil, a.err
	}
	return a.feed, nil
}

func openTestStudio(t *testing.T, acq device.Acquirer) (*Studio, *ticker.ManualClock) {
	t.Helper()
	clock := ticker.NewManualClock()
	s, err := Open(context.Background(), Options{
		Clock:    clock,
		Acquirer: acq,
		Speed:    100,
		Flags:    model.DeviceFlags{Video: true, Audio: true},
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, clock
}

func TestOpenAcquiresOnceAndCloseReleases(t *testing.T) {
	feed := &fakeFeed{}
	acq := &fakeAcquirer{feed: feed}
	s, _ := openTestStudio(t, acq)
	if acq.calls != 1 {
		t.Fatalf("expected one acquisition, got %d", acq.calls)
	}
	s.ToggleVideo()
	s.ToggleAudio()
	if feed.closed != 0 {
		t.Fatalf("device toggles must not release the feed")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if feed.closed != 1 {
		t.Fatalf("expected feed released on close, got %d", feed.closed)
	}
}

func TestOpenRequestsBothDevicesRegardlessOfFlags(t *testing.T) {
	acq := &fakeAcquirer{feed: &fakeFeed{}}
	s, err := Open(context.Background(), Options{
		Clock:    ticker.NewManualClock(),
		Acquirer: acq,
		Flags:    model.DeviceFlags{Video: false, Audio: true},
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = s.Close() }()
	if !acq.wantVideo || !acq.wantAudio {
		t.Fatalf("expected both devices requested, got video=%v audio=%v", acq.wantVideo, acq.wantAudio)
	}
	if s.Recording().Flags.Video {
		t.Fatalf("initial video flag must stay off")
	}
	if !s.ToggleVideo() {
		t.Fatalf("expected video on")
	}
	if feed, ferr := s.Feed(); ferr != nil || !feed.Video() {
		t.Fatalf("expected camera available after toggling on")
	}
	if acq.calls != 1 {
		t.Fatalf("toggle must not re-acquire, got %d calls", acq.calls)
	}
}

func TestAcquisitionErrorIsNonFatal(t *testing.T) {
	acq := &fakeAcquirer{err: &device.AcquisitionError{Err: device.ErrNoDevice}}
	s, clock := openTestStudio(t, acq)
	feed, err := s.Feed()
	var acqErr *device.AcquisitionError
	if feed != nil || !errors.As(err, &acqErr) {
		t.Fatalf("expected stored acquisition error, got %v, %v", feed, err)
	}
	if !s.StartRecording() {
		t.Fatalf("recording must work without a device")
	}
	s.ToggleScroll()
	clock.Advance(2 * time.Second)
	if s.Recording().ElapsedSeconds != 2 || s.Teleprompter().Position == 0 {
		t.Fatalf("expected both timers running without device")
	}
}

func TestRecordingAndScrollAreIndependent(t *testing.T) {
	s, clock := openTestStudio(t, &fakeAcquirer{feed: &fakeFeed{}})
	s.StartRecording()
	clock.Advance(time.Second)
	if s.Teleprompter().Scrolling || s.Teleprompter().Position != 0 {
		t.Fatalf("recording started scrolling")
	}
	s.ToggleScroll()
	s.StopRecording()
	clock.Advance(5 * time.Millisecond)
	if !s.Teleprompter().Scrolling || s.Teleprompter().Position != 5 {
		t.Fatalf("stopping recording affected scroll: %+v", s.Teleprompter())
	}
	if s.Recording().Status != model.StatusIdle {
		t.Fatalf("expected idle")
	}
}

func TestSelectScriptKeepsScrollState(t *testing.T) {
	s, clock := openTestStudio(t, nil)
	s.ToggleScroll()
	clock.Advance(10 * time.Millisecond)
	if !s.SelectScript("2") {
		t.Fatalf("expected select")
	}
	st := s.Teleprompter()
	if !st.Scrolling || st.Position != 10 {
		t.Fatalf("script change altered scroll state: %+v", st)
	}
	if s.SelectScript("99") || s.Selected().ID != "2" {
		t.Fatalf("unknown id changed selection")
	}
}

func TestImportFileFailureKeepsSelection(t *testing.T) {
	s, _ := openTestStudio(t, nil)
	s.SelectScript("3")
	_, err := s.ImportFile(filepath.Join(t.TempDir(), "missing.txt"))
	var readErr *scripts.ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ReadError, got %v", err)
	}
	if s.Selected().ID != "3" {
		t.Fatalf("failed import changed selection")
	}
}

func TestImportFileThenCommit(t *testing.T) {
	s, _ := openTestStudio(t, nil)
	path := filepath.Join(t.TempDir(), "talk.txt")
	if err := os.WriteFile(path, []byte("my talk"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	imported, err := s.ImportFile(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if s.Selected().ID == imported.ID {
		t.Fatalf("import must not select")
	}
	committed := s.CommitCustom(imported.Content)
	if s.Selected().ID != committed.ID || s.CustomText() != "my talk" {
		t.Fatalf("expected committed custom script selected")
	}
}

func TestOpenWithUnknownInitialScript(t *testing.T) {
	s, err := Open(context.Background(), Options{Clock: ticker.NewManualClock(), ScriptID: "zzz"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = s.Close() }()
	if s.Selected().ID != "1" {
		t.Fatalf("expected fallback to first script, got %q", s.Selected().ID)
	}
	if _, err := s.Feed(); err == nil {
		t.Fatalf("expected error without acquirer")
	}
}
