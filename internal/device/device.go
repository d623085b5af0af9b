// Package device acquires the camera/microphone feed shown in the preview.
package device

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoDevice is wrapped by AcquisitionError when no requested device exists.
var ErrNoDevice = errors.New("no capture device found")

// Feed is a live capture handle. Toggling the preview flags never closes it.
type Feed interface {
	Video() bool
	Audio() bool
	Describe() string
	Close() error
}

// Acquirer opens a Feed once at startup.
type Acquirer interface {
	Acquire(ctx context.Context, video, audio bool) (Feed, error)
}

// AcquisitionError reports an unavailable or denied device.
type AcquisitionError struct {
	Err error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("device unavailable: %v", e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// ProbeAcquirer finds capture devices by their device nodes.
type ProbeAcquirer struct {
	VideoGlobs []string
	AudioGlobs []string
}

// NewProbeAcquirer returns an acquirer for the usual Linux device nodes.
func NewProbeAcquirer() *ProbeAcquirer {
	return &ProbeAcquirer{
		VideoGlobs: []string{"/dev/video*"},
		AudioGlobs: []string{"/dev/snd/pcmC*D*c"},
	}
}

// Acquire implements Acquirer.
func (p *ProbeAcquirer) Acquire(ctx context.Context, video, audio bool) (Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, &AcquisitionError{Err: err}
	}
	feed := &probedFeed{}
	if video {
		feed.video = firstMatch(p.VideoGlobs)
	}
	if audio {
		feed.audio = firstMatch(p.AudioGlobs)
	}
	if feed.video == "" && feed.audio == "" {
		return nil, &AcquisitionError{Err: ErrNoDevice}
	}
	return feed, nil
}

func firstMatch(globs []string) string {
	for _, g := range globs {
		matches, err := filepath.Glob(g)
		if err != nil || len(matches) == 0 {
			continue
		}
		return matches[0]
	}
	return ""
}

type probedFeed struct {
	video string
	audio string
}

func (f *probedFeed) Video() bool { return f.video != "" }
func (f *probedFeed) Audio() bool { return f.audio != "" }

func (f *probedFeed) Describe() string {
	parts := make([]string, 0, 2)
	if f.video != "" {
		parts = append(parts, "camera "+f.video)
	}
	if f.audio != "" {
		parts = append(parts, "mic "+f.audio)
	}
	return strings.Join(parts, ", ")
}

// Close is a no-op: probing only inspects device nodes and holds no handle.
func (f *probedFeed) Close() error {
	return nil
}
