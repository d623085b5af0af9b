// Package model defines shared data structures.
package model

// Config defines runtime settings resolved from flags and the config file.
type Config struct {
	Speed        int
	ScriptID     ScriptID
	CatalogPath  string
	StepsPerLine int
	Video        bool
	Audio        bool
	LogLevel     string
}

// ScriptID identifies a script within the catalog.
type ScriptID string

// Script is a teleprompter text with its display metadata.
type Script struct {
	ID            ScriptID `yaml:"id"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Content       string   `yaml:"content"`
	EstimatedTime string   `yaml:"estimated_time"`
}

// RecordingStatus is the lifecycle state of a recording take.
type RecordingStatus int

const (
	StatusIdle RecordingStatus = iota
	StatusRecording
	StatusPaused
)

func (s RecordingStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRecording:
		return "recording"
	case StatusPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// DeviceFlags are the user-facing camera/microphone switches.
type DeviceFlags struct {
	Video bool
	Audio bool
}

// RecordingSnapshot is a read-only view of the recording session.
type RecordingSnapshot struct {
	Status         RecordingStatus
	ElapsedSeconds int64
	Flags          DeviceFlags
}

// TeleprompterState is a read-only view of the teleprompter session.
type TeleprompterState struct {
	Scrolling bool
	Speed     int
	Position  int
	// Limit is the largest reachable position; negative means unbounded.
	Limit int
}
