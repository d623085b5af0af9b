// Package logging builds the file-backed application logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Option configures New.
type Option func(*options)

type options struct {
	name       string
	path       string
	level      string
	maxSizeMB  int
	maxBackups int
}

// Name sets the logger name and log file base name.
func Name(name string) Option {
	return func(o *options) { o.name = name }
}

// Path sets the directory for log files.
func Path(path string) Option {
	return func(o *options) { o.path = path }
}

// Level sets the minimum level (debug, info, warn, error).
func Level(level string) Option {
	return func(o *options) { o.level = level }
}

// New returns a JSON logger writing to a size-rotated file. The terminal is
// owned by the TUI, so nothing is written to stdout or stderr.
func New(opts ...Option) (*zap.Logger, error) {
	o := options{
		name:       "telecue",
		level:      "info",
		maxSizeMB:  5,
		maxBackups: 3,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.path == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	level, err := ParseLevel(o.level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(o.path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	writer := &lumberjack.Logger{
		Filename:   filepath.Join(o.path, o.name+".log"),
		MaxSize:    o.maxSizeMB,
		MaxBackups: o.maxBackups,
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), level)
	return zap.New(core).Named(o.name), nil
}

// ParseLevel maps a config string to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
