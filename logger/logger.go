package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mpavlicek/termlog/core"
	"github.com/mpavlicek/termlog/formatter"
	"github.com/mpavlicek/termlog/handler"
)

// Logger renders leveled, optionally colorized log lines to a console
// sink. A Logger value is immutable: every With* method returns a new
// Logger and never modifies the receiver, so a base logger can be shared
// across goroutines and derived from concurrently without locking.
type Logger struct {
	config  Config
	colors  bool // resolved from config.Colors at construction
	fields  []core.Field
	writer  io.Writer
	handler *handler.ConsoleHandler
}

// New creates a logger with default configuration, writing to stderr.
// Color support is probed against stderr once, here.
func New() *Logger {
	return newLogger(DefaultConfig(), os.Stderr, nil)
}

// NewWithConfig creates a logger with the given configuration, writing
// to stderr.
func NewWithConfig(cfg Config) *Logger {
	return newLogger(cfg, os.Stderr, nil)
}

func newLogger(cfg Config, w io.Writer, fields []core.Field) *Logger {
	var colors bool
	switch cfg.Colors {
	case ColorAlways:
		colors = true
	case ColorNever:
		colors = false
	default:
		colors = handler.ColorCapable(w)
	}

	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: w,
		Formatter: formatter.NewTextFormatter(formatter.Config{
			UseColors:     colors,
			ShowTimestamp: cfg.Timestamps,
		}),
	})

	return &Logger{
		config:  cfg,
		colors:  colors,
		fields:  fields,
		writer:  w,
		handler: h,
	}
}

// WithConfig returns a new Logger with the full configuration replaced.
// Base fields carry over unchanged.
func (l *Logger) WithConfig(cfg Config) *Logger {
	return newLogger(cfg, l.writer, l.fields)
}

// WithLevel returns a new Logger with the minimum level changed
func (l *Logger) WithLevel(level core.Level) *Logger {
	cfg := l.config
	cfg.Level = level
	return newLogger(cfg, l.writer, l.fields)
}

// WithColors returns a new Logger with colors forced on or off,
// overriding terminal detection.
func (l *Logger) WithColors(enabled bool) *Logger {
	cfg := l.config
	if enabled {
		cfg.Colors = ColorAlways
	} else {
		cfg.Colors = ColorNever
	}
	return newLogger(cfg, l.writer, l.fields)
}

// WithTimestamp returns a new Logger with timestamp display toggled
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	cfg := l.config
	cfg.Timestamps = enabled
	return newLogger(cfg, l.writer, l.fields)
}

// WithWriter returns a new Logger emitting to w. With ColorAuto, color
// capability is re-probed against the new sink.
func (l *Logger) WithWriter(w io.Writer) *Logger {
	return newLogger(l.config, w, l.fields)
}

// With returns a new Logger whose base fields are the receiver's base
// fields followed by the given ones. Order is preserved and duplicate
// keys are kept.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	clone := *l
	clone.fields = newFields
	return &clone
}

// Config returns a copy of the logger's configuration
func (l *Logger) Config() Config {
	return l.config
}

// Stats returns the sink's processed/dropped counters
func (l *Logger) Stats() *handler.Stats {
	return l.handler.Stats()
}

// Log emits a message at the given level. Levels below the configured
// minimum are a no-op: no rendering, no write, no side effect. Base
// fields come first, then the call-site fields, in order. A failed write
// drops the line silently; Log never returns an error and never panics
// for well-formed input.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if level < l.config.Level {
		return
	}
	l.log(level, msg, fields)
}

// log is the internal logging method that takes a pre-merged slice
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Message = msg

	// Merged field list: logger's base fields, then call-site fields
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	// Uniform silent-drop policy: a sink failure is counted by the
	// handler but never surfaces here.
	_ = l.handler.Handle(entry)

	core.PutEntry(entry)
}

// Trace logs a message at trace level
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if core.TraceLevel < l.config.Level {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a message at debug level
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.config.Level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs a message at info level
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.config.Level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a message at warn level
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.config.Level {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs a message at error level
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.config.Level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Tracef logs a formatted message at trace level
func (l *Logger) Tracef(format string, args ...interface{}) {
	if core.TraceLevel < l.config.Level {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.config.Level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.config.Level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted message at warn level
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.config.Level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.config.Level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
