package logger

import (
	"github.com/mpavlicek/termlog/core"
)

// ColorChoice controls whether log lines carry ANSI color sequences.
type ColorChoice uint8

const (
	// ColorAuto enables colors only when the sink is an interactive
	// terminal and the environment does not opt out (NO_COLOR, TERM=dumb).
	// The probe runs once when the logger is constructed.
	ColorAuto ColorChoice = iota
	// ColorAlways enables colors unconditionally, skipping detection
	ColorAlways
	// ColorNever disables colors unconditionally, skipping detection
	ColorNever
)

// String returns the string representation of the choice
func (c ColorChoice) String() string {
	switch c {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// Config bundles the logger options. It is a plain value type; deriving a
// logger copies it, and every field accepts any value without validation.
type Config struct {
	// Level is the minimum level that will be emitted
	Level core.Level
	// Colors controls ANSI color output
	Colors ColorChoice
	// Timestamps prefixes each line with a millisecond timestamp
	Timestamps bool
}

// DefaultConfig returns the default options: Info level, auto-detected
// colors, timestamps on.
func DefaultConfig() Config {
	return Config{
		Level:      core.InfoLevel,
		Colors:     ColorAuto,
		Timestamps: true,
	}
}
