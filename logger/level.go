package logger

import (
	"strings"

	"github.com/mpavlicek/termlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level. Both the long names and the
// four-character display codes are accepted; anything else maps to Info.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "TRACE", "TRCE":
		return TraceLevel
	case "DEBUG", "DEBG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR", "ERRO":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
