package core

// Level represents the severity of a log entry
type Level int8

const (
	// TraceLevel for fine-grained tracing information
	TraceLevel Level = iota
	// DebugLevel for development and diagnostic messages
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for potentially harmful situations
	WarnLevel
	// ErrorLevel for failure conditions
	ErrorLevel
)

// levelCodes holds the fixed four-character display codes. The width is
// constant so consecutive lines stay column-aligned in a terminal.
var levelCodes = [...]string{
	TraceLevel: "TRCE",
	DebugLevel: "DEBG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERRO",
}

// levelNames holds the long-form names used by String and ParseLevel.
var levelNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// Code returns the four-character display code of the level
// (TRCE, DEBG, INFO, WARN, ERRO).
func (l Level) Code() string {
	if l < TraceLevel || l > ErrorLevel {
		return "UNKN"
	}
	return levelCodes[l]
}

// String returns the long-form name of the level
func (l Level) String() string {
	if l < TraceLevel || l > ErrorLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}
