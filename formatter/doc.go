// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes to an io.Writer in a single Write call,
// and BufferFormatter, which formats into a caller-provided buffer.
// Handlers check for the optional interfaces at construction time and
// prefer them when available, eliminating the intermediate byte slice
// allocation on the write path.
//
// The built-in TextFormatter produces the line
//
//	[timestamp ]LEVELCODE message[ key=value]*\n
//
// where the timestamp defaults to millisecond precision
// ("2006-01-02 15:04:05.000") and LEVELCODE is a fixed four-character
// code. When colors are enabled, only the level code is wrapped in an
// ANSI escape sequence (bold cyan/blue/green/yellow/red for
// Trace/Debug/Info/Warn/Error), followed by a reset; the rest of the
// line never contains escapes. Colored and plain codes are pre-computed
// so either path is a single WriteString call.
//
// Field tokens are rendered in insertion order with no quoting; a value
// containing spaces is emitted verbatim. This is a documented limitation
// of the human-readable format.
//
// The formatter uses a pooled bytes.Buffer and time.AppendFormat to keep
// per-call allocations down. Buffers larger than 64 KiB are not returned
// to the pool to prevent a single large log line from permanently
// inflating memory usage.
package formatter
