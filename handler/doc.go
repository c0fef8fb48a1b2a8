// Package handler dispatches formatted log entries to an output sink.
//
// The built-in ConsoleHandler writes to any io.Writer (default: stderr)
// and guarantees that each entry is flushed with exactly one Write call
// under a mutex. Concurrent log calls therefore produce whole,
// non-interleaved lines; no global ordering beyond the sink's own write
// atomicity is promised.
//
// Everything is synchronous. A failed Write never reaches the logging
// caller: the line is dropped, the failure is counted in Stats, and the
// next call proceeds normally. This uniform silent-drop policy keeps
// logging safe to use inside the caller's own failure paths.
//
// ColorCapable implements the terminal probe used for the automatic
// color default: a writer gets colors only when it is an interactive
// terminal (via go-isatty) and neither NO_COLOR nor TERM=dumb is set in
// the environment. The probe runs once per handler construction, never
// per log call.
//
// SlogHandler adapts the Handler interface to log/slog.Handler, allowing
// termlog to serve as a drop-in backend for the standard library.
package handler
