package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mpavlicek/termlog/core"
	"github.com/mpavlicek/termlog/formatter"
)

// ConsoleHandler writes log entries to a terminal or any io.Writer.
//
// All writes are synchronous: an entry is formatted into a handler-owned
// buffer and flushed with exactly one Write call under a mutex, so lines
// from concurrent callers never interleave. Write failures are counted in
// Stats and reported to the caller via the Handle error; the line itself
// is dropped.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	colorCapable    bool

	mu    sync.Mutex
	buf   bytes.Buffer
	stats *Stats
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter with timestamps)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler. The writer's color
// capability is probed exactly once, here; Log calls never re-probe.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{ShowTimestamp: true})
	}

	h := &ConsoleHandler{
		writer:       cfg.Writer,
		formatter:    cfg.Formatter,
		colorCapable: ColorCapable(cfg.Writer),
		stats:        NewStats(),
	}
	h.buf.Grow(256)

	// Cache BufferFormatter for the buffer-pool-free path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	return h
}

// Handle formats the entry and writes it as one indivisible write
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		h.mu.Unlock()
		return h.account(entry.Level, err)
	}

	line, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.IncrementDropped(entry.Level)
		return err
	}

	h.mu.Lock()
	_, err = h.writer.Write(line)
	h.mu.Unlock()
	return h.account(entry.Level, err)
}

func (h *ConsoleHandler) account(level core.Level, err error) error {
	if err != nil {
		h.stats.IncrementDropped(level)
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// CanRecycleEntry returns true because the console handler consumes
// entries before Handle returns.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return true
}

// ColorCapable reports the cached result of the construction-time probe
// of the handler's writer.
func (h *ConsoleHandler) ColorCapable() bool {
	return h.colorCapable
}

// Writer returns the handler's output writer
func (h *ConsoleHandler) Writer() io.Writer {
	return h.writer
}

// Stats returns the handler's counters
func (h *ConsoleHandler) Stats() *Stats {
	return h.stats
}

// Close flushes nothing (writes are synchronous) and releases no
// resources; it exists to satisfy the Handler interface.
func (h *ConsoleHandler) Close() error {
	return nil
}
