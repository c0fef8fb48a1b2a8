package handler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/mpavlicek/termlog/core"
	"github.com/mpavlicek/termlog/formatter"
)

func newSlogTestLogger(t *testing.T, level core.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	return slog.New(NewSlogHandler(h, level)), &buf
}

func TestSlogHandler_Basic(t *testing.T) {
	log, buf := newSlogTestLogger(t, core.InfoLevel)

	log.Info("request served", "status", 200, "path", "/api/users")

	out := buf.String()
	if !strings.Contains(out, "INFO request served") {
		t.Errorf("output %q missing level and message", out)
	}
	if !strings.Contains(out, "status=200") || !strings.Contains(out, "path=/api/users") {
		t.Errorf("output %q missing attrs", out)
	}
}

func TestSlogHandler_LevelGate(t *testing.T) {
	log, buf := newSlogTestLogger(t, core.WarnLevel)

	log.Info("not emitted")
	if buf.Len() != 0 {
		t.Errorf("info record emitted below Warn threshold: %q", buf.String())
	}

	log.Warn("emitted")
	if !strings.Contains(buf.String(), "WARN emitted") {
		t.Errorf("warn record missing: %q", buf.String())
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	log, buf := newSlogTestLogger(t, core.TraceLevel)

	log.With("service", "auth").WithGroup("req").Info("done", "id", "42")

	out := buf.String()
	if !strings.Contains(out, "service=auth") {
		t.Errorf("output %q missing persistent attr", out)
	}
	if !strings.Contains(out, "req.id=42") {
		t.Errorf("output %q missing group-prefixed attr", out)
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
