package formatter

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mpavlicek/termlog/core"
)

func testEntry(level core.Level, msg string, fields ...core.Field) *core.Entry {
	return &core.Entry{
		Time:    time.Date(2024, 3, 17, 14, 25, 36, 789000000, time.UTC),
		Level:   level,
		Message: msg,
		Fields:  fields,
	}
}

func TestTextFormatter_PlainLine(t *testing.T) {
	f := NewTextFormatter(Config{})

	entry := testEntry(core.InfoLevel, "User login",
		core.Field{Key: "user_id", Type: core.StringType, Str: "12345"},
		core.Field{Key: "ip", Type: core.StringType, Str: "192.168.1.100"},
	)

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	want := "INFO User login user_id=12345 ip=192.168.1.100\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatter_Timestamp(t *testing.T) {
	f := NewTextFormatter(Config{ShowTimestamp: true})

	out, err := f.Format(testEntry(core.WarnLevel, "disk almost full"))
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	want := "2024-03-17 14:25:36.789 WARN disk almost full\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}

	// Same instant formats identically on every call.
	again, _ := f.Format(testEntry(core.WarnLevel, "disk almost full"))
	if string(out) != string(again) {
		t.Errorf("timestamp formatting not deterministic: %q vs %q", out, again)
	}
}

func TestTextFormatter_TimestampLayout(t *testing.T) {
	f := NewTextFormatter(Config{ShowTimestamp: true})

	entry := testEntry(core.InfoLevel, "x")
	entry.Time = time.Now()
	out, _ := f.Format(entry)

	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} INFO x\n$`)
	if !re.Match(out) {
		t.Errorf("line %q does not match timestamp layout", out)
	}
}

func TestTextFormatter_LevelCodes(t *testing.T) {
	f := NewTextFormatter(Config{})

	tests := []struct {
		level core.Level
		code  string
	}{
		{core.TraceLevel, "TRCE"},
		{core.DebugLevel, "DEBG"},
		{core.InfoLevel, "INFO"},
		{core.WarnLevel, "WARN"},
		{core.ErrorLevel, "ERRO"},
	}

	for _, tt := range tests {
		out, _ := f.Format(testEntry(tt.level, "msg"))
		if !strings.HasPrefix(string(out), tt.code+" ") {
			t.Errorf("line for %v = %q, want prefix %q", tt.level, out, tt.code)
		}
	}
}

func TestTextFormatter_Colors(t *testing.T) {
	f := NewTextFormatter(Config{UseColors: true})

	out, _ := f.Format(testEntry(core.InfoLevel, "hello",
		core.Field{Key: "k", Type: core.StringType, Str: "v"},
	))

	want := "\x1b[32;1mINFO\x1b[0m hello k=v\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}

	// Only the level code is wrapped; the remainder of the line carries no
	// escape sequences.
	rest := strings.SplitN(string(out), "\x1b[0m", 2)[1]
	if strings.Contains(rest, "\x1b") {
		t.Errorf("escape sequence outside level code: %q", out)
	}
}

func TestTextFormatter_ColorPerLevel(t *testing.T) {
	f := NewTextFormatter(Config{UseColors: true})

	tests := []struct {
		level core.Level
		pen   string
	}{
		{core.TraceLevel, "\x1b[36;1m"}, // cyan
		{core.DebugLevel, "\x1b[34;1m"}, // blue
		{core.InfoLevel, "\x1b[32;1m"},  // green
		{core.WarnLevel, "\x1b[33;1m"},  // yellow
		{core.ErrorLevel, "\x1b[31;1m"}, // red
	}

	for _, tt := range tests {
		out, _ := f.Format(testEntry(tt.level, "msg"))
		if !strings.HasPrefix(string(out), tt.pen+tt.level.Code()+"\x1b[0m") {
			t.Errorf("line for %v = %q, want pen %q", tt.level, out, tt.pen)
		}
	}
}

func TestTextFormatter_NoColorsNoEscapes(t *testing.T) {
	f := NewTextFormatter(Config{ShowTimestamp: true})

	out, _ := f.Format(testEntry(core.ErrorLevel, "boom",
		core.Field{Key: "err", Type: core.StringType, Str: "broken pipe"},
	))
	if bytes.Contains(out, []byte{0x1b}) {
		t.Errorf("escape sequence present with colors disabled: %q", out)
	}
}

func TestTextFormatter_DuplicateKeys(t *testing.T) {
	f := NewTextFormatter(Config{})

	out, _ := f.Format(testEntry(core.InfoLevel, "msg",
		core.Field{Key: "k", Type: core.StringType, Str: "first"},
		core.Field{Key: "k", Type: core.StringType, Str: "second"},
	))

	want := "INFO msg k=first k=second\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q (duplicates must all appear)", out, want)
	}
}

func TestTextFormatter_FormatEntryMatchesFormat(t *testing.T) {
	f := NewTextFormatter(Config{ShowTimestamp: true, UseColors: true})
	entry := testEntry(core.DebugLevel, "both paths",
		core.Field{Key: "n", Type: core.IntType, Int64: 7},
	)

	out, _ := f.Format(entry)

	var buf bytes.Buffer
	f.FormatEntry(entry, &buf)
	if buf.String() != string(out) {
		t.Errorf("FormatEntry = %q, Format = %q", buf.String(), out)
	}
}

func TestTextFormatter_FormatTo(t *testing.T) {
	f := NewTextFormatter(Config{})
	var buf bytes.Buffer

	if err := f.FormatTo(testEntry(core.InfoLevel, "direct"), &buf); err != nil {
		t.Fatalf("FormatTo() error: %v", err)
	}
	if buf.String() != "INFO direct\n" {
		t.Errorf("FormatTo wrote %q", buf.String())
	}
}

func TestTextFormatter_CustomTimestampFormat(t *testing.T) {
	f := NewTextFormatter(Config{ShowTimestamp: true, TimestampFormat: "15:04:05"})

	out, _ := f.Format(testEntry(core.InfoLevel, "short clock"))
	if string(out) != "14:25:36 INFO short clock\n" {
		t.Errorf("Format() = %q", out)
	}
}
