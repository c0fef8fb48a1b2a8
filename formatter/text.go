package formatter

import (
	"bytes"
	"io"

	"github.com/mpavlicek/termlog/core"
)

// DefaultTimestampFormat is the timestamp layout used when none is
// configured. Millisecond precision, constant across the process.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

const ansiReset = "\x1b[0m"

// plainCodes holds the bare four-character level codes.
var plainCodes = [...]string{
	core.TraceLevel: "TRCE",
	core.DebugLevel: "DEBG",
	core.InfoLevel:  "INFO",
	core.WarnLevel:  "WARN",
	core.ErrorLevel: "ERRO",
}

// coloredCodes holds the level codes pre-wrapped in their ANSI sequence
// (bold cyan, blue, green, yellow, red) so the colored path is a single
// WriteString call. Only the level code is colorized; timestamp, message,
// and fields are always emitted verbatim.
var coloredCodes = [...]string{
	core.TraceLevel: "\x1b[36;1mTRCE" + ansiReset,
	core.DebugLevel: "\x1b[34;1mDEBG" + ansiReset,
	core.InfoLevel:  "\x1b[32;1mINFO" + ansiReset,
	core.WarnLevel:  "\x1b[33;1mWARN" + ansiReset,
	core.ErrorLevel: "\x1b[31;1mERRO" + ansiReset,
}

// TextFormatter renders log entries as human-readable lines:
//
//	[timestamp ]LEVELCODE message[ key=value]*\n
//
// Field values are appended as-is; embedded whitespace is not quoted.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it to the writer in one Write call
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	if f.ShowTimestamp {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	// Level code - pre-formatted, colored or plain
	if entry.Level >= core.TraceLevel && entry.Level <= core.ErrorLevel {
		if f.UseColors {
			buf.WriteString(coloredCodes[entry.Level])
		} else {
			buf.WriteString(plainCodes[entry.Level])
		}
	} else {
		buf.WriteString("UNKN")
	}
	buf.WriteByte(' ')

	// Message
	buf.WriteString(entry.Message)

	// Fields, in merge order, duplicates included
	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
