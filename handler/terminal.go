package handler

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorCapable reports whether w should receive ANSI color output by
// default. It is true only when w is an interactive terminal and the
// environment does not opt out of color.
//
// The probe recognizes two opt-out signals: a non-empty NO_COLOR variable
// (https://no-color.org) and TERM=dumb. Anything that is not an *os.File
// (pipes wrapped in bufio, bytes.Buffer test sinks, io.Discard) is never
// color capable.
func ColorCapable(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
