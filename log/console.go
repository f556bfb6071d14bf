package log

import (
	"bytes"
	"io"
	"sync"
)

var separator = []byte(" | ")

// ConsoleWriter is a writer that formats logs for console output. It expects
// lines in the Logger format "<time> | LEVEL | message".
type ConsoleWriter struct {
	Out     io.Writer
	NoColor bool
	mu      sync.Mutex
	buf     []byte
}

// NewConsoleWriter creates a new ConsoleWriter
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	if out == nil {
		out = io.Discard
	}
	return &ConsoleWriter{
		Out: out,
		buf: make([]byte, 0, 512),
	}
}

// Write implements io.Writer
func (w *ConsoleWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	firstSep := bytes.Index(p, separator)
	if firstSep == -1 {
		// If we can't parse it, just write it as is
		return w.Out.Write(p)
	}
	rest := p[firstSep+len(separator):]
	secondSep := bytes.Index(rest, separator)
	if secondSep == -1 {
		return w.Out.Write(p)
	}

	timestamp := p[:firstSep]
	level := levelFromName(rest[:secondSep])
	msg := rest[secondSep+len(separator):]

	w.buf = w.buf[:0]
	if !w.NoColor {
		w.buf = append(w.buf, ColorCyan...)
	}
	w.buf = append(w.buf, timestamp...)
	if !w.NoColor {
		w.buf = append(w.buf, ColorReset...)
	}
	w.buf = append(w.buf, ' ')
	w.buf = append(w.buf, ColoredLevel(level, w.NoColor)...)
	w.buf = append(w.buf, ' ')

	// Highlight the trailing error field
	if i := bytes.Index(msg, []byte(" error=")); i >= 0 && !w.NoColor {
		w.buf = append(w.buf, msg[:i+1]...)
		w.buf = append(w.buf, ColorRed...)
		w.buf = append(w.buf, msg[i+1:]...)
		w.buf = append(w.buf, ColorReset...)
	} else {
		w.buf = append(w.buf, msg...)
	}
	w.buf = append(w.buf, '\n')

	if _, err := w.Out.Write(w.buf); err != nil {
		return 0, err
	}
	return len(p), nil
}

func levelFromName(name []byte) Level {
	for level, levelName := range levelNames {
		if string(name) == levelName {
			return level
		}
	}
	return Level(-1)
}

// DefaultConsoleWriter returns a ConsoleWriter with default settings
func DefaultConsoleWriter() *ConsoleWriter {
	return NewConsoleWriter(nil)
}
