package log

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// TestNewConsoleWriter tests the NewConsoleWriter function
func TestNewConsoleWriter(t *testing.T) {
	cw := NewConsoleWriter(nil)
	if cw == nil || cw.Out == nil {
		t.Fatal("NewConsoleWriter(nil) should fall back to io.Discard")
	}

	buf := &bytes.Buffer{}
	cw = NewConsoleWriter(buf)
	if cw.Out != buf {
		t.Error("NewConsoleWriter did not set the output writer correctly")
	}
	if cw.NoColor {
		t.Error("NewConsoleWriter set NoColor to true, expected false")
	}
}

// TestConsoleWriterWrite tests the Write method of ConsoleWriter
func TestConsoleWriterWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	cw := NewConsoleWriter(buf)
	cw.NoColor = true

	line := []byte("2023-01-01 12:34:56 | INFO | Test message")
	n, err := cw.Write(line)
	if err != nil {
		t.Fatalf("ConsoleWriter.Write returned error: %v", err)
	}
	if n != len(line) {
		t.Errorf("ConsoleWriter.Write returned %d, expected %d", n, len(line))
	}
	expected := "2023-01-01 12:34:56 | INFO  | Test message\n"
	if buf.String() != expected {
		t.Errorf("ConsoleWriter.Write wrote %q, expected %q", buf.String(), expected)
	}

	buf.Reset()
	_, _ = cw.Write([]byte("Malformed log line"))
	if buf.String() != "Malformed log line" {
		t.Errorf("ConsoleWriter.Write did not pass through malformed log line, got: %q", buf.String())
	}
}

// TestConsoleWriterColors tests colored output with a logger in front
func TestConsoleWriterColors(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(NewConsoleWriter(buf), DebugLevel)
	logger.now = func() time.Time { return time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC) }

	logger.Error().Err(errors.New("boom")).Msg("failed")

	expected := ColorCyan + "2023-01-01 00:00:00" + ColorReset + " " +
		ColorRed + "| ERROR |" + ColorReset + " failed " +
		ColorRed + "error=boom" + ColorReset + "\n"
	if buf.String() != expected {
		t.Errorf("colored output = %q, expected %q", buf.String(), expected)
	}
}
