package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ILogger is the interface that wraps the basic logging methods.
type ILogger interface {
	// Debug returns a debug level event
	Debug() IEvent
	// Info returns an info level event
	Info() IEvent
	// Warn returns a warn level event
	Warn() IEvent
	// Error returns an error level event
	Error() IEvent
	// Fatal returns a fatal level event
	Fatal() IEvent
	// SetLevel sets the log level
	SetLevel(level Level)
	// GetLevel returns the current log level
	GetLevel() Level
}

// IEvent is the interface that wraps the basic event methods.
type IEvent interface {
	// Err adds an error to the event
	Err(err error) IEvent
	// Str adds a key/value field to the event
	Str(key, value string) IEvent
	// Msg logs a message
	Msg(msg string)
	// Msgf logs a formatted message
	Msgf(format string, v ...interface{})
}

// LoggerConfig represents the configuration for a logger.
type LoggerConfig struct {
	// Writer is the output writer
	Writer io.Writer
	// Level is the log level
	Level Level
	// TimeFormat is the format for timestamps
	TimeFormat string
}

// DefaultLoggerConfig returns the default configuration for a logger.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Writer:     nil, // Will be set to os.Stdout in New
		Level:      InfoLevel,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// Level represents the log level
type Level int8

const (
	// DebugLevel defines debug log level
	DebugLevel Level = iota
	// InfoLevel defines info log level
	InfoLevel
	// WarnLevel defines warn log level
	WarnLevel
	// ErrorLevel defines error log level
	ErrorLevel
	// FatalLevel defines fatal log level
	FatalLevel
)

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

// String returns the string representation of the log level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", l)
}

// ParseLevel returns the level named s, case-insensitively.
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(name, s) {
			return level, nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// Logger represents a logger instance
type Logger struct {
	writer     io.Writer
	level      Level
	mu         sync.Mutex
	buf        []byte
	timeFormat string
	now        func() time.Time
}

// New creates a new logger with the given writer and level
func New(writer io.Writer, level Level) *Logger {
	config := DefaultLoggerConfig()
	config.Writer = writer
	config.Level = level
	return NewWithConfig(config)
}

// NewWithConfig creates a new logger with the given configuration
func NewWithConfig(config LoggerConfig) *Logger {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.TimeFormat == "" {
		config.TimeFormat = DefaultLoggerConfig().TimeFormat
	}
	return &Logger{
		writer:     config.Writer,
		level:      config.Level,
		buf:        make([]byte, 0, 512),
		timeFormat: config.TimeFormat,
		now:        time.Now,
	}
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// newEvent returns a nil *Event when level is filtered out. Event methods
// are no-ops on a nil receiver, so callers can chain without checking.
func (l *Logger) newEvent(level Level) IEvent {
	if l.level > level {
		return (*Event)(nil)
	}
	return &Event{logger: l, level: level}
}

// Debug returns a debug level event
func (l *Logger) Debug() IEvent { return l.newEvent(DebugLevel) }

// Info returns an info level event
func (l *Logger) Info() IEvent { return l.newEvent(InfoLevel) }

// Warn returns a warn level event
func (l *Logger) Warn() IEvent { return l.newEvent(WarnLevel) }

// Error returns an error level event
func (l *Logger) Error() IEvent { return l.newEvent(ErrorLevel) }

// Fatal returns a fatal level event
func (l *Logger) Fatal() IEvent {
	return &Event{logger: l, level: FatalLevel}
}

// Event represents a log event
type Event struct {
	logger *Logger
	level  Level
	err    error
	fields []string
}

// Err adds an error to the event
func (e *Event) Err(err error) IEvent {
	if e == nil {
		return e
	}
	e.err = err
	return e
}

// Str adds a key/value field to the event
func (e *Event) Str(key, value string) IEvent {
	if e == nil {
		return e
	}
	e.fields = append(e.fields, key, value)
	return e
}

// Msg logs a message
func (e *Event) Msg(msg string) {
	if e == nil {
		return
	}
	e.write(msg)
}

// Msgf logs a formatted message
func (e *Event) Msgf(format string, v ...interface{}) {
	if e == nil {
		return
	}
	e.write(fmt.Sprintf(format, v...))
}

// write renders "<time> | LEVEL | msg key=value error=..." on one line.
func (e *Event) write(msg string) {
	l := e.logger
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buf = l.buf[:0]
	l.buf = l.now().AppendFormat(l.buf, l.timeFormat)
	l.buf = append(l.buf, " | "...)
	l.buf = append(l.buf, e.level.String()...)
	l.buf = append(l.buf, " | "...)
	l.buf = append(l.buf, msg...)
	for i := 0; i+1 < len(e.fields); i += 2 {
		l.buf = append(l.buf, ' ')
		l.buf = append(l.buf, e.fields[i]...)
		l.buf = append(l.buf, '=')
		l.buf = append(l.buf, e.fields[i+1]...)
	}
	if e.err != nil {
		l.buf = append(l.buf, " error="...)
		l.buf = append(l.buf, e.err.Error()...)
	}

	l.writer.Write(l.buf)
}

// Default logger
var defaultLogger = New(os.Stdout, InfoLevel)

// Debug returns a debug level event from the default logger
func Debug() IEvent { return defaultLogger.Debug() }

// Info returns an info level event from the default logger
func Info() IEvent { return defaultLogger.Info() }

// Warn returns a warn level event from the default logger
func Warn() IEvent { return defaultLogger.Warn() }

// Error returns an error level event from the default logger
func Error() IEvent { return defaultLogger.Error() }

// Fatal returns a fatal level event from the default logger
func Fatal() IEvent { return defaultLogger.Fatal() }

// SetLevel sets the log level for the default logger
func SetLevel(level Level) {
	defaultLogger.level = level
}

// SetOutput sets the output writer for the default logger
func SetOutput(w io.Writer) {
	defaultLogger.writer = w
}
