package logging

import (
	"fmt"
	"io"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger writes leveled log messages to an io.Writer. A nil *Logger discards
// all messages, so optional logging hooks can be called without a check.
type Logger struct {
	level int
	out   io.Writer
}

// CreateLogger returns a Logger which writes messages at or above the given
// level to out
func CreateLogger(level int, out io.Writer) *Logger {
	return &Logger{level: level, out: out}
}

// Logf writes a formatted message at the given level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if l == nil || l.out == nil || level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s: %s\n", LogLevelToString(level), fmt.Sprintf(format, args...))
}
