package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/fadedpez/wildcatblackjack/internal/types"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var charmLevels = map[Level]charmlog.Level{
	DEBUG: charmlog.DebugLevel,
	INFO:  charmlog.InfoLevel,
	WARN:  charmlog.WarnLevel,
	ERROR: charmlog.ErrorLevel,
}

func (l Level) String() string {
	return levelNames[l]
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level: %q", s)
}

// Logger represents our custom logger
type Logger struct {
	base  *charmlog.Logger
	level Level
}

// NewLogger creates a new logger writing to w
func NewLogger(w io.Writer, level Level) *Logger {
	base := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Prefix:          "wildcat",
		Level:           charmLevels[level],
	})
	return &Logger{base: base, level: level}
}

// Level returns the minimum level this logger emits
func (l *Logger) Level() Level {
	return l.level
}

// With returns a child logger that adds key/value pairs to every line
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{base: l.base.With(keyvals...), level: l.level}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.base.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.base.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.base.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.base.Errorf(format, v...)
}

// LogError logs a GameError with appropriate context
func (l *Logger) LogError(err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		keyvals := []interface{}{"code", gameErr.Code}
		if gameErr.Err != nil {
			keyvals = append(keyvals, "cause", gameErr.Err)
		}
		l.base.With(keyvals...).Error(gameErr.Message)
		return
	}
	l.Error("Unexpected error: %v", err)
}

// Default logger instance
var Default = NewLogger(os.Stderr, INFO)

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewLogger(io.Discard, ERROR)
}
