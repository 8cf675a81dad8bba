package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fadedpez/carddeal/internal/types"
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
	DEBUG: "debug",
	INFO:  "info",
	WARN:  "warn",
	ERROR: "error",
}

var charmLevels = map[Level]log.Level{
	DEBUG: log.DebugLevel,
	INFO:  log.InfoLevel,
	WARN:  log.WarnLevel,
	ERROR: log.ErrorLevel,
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "info"
}

// ParseLevel maps a level name to a Level, defaulting to INFO
func ParseLevel(name string) Level {
	for level, levelName := range levelNames {
		if strings.EqualFold(strings.TrimSpace(name), levelName) {
			return level
		}
	}
	return INFO
}

// Logger wraps a charm logger behind the printf-style API used across the module
type Logger struct {
	*log.Logger
	level Level
}

// NewLogger creates a logger that writes to stderr, keeping stdout for deal output
func NewLogger(level Level) *Logger {
	return NewLoggerWithWriter(os.Stderr, level)
}

// Format selects how log lines are rendered
type Format int

const (
	// TextFormat is the human-readable development format
	TextFormat Format = iota
	// JSONFormat emits one JSON object per line for production collectors
	JSONFormat
)

// NewLoggerWithWriter creates a text logger writing to w
func NewLoggerWithWriter(w io.Writer, level Level) *Logger {
	return NewLoggerWithFormat(w, level, TextFormat)
}

// NewLoggerWithFormat creates a logger writing to w in the given format
func NewLoggerWithFormat(w io.Writer, level Level, format Format) *Logger {
	formatter := log.TextFormatter
	if format == JSONFormat {
		formatter = log.JSONFormatter
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           charmLevels[level],
		ReportTimestamp: true,
		ReportCaller:    true,
		CallerOffset:    1,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Formatter:       formatter,
	})
	return &Logger{
		Logger: logger,
		level:  level,
	}
}

// Level returns the configured level
func (l *Logger) Level() Level {
	return l.level
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.Logger.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.Logger.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.Logger.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.Logger.Errorf(format, v...)
}

// LogError logs a DealError with its code and cause as structured fields
func (l *Logger) LogError(err error) {
	var dealErr *types.DealError
	if types.As(err, &dealErr) {
		keyvals := []interface{}{"code", string(dealErr.Code)}
		if dealErr.Err != nil {
			keyvals = append(keyvals, "cause", dealErr.Err.Error())
		}
		if dealErr.Code == types.ErrNoPlayers {
			l.Logger.Warn(dealErr.Message, keyvals...)
			return
		}
		l.Logger.Error(dealErr.Message, keyvals...)
		return
	}
	l.Logger.Error("Unexpected error", "err", err.Error())
}

// Default logger instance
var Default = NewLogger(INFO)
