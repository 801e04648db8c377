// Package logger is the structured logging abstraction used by the route
// search and its CLI. It wraps zerolog and rotates log files with lumberjack.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// Logger defines the logging methods.
// Fields are key/value pairs ("key", value, ...) or a single map[string]interface{}.
type Logger interface {
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})

	// With returns a child logger that adds fields to every entry.
	With(fields ...interface{}) Logger
}

// loggerImpl is the zerolog-backed Logger.
type loggerImpl struct {
	zl zerolog.Logger
}

// New creates a logger at the given level writing to every writer.
// With no writers the logger discards everything.
func New(level zerolog.Level, writers ...io.Writer) Logger {
	if len(writers) == 0 {
		return Nop()
	}
	multi := io.MultiWriter(writers...)
	zl := zerolog.New(multi).Level(level).With().Timestamp().Logger()

	return &loggerImpl{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &loggerImpl{zl: zerolog.Nop()}
}

// ConsoleWriter returns a human-readable writer on out; nil means stderr,
// which keeps stdout free for program output.
func ConsoleWriter(out io.Writer) io.Writer {
	if out == nil {
		out = os.Stderr
	}

	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stderr}
}

// FileWriter returns a file writer with rotation.
func FileWriter(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

// ParseLevel maps a level name ("debug", "info", ...) to a zerolog level.
// The empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logger: unknown level %q: %w", s, err)
	}

	return lvl, nil
}

// Info logs an info message
func (l *loggerImpl) Info(msg string, fields ...interface{}) {
	logWithFields(l.zl.Info(), msg, fields...)
}

// Warn logs a warning message
func (l *loggerImpl) Warn(msg string, fields ...interface{}) {
	logWithFields(l.zl.Warn(), msg, fields...)
}

// Error logs an error message
func (l *loggerImpl) Error(msg string, fields ...interface{}) {
	logWithFields(l.zl.Error(), msg, fields...)
}

// Debug logs a debug message
func (l *loggerImpl) Debug(msg string, fields ...interface{}) {
	logWithFields(l.zl.Debug(), msg, fields...)
}

// With returns a child logger carrying fields.
func (l *loggerImpl) With(fields ...interface{}) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}

	return &loggerImpl{zl: ctx.Logger()}
}

// logWithFields adds structured fields to the event.
// The "error" key is attached with event.Err so it renders as zerolog's error field.
func logWithFields(event *zerolog.Event, msg string, fields ...interface{}) {
	if len(fields) == 1 {
		if m, ok := fields[0].(map[string]interface{}); ok {
			event.Fields(m).Msg(msg)
			return
		}
	}
	// odd counts drop the dangling key
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if key == "error" {
			if err, ok := fields[i+1].(error); ok && err != nil {
				event = event.Err(err)
				continue
			}
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
