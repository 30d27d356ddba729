// ABOUTME: Logrus-backed logger implementation with optional rotating file output
// ABOUTME: Satisfies the core Logger interface with structured field support

package logrus

import (
	"io"
	"os"

	sirupsen "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger construction
type Config struct {
	// Level is the minimum level to emit: debug, info, warn or error
	Level string

	// File, when non-empty, routes output to a size-rotated log file
	// instead of stdout
	File string
}

// Logger implements the core Logger interface on top of logrus
type Logger struct {
	log *sirupsen.Logger
}

// New creates a logger from the given config. An unparseable level falls
// back to info.
func New(cfg Config) *Logger {
	l := sirupsen.New()

	level, err := sirupsen.ParseLevel(cfg.Level)
	if err != nil {
		level = sirupsen.InfoLevel
	}
	l.SetLevel(level)

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	l.SetOutput(out)

	return &Logger{log: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Error(msg)
}

// Underlying exposes the wrapped logrus logger for test hooks
func (l *Logger) Underlying() *sirupsen.Logger {
	return l.log
}
