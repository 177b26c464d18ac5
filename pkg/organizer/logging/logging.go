// Package logging provides component-scoped structured logging for the
// organizer CLI, backed by charmbracelet/log.
//
// Basic usage:
//
//	cfg := logging.Config{Level: "info", Path: logging.DefaultLogPath()}
//	if err := logging.Init(cfg); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logger := logging.Get("planner")
//	logger.Info("plan complete", "moves", 12)
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// toCharmLevel converts our Level to charmbracelet/log level.
func (l Level) toCharmLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the log level for the file logger (debug, info, warn, error).
	Level string

	// Path is the log file path. Empty uses DefaultLogPath().
	Path string

	// ConsoleLevel enables stderr output at the given level. Empty
	// string disables console output.
	ConsoleLevel string
}

// DefaultLogPath returns the default log file location under the XDG
// state directory.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "organizer", "organizer.log")
}

// Logger wraps charmbracelet/log with component identification. It can
// write to a file and to stderr with independent levels.
type Logger struct {
	file      *log.Logger
	console   *log.Logger
	component string
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.file.Debug(msg, args...)
	if l.console != nil {
		l.console.Debug(msg, args...)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.file.Info(msg, args...)
	if l.console != nil {
		l.console.Info(msg, args...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.file.Warn(msg, args...)
	if l.console != nil {
		l.console.Warn(msg, args...)
	}
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.file.Error(msg, args...)
	if l.console != nil {
		l.console.Error(msg, args...)
	}
}

// With returns a new logger with additional context.
func (l *Logger) With(args ...interface{}) *Logger {
	out := &Logger{
		file:      l.file.With(args...),
		component: l.component,
	}
	if l.console != nil {
		out.console = l.console.With(args...)
	}
	return out
}

// state holds the global logging state.
type state struct {
	mu           sync.RWMutex
	initialized  bool
	out          *os.File
	level        Level
	consoleOn    bool
	consoleLevel Level
	loggers      map[string]*Logger
}

var globalState = &state{
	loggers: make(map[string]*Logger),
}

// Init initializes the logging system with the given configuration.
// Before Init is called, all loggers write to io.Discard.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	path := cfg.Path
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	if globalState.out != nil {
		_ = globalState.out.Close()
	}

	globalState.out = f
	globalState.level = level
	globalState.consoleOn = false
	if cfg.ConsoleLevel != "" {
		consoleLevel, err := ParseLevel(cfg.ConsoleLevel)
		if err != nil {
			_ = f.Close()
			globalState.out = nil
			return fmt.Errorf("parsing console level: %w", err)
		}
		globalState.consoleOn = true
		globalState.consoleLevel = consoleLevel
	}
	globalState.initialized = true

	// Rebind any loggers handed out before Init.
	for component, l := range globalState.loggers {
		rebind(l, component)
	}

	return nil
}

// Close flushes and closes the log file. Loggers obtained earlier keep
// working but write to io.Discard afterwards.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if globalState.out == nil {
		return nil
	}
	err := globalState.out.Close()
	globalState.out = nil
	globalState.initialized = false
	for component, l := range globalState.loggers {
		rebind(l, component)
	}
	return err
}

// Get returns the logger for the given component, creating it if needed.
// Safe to call before Init; such loggers are silent until Init runs.
func Get(component string) *Logger {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if l, ok := globalState.loggers[component]; ok {
		return l
	}

	l := &Logger{component: component}
	rebind(l, component)
	globalState.loggers[component] = l
	return l
}

// rebind points a logger at the current global sinks. Caller holds the lock.
func rebind(l *Logger, component string) {
	var fileSink io.Writer = io.Discard
	if globalState.initialized && globalState.out != nil {
		fileSink = globalState.out
	}

	l.file = log.NewWithOptions(fileSink, log.Options{
		Level:           globalState.level.toCharmLevel(),
		ReportTimestamp: true,
		Prefix:          component,
	})

	l.console = nil
	if globalState.consoleOn {
		l.console = log.NewWithOptions(os.Stderr, log.Options{
			Level:           globalState.consoleLevel.toCharmLevel(),
			ReportTimestamp: false,
			Prefix:          component,
		})
	}
}
