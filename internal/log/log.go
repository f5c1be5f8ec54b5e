// ABOUTME: Leveled logging over charmbracelet/log; global level via SetLevel
// ABOUTME: Writes to stderr so prompts and command output on stdout stay clean

package log

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  atomic.Int64
	logger atomic.Pointer[charmlog.Logger]
)

func init() {
	level.Store(int64(LevelInfo))
	SetOutput(os.Stderr)
}

// SetOutput redirects log output to w. Used by tests.
func SetOutput(w io.Writer) {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: "pkgfind",
		Level:  charmlog.Level(GetLevel()),
	})
	logger.Store(l)
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
	logger.Load().SetLevel(charmlog.Level(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logger.Load().Debugf(format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	logger.Load().Infof(format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logger.Load().Warnf(format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	logger.Load().Errorf(format, args...)
}
