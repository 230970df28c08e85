// Package debug provides the --debug diagnostic logger. Output goes to stderr
// through a zerolog console writer and is discarded unless debug mode is on.
package debug

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05.000"

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger            = zerolog.Nop()
)

// rebuild recreates the shared logger. Callers must hold mu.
func rebuild() {
	if !enabled {
		logger = zerolog.Nop()
		return
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: timeFormat,
	}
	logger = zerolog.New(console).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	rebuild()
}

// Logger returns the current debug logger for structured events.
// It is a no-op logger while debug mode is off.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Component returns the debug logger tagged with a component name.
func Component(name string) zerolog.Logger {
	l := Logger()
	return l.With().Str("component", name).Logger()
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	l := Logger()
	l.Debug().Msgf(format, args...)
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	l := Logger()
	l.Debug().Msg("=== " + section + " ===")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	l := Logger()
	l.Debug().Interface(key, value).Send()
}
