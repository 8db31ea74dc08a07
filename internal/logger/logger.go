// Package logger provides a thin wrapper around zerolog.Logger for fizzy.
//
// Logging is process-wide but never implicitly initialized: during
// configuration resolution the caller uses Bootstrap, a logger pinned at the
// lowest verbosity, and once the effective verbosity is known it calls Init
// exactly once. Init also installs the logger as zerolog's global logger so
// code using github.com/rs/zerolog/log sees the same configuration.
package logger

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// ErrAlreadyInitialized is returned by Init after the first successful call.
var ErrAlreadyInitialized = errors.New("logger already initialized")

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

var (
	mu     sync.Mutex
	global *Logger
)

// LevelFor maps a verbosity count to a log level:
// 0 warn, 1 info, 2 debug, 3 and above trace.
func LevelFor(verbosity uint64) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New constructs a *Logger writing to w at the given verbosity.
// Terminals get human-readable console output; anything else gets JSON lines.
func New(w io.Writer, verbosity uint64) *Logger {
	logger := zerolog.New(output(w)).
		Level(LevelFor(verbosity)).
		With().
		Timestamp().
		Logger()
	return &Logger{logger}
}

// Bootstrap returns the logger used while the configuration is still being
// resolved. It always runs at the lowest verbosity.
func Bootstrap(w io.Writer) *Logger {
	return New(w, 0)
}

// Init configures the process-wide logger at the resolved verbosity.
// It must be called once; later calls return ErrAlreadyInitialized along
// with the logger installed by the first call.
func Init(w io.Writer, verbosity uint64) (*Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return global, ErrAlreadyInitialized
	}

	level := LevelFor(verbosity)
	zerolog.SetGlobalLevel(level)
	global = New(w, verbosity)
	log.Logger = global.Logger
	return global, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

func output(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return w
}
