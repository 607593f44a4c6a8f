package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is attached to every log line.
const ServiceName = "frholidays"

// base is swapped, never mutated, so loggers handed out by L() stay valid
// after SetOutput or Init.
var (
	mu   sync.Mutex
	base atomic.Pointer[zerolog.Logger]
	out  io.Writer = os.Stdout
)

// Init configures the global JSON logger.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	mu.Lock()
	defer mu.Unlock()
	initLocked()
}

func initLocked() {
	level := parseLevel(getenv("LOG_LEVEL", "info"))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")

	if zerolog.TimeFieldFormat != time.RFC3339Nano {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	}
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).With().Timestamp().Str("service", ServiceName).Logger().Level(level)
	base.Store(&l)
}

// SetOutput redirects log output (os.Stdout by default) and re-applies the
// environment configuration.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	out = w
	initLocked()
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	if l := base.Load(); l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if base.Load() == nil {
		initLocked()
	}
	return base.Load()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
