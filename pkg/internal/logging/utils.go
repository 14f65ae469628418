package logging

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/bsv-blockchain/go-http-assertions/pkg/config"
	"github.com/bsv-blockchain/go-http-assertions/pkg/defs"
	"github.com/go-softwarelab/common/pkg/slogx"
)

const (
	ComponentKey = "component"
	ErrorKey     = "error"
)

// Child returns a new logger with the given component name added to the logger attrs.
func Child(logger *slog.Logger, componentName string) *slog.Logger {
	return DefaultIfNil(logger).With(
		slog.String(ComponentKey, componentName),
	)
}

func Error(err error) slog.Attr {
	return slog.String(ErrorKey, err.Error())
}

// DefaultIfNil returns the library logger if the given logger is nil.
func DefaultIfNil(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Default()
	}
	return logger
}

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(fromEnvironment())
}

func fromEnvironment() *slog.Logger {
	cfg, err := config.Load()
	if err != nil {
		cfg.LogLevel = defs.LogLevelWarn
	}
	logger := New(cfg)
	if err != nil {
		logger.Warn("Invalid environment configuration, using defaults", Error(err))
	}
	return logger
}

// Default returns the library logger configured by Configure or SetDefault.
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// Configure replaces the library logger with one built from the given configuration.
func Configure(cfg config.Config) (restore func()) {
	return SetDefault(New(cfg))
}

// SetDefault replaces the library logger and returns a function restoring the previous one.
// A nil logger silences the library.
func SetDefault(logger *slog.Logger) (restore func()) {
	if logger == nil {
		logger = slogx.SilentLogger()
	}
	previous := defaultLogger.Swap(logger)
	return func() {
		defaultLogger.Store(previous)
	}
}

// New builds a logger writing to stderr, or a silent logger when logging is off.
func New(cfg config.Config) *slog.Logger {
	level, enabled := cfg.LogLevel.SlogLevel()
	if !enabled {
		return slogx.SilentLogger()
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogHandler == defs.JSONHandler {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
