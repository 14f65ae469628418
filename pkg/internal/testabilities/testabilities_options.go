package testabilities

import (
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
)

type Options struct {
	logger *slog.Logger
}

// WithLogger sends the logs of the test server, sample API and client to the given logger
// instead of the test output.
func WithLogger(logger *slog.Logger) func(*Options) {
	return func(options *Options) {
		options.logger = logger
	}
}

// WithoutLogging silences the fixtures, useful for tests exchanging large bodies.
func WithoutLogging() func(*Options) {
	return WithLogger(slogx.SilentLogger())
}
