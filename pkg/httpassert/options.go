package httpassert

import (
	"log/slog"

	"github.com/bsv-blockchain/go-http-assertions/pkg/httpcontent"
	"github.com/bsv-blockchain/go-http-assertions/pkg/serializer"
)

type Options struct {
	serializer serializer.Serializer
	logger     *slog.Logger
	processors []httpcontent.Processor
}

// WithSerializer sets the serializer used by body assertions.
// Without it, the process-wide serializer.Current() is used.
func WithSerializer(s serializer.Serializer) func(*Options) {
	return func(options *Options) {
		options.serializer = s
	}
}

func WithLogger(logger *slog.Logger) func(*Options) {
	return func(options *Options) {
		options.logger = logger
	}
}

func WithoutLogging() func(*Options) {
	return func(options *Options) {
		options.logger = slog.New(slog.DiscardHandler)
	}
}

// WithContentProcessors replaces the processors rendering bodies in failure messages.
// They are consulted in order, so the list should end with httpcontent.NewFallbackProcessor.
func WithContentProcessors(processors ...httpcontent.Processor) func(*Options) {
	return func(options *Options) {
		options.processors = processors
	}
}
