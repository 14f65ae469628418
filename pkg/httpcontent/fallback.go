package httpcontent

import (
	"log/slog"
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
)

type fallbackProcessor struct {
	log *slog.Logger
}

// NewFallbackProcessor renders any content as text, at most MaxDisplayedLength bytes of it.
func NewFallbackProcessor(logger *slog.Logger) Processor {
	return &fallbackProcessor{log: logging.DefaultIfNil(logger).With(slog.String("processor", "fallback"))}
}

func (p *fallbackProcessor) Name() string {
	return "fallback"
}

func (p *fallbackProcessor) CanHandle(*Content) bool {
	return true
}

func (p *fallbackProcessor) Render(c *Content, sb *strings.Builder) {
	if c.IsAbsent() {
		return
	}
	if c.IsDisposed() {
		p.log.Debug("Content cannot be read", logging.Error(c.Err()))
		sb.WriteString(DisposedWarning)
		return
	}

	data, truncated, err := c.Decoded(MaxDisplayedLength)
	if err != nil {
		p.log.Debug("Cannot decode content, rendering raw bytes", logging.Error(err))
	}

	if truncated {
		sb.WriteString(TooLargeWarning)
		sb.WriteString("\n")
	}
	sb.Write(data)
}
