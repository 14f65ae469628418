package httpcontent

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
)

type jsonProcessor struct {
	log *slog.Logger
}

// NewJSONProcessor handles application/json and +json media types by indenting the document.
// A malformed document is rendered as is.
func NewJSONProcessor(logger *slog.Logger) Processor {
	return &jsonProcessor{log: logging.DefaultIfNil(logger).With(slog.String("processor", "json"))}
}

func (p *jsonProcessor) Name() string {
	return "json"
}

func (p *jsonProcessor) CanHandle(c *Content) bool {
	return isJSON(c.MediaType())
}

func (p *jsonProcessor) Render(c *Content, sb *strings.Builder) {
	if c.IsAbsent() {
		return
	}
	if c.IsDisposed() {
		sb.WriteString(DisposedWarning)
		return
	}

	data, truncated, err := c.Decoded(-1)
	if err != nil {
		p.log.Debug("Cannot decode content, rendering raw bytes", logging.Error(err))
	}

	if truncated {
		p.log.Debug("Decoded content exceeds the limit, rendering only a part of it")
		sb.WriteString(TooLargeWarning)
		sb.WriteString("\n")
		sb.Write(data[:min(len(data), MaxDisplayedLength)])
		return
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, trimmed, "", "  "); err != nil {
		p.log.Debug("Content is not valid JSON, rendering it as is", logging.Error(err))
		sb.Write(data)
		return
	}
	sb.Write(indented.Bytes())
}
