package httpcontent

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
	"github.com/go-softwarelab/common/pkg/to"
)

// Warnings rendered in place of a body.
const (
	DisposedWarning        = "***** Content is disposed so it cannot be read. *****"
	TooLargeWarning        = "***** Content is too large to display and only a part is printed. *****"
	binaryPlaceholderShape = "***** Content is of a binary encoded like type having the length %d. *****"
	renderFailureShape     = "***** Content could not be rendered: %v. *****"
)

// Processor recognizes one category of content and renders it.
// Render must not fail: internal problems degrade to a textual fallback.
type Processor interface {
	Name() string
	CanHandle(c *Content) bool
	Render(c *Content, sb *strings.Builder)
}

// DefaultProcessors returns the processors in the order they are consulted: JSON, binary, multipart, fallback.
func DefaultProcessors(logger *slog.Logger) []Processor {
	return []Processor{
		NewJSONProcessor(logger),
		NewBinaryProcessor(),
		NewMultipartProcessor(),
		NewFallbackProcessor(logger),
	}
}

type RunnerOptions struct {
	Logger     *slog.Logger
	Processors []Processor
}

func WithLogger(logger *slog.Logger) func(*RunnerOptions) {
	return func(o *RunnerOptions) {
		o.Logger = logger
	}
}

// WithProcessors replaces the default processors. The list is consulted in order.
func WithProcessors(processors ...Processor) func(*RunnerOptions) {
	return func(o *RunnerOptions) {
		o.Processors = processors
	}
}

// Runner renders a content with the first processor that can handle it.
type Runner struct {
	processors []Processor
	log        *slog.Logger
}

func NewRunner(opts ...func(*RunnerOptions)) *Runner {
	options := to.OptionsWithDefault(RunnerOptions{}, opts...)

	logger := logging.Child(options.Logger, "ContentRunner")
	processors := options.Processors
	if processors == nil {
		processors = DefaultProcessors(logger)
	}

	return &Runner{
		processors: processors,
		log:        logger,
	}
}

// Describe renders the content with the default processors, logging to the library logger.
func Describe(c *Content) string {
	return NewRunner().Describe(c)
}

// Describe renders the content. Only the first processor that can handle the content renders it,
// so the fallback applies only when no specialized processor did.
func (r *Runner) Describe(c *Content) string {
	if c == nil {
		return ""
	}

	for _, processor := range r.processors {
		if !processor.CanHandle(c) {
			continue
		}
		return r.render(processor, c)
	}
	return ""
}

func (r *Runner) render(processor Processor, c *Content) (rendered string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.log.Warn("Content processor panicked", slog.String("processor", processor.Name()), slog.Any("panic", recovered))
			rendered = fmt.Sprintf(renderFailureShape, recovered)
		}
	}()

	var sb strings.Builder
	processor.Render(c, &sb)
	return sb.String()
}
