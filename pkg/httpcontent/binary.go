package httpcontent

import (
	"fmt"
	"strings"
)

type binaryProcessor struct{}

// NewBinaryProcessor handles binary media types such as images or octet streams.
// It renders a placeholder with the length of the content, never the bytes.
func NewBinaryProcessor() Processor {
	return binaryProcessor{}
}

func (binaryProcessor) Name() string {
	return "binary"
}

func (binaryProcessor) CanHandle(c *Content) bool {
	return isBinary(c.MediaType())
}

func (binaryProcessor) Render(c *Content, sb *strings.Builder) {
	if c.IsAbsent() {
		return
	}
	if c.IsDisposed() {
		sb.WriteString(DisposedWarning)
		return
	}
	fmt.Fprintf(sb, binaryPlaceholderShape, c.Size())
}
