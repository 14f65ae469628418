package httpcontent

import "strings"

type multipartProcessor struct{}

// NewMultipartProcessor handles multipart media types. The parts are described by the headers
// alone, so nothing but the disposed warning is rendered for the body.
func NewMultipartProcessor() Processor {
	return multipartProcessor{}
}

func (multipartProcessor) Name() string {
	return "multipart"
}

func (multipartProcessor) CanHandle(c *Content) bool {
	return isMultipart(c.MediaType())
}

func (multipartProcessor) Render(c *Content, sb *strings.Builder) {
	if !c.IsAbsent() && c.IsDisposed() {
		sb.WriteString(DisposedWarning)
	}
}
