package formatter

import (
	"net/http"
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/constants"
	"github.com/bsv-blockchain/go-http-assertions/pkg/httpcontent"
	"github.com/bsv-blockchain/go-http-assertions/pkg/httpmessage"
)

// AppendHeaders writes one "Name: value" line per header value.
// Content-Length is skipped, it no longer matches the rendered content once it is indented.
func AppendHeaders(sb *strings.Builder, headers []httpmessage.Header) {
	for _, header := range headers {
		if http.CanonicalHeaderKey(header.Name) == constants.HeaderContentLength {
			continue
		}
		for _, value := range header.Values {
			sb.WriteString(header.Name)
			sb.WriteString(": ")
			sb.WriteString(value)
			sb.WriteString("\n")
		}
	}
}

// AppendContent writes a blank line and the rendered content, or nothing when there is nothing to render.
func AppendContent(sb *strings.Builder, runner *httpcontent.Runner, content *httpcontent.Content) {
	rendered := runner.Describe(content)
	if rendered == "" {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(rendered)
	sb.WriteString("\n")
}
