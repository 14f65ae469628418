// Package formatter renders HTTP exchanges and assertion failures as human-readable text.
package formatter

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/bsv-blockchain/go-http-assertions/pkg/httpcontent"
	"github.com/bsv-blockchain/go-http-assertions/pkg/httpmessage"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
	"github.com/go-softwarelab/common/pkg/to"
)

const defaultProto = "HTTP/1.1"

type Options struct {
	Logger *slog.Logger
	Runner *httpcontent.Runner
}

func WithLogger(logger *slog.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithRunner replaces the content runner used to render bodies.
func WithRunner(runner *httpcontent.Runner) func(*Options) {
	return func(o *Options) {
		o.Runner = runner
	}
}

// Formatter renders a response together with the request it originated from.
type Formatter struct {
	runner *httpcontent.Runner
}

func New(opts ...func(*Options)) *Formatter {
	options := to.OptionsWithDefault(Options{}, opts...)

	runner := options.Runner
	if runner == nil {
		runner = httpcontent.NewRunner(httpcontent.WithLogger(logging.Child(options.Logger, "Formatter")))
	}

	return &Formatter{runner: runner}
}

// FormatResponse renders the response with the default processors, logging to the library logger.
func FormatResponse(resp *http.Response) string {
	return New().FormatResponse(resp)
}

// FormatResponse renders the status line, headers and content of the response,
// followed by the same for resp.Request. Bodies stay readable afterwards.
func (f *Formatter) FormatResponse(resp *http.Response) string {
	if resp == nil {
		return "The HTTP response was <null>."
	}

	var sb strings.Builder
	sb.WriteString("The HTTP response was:\n")
	f.appendResponse(&sb, resp)

	if resp.Request == nil {
		sb.WriteString("The originated HTTP request was <null>.\n")
		return sb.String()
	}

	sb.WriteString("The originated HTTP request was:\n")
	f.appendRequest(&sb, resp.Request)
	return sb.String()
}

func (f *Formatter) appendResponse(sb *strings.Builder, resp *http.Response) {
	fmt.Fprintf(sb, "%s %d %s\n", protoOf(resp.Proto, resp.ProtoMajor, resp.ProtoMinor), resp.StatusCode, ReasonPhrase(resp))
	AppendHeaders(sb, httpmessage.ResponseHeaders(resp))
	AppendContent(sb, f.runner, httpcontent.FromResponse(resp))
}

func (f *Formatter) appendRequest(sb *strings.Builder, req *http.Request) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	target := ""
	if req.URL != nil {
		target = req.URL.String()
	}

	fmt.Fprintf(sb, "%s %s %s\n", method, target, protoOf(req.Proto, req.ProtoMajor, req.ProtoMinor))
	AppendHeaders(sb, httpmessage.RequestHeaders(req))
	AppendContent(sb, f.runner, httpcontent.FromRequest(req))
}

// ReasonPhrase returns the reason phrase of the status code written as one word, e.g. "BadRequest".
func ReasonPhrase(resp *http.Response) string {
	text := http.StatusText(resp.StatusCode)
	if text == "" {
		text = strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, text)
}

func protoOf(proto string, major, minor int) string {
	if proto != "" {
		return proto
	}
	if major > 0 {
		return fmt.Sprintf("HTTP/%d.%d", major, minor)
	}
	return defaultProto
}
