// Package httpassert provides testify-style assertions on HTTP responses.
//
// Every failed assertion reports its explanations followed by the whole exchange,
// the response and the request it originated from, with their headers and bodies.
//
//	httpassert.Response(t, resp).
//		IsCreated().
//		HasHeader("Location").
//		HasBodyEquivalentTo(expected)
package httpassert

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/bsv-blockchain/go-http-assertions/pkg/formatter"
	"github.com/bsv-blockchain/go-http-assertions/pkg/httpcontent"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
	"github.com/bsv-blockchain/go-http-assertions/pkg/serializer"
	"github.com/go-softwarelab/common/pkg/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ResponseAssertion interface {
	HasStatus(statusCode int) ResponseAssertion
	IsOK() ResponseAssertion
	IsCreated() ResponseAssertion
	IsAccepted() ResponseAssertion
	IsNoContent() ResponseAssertion
	IsBadRequest() ResponseAssertion
	IsUnauthorized() ResponseAssertion
	IsForbidden() ResponseAssertion
	IsNotFound() ResponseAssertion
	IsConflict() ResponseAssertion
	IsInternalServerError() ResponseAssertion
	IsSuccessful() ResponseAssertion
	IsRedirection() ResponseAssertion
	IsClientError() ResponseAssertion
	IsServerError() ResponseAssertion

	HasHeader(headerName string) ResponseAssertion
	HasHeaderValue(headerName, value string) ResponseAssertion
	NotHasHeader(headerName string) ResponseAssertion
	HasContentType(mediaType string) ResponseAssertion

	HasBody(expectedBody string) ResponseAssertion
	HasBodyContaining(fragment string) ResponseAssertion
	HasEmptyBody() ResponseAssertion
	HasBodyAs(target any) ResponseAssertion
	HasBodyEquivalentTo(expected any) ResponseAssertion
	HasRequiredFields(fieldNames ...string) ResponseAssertion
}

type httpResponseAssertion struct {
	testing.TB

	response   *http.Response
	serializer serializer.Serializer
	formatter  *formatter.Formatter
	log        *slog.Logger
}

// Response starts assertions on the response. The response must not be nil.
func Response(t testing.TB, response *http.Response, opts ...func(*Options)) ResponseAssertion {
	t.Helper()
	require.NotNil(t, response, "response should not be nil")

	options := to.OptionsWithDefault(Options{}, opts...)
	logger := logging.Child(options.logger, "ResponseAssertion")

	return &httpResponseAssertion{
		TB:         t,
		response:   response,
		serializer: serializer.OrCurrent(options.serializer),
		formatter:  newFormatter(logger, options.processors),
		log:        logger,
	}
}

func newFormatter(logger *slog.Logger, processors []httpcontent.Processor) *formatter.Formatter {
	if len(processors) == 0 {
		return formatter.New(formatter.WithLogger(logger))
	}

	runner := httpcontent.NewRunner(
		httpcontent.WithLogger(logger),
		httpcontent.WithProcessors(processors...),
	)
	return formatter.New(formatter.WithRunner(runner))
}

// fail reports the summary, the explanations and the formatted exchange as one testify failure.
func (a *httpResponseAssertion) fail(summary string, failure *formatter.FailureMessage) {
	a.Helper()

	var sb strings.Builder
	sb.WriteString(summary)
	sb.WriteString(failure.String())
	sb.WriteString("\n\n")
	sb.WriteString(a.formatter.FormatResponse(a.response))

	assert.Fail(a, sb.String())
}

func (a *httpResponseAssertion) failf(format string, args ...any) {
	a.Helper()
	a.fail(fmt.Sprintf(format, args...), nil)
}
