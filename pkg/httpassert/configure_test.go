package httpassert_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bsv-blockchain/go-http-assertions/pkg/config"
	"github.com/bsv-blockchain/go-http-assertions/pkg/constants"
	"github.com/bsv-blockchain/go-http-assertions/pkg/defs"
	"github.com/bsv-blockchain/go-http-assertions/pkg/httpassert"
	"github.com/bsv-blockchain/go-http-assertions/pkg/httpcontent"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/testabilities"
	"github.com/bsv-blockchain/go-http-assertions/pkg/serializer"
	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	// given:
	cfg := config.Default()
	cfg.Serializer = defs.SerializerStdJSON
	previous := serializer.Current().Name()

	// when:
	restore := httpassert.Configure(cfg)

	// then:
	assert.Equal(t, serializer.StdJSONName, serializer.Current().Name())

	// when:
	restore()

	// then:
	assert.Equal(t, previous, serializer.Current().Name())
}

const (
	pathSecret      = "/api/secret"
	mediaTypeSecret = "application/vnd.secret"
)

type redactingProcessor struct{}

func (redactingProcessor) Name() string {
	return "redacting"
}

func (redactingProcessor) CanHandle(c *httpcontent.Content) bool {
	return c.MediaType() == mediaTypeSecret
}

func (redactingProcessor) Render(_ *httpcontent.Content, sb *strings.Builder) {
	sb.WriteString("***** redacted *****")
}

func TestWithContentProcessors(t *testing.T) {
	// given:
	given, then := testabilities.New(t, testabilities.WithoutLogging())

	// and:
	cleanup := given.Server().
		WithRoute(http.MethodGet, pathSecret, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set(constants.HeaderContentType, mediaTypeSecret)
			_, _ = w.Write([]byte("password=hunter2"))
		}).
		Started()
	defer cleanup()

	// and:
	response := given.Client().Get(pathSecret)

	// and:
	spy := given.FailureSpy()

	// when:
	httpassert.Response(spy, response,
		httpassert.WithContentProcessors(redactingProcessor{}, httpcontent.NewFallbackProcessor(nil)),
	).IsNotFound()

	// then:
	then.Failures(spy).
		HasFailureCount(1).
		HasFailureContaining("Content-Type: application/vnd.secret", "***** redacted *****").
		HasFailureNotContaining("hunter2")
}

func TestHeadersAddedByMiddleware(t *testing.T) {
	// given:
	given, then := testabilities.New(t, testabilities.WithLogger(slogx.NewTestLogger(t)))

	// and:
	cleanup := given.Server().
		WithSampleAPI().
		WithMiddlewareFunc(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Request-Id", "req-1")
				next.ServeHTTP(w, r)
			})
		}).
		Started()
	defer cleanup()

	// and:
	response := given.Client().Get(testabilities.PathComments)

	// and:
	spy := given.FailureSpy()

	// when:
	httpassert.Response(spy, response).
		IsOK().
		HasHeaderValue("x-request-id", "req-1")

	// then:
	then.Failures(spy).HasNoFailures()
}
