package testabilities

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/go-softwarelab/common/pkg/to"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

type ServerFixture interface {
	WithRoute(method, path string, handler http.HandlerFunc) ServerBuilder
	WithSampleAPI() ServerBuilder
	WithMiddlewareFunc(func(next http.Handler) http.Handler) ServerBuilder

	URL() *url.URL
}

type ServerBuilder interface {
	WithRoute(method, path string, handler http.HandlerFunc) ServerBuilder
	WithSampleAPI() ServerBuilder
	WithMiddlewareFunc(func(next http.Handler) http.Handler) ServerBuilder
	Started() (cleanup func())
}

type ServerFixtureOptions struct {
	logger *slog.Logger
}

func WithServerLogger(logger *slog.Logger) func(*ServerFixtureOptions) {
	return func(options *ServerFixtureOptions) {
		options.logger = logger
	}
}

type serverFixture struct {
	testing.TB
	router     *httprouter.Router
	middleware []middlewareFunc
	server     *httptest.Server
	logger     *slog.Logger
}

type middlewareFunc func(next http.Handler) http.Handler

func NewServerFixture(t testing.TB, opts ...func(*ServerFixtureOptions)) ServerFixture {
	f := &serverFixture{
		TB:         t,
		router:     httprouter.New(),
		middleware: make([]middlewareFunc, 0),
	}

	options := to.OptionsWithDefault(ServerFixtureOptions{
		logger: slogx.NewTestLogger(t),
	}, opts...)

	f.logger = logging.Child(options.logger, "TestServer")

	return f
}

func (f *serverFixture) WithRoute(method, path string, handler http.HandlerFunc) ServerBuilder {
	f.router.HandlerFunc(method, path, handler)
	return f
}

// WithSampleAPI registers the routes of the sample comments API.
func (f *serverFixture) WithSampleAPI() ServerBuilder {
	newSampleAPI(f.logger).register(f.router)
	return f
}

// WithMiddlewareFunc wraps the router in the specified middleware.
// Middleware will be applied in opposite order - so the call chain will go from the first to the last.
func (f *serverFixture) WithMiddlewareFunc(middleware func(next http.Handler) http.Handler) ServerBuilder {
	f.middleware = append(f.middleware, middleware)
	return f
}

func (f *serverFixture) Started() (cleanup func()) {
	f.server = httptest.NewServer(f.handler())

	return f.server.Close
}

func (f *serverFixture) URL() *url.URL {
	require.NotNil(f, f.server, "server must be started before URL can be retrieved: invalid test setup")

	serverURL, err := url.Parse(f.server.URL)
	require.NoErrorf(f, err, "failed to parse server URL (%s): invalid test setup", f.server.URL)

	return serverURL
}

func (f *serverFixture) handler() http.Handler {
	var handler http.Handler = f.router

	for i := len(f.middleware) - 1; i >= 0; i-- {
		handler = f.middleware[i](handler)
	}

	return f.requestLogging(handler)
}

func (f *serverFixture) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		f.logger.Debug("Handled request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("took", time.Since(started)),
		)
	})
}
