package testabilities

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/bsv-blockchain/go-http-assertions/pkg/constants"
	"github.com/go-resty/resty/v2"
	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/go-softwarelab/common/pkg/to"
	"github.com/stretchr/testify/require"
)

type ClientFixtureOptions struct {
	logger *slog.Logger
}

func WithClientLogger(logger *slog.Logger) func(options *ClientFixtureOptions) {
	return func(options *ClientFixtureOptions) {
		options.logger = logger
	}
}

type ClientFixture interface {
	// Get sends a GET request to the given path of the started server.
	Get(path string, headers ...string) *http.Response
	// PostJSON sends the payload marshaled to JSON, or as is when it is a string.
	PostJSON(path string, payload any) *http.Response
	// Do sends the request and registers closing of the response body on test cleanup.
	Do(req *http.Request) *http.Response
	Resty() *resty.Client
}

type clientFixture struct {
	testing.TB
	server ServerFixture
	http   *http.Client
	logger *slog.Logger
}

func newClientFixture(t testing.TB, server ServerFixture, opts ...func(*ClientFixtureOptions)) ClientFixture {
	f := &clientFixture{
		TB:     t,
		server: server,
		http:   &http.Client{Timeout: 10 * time.Second},
	}

	options := to.OptionsWithDefault(ClientFixtureOptions{
		logger: slogx.NewTestLogger(f),
	}, opts...)

	f.logger = options.logger

	return f
}

// Get accepts additional headers as name and value pairs.
func (f *clientFixture) Get(path string, headers ...string) *http.Response {
	f.Helper()
	require.Zero(f, len(headers)%2, "headers should be given as name and value pairs: invalid test setup")

	req, err := http.NewRequest(http.MethodGet, f.url(path), nil)
	require.NoError(f, err, "failed to create request: invalid test setup")

	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	return f.Do(req)
}

func (f *clientFixture) PostJSON(path string, payload any) *http.Response {
	f.Helper()

	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	default:
		var err error
		body, err = json.Marshal(payload)
		require.NoError(f, err, "failed to marshal payload: invalid test setup")
	}

	req, err := http.NewRequest(http.MethodPost, f.url(path), bytes.NewReader(body))
	require.NoError(f, err, "failed to create request: invalid test setup")
	req.Header.Set(constants.HeaderContentType, constants.MediaTypeJSON)

	return f.Do(req)
}

func (f *clientFixture) Do(req *http.Request) *http.Response {
	f.Helper()

	f.logger.Debug("Sending request", slog.String("method", req.Method), slog.String("url", req.URL.String()))

	res, err := f.http.Do(req)
	require.NoErrorf(f, err, "failed to send %s %s", req.Method, req.URL)

	f.Cleanup(func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	})

	return res
}

func (f *clientFixture) Resty() *resty.Client {
	return resty.New().
		SetBaseURL(f.server.URL().String()).
		SetTimeout(10 * time.Second)
}

func (f *clientFixture) url(path string) string {
	return f.server.URL().JoinPath(path).String()
}
