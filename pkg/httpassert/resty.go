package httpassert

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

// FromResty starts assertions on the response received by a resty client.
// resty buffers the body, so the raw response body is rebuilt from that buffer.
func FromResty(t testing.TB, response *resty.Response, opts ...func(*Options)) ResponseAssertion {
	t.Helper()
	require.NotNil(t, response, "resty response should not be nil")
	require.NotNil(t, response.RawResponse, "resty response should wrap an http response")

	if body := response.Body(); body != nil {
		response.RawResponse.Body = io.NopCloser(bytes.NewReader(body))
	}

	return Response(t, response.RawResponse, opts...)
}
