package httpassert

import (
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/httpcontent"
	"github.com/bsv-blockchain/go-http-assertions/pkg/httpmessage"
)

func (a *httpResponseAssertion) HasHeader(headerName string) ResponseAssertion {
	a.Helper()
	if _, ok := httpmessage.FirstValue(httpmessage.ResponseHeaders(a.response), headerName); !ok {
		a.failf("Expected HTTP response to have header %q, but it was not found.", headerName)
	}
	return a
}

func (a *httpResponseAssertion) NotHasHeader(headerName string) ResponseAssertion {
	a.Helper()
	if value, ok := httpmessage.FirstValue(httpmessage.ResponseHeaders(a.response), headerName); ok {
		a.failf("Expected HTTP response not to have header %q, but found it with value %q.", headerName, value)
	}
	return a
}

func (a *httpResponseAssertion) HasHeaderValue(headerName, value string) ResponseAssertion {
	a.Helper()
	var found []string
	for _, header := range httpmessage.ResponseHeaders(a.response) {
		if !strings.EqualFold(header.Name, headerName) {
			continue
		}
		for _, actual := range header.Values {
			if actual == value {
				return a
			}
		}
		found = append(found, header.Values...)
	}

	if len(found) == 0 {
		a.failf("Expected HTTP response to have header %q with value %q, but the header was not found.", headerName, value)
	} else {
		a.failf("Expected HTTP response to have header %q with value %q, but found %q.", headerName, value, found)
	}
	return a
}

func (a *httpResponseAssertion) HasContentType(mediaType string) ResponseAssertion {
	a.Helper()
	actual := httpcontent.FromResponse(a.response).MediaType()
	if !strings.EqualFold(actual, mediaType) {
		a.failf("Expected HTTP response content to have media type %q, but found %q.", mediaType, actual)
	}
	return a
}
