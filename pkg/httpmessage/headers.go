// Package httpmessage merges the headers net/http keeps in different places into one view.
package httpmessage

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/constants"
	"github.com/go-softwarelab/common/pkg/is"
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/seq2"
)

// Header is one header name with all of its values.
type Header struct {
	Name   string
	Values []string
}

// ResponseHeaders returns the transport headers of the response merged with the content headers
// net/http keeps in dedicated fields (Content-Length, Transfer-Encoding).
func ResponseHeaders(resp *http.Response) []Header {
	if resp == nil {
		return nil
	}

	merged := resp.Header.Clone()
	if merged == nil {
		merged = http.Header{}
	}
	addContentHeaders(merged, resp.ContentLength, resp.TransferEncoding)

	return fromHTTPHeader(merged)
}

// RequestHeaders returns the transport headers of the request merged with the fields net/http
// keeps outside of Header (Host, Content-Length, Transfer-Encoding).
func RequestHeaders(req *http.Request) []Header {
	if req == nil {
		return nil
	}

	merged := req.Header.Clone()
	if merged == nil {
		merged = http.Header{}
	}

	host := req.Host
	if host == "" && req.URL != nil {
		host = req.URL.Host
	}
	if host != "" && merged.Get(constants.HeaderHost) == "" {
		merged.Set(constants.HeaderHost, host)
	}

	length := req.ContentLength
	if length == 0 && (req.Body == nil || req.Body == http.NoBody) {
		length = -1
	}
	addContentHeaders(merged, length, req.TransferEncoding)

	return fromHTTPHeader(merged)
}

// FirstValue returns the first non-empty value of the named header, comparing names case-insensitively.
func FirstValue(headers []Header, name string) (string, bool) {
	for _, header := range headers {
		if !strings.EqualFold(header.Name, name) {
			continue
		}
		for _, value := range header.Values {
			if !is.BlankString(value) {
				return value, true
			}
		}
	}
	return "", false
}

func addContentHeaders(header http.Header, length int64, transferEncoding []string) {
	if length >= 0 && header.Get(constants.HeaderContentLength) == "" {
		header.Set(constants.HeaderContentLength, strconv.FormatInt(length, 10))
	}
	if len(transferEncoding) > 0 && header.Get(constants.HeaderTransferEncoding) == "" {
		header[constants.HeaderTransferEncoding] = slices.Clone(transferEncoding)
	}
}

// fromHTTPHeader converts the header map into a list ordered by header name,
// so the rendering is stable across runs.
func fromHTTPHeader(header http.Header) []Header {
	headers := seq.Collect(seq2.MapTo(seq2.FromMap(header), func(name string, values []string) Header {
		return Header{Name: name, Values: values}
	}))

	slices.SortFunc(headers, func(a, b Header) int {
		return strings.Compare(a.Name, b.Name)
	})
	return headers
}
