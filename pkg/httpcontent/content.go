// Package httpcontent reads, classifies and renders HTTP bodies for diagnostic messages.
//
// Bodies are read through Content, which buffers what it reads and puts the body back on the
// message, so a response can still be consumed by the caller after it was rendered.
package httpcontent

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/constants"
)

const (
	// MaxDisplayedLength is the number of bytes of text printed for a body.
	MaxDisplayedLength = 128 * 1024

	// maxEncodedLength bounds how much of a compressed body is read for decoding.
	maxEncodedLength = 16 << 20
)

// maxDecodedLength bounds the output of decoding, whatever limit the caller asks for.
var maxDecodedLength int64 = maxEncodedLength

// Content describes the body of a request or response.
type Content struct {
	mediaType string
	length    int64
	encoding  string

	body   *io.ReadCloser
	source io.ReadCloser

	buffered []byte
	complete bool
	disposed bool
	readErr  error
}

// New describes the body referenced by body, with content headers taken from header.
// length is the declared length, -1 when unknown. The referenced body is replaced by a
// replaying reader whenever Content reads from it.
func New(header http.Header, length int64, body *io.ReadCloser) *Content {
	c := &Content{
		mediaType: parseMediaType(header.Get(constants.HeaderContentType)),
		length:    length,
		encoding:  strings.ToLower(strings.TrimSpace(header.Get(constants.HeaderContentEncoding))),
		body:      body,
	}
	if body != nil {
		c.source = *body
	}
	return c
}

// FromResponse describes the body of the response.
func FromResponse(resp *http.Response) *Content {
	if resp == nil {
		return &Content{length: -1}
	}
	return New(resp.Header, resp.ContentLength, &resp.Body)
}

// FromRequest describes the body of the request.
//
// Requests sent by an http.Client have their Body consumed by the transport,
// so a fresh copy from GetBody is used when available.
func FromRequest(req *http.Request) *Content {
	if req == nil {
		return &Content{length: -1}
	}
	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			return New(req.Header, req.ContentLength, &body)
		}
	}
	return New(req.Header, req.ContentLength, &req.Body)
}

// MediaType returns the lower-cased media type without parameters.
func (c *Content) MediaType() string {
	return c.mediaType
}

// Length returns the declared length, -1 when unknown.
func (c *Content) Length() int64 {
	return c.length
}

// Encoding returns the declared Content-Encoding.
func (c *Content) Encoding() string {
	return c.encoding
}

// IsAbsent reports whether the message has no body at all.
func (c *Content) IsAbsent() bool {
	return c.source == nil || c.source == http.NoBody
}

// IsDisposed reports whether the body can no longer be read, e.g. it was already closed.
func (c *Content) IsDisposed() bool {
	c.load(1)
	return c.disposed
}

// Err returns the error that interrupted reading the body, if any.
func (c *Content) Err() error {
	return c.readErr
}

// Size returns the declared length, or the number of bytes in the body when undeclared.
func (c *Content) Size() int64 {
	if c.length >= 0 {
		return c.length
	}
	c.load(-1)
	return int64(len(c.buffered))
}

// Bytes returns at most limit raw bytes of the body, all of them when limit is negative.
// truncated reports whether the body is longer than limit.
func (c *Content) Bytes(limit int64) (data []byte, truncated bool) {
	if limit < 0 {
		c.load(-1)
		return c.buffered, false
	}

	c.load(limit + 1)
	if int64(len(c.buffered)) > limit {
		return c.buffered[:limit], true
	}
	return c.buffered, false
}

// Decoded is like Bytes, but undoes the Content-Encoding first.
// Decoded output never exceeds maxDecodedLength, even when limit is negative.
// When decoding fails, the raw bytes are returned together with the error.
func (c *Content) Decoded(limit int64) (data []byte, truncated bool, err error) {
	if !isEncoded(c.encoding) {
		data, truncated = c.Bytes(limit)
		return data, truncated, nil
	}

	if limit < 0 || limit > maxDecodedLength {
		limit = maxDecodedLength
	}

	raw, rawTruncated := c.Bytes(maxEncodedLength)
	data, truncated, err = decode(c.encoding, raw, limit, rawTruncated)
	if err != nil {
		data, truncated = c.Bytes(limit)
		return data, truncated, err
	}
	return data, truncated, nil
}

// load buffers the body until it holds at least limit bytes, or all of it when limit is negative.
func (c *Content) load(limit int64) {
	if c.IsAbsent() || c.complete || c.disposed {
		return
	}
	if limit >= 0 && int64(len(c.buffered)) >= limit {
		return
	}

	var reader io.Reader = c.source
	wanted := int64(-1)
	if limit >= 0 {
		wanted = limit - int64(len(c.buffered))
		reader = io.LimitReader(c.source, wanted)
	}

	chunk, err := io.ReadAll(reader)
	c.buffered = append(c.buffered, chunk...)

	switch {
	case err != nil && len(c.buffered) == 0:
		c.disposed = true
		c.readErr = err
		return
	case err != nil:
		c.complete = true
		c.readErr = err
	case wanted < 0 || int64(len(chunk)) < wanted:
		c.complete = true
	}

	*c.body = &replayBody{
		Reader: io.MultiReader(bytes.NewReader(c.buffered), c.source),
		closer: c.source,
	}
}

// replayBody serves the buffered prefix and then the unread rest of the original body.
type replayBody struct {
	io.Reader
	closer io.Closer
}

func (b *replayBody) Close() error {
	return b.closer.Close()
}

func parseMediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
