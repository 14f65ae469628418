package httpcontent

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// ErrUnsupportedEncoding is returned for a Content-Encoding that cannot be decoded.
var ErrUnsupportedEncoding = errors.New("unsupported content encoding")

func isEncoded(encoding string) bool {
	return encoding != "" && encoding != "identity"
}

func newDecoder(encoding string, r io.Reader) (io.ReadCloser, error) {
	switch encoding {
	case "gzip", "x-gzip":
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return reader, nil
	case "deflate":
		return zlib.NewReader(r)
	case "zstd":
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return decoder.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, encoding)
	}
}

// decode undoes the encoding of raw and returns at most limit bytes, all of them when limit is negative.
// A raw prefix of a longer body may end mid-stream, so an unexpected EOF is tolerated when partial is set.
func decode(encoding string, raw []byte, limit int64, partial bool) (data []byte, truncated bool, err error) {
	decoder, err := newDecoder(encoding, bytes.NewReader(raw))
	if err != nil {
		return nil, false, err
	}
	defer decoder.Close()

	var reader io.Reader = decoder
	if limit >= 0 {
		reader = io.LimitReader(decoder, limit+1)
	}

	data, err = io.ReadAll(reader)
	if err != nil && !(partial && errors.Is(err, io.ErrUnexpectedEOF) && len(data) > 0) {
		return nil, false, fmt.Errorf("failed to decode %s content: %w", encoding, err)
	}

	if limit >= 0 && int64(len(data)) > limit {
		return data[:limit], true, nil
	}
	return data, partial, nil
}
