package constants

// HTTP header names used when reading and rendering messages.
const (
	// HeaderContentType carries the media type of the content
	HeaderContentType = "Content-Type"

	// HeaderContentLength is computed by the transport and omitted from rendered headers
	HeaderContentLength = "Content-Length"

	// HeaderContentEncoding names the compression applied to the content
	HeaderContentEncoding = "Content-Encoding"

	// HeaderTransferEncoding is kept by net/http outside of the Header map
	HeaderTransferEncoding = "Transfer-Encoding"

	// HeaderHost is kept by net/http outside of the request Header map
	HeaderHost = "Host"
)

// Media types recognized by the content classifiers.
const (
	MediaTypeJSON         = "application/json"
	MediaTypeOctetStream  = "application/octet-stream"
	MediaTypeProtobuf     = "application/x-protobuf"
	MediaTypeProtobufGoog = "application/x-google-protobuf"
)
