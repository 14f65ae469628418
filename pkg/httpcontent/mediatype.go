package httpcontent

import (
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/constants"
)

var binaryMediaTypePrefixes = []string{"image/", "audio/", "video/", "font/"}

var binaryMediaTypes = map[string]struct{}{
	constants.MediaTypeOctetStream:  {},
	constants.MediaTypeProtobuf:     {},
	constants.MediaTypeProtobufGoog: {},
	"application/pdf":               {},
	"application/zip":               {},
	"application/gzip":              {},
	"application/wasm":              {},
}

func isJSON(mediaType string) bool {
	return mediaType == constants.MediaTypeJSON || strings.HasSuffix(mediaType, "+json")
}

func isMultipart(mediaType string) bool {
	return strings.HasPrefix(mediaType, "multipart/")
}

func isBinary(mediaType string) bool {
	if _, ok := binaryMediaTypes[mediaType]; ok {
		return true
	}
	// svg is an xml document.
	if strings.HasSuffix(mediaType, "+xml") {
		return false
	}
	for _, prefix := range binaryMediaTypePrefixes {
		if strings.HasPrefix(mediaType, prefix) {
			return true
		}
	}
	return false
}
