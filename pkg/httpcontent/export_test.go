package httpcontent

// SetMaxDecodedLength lowers the decoding bound for the duration of a test.
func SetMaxDecodedLength(limit int64) (restore func()) {
	previous := maxDecodedLength
	maxDecodedLength = limit
	return func() {
		maxDecodedLength = previous
	}
}
