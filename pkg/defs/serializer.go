package defs

// SerializerBackend names the implementation installed as the process-wide serializer.
type SerializerBackend string

// Supported serializer backends.
const (
	SerializerJSONv2  SerializerBackend = "jsonv2"
	SerializerStdJSON SerializerBackend = "stdjson"
)

// ParseSerializerBackendStr parses a string into a SerializerBackend (case-insensitive).
func ParseSerializerBackendStr(backend string) (SerializerBackend, error) {
	return parseEnumCaseInsensitive(backend, SerializerJSONv2, SerializerStdJSON)
}

// Decode implements envconfig.Decoder.
func (b *SerializerBackend) Decode(value string) error {
	parsed, err := ParseSerializerBackendStr(value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
