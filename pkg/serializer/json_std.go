package serializer

import (
	"encoding/json"
	"io"

	"github.com/go-softwarelab/common/pkg/to"
)

// StdJSONName is the name reported by the StdJSON backend.
const StdJSONName = "StdJSON"

type stdJSON struct {
	options Options
}

// NewStdJSON returns the alternate backend, built on encoding/json.
//
// encoding/json always matches member names case-insensitively and has no switch to decode
// numbers from strings, so CaseInsensitivePropertyNames=false and NumbersFromStrings=true have no
// effect on this backend.
func NewStdJSON(opts ...func(*Options)) Serializer {
	return &stdJSON{
		options: to.OptionsWithDefault(DefaultOptions(), opts...),
	}
}

func (s *stdJSON) Name() string {
	return StdJSONName
}

func (s *stdJSON) Deserialize(r io.Reader, target any) error {
	data, err := readPayload(s.Name(), r, target, s.options)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return newDeserializationError(s.Name(), err)
	}
	return nil
}

func (s *stdJSON) Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}
