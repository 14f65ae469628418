package serializer

import (
	"bytes"
	"encoding"
	"io"
	"reflect"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/go-softwarelab/common/pkg/to"
)

// JSONv2Name is the name reported by the JSONv2 backend.
const JSONv2Name = "JSONv2"

type jsonV2 struct {
	options  Options
	jsonOpts json.Options
}

// NewJSONv2 returns the default backend, built on github.com/go-json-experiment/json.
func NewJSONv2(opts ...func(*Options)) Serializer {
	options := to.OptionsWithDefault(DefaultOptions(), opts...)

	jsonOpts := []json.Options{
		json.MatchCaseInsensitiveNames(options.CaseInsensitivePropertyNames),
		json.StringifyNumbers(options.NumbersFromStrings),
	}
	if !options.EnumsAsStrings {
		jsonOpts = append(jsonOpts, json.WithUnmarshalers(numericEnums))
	}

	return &jsonV2{
		options:  options,
		jsonOpts: json.JoinOptions(jsonOpts...),
	}
}

func (s *jsonV2) Name() string {
	return JSONv2Name
}

func (s *jsonV2) Deserialize(r io.Reader, target any) error {
	data, err := readPayload(s.Name(), r, target, s.options)
	if err != nil {
		return err
	}

	if err := json.UnmarshalRead(bytes.NewReader(data), target, s.jsonOpts); err != nil {
		return newDeserializationError(s.Name(), err)
	}
	return nil
}

func (s *jsonV2) Serialize(v any) ([]byte, error) {
	return json.Marshal(v, s.jsonOpts)
}

// numericEnums makes integer enums implementing encoding.TextUnmarshaler decode from JSON numbers
// and reject JSON strings.
var numericEnums = json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v encoding.TextUnmarshaler) error {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return json.SkipFunc
	}

	elem := value.Elem()
	signed := false
	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		signed = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return json.SkipFunc
	}

	switch dec.PeekKind() {
	case '"':
		return ErrEnumAsString
	case '0':
		tok, err := dec.ReadToken()
		if err != nil {
			return err
		}
		if signed {
			elem.SetInt(tok.Int())
		} else {
			elem.SetUint(tok.Uint())
		}
		return nil
	default:
		return json.SkipFunc
	}
})
