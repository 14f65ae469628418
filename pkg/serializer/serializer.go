// Package serializer provides the pluggable deserialization used by body assertions.
//
// Two JSON backends are available side by side. NewJSONv2 is the default and is backed by
// github.com/go-json-experiment/json, NewStdJSON is backed by encoding/json. Both accept the same
// Options, so call sites do not depend on the backend in use.
package serializer

import (
	"bytes"
	"io"
	"reflect"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

// Serializer converts a byte stream into a value of the target's type.
type Serializer interface {
	// Name identifies the implementation in error messages.
	Name() string

	// Deserialize reads r to the end and decodes it into target, which must be a non-nil pointer.
	// The reader is never closed. Failures are reported as *DeserializationError.
	Deserialize(r io.Reader, target any) error

	// Serialize encodes v using the same options as Deserialize.
	Serialize(v any) ([]byte, error)
}

// Options recognized by every backend.
type Options struct {
	// CaseInsensitivePropertyNames matches JSON member names to fields regardless of case.
	CaseInsensitivePropertyNames bool

	// AllowTrailingCommas accepts a comma after the last element of an object or array.
	AllowTrailingCommas bool

	// EnumsAsStrings decodes enum-like named types from JSON strings through encoding.TextUnmarshaler.
	EnumsAsStrings bool

	// NumbersFromStrings decodes numeric fields from JSON strings such as "42".
	NumbersFromStrings bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		CaseInsensitivePropertyNames: true,
		AllowTrailingCommas:          true,
		EnumsAsStrings:               true,
		NumbersFromStrings:           false,
	}
}

func WithCaseInsensitivePropertyNames(enabled bool) func(*Options) {
	return func(o *Options) {
		o.CaseInsensitivePropertyNames = enabled
	}
}

func WithTrailingCommas(enabled bool) func(*Options) {
	return func(o *Options) {
		o.AllowTrailingCommas = enabled
	}
}

func WithEnumsAsStrings(enabled bool) func(*Options) {
	return func(o *Options) {
		o.EnumsAsStrings = enabled
	}
}

func WithNumbersFromStrings(enabled bool) func(*Options) {
	return func(o *Options) {
		o.NumbersFromStrings = enabled
	}
}

// WithOptions replaces all options at once.
func WithOptions(options Options) func(*Options) {
	return func(o *Options) {
		*o = options
	}
}

// readPayload reads the whole stream and normalizes it according to the options.
func readPayload(name string, r io.Reader, target any, options Options) ([]byte, error) {
	if r == nil {
		return nil, newDeserializationError(name, ErrEmptyContent)
	}

	if err := checkTarget(target); err != nil {
		return nil, newDeserializationError(name, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newDeserializationError(name, errors.Wrap(err, "failed to read content"))
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, newDeserializationError(name, ErrEmptyContent)
	}

	if options.AllowTrailingCommas {
		data, err = hujson.Standardize(data)
		if err != nil {
			return nil, newDeserializationError(name, err)
		}
	}

	return data, nil
}

func checkTarget(target any) error {
	if target == nil {
		return ErrInvalidTarget
	}
	value := reflect.ValueOf(target)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return errors.Wrapf(ErrInvalidTarget, "got %T", target)
	}
	return nil
}
