package serializer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContent is returned when the stream has no content to deserialize.
	ErrEmptyContent = errors.New("content is empty")

	// ErrInvalidTarget is returned when the target is not a non-nil pointer.
	ErrInvalidTarget = errors.New("target must be a non-nil pointer")

	// ErrEnumAsString is returned when a string is given for an enum and EnumsAsStrings is disabled.
	ErrEnumAsString = errors.New("enum values must be given as numbers")
)

// DeserializationError reports that the content does not match the requested shape.
type DeserializationError struct {
	// Serializer is the name of the implementation that failed.
	Serializer string
	// Err is the cause reported by the underlying parser.
	Err error
}

func newDeserializationError(serializer string, err error) *DeserializationError {
	return &DeserializationError{Serializer: serializer, Err: err}
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("%s failed to deserialize content: %v", e.Serializer, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
