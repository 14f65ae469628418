package testabilities

import (
	"fmt"
	"testing"
)

// FailureSpy is a testing.TB which records Errorf calls made by assertions
// instead of failing the test it wraps.
type FailureSpy struct {
	testing.TB
	failures []string
}

func NewFailureSpy(t testing.TB) *FailureSpy {
	return &FailureSpy{TB: t}
}

func (s *FailureSpy) Errorf(format string, args ...any) {
	s.failures = append(s.failures, fmt.Sprintf(format, args...))
}

func (s *FailureSpy) Failures() []string {
	return s.failures
}
