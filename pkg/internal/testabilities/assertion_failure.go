package testabilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FailureAssertion interface {
	HasNoFailures() FailureAssertion
	HasFailureCount(count int) FailureAssertion
	HasFailureContaining(fragments ...string) FailureAssertion
	HasFailureNotContaining(fragments ...string) FailureAssertion
}

type failureAssertion struct {
	testing.TB

	spy *FailureSpy
}

func NewFailureAssertion(t testing.TB, spy *FailureSpy) FailureAssertion {
	return &failureAssertion{
		TB:  t,
		spy: spy,
	}
}

func (a *failureAssertion) HasNoFailures() FailureAssertion {
	a.Helper()
	assert.Empty(a, a.spy.Failures(), "assertion should pass")
	return a
}

func (a *failureAssertion) HasFailureCount(count int) FailureAssertion {
	a.Helper()
	assert.Lenf(a, a.spy.Failures(), count, "assertion should report %d failures", count)
	return a
}

// HasFailureContaining checks that the last reported failure contains every fragment.
func (a *failureAssertion) HasFailureContaining(fragments ...string) FailureAssertion {
	a.Helper()
	message := a.lastFailure()
	for _, fragment := range fragments {
		assert.Containsf(a, message, fragment, "failure message should contain %q", fragment)
	}
	return a
}

func (a *failureAssertion) HasFailureNotContaining(fragments ...string) FailureAssertion {
	a.Helper()
	message := a.lastFailure()
	for _, fragment := range fragments {
		assert.NotContainsf(a, message, fragment, "failure message should not contain %q", fragment)
	}
	return a
}

func (a *failureAssertion) lastFailure() string {
	a.Helper()
	failures := a.spy.Failures()
	require.NotEmpty(a, failures, "assertion should fail")
	return failures[len(failures)-1]
}
