package testabilities

import (
	"log/slog"
	"testing"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/go-softwarelab/common/pkg/to"
)

type HTTPAssertionsTestsFixture interface {
	Server() ServerFixture
	Client() ClientFixture
	// FailureSpy returns a testing.TB that records assertion failures instead of failing the test.
	FailureSpy() *FailureSpy
	Logger() *slog.Logger
}

type HTTPAssertionsTestsAssertion interface {
	Failures(spy *FailureSpy) FailureAssertion
}

func New(t testing.TB, opts ...func(*Options)) (HTTPAssertionsTestsFixture, HTTPAssertionsTestsAssertion) {
	return Given(t, opts...), Then(t)
}

func Given(t testing.TB, opts ...func(*Options)) HTTPAssertionsTestsFixture {
	f := &httpAssertionsTestsFixture{
		TB: t,
	}

	options := to.OptionsWithDefault(Options{
		logger: slogx.NewTestLogger(f),
	}, opts...)

	f.logger = options.logger
	f.serverFixture = NewServerFixture(f, WithServerLogger(f.logger))
	f.spy = NewFailureSpy(f)

	return f
}

func Then(t testing.TB) HTTPAssertionsTestsAssertion {
	return &httpAssertionsTestsAssertion{
		TB: t,
	}
}

type httpAssertionsTestsFixture struct {
	testing.TB
	serverFixture ServerFixture
	spy           *FailureSpy
	logger        *slog.Logger
}

func (f *httpAssertionsTestsFixture) Server() ServerFixture {
	return f.serverFixture
}

func (f *httpAssertionsTestsFixture) Client() ClientFixture {
	return newClientFixture(f, f.serverFixture, WithClientLogger(f.logger))
}

func (f *httpAssertionsTestsFixture) FailureSpy() *FailureSpy {
	return f.spy
}

func (f *httpAssertionsTestsFixture) Logger() *slog.Logger {
	return f.logger
}

type httpAssertionsTestsAssertion struct {
	testing.TB
}

func (a *httpAssertionsTestsAssertion) Failures(spy *FailureSpy) FailureAssertion {
	return NewFailureAssertion(a, spy)
}
