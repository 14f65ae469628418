package httpassert_test

import (
	"testing"

	"github.com/bsv-blockchain/go-http-assertions/pkg/httpassert"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/testabilities"
)

func TestStatusAssertions(t *testing.T) {
	t.Run("pass when status matches", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response := given.Client().Get(testabilities.PathComments)

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.Response(spy, response).
			IsOK().
			HasStatus(200).
			IsSuccessful()

		// then:
		then.Failures(spy).HasNoFailures()
	})

	t.Run("report the whole exchange when status does not match", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response := given.Client().PostJSON(testabilities.PathComments, `{"content":"Hey, you..."}`)

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.Response(spy, response).IsOK()

		// then:
		then.Failures(spy).
			HasFailureCount(1).
			HasFailureContaining(
				"Expected HTTP response to have status 200 OK, but found 400 BadRequest.",
				"The HTTP response was:",
				"HTTP/1.1 400 BadRequest",
				"Content-Type: application/problem+json",
				"The Author field is required.",
				"The originated HTTP request was:",
				"POST "+given.Server().URL().JoinPath(testabilities.PathComments).String()+" HTTP/1.1",
				`"content": "Hey, you..."`,
			).
			HasFailureNotContaining("Content-Length:")
	})

	t.Run("status ranges", func(t *testing.T) {
		tests := map[string]struct {
			assert   func(httpassert.ResponseAssertion)
			failure  string
			succeeds bool
		}{
			"client error": {
				assert:   func(a httpassert.ResponseAssertion) { a.IsClientError() },
				succeeds: true,
			},
			"bad request": {
				assert:   func(a httpassert.ResponseAssertion) { a.IsBadRequest() },
				succeeds: true,
			},
			"successful": {
				assert:  func(a httpassert.ResponseAssertion) { a.IsSuccessful() },
				failure: "Expected HTTP response to have a successful (2XX) status, but found 400 BadRequest.",
			},
			"redirection": {
				assert:  func(a httpassert.ResponseAssertion) { a.IsRedirection() },
				failure: "Expected HTTP response to have a redirection (3XX) status, but found 400 BadRequest.",
			},
			"server error": {
				assert:  func(a httpassert.ResponseAssertion) { a.IsServerError() },
				failure: "Expected HTTP response to have a server error (5XX) status, but found 400 BadRequest.",
			},
			"created": {
				assert:  func(a httpassert.ResponseAssertion) { a.IsCreated() },
				failure: "Expected HTTP response to have status 201 Created, but found 400 BadRequest.",
			},
			"internal server error": {
				assert:  func(a httpassert.ResponseAssertion) { a.IsInternalServerError() },
				failure: "Expected HTTP response to have status 500 InternalServerError, but found 400 BadRequest.",
			},
		}
		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				// given:
				given, then := testabilities.New(t)

				// and:
				cleanup := given.Server().WithSampleAPI().Started()
				defer cleanup()

				// and:
				response := given.Client().PostJSON(testabilities.PathComments, `{}`)

				// and:
				spy := given.FailureSpy()

				// when:
				test.assert(httpassert.Response(spy, response))

				// then:
				if test.succeeds {
					then.Failures(spy).HasNoFailures()
				} else {
					then.Failures(spy).HasFailureCount(1).HasFailureContaining(test.failure)
				}
			})
		}
	})

	t.Run("not found without content", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response := given.Client().Get(testabilities.PathComments + "/99")

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.Response(spy, response).
			IsNotFound().
			HasEmptyBody()

		// then:
		then.Failures(spy).HasNoFailures()
	})

	t.Run("binary content is described by its length", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response := given.Client().Get(testabilities.PathAvatar)

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.Response(spy, response).IsNoContent()

		// then:
		then.Failures(spy).
			HasFailureContaining(
				"Expected HTTP response to have status 204 NoContent, but found 200 OK.",
				"Content-Type: image/jpeg",
				"***** Content is of a binary encoded like type having the length 1. *****",
			)
	})

	t.Run("multipart content is not printed", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response := given.Client().Get(testabilities.PathAttachments)

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.Response(spy, response).IsAccepted()

		// then:
		then.Failures(spy).
			HasFailureContaining("Content-Type: multipart/mixed; boundary=").
			HasFailureNotContaining("See the attached notes.")
	})

	t.Run("large content is truncated", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response := given.Client().Get(testabilities.PathActivityLog)

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.Response(spy, response).IsForbidden()

		// then:
		then.Failures(spy).
			HasFailureContaining(
				"***** Content is too large to display and only a part is printed. *****",
				"comment created by anonymous",
			)
	})
}
