package httpassert_test

import (
	"testing"

	"github.com/bsv-blockchain/go-http-assertions/pkg/httpassert"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/testabilities"
)

func TestHeaderAssertions(t *testing.T) {
	t.Run("pass for headers of created comment", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response := given.Client().PostJSON(testabilities.PathComments, testabilities.Comment{
			Author:  "Carol",
			Content: "Hey, you...",
		})

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.Response(spy, response).
			IsCreated().
			HasHeader("location").
			HasHeader("Content-Length").
			HasHeaderValue("Location", "/api/comments/3").
			NotHasHeader("X-Request-Id").
			HasContentType("application/json")

		// then:
		then.Failures(spy).HasNoFailures()
	})

	tests := map[string]struct {
		assert  func(httpassert.ResponseAssertion)
		failure string
	}{
		"missing header": {
			assert:  func(a httpassert.ResponseAssertion) { a.HasHeader("ETag") },
			failure: `Expected HTTP response to have header "ETag", but it was not found.`,
		},
		"unexpected header": {
			assert:  func(a httpassert.ResponseAssertion) { a.NotHasHeader("location") },
			failure: `Expected HTTP response not to have header "location", but found it with value "/api/comments/3".`,
		},
		"different header value": {
			assert:  func(a httpassert.ResponseAssertion) { a.HasHeaderValue("Location", "/api/comments/99") },
			failure: `Expected HTTP response to have header "Location" with value "/api/comments/99", but found ["/api/comments/3"].`,
		},
		"missing header with value": {
			assert:  func(a httpassert.ResponseAssertion) { a.HasHeaderValue("ETag", "abc") },
			failure: `Expected HTTP response to have header "ETag" with value "abc", but the header was not found.`,
		},
		"different content type": {
			assert:  func(a httpassert.ResponseAssertion) { a.HasContentType("text/plain") },
			failure: `Expected HTTP response content to have media type "text/plain", but found "application/json".`,
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
			response := given.Client().PostJSON(testabilities.PathComments, testabilities.Comment{
				Author:  "Carol",
				Content: "Hey, you...",
			})

			// and:
			spy := given.FailureSpy()

			// when:
			test.assert(httpassert.Response(spy, response))

			// then:
			then.Failures(spy).
				HasFailureCount(1).
				HasFailureContaining(test.failure, "HTTP/1.1 201 Created", "Location: /api/comments/3")
		})
	}
}
