package httpassert_test

import (
	"testing"

	"github.com/bsv-blockchain/go-http-assertions/pkg/httpassert"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/testabilities"
	"github.com/stretchr/testify/require"
)

func TestFromResty(t *testing.T) {
	t.Run("assert on response received by resty", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response, err := given.Client().Resty().R().
			SetBody(map[string]string{"author": "Carol", "content": "Hey, you..."}).
			Post(testabilities.PathComments)
		require.NoError(t, err)

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.FromResty(spy, response).
			IsCreated().
			HasHeaderValue("Location", "/api/comments/3").
			HasBodyEquivalentTo(testabilities.Comment{ID: 3, Author: "Carol", Content: "Hey, you..."})

		// then:
		then.Failures(spy).HasNoFailures()
	})

	t.Run("report body buffered by resty", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// and:
		cleanup := given.Server().WithSampleAPI().Started()
		defer cleanup()

		// and:
		response, err := given.Client().Resty().R().
			SetBody(map[string]string{"content": "Hey, you..."}).
			Post(testabilities.PathComments)
		require.NoError(t, err)

		// and:
		spy := given.FailureSpy()

		// when:
		httpassert.FromResty(spy, response).IsCreated()

		// then:
		then.Failures(spy).
			HasFailureCount(1).
			HasFailureContaining(
				"Expected HTTP response to have status 201 Created, but found 400 BadRequest.",
				"The Author field is required.",
			)
	})
}
