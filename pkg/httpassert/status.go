package httpassert

import (
	"net/http"

	"github.com/bsv-blockchain/go-http-assertions/pkg/formatter"
)

func (a *httpResponseAssertion) HasStatus(status int) ResponseAssertion {
	a.Helper()
	if a.response.StatusCode != status {
		a.failf("Expected HTTP response to have status %d %s, but found %d %s.",
			status, formatter.ReasonPhrase(&http.Response{StatusCode: status}),
			a.response.StatusCode, formatter.ReasonPhrase(a.response))
	}
	return a
}

func (a *httpResponseAssertion) IsOK() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusOK)
}

func (a *httpResponseAssertion) IsCreated() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusCreated)
}

func (a *httpResponseAssertion) IsAccepted() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusAccepted)
}

func (a *httpResponseAssertion) IsNoContent() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusNoContent)
}

func (a *httpResponseAssertion) IsBadRequest() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusBadRequest)
}

func (a *httpResponseAssertion) IsUnauthorized() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusUnauthorized)
}

func (a *httpResponseAssertion) IsForbidden() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusForbidden)
}

func (a *httpResponseAssertion) IsNotFound() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusNotFound)
}

func (a *httpResponseAssertion) IsConflict() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusConflict)
}

func (a *httpResponseAssertion) IsInternalServerError() ResponseAssertion {
	a.Helper()
	return a.HasStatus(http.StatusInternalServerError)
}

func (a *httpResponseAssertion) IsSuccessful() ResponseAssertion {
	a.Helper()
	return a.hasStatusInRange(200, 299, "successful (2XX)")
}

func (a *httpResponseAssertion) IsRedirection() ResponseAssertion {
	a.Helper()
	return a.hasStatusInRange(300, 399, "redirection (3XX)")
}

func (a *httpResponseAssertion) IsClientError() ResponseAssertion {
	a.Helper()
	return a.hasStatusInRange(400, 499, "client error (4XX)")
}

func (a *httpResponseAssertion) IsServerError() ResponseAssertion {
	a.Helper()
	return a.hasStatusInRange(500, 599, "server error (5XX)")
}

func (a *httpResponseAssertion) hasStatusInRange(lowest, highest int, description string) ResponseAssertion {
	a.Helper()
	if a.response.StatusCode < lowest || a.response.StatusCode > highest {
		a.failf("Expected HTTP response to have a %s status, but found %d %s.",
			description, a.response.StatusCode, formatter.ReasonPhrase(a.response))
	}
	return a
}
