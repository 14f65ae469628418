package httpassert

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/bsv-blockchain/go-http-assertions/pkg/formatter"
	"github.com/bsv-blockchain/go-http-assertions/pkg/httpcontent"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func (a *httpResponseAssertion) HasBody(expectedBody string) ResponseAssertion {
	a.Helper()
	body, ok := a.readBody()
	if ok && body != expectedBody {
		a.fail("Expected HTTP response body to match, but it did not because:",
			formatter.NewFailureMessage("Differences (-expected +actual):\n"+cmp.Diff(expectedBody, body)))
	}
	return a
}

func (a *httpResponseAssertion) HasBodyContaining(fragment string) ResponseAssertion {
	a.Helper()
	body, ok := a.readBody()
	if ok && !strings.Contains(body, fragment) {
		a.failf("Expected HTTP response body to contain %q, but it was not found.", fragment)
	}
	return a
}

func (a *httpResponseAssertion) HasEmptyBody() ResponseAssertion {
	a.Helper()
	body, ok := a.readBody()
	if ok && body != "" {
		a.failf("Expected HTTP response body to be empty, but it has %d bytes.", len(body))
	}
	return a
}

func (a *httpResponseAssertion) HasBodyAs(target any) ResponseAssertion {
	a.Helper()
	a.deserialize(target)
	return a
}

func (a *httpResponseAssertion) HasBodyEquivalentTo(expected any) ResponseAssertion {
	a.Helper()
	if expected == nil {
		a.failf("Expected model must not be nil: invalid test setup.")
		return a
	}

	actual := reflect.New(reflect.TypeOf(expected))
	if !a.deserialize(actual.Interface()) {
		return a
	}

	diff := cmp.Diff(expected, actual.Elem().Interface(),
		cmpopts.EquateEmpty(),
		cmp.Exporter(func(reflect.Type) bool { return true }),
	)
	if diff != "" {
		a.fail(fmt.Sprintf("Expected HTTP response body to be equivalent to %T, but it was not because:", expected),
			formatter.NewFailureMessage("Differences (-expected +actual):\n"+diff))
	}
	return a
}

func (a *httpResponseAssertion) HasRequiredFields(fieldNames ...string) ResponseAssertion {
	a.Helper()
	var members map[string]any
	if !a.deserialize(&members) {
		return a
	}

	failure := formatter.NewFailureMessage()
	for _, name := range fieldNames {
		if !hasMember(members, name) {
			failure.Add(fmt.Sprintf("Expected field %s to be present", name))
		}
	}

	if failure.Len() > 0 {
		a.fail("Expected HTTP response body to have all required fields, but it did not because:", failure)
	}
	return a
}

// readBody returns the decoded body, leaving it readable for the caller.
func (a *httpResponseAssertion) readBody() (string, bool) {
	a.Helper()
	content := httpcontent.FromResponse(a.response)
	if content.IsAbsent() {
		return "", true
	}
	if content.IsDisposed() {
		a.fail("Expected HTTP response body to be readable, but it was not because:",
			formatter.NewFailureMessage(content.Err().Error()))
		return "", false
	}

	data, _, err := content.Decoded(-1)
	if err != nil {
		a.log.Debug("Cannot decode response body, using raw bytes", logging.Error(err))
	}
	return string(data), true
}

func (a *httpResponseAssertion) deserialize(target any) bool {
	a.Helper()
	content := httpcontent.FromResponse(a.response)
	if content.IsDisposed() {
		a.fail("Expected HTTP response body to be readable, but it was not because:",
			formatter.NewFailureMessage(content.Err().Error()))
		return false
	}

	data, _, err := content.Decoded(-1)
	if err != nil {
		a.log.Debug("Cannot decode response body, using raw bytes", logging.Error(err))
	}

	if err := a.serializer.Deserialize(bytes.NewReader(data), target); err != nil {
		a.fail(fmt.Sprintf("Expected HTTP response body to be deserializable to %s, but it was not because:", targetTypeName(target)),
			formatter.NewFailureMessage(err.Error()))
		return false
	}
	return true
}

func hasMember(members map[string]any, name string) bool {
	if _, ok := members[name]; ok {
		return true
	}
	for member := range members {
		if strings.EqualFold(member, name) {
			return true
		}
	}
	return false
}

func targetTypeName(target any) string {
	t := reflect.TypeOf(target)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return fmt.Sprint(t)
}
