package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FailureMessage collects the explanations of the expectations a single assertion found violated.
type FailureMessage struct {
	explanations []string
}

// NewFailureMessage returns a message holding the given explanations.
func NewFailureMessage(explanations ...string) *FailureMessage {
	m := &FailureMessage{}
	m.Add(explanations...)
	return m
}

// Add appends explanations, keeping their order.
func (m *FailureMessage) Add(explanations ...string) {
	m.explanations = append(m.explanations, explanations...)
}

func (m *FailureMessage) Len() int {
	return len(m.explanations)
}

// String renders the explanations as a bulleted list preceded by a line break, so that it reads
// naturally after a sentence ending with "because:".
func (m *FailureMessage) String() string {
	if m == nil || len(m.explanations) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\n")
	for i, explanation := range m.explanations {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("    - ")
		sb.WriteString(lowerFirst(explanation))
	}
	return sb.String()
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
