package formatter_test

import (
	"testing"

	"github.com/bsv-blockchain/go-http-assertions/pkg/formatter"
	"github.com/stretchr/testify/assert"
)

func TestFailureMessage(t *testing.T) {
	t.Run("renders bullets with lower-cased first letter in order", func(t *testing.T) {
		// given:
		message := formatter.NewFailureMessage("Expected field Author to be present")
		message.Add("Expected field Content to be present", "Expected field Author to be present")

		// when:
		rendered := message.String()

		// then:
		expected := "\n\n" +
			"    - expected field Author to be present\n" +
			"    - expected field Content to be present\n" +
			"    - expected field Author to be present"
		assert.Equal(t, expected, rendered)
		assert.Equal(t, 3, message.Len())
	})

	t.Run("non ascii first letter", func(t *testing.T) {
		assert.Equal(t, "\n\n    - élan", formatter.NewFailureMessage("Élan").String())
	})

	t.Run("empty message renders nothing", func(t *testing.T) {
		assert.Empty(t, formatter.NewFailureMessage().String())
		assert.Empty(t, (*formatter.FailureMessage)(nil).String())
	})
}
