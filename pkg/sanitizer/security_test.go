package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commonshub/signup/pkg/sanitizer"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes angle brackets and quotes",
			input:    `https://example.com/<script>"x"'y'`,
			expected: "https://example.com/scriptxy",
		},
		{
			name:     "leaves clean URL untouched",
			input:    "https://linkedin.com/in/janedoe",
			expected: "https://linkedin.com/in/janedoe",
		},
		{
			name:     "does not validate structure",
			input:    "not a url at all",
			expected: "not a url at all",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  https://example.com  ",
			expected: "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SanitizeURL(tt.input))
		})
	}
}

func TestSanitizeURLIdempotent(t *testing.T) {
	inputs := []string{`https://a.com/<x>`, "https://clean.example.com"}
	for _, input := range inputs {
		once := sanitizer.SanitizeURL(input)
		assert.Equal(t, once, sanitizer.SanitizeURL(once))
	}
}
