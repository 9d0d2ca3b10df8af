package sanitizer

import "strings"

// urlBreakoutChars are characters that allow breaking out of an HTML
// attribute context when a stored URL is rendered back into a page.
const urlBreakoutChars = `<>"'`

// SanitizeURL removes HTML/attribute-breakout characters from a URL
// without otherwise altering its structure. It performs no
// well-formedness checks - that is the validator's job.
func SanitizeURL(rawURL string) string {
	result := rawURL
	for _, char := range urlBreakoutChars {
		result = strings.ReplaceAll(result, string(char), "")
	}
	return strings.TrimSpace(result)
}
