package sanitizer

import "strings"

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeWhitespace replaces runs of whitespace characters with a single
// space and trims the result.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// RemoveASCIIControl removes ASCII control characters (0x00-0x1F and 0x7F),
// including tabs and line breaks. Content separated only by removed
// characters is joined directly.
func RemoveASCIIControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)
}

// SanitizeString cleans free-text form input: strips ASCII control
// characters, collapses whitespace runs to a single space, and trims.
func SanitizeString(s string) string {
	return NormalizeWhitespace(RemoveASCIIControl(s))
}

// MaxLength truncates a string to the specified maximum number of runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}
