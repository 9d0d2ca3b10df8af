package sanitizer

import "strings"

// SanitizeEmail normalizes an email address for storage and comparison:
// SanitizeString followed by lowercasing the whole address.
func SanitizeEmail(email string) string {
	return strings.ToLower(SanitizeString(email))
}

// ExtractEmailDomain returns the lowercased domain part of an address,
// or "" if the value does not split into exactly local@domain.
func ExtractEmailDomain(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// MaskEmail preserves the full domain for user recognition while hiding
// the local part. Used when logging addresses.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	if len(local) == 0 {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	masked := string(local[0]) + strings.Repeat("*", len(local)-1)
	return masked + "@" + domain
}
