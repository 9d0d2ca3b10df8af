package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// Email shape: local@domain.tld with no whitespace and no extra @.
	// Intentionally the permissive "web form" pattern rather than full
	// RFC 5322 - the mailbox either exists or the verification email
	// bounces, so syntactic strictness buys nothing here.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidEmail validates that a string looks like a deliverable address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidURL validates that a string is a well-formed absolute http(s) URL.
// Non-web schemes such as javascript: are rejected outright.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return parseWebURL(value) != nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
		},
	}
}

// ValidURLHost validates that a string is a well-formed http(s) URL whose
// host matches one of the allowed hosts exactly. Look-alike hosts
// (e.g. linkedin.com.evil.example) do not match.
func ValidURLHost(field, value string, hosts []string) Rule {
	return Rule{
		Check: func() bool {
			u := parseWebURL(value)
			if u == nil {
				return false
			}
			return slices.Contains(hosts, strings.ToLower(u.Hostname()))
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a URL on one of: %s", strings.Join(hosts, ", ")),
		},
	}
}

func parseWebURL(value string) *url.URL {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return nil
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}
	if u.Host == "" {
		return nil
	}

	return u
}
