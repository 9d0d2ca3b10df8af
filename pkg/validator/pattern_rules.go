package validator

import (
	"fmt"
	"regexp"
)

// Matches validates that a string matches the given pre-compiled pattern.
// The description names the allowed content in the default error message.
// Patterns are expected as package-level regexp.MustCompile vars so the
// compilation cost is paid once, not per evaluation.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain only %s", description),
		},
	}
}
