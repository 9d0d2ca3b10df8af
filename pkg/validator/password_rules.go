package validator

import "regexp"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// PasswordComplexity validates that a password contains at least one
// lowercase letter, one uppercase letter, and one digit. Length bounds
// are checked separately with MinLen/MaxLen so each violation gets its
// own message.
func PasswordComplexity(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value) &&
				uppercaseRegex.MatchString(value) &&
				digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one lowercase letter, one uppercase letter, and one number",
		},
	}
}

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one uppercase letter",
		},
	}
}

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one lowercase letter",
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain at least one number",
		},
	}
}
