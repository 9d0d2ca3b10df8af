package form

import (
	"net/url"

	"github.com/commonshub/signup/pkg/sanitizer"
	"github.com/commonshub/signup/pkg/validator"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 127
)

// ValidateLogin applies the login schema to a decoded form payload
// (repeated keys: last value wins). Passwords are validated verbatim -
// no sanitization, since every byte the user typed is significant.
func ValidateLogin(values url.Values) (LoginRequest, FieldErrors) {
	email := sanitizer.SanitizeEmail(lastValue(values, "email"))
	password := lastValue(values, "password")

	rules := []validator.Rule{
		validator.Required("email", email).WithMessage("Email is required"),
	}

	if email != "" {
		rules = append(rules,
			validator.ValidEmail("email", email).WithMessage("Please enter a valid email address"),
			validator.MaxLen("email", email, maxEmailLen).WithMessage("Email must be at most 254 characters"),
		)
	}

	rules = append(rules,
		validator.Required("password", password).WithMessage("Password is required"),
	)

	if password != "" {
		rules = append(rules,
			validator.MinLen("password", password, minPasswordLen).
				WithMessage("Password must be at least 8 characters"),
			validator.MaxLen("password", password, maxPasswordLen).
				WithMessage("Password must be at most 127 characters"),
			validator.PasswordComplexity("password", password).
				WithMessage("Password must contain at least one lowercase letter, one uppercase letter, and one number"),
		)
	}

	if err := validator.Apply(rules...); err != nil {
		return LoginRequest{}, validator.ExtractValidationErrors(err).ToFieldMap()
	}

	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	// Checkbox semantics: "on" means checked; any other value or absence
	// leaves the preference unset, never false.
	if lastValue(values, "remember") == "on" {
		remember := true
		req.Remember = &remember
	}

	return req, nil
}
