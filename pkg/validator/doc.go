// Package validator provides composable validation rules for form input.
//
// A Rule pairs a predicate with the error to report when the predicate
// fails. Apply evaluates every rule and collects all failures instead of
// stopping at the first one, so callers can report every problem with a
// submission at once. Expected validation failures are returned as
// ordinary values (ValidationErrors), never as panics.
//
//	err := validator.Apply(
//		validator.Required("email", email).WithMessage("Email is required"),
//		validator.MaxLen("email", email, 254),
//	)
//	if fieldErrs := validator.ExtractValidationErrors(err); fieldErrs != nil {
//		// map field -> first message
//		_ = fieldErrs.ToFieldMap()
//	}
package validator
