// Package form converts raw submitted form payloads into typed, sanitized
// request values, or into a field-keyed error map when validation fails.
//
// Validation collects every failing field instead of stopping at the
// first, so the client can render all problems at once; only the first
// message per field is surfaced. Successful results are uniformly shaped:
// optional fields are always present, defaulted to the empty string, so
// downstream consumers never need presence checks.
//
// Only email and experience level are mandatory on signup. The UI has
// historically presented name as required too; the server deliberately
// keeps the relaxed contract until product says otherwise.
package form
