// Package sanitizer provides pure string-cleaning transforms applied to
// user-submitted form input before it is stored or echoed back.
//
// All functions are total and idempotent: they never fail, and applying
// the same transform twice yields the same result. Sanitization is
// independent of validation - the validator decides whether a value is
// acceptable, the sanitizer only normalizes it.
package sanitizer
