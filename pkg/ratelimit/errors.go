package ratelimit

import "errors"

var (
	// ErrStoreRequired indicates that no backing store was provided.
	ErrStoreRequired = errors.New("ratelimit: store is required")

	// ErrInvalidLimit indicates a non-positive attempt limit.
	ErrInvalidLimit = errors.New("ratelimit: limit must be positive")

	// ErrInvalidWindow indicates a non-positive window duration.
	ErrInvalidWindow = errors.New("ratelimit: window must be positive")

	// ErrKeyRequired indicates that an empty key was passed to the limiter.
	ErrKeyRequired = errors.New("ratelimit: key is required")
)
