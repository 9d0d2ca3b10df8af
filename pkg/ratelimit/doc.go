// Package ratelimit provides a fixed-window rate limiter for abuse
// mitigation on public endpoints.
//
// Each key accumulates an attempt counter inside a fixed time window.
// Once the counter reaches the limit, further attempts are denied without
// incrementing until the window elapses, at which point the key starts a
// fresh window (reset, not accumulation). State lives in a process-local
// store and is lost on restart - acceptable for throttling, which is not
// an audit trail.
//
// Denials are returned as ordinary Result values, never as errors, so
// callers must handle both branches explicitly.
package ratelimit
