// Package handler is the HTTP boundary of the signup service. It owns
// the router, request decoding, response shaping, and the per-request
// logging context. Business outcomes map to statuses: 201 created, 422
// invalid fields, 409 duplicate, 429 throttled, 502 CMS unavailable.
// Internal errors are logged, never echoed to clients.
package handler
