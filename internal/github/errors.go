package github

import "errors"

var (
	ErrInvalidState    = errors.New("github: invalid or expired state")
	ErrInvalidCode     = errors.New("github: code exchange failed")
	ErrNoVerifiedEmail = errors.New("github: no verified email on account")
	ErrAPIFailure      = errors.New("github: api request failed")
)
