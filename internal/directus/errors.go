package directus

import "errors"

var (
	ErrInvalidConfig      = errors.New("directus: invalid config")
	ErrUnavailable        = errors.New("directus: service unavailable")
	ErrDuplicate          = errors.New("directus: record already exists")
	ErrInvalidCredentials = errors.New("directus: invalid credentials")
	ErrUnexpectedStatus   = errors.New("directus: unexpected response status")
)
