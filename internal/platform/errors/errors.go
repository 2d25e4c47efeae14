package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUpstream           = errors.New("upstream failure")
)
