package errs

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrRecordNotFound      = errors.New("record not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamTimeout     = errors.New("upstream timeout")
)
