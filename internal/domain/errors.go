package domain

import "errors"

var (
	ErrMissingMedia    = errors.New("missing media")
	ErrEmptyPrompt     = errors.New("empty prompt")
	ErrInvalidDataURL  = errors.New("invalid data url")
	ErrProviderFailure = errors.New("provider failure")
	ErrBusy            = errors.New("generation already in progress")
	ErrResultNotFound  = errors.New("result not found")
)
