package provider

import "errors"

var (
	ErrConflict        = errors.New("user already has a provider profile")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("provider not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidProfile  = errors.New("invalid provider profile")
)
