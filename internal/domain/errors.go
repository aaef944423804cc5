package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("record not found")
	ErrNoRecords       = errors.New("no records matched the request")
	ErrInvalidRange    = errors.New("start date is after end date")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidPhone    = errors.New("phone number not in the expected format")
	ErrDuplicate       = errors.New("duplicate record")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("access denied")
	ErrUpstream        = errors.New("upstream dependency failed")
)
