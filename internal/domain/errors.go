package domain

import "github.com/pkg/errors"

var (
	// ErrMalformedResponse is returned when an upstream 2xx body does not match the expected schema.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidDays is returned for a day range outside DayRanges.
	ErrInvalidDays = errors.New("invalid day range")
)
