package task

import "errors"

var (
	// ErrEmptyDescription is returned when a description or mandatory
	// text argument is blank after trimming.
	ErrEmptyDescription = errors.New("empty description")

	// ErrTimeRequired is returned when an event boundary is given as a
	// bare date with no time of day.
	ErrTimeRequired = errors.New("time of day required")

	// ErrInvalidDateFormat is returned for input matching neither
	// "yyyy-M-d" nor "yyyy-M-d HHmm".
	ErrInvalidDateFormat = errors.New("invalid date format")
)
