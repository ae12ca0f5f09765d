package task

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// dateLayout parses a bare date. Single-digit month and day forms
	// accept zero-padded input too.
	dateLayout = "2006-1-2"

	// StorageLayout is the round-trippable form used in the data file:
	// no month/day padding, always a 4-digit 24-hour time.
	StorageLayout = "2006-1-2 1504"

	// displayLayout is the human form, e.g. "Dec 01 2025 11:59pm".
	displayLayout = "Jan 02 2006 3:04pm"
)

// endsWithClockTime matches input whose final token is a 4-digit time.
var endsWithClockTime = regexp.MustCompile(`\s\d{4}$`)

// Time is a task timestamp, resolved to the minute.
type Time struct {
	time.Time
}

// Display formats for user-facing output.
func (t Time) Display() string {
	return t.Format(displayLayout)
}

// Storage formats for the data file.
func (t Time) Storage() string {
	return t.Format(StorageLayout)
}

// ParseStorageTime parses the storage form exactly.
func ParseStorageTime(s string) (Time, error) {
	parsed, err := time.Parse(StorageLayout, s)
	if err != nil {
		return Time{}, err
	}
	return Time{parsed}, nil
}

// ParseDeadlineTime parses user input for a deadline. A bare date resolves
// to 23:59 of that day; the date-only shorthand is never a distinct stored
// state.
func ParseDeadlineTime(s string) (Time, error) {
	trimmed := strings.TrimSpace(s)
	if endsWithClockTime.MatchString(trimmed) {
		parsed, err := time.Parse(StorageLayout, trimmed)
		if err != nil {
			return Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
		return Time{parsed}, nil
	}
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return Time{parsed.Add(23*time.Hour + 59*time.Minute)}, nil
}

// ParseEventTime parses user input for an event boundary. An event without
// an explicit time of day is meaningless, so a bare date is rejected rather
// than defaulted.
func ParseEventTime(s string) (Time, error) {
	trimmed := strings.TrimSpace(s)
	if endsWithClockTime.MatchString(trimmed) {
		parsed, err := time.Parse(StorageLayout, trimmed)
		if err != nil {
			return Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
		return Time{parsed}, nil
	}
	if _, err := time.Parse(dateLayout, trimmed); err == nil {
		return Time{}, fmt.Errorf("%w: %q", ErrTimeRequired, s)
	}
	return Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
}
