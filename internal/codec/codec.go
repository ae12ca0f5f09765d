// Package codec maps a task to and from one pipe-delimited text line.
// It is pure: the on-disk record format lives here and nowhere else.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"stacked/internal/task"
)

// Separator joins the fields of a record.
const Separator = " | "

var (
	// ErrCorruptRecord is returned when a line has too few fields for
	// its declared type.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrUnknownTaskType is returned when the type field is not T, D, or E.
	ErrUnknownTaskType = errors.New("unknown task type")

	// ErrCorruptTimestamp is returned when a timestamp field does not
	// parse in the storage layout.
	ErrCorruptTimestamp = errors.New("corrupt timestamp")
)

// Encode renders one task as a record line (no trailing newline).
func Encode(t task.Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{t.Kind.Letter(), done, t.Description}
	switch t.Kind {
	case task.KindDeadline:
		fields = append(fields, t.By.Storage())
	case task.KindEvent:
		fields = append(fields, t.From.Storage(), t.To.Storage())
	}
	return strings.Join(fields, Separator)
}

// Decode parses one record line back into a task.
//
// The done field is permissive: exactly "1" means done, anything else is
// pending. The description is taken as-is; blank-description validation is
// a creation concern, not a decoding one.
func Decode(line string) (task.Task, error) {
	fields := strings.Split(line, Separator)
	if len(fields) < 3 {
		return task.Task{}, fmt.Errorf("%w: %d field(s)", ErrCorruptRecord, len(fields))
	}

	t := task.Task{
		Description: fields[2],
		Done:        fields[1] == "1",
	}

	switch fields[0] {
	case "T":
		t.Kind = task.KindToDo
	case "D":
		t.Kind = task.KindDeadline
		if len(fields) < 4 {
			return task.Task{}, fmt.Errorf("%w: deadline needs 4 fields", ErrCorruptRecord)
		}
		by, err := task.ParseStorageTime(fields[3])
		if err != nil {
			return task.Task{}, fmt.Errorf("%w: %q", ErrCorruptTimestamp, fields[3])
		}
		t.By = by
	case "E":
		t.Kind = task.KindEvent
		if len(fields) < 5 {
			return task.Task{}, fmt.Errorf("%w: event needs 5 fields", ErrCorruptRecord)
		}
		from, err := task.ParseStorageTime(fields[3])
		if err != nil {
			return task.Task{}, fmt.Errorf("%w: %q", ErrCorruptTimestamp, fields[3])
		}
		to, err := task.ParseStorageTime(fields[4])
		if err != nil {
			return task.Task{}, fmt.Errorf("%w: %q", ErrCorruptTimestamp, fields[4])
		}
		t.From = from
		t.To = to
	default:
		return task.Task{}, fmt.Errorf("%w: %q", ErrUnknownTaskType, fields[0])
	}

	return t, nil
}
