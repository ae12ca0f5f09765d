// Package task defines the task model: the three task kinds, their
// validation rules, and their display rendering.
package task

import (
	"fmt"
	"strings"
)

// Kind identifies which variant a Task is. The set is closed: every
// operation over tasks switches exhaustively on it.
type Kind int

const (
	// KindToDo is a plain task with no schedule.
	KindToDo Kind = iota

	// KindDeadline is a task due at a single point in time.
	KindDeadline

	// KindEvent is a task spanning a start and end time.
	KindEvent
)

// Letter returns the single-letter tag used in rendering and storage.
func (k Kind) Letter() string {
	switch k {
	case KindToDo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	}
	return "?"
}

// Task is one user-tracked item of work.
//
// Description is stored exactly as given (untrimmed) but must be non-blank
// after trimming at creation. By is set only for KindDeadline; From and To
// only for KindEvent.
//
// Seq is the creation sequence number assigned by the owning list. It is
// never persisted; the list reassigns it positionally on load. Sorts use it
// as the tie-break key, and the creation-order sort restores it outright.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	By          Time
	From        Time
	To          Time
	Seq         int
}

// NewToDo creates a pending ToDo task.
func NewToDo(description string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, fmt.Errorf("%w: description", ErrEmptyDescription)
	}
	return Task{Kind: KindToDo, Description: description}, nil
}

// NewDeadline creates a pending Deadline task. byText accepts
// "yyyy-M-d" (time defaults to 23:59) or "yyyy-M-d HHmm".
func NewDeadline(description, byText string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, fmt.Errorf("%w: description", ErrEmptyDescription)
	}
	if strings.TrimSpace(byText) == "" {
		return Task{}, fmt.Errorf("%w: deadline date", ErrEmptyDescription)
	}
	by, err := ParseDeadlineTime(byText)
	if err != nil {
		return Task{}, err
	}
	return Task{Kind: KindDeadline, Description: description, By: by}, nil
}

// NewEvent creates a pending Event task. Both fromText and toText must be
// "yyyy-M-d HHmm"; a date without a time is rejected. No ordering is
// enforced between the two.
func NewEvent(description, fromText, toText string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, fmt.Errorf("%w: description", ErrEmptyDescription)
	}
	if strings.TrimSpace(fromText) == "" {
		return Task{}, fmt.Errorf("%w: event start time", ErrEmptyDescription)
	}
	if strings.TrimSpace(toText) == "" {
		return Task{}, fmt.Errorf("%w: event end time", ErrEmptyDescription)
	}
	from, err := ParseEventTime(fromText)
	if err != nil {
		return Task{}, err
	}
	to, err := ParseEventTime(toText)
	if err != nil {
		return Task{}, err
	}
	return Task{Kind: KindEvent, Description: description, From: from, To: to}, nil
}

// MarkDone marks the task completed. Idempotent.
func (t *Task) MarkDone() {
	t.Done = true
}

// UnmarkDone marks the task not completed. Idempotent.
func (t *Task) UnmarkDone() {
	t.Done = false
}

// StatusIcon returns "[X]" for a done task and "[]" for a pending one.
// The empty bracket pair (no inner space) is a compatibility requirement.
func (t Task) StatusIcon() string {
	if t.Done {
		return "[X]"
	}
	return "[]"
}

// String renders the canonical one-line form:
//
//	[T][X]read book
//	[D][]submit (by: Dec 01 2025 11:59pm)
//	[E][]mtg (from: Dec 10 2025 2:00pm to: Dec 10 2025 4:00pm)
func (t Task) String() string {
	head := fmt.Sprintf("[%s]%s%s", t.Kind.Letter(), t.StatusIcon(), t.Description)
	switch t.Kind {
	case KindToDo:
		return head
	case KindDeadline:
		return fmt.Sprintf("%s (by: %s)", head, t.By.Display())
	case KindEvent:
		return fmt.Sprintf("%s (from: %s to: %s)", head, t.From.Display(), t.To.Display())
	}
	return head
}
