// Package tasklist is the list engine: it owns the ordered task collection
// and exposes add, delete, mark, unmark, find, and sort, persisting the
// whole collection after every mutation.
package tasklist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"stacked/internal/task"
)

var (
	// ErrInvalidIndex is returned by mutating operations given an index
	// outside [0, count).
	ErrInvalidIndex = errors.New("invalid task index")

	// ErrIndexOutOfRange is returned by Get for an index outside
	// [0, count).
	ErrIndexOutOfRange = errors.New("task index out of range")
)

// Store persists the full task collection. The engine treats it as
// write-only; loading happens before construction.
type Store interface {
	Save(tasks []task.Task) error
}

// Change is the result of a mutating operation. The in-memory mutation
// always stands; Persisted reports whether the follow-up save reached the
// store. A list with no store attached counts as persisted (there is
// nothing to fail).
type Change struct {
	Task      task.Task
	Persisted bool
	SaveErr   error
}

// List is the in-memory task collection. Not safe for concurrent use;
// the application is single-threaded by design.
type List struct {
	tasks   []task.Task
	store   Store
	nextSeq int
	logger  zerolog.Logger
}

// New creates an empty list. store may be nil for an unpersisted list.
func New(store Store, logger zerolog.Logger) *List {
	return &List{store: store, logger: logger}
}

// Hydrate creates a list from a loaded snapshot, assigning creation
// sequence numbers in file order.
func Hydrate(tasks []task.Task, store Store, logger zerolog.Logger) *List {
	l := New(store, logger)
	for i := range tasks {
		tasks[i].Seq = l.nextSeq
		l.nextSeq++
	}
	l.tasks = tasks
	return l
}

// AddToDo appends a new ToDo task.
func (l *List) AddToDo(description string) (Change, error) {
	t, err := task.NewToDo(description)
	if err != nil {
		return Change{}, err
	}
	return l.append(t), nil
}

// AddDeadline appends a new Deadline task, propagating date-parse failures.
func (l *List) AddDeadline(description, byText string) (Change, error) {
	t, err := task.NewDeadline(description, byText)
	if err != nil {
		return Change{}, err
	}
	return l.append(t), nil
}

// AddEvent appends a new Event task, propagating date-parse failures.
func (l *List) AddEvent(description, fromText, toText string) (Change, error) {
	t, err := task.NewEvent(description, fromText, toText)
	if err != nil {
		return Change{}, err
	}
	return l.append(t), nil
}

// Delete removes the task at index. Subsequent indices shift down by one.
func (l *List) Delete(index int) (Change, error) {
	if index < 0 || index >= len(l.tasks) {
		return Change{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index+1)
	}
	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return l.change(removed), nil
}

// Mark marks the task at index done and returns it.
func (l *List) Mark(index int) (Change, error) {
	if index < 0 || index >= len(l.tasks) {
		return Change{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index+1)
	}
	l.tasks[index].MarkDone()
	return l.change(l.tasks[index]), nil
}

// Unmark marks the task at index not done and returns it.
func (l *List) Unmark(index int) (Change, error) {
	if index < 0 || index >= len(l.tasks) {
		return Change{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index+1)
	}
	l.tasks[index].UnmarkDone()
	return l.change(l.tasks[index]), nil
}

// Find returns tasks whose description contains keyword, case-insensitively,
// in current list order. An empty keyword matches every task. Dates are not
// searched. No side effects.
func (l *List) Find(keyword string) []task.Task {
	needle := strings.ToLower(keyword)
	var matches []task.Task
	for _, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Count returns the number of tasks.
func (l *List) Count() int {
	return len(l.tasks)
}

// IsEmpty reports whether the list has no tasks.
func (l *List) IsEmpty() bool {
	return len(l.tasks) == 0
}

// Get returns the task at index.
func (l *List) Get(index int) (task.Task, error) {
	if index < 0 || index >= len(l.tasks) {
		return task.Task{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index+1)
	}
	return l.tasks[index], nil
}

// Tasks returns a copy of the collection in current order.
func (l *List) Tasks() []task.Task {
	out := make([]task.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// append adds a task at the end, assigns its sequence number, and saves.
func (l *List) append(t task.Task) Change {
	t.Seq = l.nextSeq
	l.nextSeq++
	l.tasks = append(l.tasks, t)
	return l.change(t)
}

// change runs the best-effort auto-save and wraps the result. Save errors
// are never surfaced as operation errors: the mutation already happened.
func (l *List) change(t task.Task) Change {
	if l.store == nil {
		return Change{Task: t, Persisted: true}
	}
	if err := l.store.Save(l.tasks); err != nil {
		l.logger.Debug().Err(err).Msg("auto-save failed, mutation kept in memory")
		return Change{Task: t, Persisted: false, SaveErr: err}
	}
	return Change{Task: t, Persisted: true}
}
