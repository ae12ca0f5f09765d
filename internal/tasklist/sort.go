package tasklist

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"stacked/internal/task"
)

// ErrInvalidSortCriterion is returned for an unrecognized sort keyword.
var ErrInvalidSortCriterion = errors.New("invalid sort criterion")

// SortType selects the ordering applied by Sort.
type SortType int

const (
	// SortCreation restores insertion order.
	SortCreation SortType = iota

	// SortByType orders ToDo < Deadline < Event.
	SortByType

	// SortStatus orders pending tasks before done ones.
	SortStatus

	// SortDeadline orders tasks with a due timestamp chronologically,
	// ahead of all tasks without one.
	SortDeadline

	// SortAlpha orders case-insensitively on the full rendered line.
	SortAlpha
)

// sortKeywords maps the user-facing keyword of each criterion.
var sortKeywords = map[string]SortType{
	"creation": SortCreation,
	"type":     SortByType,
	"status":   SortStatus,
	"deadline": SortDeadline,
	"alpha":    SortAlpha,
}

// SortKeywords returns the accepted criterion keywords, in display order.
func SortKeywords() []string {
	return []string{"creation", "type", "status", "deadline", "alpha"}
}

// ParseSortType resolves a criterion keyword, case-insensitively.
func ParseSortType(keyword string) (SortType, error) {
	st, ok := sortKeywords[strings.ToLower(strings.TrimSpace(keyword))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSortCriterion, keyword)
	}
	return st, nil
}

// Sort reorders the collection in place and auto-saves. All criteria break
// ties by creation order, so sorting by creation after any other sort
// restores the original insertion order. The returned Change carries no
// task, only the persistence outcome.
func (l *List) Sort(st SortType) (Change, error) {
	switch st {
	case SortCreation:
		l.sortBy(func(a, b task.Task) bool { return false })
	case SortByType:
		l.sortBy(func(a, b task.Task) bool { return typeRank(a) < typeRank(b) })
	case SortStatus:
		l.sortBy(func(a, b task.Task) bool { return !a.Done && b.Done })
	case SortDeadline:
		l.sortBy(dueBefore)
	case SortAlpha:
		l.sortBy(func(a, b task.Task) bool {
			return strings.ToLower(a.String()) < strings.ToLower(b.String())
		})
	default:
		return Change{}, fmt.Errorf("%w: %d", ErrInvalidSortCriterion, st)
	}
	return l.change(task.Task{}), nil
}

// sortBy applies less with a creation-order tie-break.
func (l *List) sortBy(less func(a, b task.Task) bool) {
	sort.Slice(l.tasks, func(i, j int) bool {
		a, b := l.tasks[i], l.tasks[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.Seq < b.Seq
	})
}

func typeRank(t task.Task) int {
	switch t.Kind {
	case task.KindToDo:
		return 0
	case task.KindDeadline:
		return 1
	case task.KindEvent:
		return 2
	}
	return 3
}

// dueBefore compares due timestamps directly on the typed field. Only
// Deadline tasks have one; dated tasks come before undated ones.
func dueBefore(a, b task.Task) bool {
	aDated := a.Kind == task.KindDeadline
	bDated := b.Kind == task.KindDeadline
	switch {
	case aDated && bDated:
		return a.By.Before(b.By.Time)
	case aDated:
		return true
	default:
		return false
	}
}
