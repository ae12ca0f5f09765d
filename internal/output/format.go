// Package output provides formatters for terminal output.
package output

import (
	"fmt"
	"io"
	"strings"

	"stacked/internal/task"
)

// EmptyListMessage is printed when a listing has nothing to show.
const EmptyListMessage = "(no tasks)"

// FormatTask writes one numbered task row.
// Format: "{N:>4}  {RENDERED}\n" (4-wide right-aligned number, two spaces).
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalize(t.String()))
}

// FormatTasks writes a numbered listing of all tasks, 1-based.
func FormatTasks(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, EmptyListMessage)
		return
	}
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// FormatChanged writes a one-line confirmation for a mutated task,
// e.g. "added: [T][]read book".
func FormatChanged(w io.Writer, verb string, t task.Task) {
	fmt.Fprintf(w, "%s: %s\n", verb, normalize(t.String()))
}

// FormatCount writes the running task total.
func FormatCount(w io.Writer, count int) {
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	fmt.Fprintf(w, "%d %s in the list\n", count, noun)
}

// normalize keeps a rendered task on one line.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
