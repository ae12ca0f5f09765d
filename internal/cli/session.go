// Package cli runs the interactive session loop: read a line, parse it,
// execute it against the list engine, render the result.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"stacked/internal/exitcode"
	"stacked/internal/interp"
	"stacked/internal/output"
	"stacked/internal/storage"
	"stacked/internal/tasklist"
)

// Session wires the interpreter, the engine, and the output writers.
type Session struct {
	list   *tasklist.List
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// NewSession creates a session over the given list.
func NewSession(list *tasklist.List, out, errOut io.Writer, quiet bool) *Session {
	return &Session{list: list, out: out, errOut: errOut, quiet: quiet}
}

// LoadOrEmpty hydrates a list from the store, falling back to an empty list
// with a warning when the on-disk state is corrupted. The corrupt file is
// left untouched until the first mutation rewrites it.
func LoadOrEmpty(store *storage.Store, errOut io.Writer, logger zerolog.Logger) *tasklist.List {
	tasks, err := store.Load()
	if err != nil {
		fmt.Fprintf(errOut, "warning: %v; starting with an empty list\n", err)
		return tasklist.New(store, logger)
	}
	return tasklist.Hydrate(tasks, store, logger)
}

// Run processes input lines until bye, EOF, or context cancellation.
// Every error is rendered and the loop continues; the only exit paths
// return exitcode.Success.
func (s *Session) Run(ctx context.Context, in io.Reader) int {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return exitcode.Success
		}
		if done := s.handle(scanner.Text()); done {
			return exitcode.Success
		}
	}
	return exitcode.Success
}

// handle executes one input line. Returns true when the session is over.
func (s *Session) handle(line string) bool {
	cmd, err := interp.Parse(line)
	if err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return false
	}

	switch cmd.Kind {
	case interp.CmdBye:
		fmt.Fprintln(s.out, "bye")
		return true
	case interp.CmdList:
		output.FormatTasks(s.out, s.list.Tasks())
	case interp.CmdTodo:
		s.renderChange("added")(s.list.AddToDo(cmd.Description))
	case interp.CmdDeadline:
		s.renderChange("added")(s.list.AddDeadline(cmd.Description, cmd.By))
	case interp.CmdEvent:
		s.renderChange("added")(s.list.AddEvent(cmd.Description, cmd.From, cmd.To))
	case interp.CmdMark:
		s.renderMutation("marked done")(s.list.Mark(cmd.Index))
	case interp.CmdUnmark:
		s.renderMutation("marked not done")(s.list.Unmark(cmd.Index))
	case interp.CmdDelete:
		s.renderChange("deleted")(s.list.Delete(cmd.Index))
	case interp.CmdFind:
		output.FormatTasks(s.out, s.list.Find(cmd.Keyword))
	case interp.CmdSort:
		s.runSort(cmd.Criterion)
	}
	return false
}

// renderChange renders a mutation that also reports the new task total.
func (s *Session) renderChange(verb string) func(tasklist.Change, error) {
	return func(ch tasklist.Change, err error) {
		if err != nil {
			fmt.Fprintf(s.errOut, "error: %v\n", err)
			return
		}
		output.FormatChanged(s.out, verb, ch.Task)
		if !s.quiet {
			output.FormatCount(s.out, s.list.Count())
		}
	}
}

// renderMutation renders a mark/unmark with no count line.
func (s *Session) renderMutation(verb string) func(tasklist.Change, error) {
	return func(ch tasklist.Change, err error) {
		if err != nil {
			fmt.Fprintf(s.errOut, "error: %v\n", err)
			return
		}
		output.FormatChanged(s.out, verb, ch.Task)
	}
}

func (s *Session) runSort(criterion string) {
	st, err := tasklist.ParseSortType(criterion)
	if err != nil {
		if errors.Is(err, tasklist.ErrInvalidSortCriterion) {
			fmt.Fprintf(s.errOut, "error: %v (options: %s)\n",
				err, strings.Join(tasklist.SortKeywords(), ", "))
			return
		}
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	if _, err := s.list.Sort(st); err != nil {
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "sorted by %s\n", criterion)
}
