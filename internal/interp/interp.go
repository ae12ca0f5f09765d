// Package interp maps one free-text input line to a structured command.
// It knows nothing about the task list; validation beyond shape (date
// formats, index ranges, sort criteria) belongs to the engine.
package interp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownCommand is returned for input matching no command word.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidFormat is returned when a recognized command is missing
	// its required parts. The error text names the expected usage.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidIndex is returned when mark/unmark/delete is not given a
	// positive integer.
	ErrInvalidIndex = errors.New("invalid task number")
)

// CommandKind enumerates the commands a user can issue.
type CommandKind int

const (
	CmdTodo CommandKind = iota
	CmdDeadline
	CmdEvent
	CmdList
	CmdMark
	CmdUnmark
	CmdDelete
	CmdFind
	CmdSort
	CmdBye
)

// Command is one parsed user instruction.
type Command struct {
	Kind        CommandKind
	Description string
	By          string
	From        string
	To          string
	Index       int // 0-based, for mark/unmark/delete
	Keyword     string
	Criterion   string
}

// Parse interprets one line of user input.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)

	switch {
	case lower == "list":
		return Command{Kind: CmdList}, nil
	case lower == "bye":
		return Command{Kind: CmdBye}, nil
	case lower == "todo" || strings.HasPrefix(lower, "todo "):
		return parseTodo(trimmed)
	case lower == "deadline" || strings.HasPrefix(lower, "deadline "):
		return parseDeadline(trimmed)
	case lower == "event" || strings.HasPrefix(lower, "event "):
		return parseEvent(trimmed)
	case lower == "mark" || strings.HasPrefix(lower, "mark "):
		return parseIndexed(CmdMark, trimmed, "mark")
	case lower == "unmark" || strings.HasPrefix(lower, "unmark "):
		return parseIndexed(CmdUnmark, trimmed, "unmark")
	case lower == "delete" || strings.HasPrefix(lower, "delete "):
		return parseIndexed(CmdDelete, trimmed, "delete")
	case lower == "find" || strings.HasPrefix(lower, "find "):
		return parseFind(trimmed)
	case lower == "sort" || strings.HasPrefix(lower, "sort "):
		return parseSort(trimmed)
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, trimmed)
	}
}

func parseTodo(input string) (Command, error) {
	rest := strings.TrimSpace(input[len("todo"):])
	return Command{Kind: CmdTodo, Description: rest}, nil
}

func parseDeadline(input string) (Command, error) {
	rest := strings.TrimSpace(input[len("deadline"):])
	parts := strings.SplitN(rest, " /by ", 2)
	if len(parts) != 2 {
		return Command{}, fmt.Errorf("%w: deadline <description> /by <date or date time>", ErrInvalidFormat)
	}
	return Command{Kind: CmdDeadline, Description: parts[0], By: strings.TrimSpace(parts[1])}, nil
}

func parseEvent(input string) (Command, error) {
	usage := fmt.Errorf("%w: event <description> /from <date time> /to <date time>", ErrInvalidFormat)
	rest := strings.TrimSpace(input[len("event"):])
	parts := strings.SplitN(rest, " /from ", 2)
	if len(parts) != 2 {
		return Command{}, usage
	}
	times := strings.SplitN(parts[1], " /to ", 2)
	if len(times) != 2 {
		return Command{}, usage
	}
	return Command{
		Kind:        CmdEvent,
		Description: parts[0],
		From:        strings.TrimSpace(times[0]),
		To:          strings.TrimSpace(times[1]),
	}, nil
}

// parseIndexed handles mark/unmark/delete: a 1-based task number converted
// to a 0-based index. A missing number is an index error, not an unknown
// command.
func parseIndexed(kind CommandKind, input, word string) (Command, error) {
	rest := strings.TrimSpace(input[len(word):])
	n, err := strconv.Atoi(rest)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidIndex, rest)
	}
	return Command{Kind: kind, Index: n - 1}, nil
}

func parseFind(input string) (Command, error) {
	rest := strings.TrimSpace(input[len("find"):])
	return Command{Kind: CmdFind, Keyword: rest}, nil
}

func parseSort(input string) (Command, error) {
	rest := strings.TrimSpace(input[len("sort"):])
	return Command{Kind: CmdSort, Criterion: rest}, nil
}
