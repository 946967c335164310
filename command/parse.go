package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"toodle/task"
)

// ErrInvalidNumber indicates a task number token that is not an integer.
var ErrInvalidNumber = errors.New("invalid task number")

// Usage hints attached to recognized keywords missing a required token.
const (
	doneHint   = "You can mark tasks as done!\nE.g. 'done 1' or 'done all'"
	removeHint = "You can remove tasks from the list!\nE.g. 'remove 1' or 'remove all'"
	findHint   = "You can filter your list using keywords!\nE.g. 'find assignment'"
	sortHint   = "You can sort by: name, type, datetime\nE.g. 'sort name'"
	startHint  = "You can set a fixed task's date time!\nE.g. 'start 1 today 23:00'"
)

// Parse maps one raw input line to exactly one command.
//
// The line is split on single spaces and the first token, lowercased,
// selects the keyword; everything after the keyword is case-sensitive.
// Structural problems (missing tokens, unknown keywords, empty input)
// resolve to an OpInvalid command rather than an error. Task number tokens
// that fail integer parsing are the one hard failure: they return
// ErrInvalidNumber for the caller to report distinctly.
func Parse(line string) (Command, error) {
	tokens := strings.Split(line, " ")
	// Trailing empty tokens are dropped so "done " reads as a bare keyword.
	for len(tokens) > 1 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	keyword := strings.ToLower(tokens[0])

	switch keyword {
	case "bye", "quit", "exit":
		return Command{Op: OpExit}, nil

	case "todo", "event", "deadline", "fixed":
		return Command{
			Op:          OpAdd,
			Kind:        task.Kind(keyword),
			Description: strings.Join(tokens[1:], " "),
		}, nil

	case "done":
		return parseSelection(OpMarkDone, tokens, doneHint)

	case "list":
		return Command{Op: OpList}, nil

	case "delete", "remove":
		return parseSelection(OpRemove, tokens, removeHint)

	case "find":
		if len(tokens) < 2 {
			return Command{Op: OpInvalid, Hint: findHint}, nil
		}
		return Command{Op: OpFind, Query: tokens[1]}, nil

	case "help":
		return Command{Op: OpHelp}, nil

	case "sort":
		if len(tokens) < 2 {
			return Command{Op: OpInvalid, Hint: sortHint}, nil
		}
		return Command{Op: OpSort, SortKey: tokens[1]}, nil

	case "start":
		if len(tokens) < 2 {
			return Command{Op: OpInvalid, Hint: startHint}, nil
		}
		index, err := strconv.Atoi(tokens[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrInvalidNumber, tokens[1])
		}
		if len(tokens) < 4 {
			return Command{Op: OpInvalid, Hint: startHint}, nil
		}
		return Command{Op: OpSetSchedule, Index: &index, Schedule: tokens[2] + " " + tokens[3]}, nil

	default:
		return Command{Op: OpInvalid}, nil
	}
}

// parseSelection handles the shared "<keyword> all|<number>" form of the
// done and remove commands. The "all" token is case-sensitive.
func parseSelection(op Op, tokens []string, hint string) (Command, error) {
	if len(tokens) < 2 {
		return Command{Op: OpInvalid, Hint: hint}, nil
	}
	if tokens[1] == "all" {
		return Command{Op: op}, nil
	}
	index, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidNumber, tokens[1])
	}
	return Command{Op: op, Index: &index}, nil
}
