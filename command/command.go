// Package command implements the typed command model and the parser that
// maps one raw input line to exactly one command.
package command

import "toodle/task"

// Op identifies a command variant.
type Op int

const (
	// OpInvalid signals unparseable input. It is the zero value, so a
	// parse call can never produce an absent command.
	OpInvalid Op = iota

	// OpExit ends the session.
	OpExit

	// OpAdd creates a task from Kind and Description.
	OpAdd

	// OpMarkDone marks the task at Index as completed, or every task when
	// Index is nil.
	OpMarkDone

	// OpRemove deletes the task at Index, or every task when Index is nil.
	OpRemove

	// OpList prints the whole list.
	OpList

	// OpFind searches task descriptions for the Query substring.
	OpFind

	// OpSort reorders the list by SortKey.
	OpSort

	// OpSetSchedule replaces the schedule of the task at Index with
	// Schedule.
	OpSetSchedule

	// OpHelp prints the command reference.
	OpHelp
)

// Command is a parsed, executable representation of one input line. Op
// selects the variant; the remaining fields carry that variant's data and
// are zero for every other variant.
type Command struct {
	Op Op

	// Kind and Description describe the task to add (OpAdd). Description
	// is the raw text after the keyword, separator included.
	Kind        task.Kind
	Description string

	// Index is the 1-based task number for OpMarkDone, OpRemove, and
	// OpSetSchedule. For OpMarkDone and OpRemove, nil means "all".
	Index *int

	// Query is the search text for OpFind.
	Query string

	// SortKey is the requested ordering for OpSort.
	SortKey string

	// Schedule is the new date-time text for OpSetSchedule.
	Schedule string

	// Hint is the usage hint for OpInvalid. Empty for unknown keywords.
	Hint string
}
