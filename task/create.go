package task

import (
	"fmt"
	"strings"
)

// Separator tokens splitting a raw description from its schedule text.
const (
	deadlineSeparator = " /by "
	eventSeparator    = " /at "
)

// New builds a task of the given kind from raw command text. Construction
// is pure: no side effects, and identical input yields an identical task.
//
// The raw description is trimmed first; a description that is empty after
// trimming fails with ErrEmptyDescription. Deadline and event descriptions
// are split on their separator token (" /by " and " /at "): the left part
// becomes the description and the right part the schedule. A missing right
// part fails with ErrMalformedDescription.
func New(kind Kind, rawDescription string) (Task, error) {
	description := strings.TrimSpace(rawDescription)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}

	switch kind {
	case KindTodo:
		return Task{Kind: KindTodo, Description: description}, nil
	case KindDeadline:
		left, right, err := splitSchedule(kind, description, deadlineSeparator)
		if err != nil {
			return Task{}, err
		}
		return Task{Kind: KindDeadline, Description: left, When: right}, nil
	case KindEvent:
		left, right, err := splitSchedule(kind, description, eventSeparator)
		if err != nil {
			return Task{}, err
		}
		return Task{Kind: KindEvent, Description: left, When: right}, nil
	default:
		return Task{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// splitSchedule splits a description on its separator token. Only the first
// two parts are kept; a second separator occurrence belongs to neither side.
func splitSchedule(kind Kind, description, separator string) (string, string, error) {
	parts := strings.Split(description, separator)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: a %s needs %q between the description and the date time",
			ErrMalformedDescription, kind, strings.TrimSpace(separator))
	}
	return parts[0], parts[1], nil
}
