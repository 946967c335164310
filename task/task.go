// Package task implements the task model for the tracker: the three task
// variants, the factory that builds them from raw command text, and the
// ordered list that owns them.
package task

import "fmt"

// Kind identifies a task variant.
type Kind string

const (
	// KindTodo is a plain task with a description only.
	KindTodo Kind = "todo"

	// KindDeadline is a task that must be completed by a date and time.
	KindDeadline Kind = "deadline"

	// KindEvent is a task requiring attendance at a date and time.
	KindEvent Kind = "event"
)

// ValidKinds returns all task kinds the factory can build.
func ValidKinds() []Kind {
	return []Kind{KindTodo, KindDeadline, KindEvent}
}

// IsValid returns true if the kind is one the factory can build.
func (k Kind) IsValid() bool {
	for _, valid := range ValidKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// KindRank returns the sort rank for a kind, used by type ordering.
func KindRank(k Kind) int {
	switch k {
	case KindTodo:
		return 0
	case KindDeadline:
		return 1
	case KindEvent:
		return 2
	default:
		return 3
	}
}

// Task represents a single tracked task.
//
// Task is a tagged variant: Kind selects the variant, and When carries the
// variant-specific schedule (the "by" time of a deadline, the "at" time of
// an event; always empty for a todo). Description never changes after
// creation, and Done only ever transitions from false to true.
type Task struct {
	// Kind selects the task variant.
	Kind Kind `json:"kind"`

	// Description is the task text shown in list output.
	Description string `json:"description"`

	// Done reports whether the task has been completed.
	Done bool `json:"done"`

	// When is the opaque schedule text. It is never parsed or validated;
	// it renders exactly as the user typed it.
	When string `json:"when,omitempty"`
}

const (
	markerDone    = "✓"
	markerPending = "✘"
)

// String renders the task the way it appears in list output, for example
// "[D][✘] assignment (by: Aug 26 2020)".
func (t Task) String() string {
	marker := markerPending
	if t.Done {
		marker = markerDone
	}
	switch t.Kind {
	case KindDeadline:
		return fmt.Sprintf("[D][%s] %s (by: %s)", marker, t.Description, t.When)
	case KindEvent:
		return fmt.Sprintf("[E][%s] %s (at: %s)", marker, t.Description, t.When)
	default:
		return fmt.Sprintf("[T][%s] %s", marker, t.Description)
	}
}

// HasSchedule returns true if the task variant carries a settable date time.
func (t Task) HasSchedule() bool {
	return t.Kind == KindDeadline || t.Kind == KindEvent
}
