package task

import "errors"

var (
	// ErrEmptyDescription indicates task creation with a blank description.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrMalformedDescription indicates a deadline or event description
	// missing its date-time separator.
	ErrMalformedDescription = errors.New("invalid task description")

	// ErrUnknownKind indicates a task kind the factory cannot build.
	ErrUnknownKind = errors.New("unknown task type")

	// ErrInvalidTaskNumber indicates a task number outside the list.
	ErrInvalidTaskNumber = errors.New("invalid task number")

	// ErrAlreadyDone indicates a mark-done on a task already completed.
	ErrAlreadyDone = errors.New("task is already done")

	// ErrNoSchedule indicates a schedule update on a task without one.
	ErrNoSchedule = errors.New("task has no date time to set")

	// ErrUnknownSortKey indicates an unsupported sort key.
	ErrUnknownSortKey = errors.New("unknown sort key")
)
