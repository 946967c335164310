// Package shell implements the interactive session: the read-parse-execute
// loop and the executor that applies commands to the task list.
package shell

import (
	"bufio"
	"fmt"
	"io"

	"toodle/command"
	"toodle/task"
)

// Store loads and saves the durable task sequence. The shell treats both
// calls as atomic black boxes; the on-disk encoding is the store's concern.
type Store interface {
	// Load returns the ordered task sequence, empty when nothing has been
	// saved yet.
	Load() ([]task.Task, error)

	// Save replaces the durable sequence with the given one.
	Save(tasks []task.Task) error
}

// Presenter renders finished messages to the user. The shell never touches
// a display device directly.
type Presenter interface {
	// Send renders a result message.
	Send(msg string)

	// Error renders an error message.
	Error(msg string)

	// Prompt signals that the shell is ready for the next line.
	Prompt()
}

// Shell runs an interactive task-tracking session over a single task list.
// One command is fully parsed and executed before the next line is read.
type Shell struct {
	list  *task.List
	store Store
	ui    Presenter
}

// New returns a shell over the task list loaded from the store.
func New(store Store, ui Presenter) (*Shell, error) {
	tasks, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return &Shell{list: task.NewList(tasks), store: store, ui: ui}, nil
}

const (
	greeting = "Hello! I'm Toodle.\nWhat can I do for you?"
	farewell = "Bye. Hope to see you again soon!"
)

// Run reads lines from r until EOF or an exit command. Errors from parsing
// or execution are rendered and the loop continues; none of them end the
// session.
func (s *Shell) Run(r io.Reader) error {
	s.ui.Send(greeting)

	scanner := bufio.NewScanner(r)
	for {
		s.ui.Prompt()
		if !scanner.Scan() {
			break
		}

		cmd, err := command.Parse(scanner.Text())
		if err != nil {
			s.ui.Error(err.Error())
			continue
		}

		msg, quit, err := s.Execute(cmd)
		if err != nil {
			s.ui.Error(err.Error())
			continue
		}
		if msg != "" {
			s.ui.Send(msg)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}
