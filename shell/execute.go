package shell

import (
	"fmt"
	"strings"

	"toodle/command"
	"toodle/task"
)

// Execute applies one command to the task list and returns the message to
// render. quit reports that the session should end. Mutating commands save
// the list to the store before returning; on error nothing is saved and the
// list is unchanged.
func (s *Shell) Execute(cmd command.Command) (msg string, quit bool, err error) {
	switch cmd.Op {
	case command.OpExit:
		return farewell, true, nil

	case command.OpAdd:
		t, err := task.New(cmd.Kind, cmd.Description)
		if err != nil {
			return "", false, err
		}
		s.list.Add(t)
		if err := s.save(); err != nil {
			return "", false, err
		}
		return fmt.Sprintf("Got it. I've added this task:\n  %s\n%s", t, s.countLine()), false, nil

	case command.OpMarkDone:
		if cmd.Index == nil {
			return s.markAllDone()
		}
		t, err := s.list.MarkDone(*cmd.Index)
		if err != nil {
			return "", false, err
		}
		if err := s.save(); err != nil {
			return "", false, err
		}
		return fmt.Sprintf("Nice! I've marked this task as done:\n  %s", t), false, nil

	case command.OpRemove:
		if cmd.Index == nil {
			s.list.RemoveAll()
			if err := s.save(); err != nil {
				return "", false, err
			}
			return "Noted. I've removed all your tasks!", false, nil
		}
		t, err := s.list.Remove(*cmd.Index)
		if err != nil {
			return "", false, err
		}
		if err := s.save(); err != nil {
			return "", false, err
		}
		return fmt.Sprintf("Noted. I've removed this task:\n  %s\n%s", t, s.countLine()), false, nil

	case command.OpList:
		return s.list.PrintMessage(), false, nil

	case command.OpFind:
		return s.executeFind(cmd.Query), false, nil

	case command.OpSort:
		if err := s.list.Sort(cmd.SortKey); err != nil {
			return "", false, err
		}
		if err := s.save(); err != nil {
			return "", false, err
		}
		return s.list.PrintMessage(), false, nil

	case command.OpSetSchedule:
		index := 0
		if cmd.Index != nil {
			index = *cmd.Index
		}
		t, err := s.list.SetSchedule(index, cmd.Schedule)
		if err != nil {
			return "", false, err
		}
		if err := s.save(); err != nil {
			return "", false, err
		}
		return fmt.Sprintf("Okay! I've set this task's date time:\n  %s", t), false, nil

	case command.OpHelp:
		return helpMessage(), false, nil

	default:
		if cmd.Hint != "" {
			return cmd.Hint, false, nil
		}
		return "I'm sorry, I don't know what that means :(\nType 'help' to see what I can do!", false, nil
	}
}

// markAllDone marks every task as completed, skipping tasks that are
// already done rather than failing on them.
func (s *Shell) markAllDone() (string, bool, error) {
	for n := 1; n <= s.list.Len(); n++ {
		if s.list.Get(n).Done {
			continue
		}
		if _, err := s.list.MarkDone(n); err != nil {
			return "", false, err
		}
	}
	if err := s.save(); err != nil {
		return "", false, err
	}
	return "Nice! I've marked all your tasks as done!", false, nil
}

// executeFind scans every description for the query substring, collecting
// matching positions in insertion order. Matching is raw containment: no
// tokenization, no case folding, no ranking.
func (s *Shell) executeFind(query string) string {
	var indices []int
	for i := 0; i < s.list.Len(); i++ {
		if strings.Contains(s.list.At(i).Description, query) {
			indices = append(indices, i)
		}
	}
	return s.list.QueryResultMessage(indices)
}

func (s *Shell) save() error {
	if err := s.store.Save(s.list.Tasks()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (s *Shell) countLine() string {
	n := s.list.Len()
	if n == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}
