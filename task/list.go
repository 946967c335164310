package task

import (
	"fmt"
	"sort"
	"strings"

	"toodle/internal/text"
)

// List owns the ordered sequence of tasks. Insertion order is display
// order; user-facing task numbers are 1-based positions in that order, so
// removing a task shifts every later task number down by one.
type List struct {
	tasks []Task
}

// NewList returns a list seeded with the given tasks, usually the sequence
// loaded from storage at startup.
func NewList(tasks []Task) *List {
	return &List{tasks: tasks}
}

// Len returns the number of tasks in the list.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the ordered task sequence, for persistence.
func (l *List) Tasks() []Task {
	return append([]Task(nil), l.tasks...)
}

// Add appends a task to the list.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// At returns the task at a 0-based position, without bounds checking.
func (l *List) At(i int) Task {
	return l.tasks[i]
}

// Get returns the task with the given 1-based task number, without bounds
// checking. The bounds-checked operations below are authoritative for
// user-facing paths.
func (l *List) Get(n int) Task {
	return l.tasks[n-1]
}

// Remove deletes the task with the given 1-based task number and returns it.
func (l *List) Remove(n int) (Task, error) {
	if n < 1 || n > len(l.tasks) {
		return Task{}, fmt.Errorf("%w: %d", ErrInvalidTaskNumber, n)
	}
	i := n - 1
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

// RemoveAll clears the list unconditionally.
func (l *List) RemoveAll() {
	l.tasks = nil
}

// MarkDone marks the task with the given 1-based task number as completed
// and returns it. Marking a task that is already done is an error, not a
// no-op.
func (l *List) MarkDone(n int) (Task, error) {
	if n < 1 || n > len(l.tasks) {
		return Task{}, fmt.Errorf("%w: %d", ErrInvalidTaskNumber, n)
	}
	i := n - 1
	if l.tasks[i].Done {
		return Task{}, ErrAlreadyDone
	}
	l.tasks[i].Done = true
	return l.tasks[i], nil
}

// SetSchedule replaces the schedule text of the task with the given 1-based
// task number and returns the updated task. Only deadline and event tasks
// carry a schedule.
func (l *List) SetSchedule(n int, value string) (Task, error) {
	if n < 1 || n > len(l.tasks) {
		return Task{}, fmt.Errorf("%w: %d", ErrInvalidTaskNumber, n)
	}
	i := n - 1
	if !l.tasks[i].HasSchedule() {
		return Task{}, ErrNoSchedule
	}
	l.tasks[i].When = value
	return l.tasks[i], nil
}

// Sort keys accepted by Sort.
const (
	SortByName     = "name"
	SortByType     = "type"
	SortByDateTime = "datetime"
)

// Sort reorders the list in place. "name" orders by description, "type" by
// kind (todo, deadline, event), "datetime" by the opaque schedule text with
// unscheduled todos last. Ties keep their current relative order.
func (l *List) Sort(key string) error {
	switch key {
	case SortByName:
		sort.SliceStable(l.tasks, func(a, b int) bool {
			return l.tasks[a].Description < l.tasks[b].Description
		})
	case SortByType:
		sort.SliceStable(l.tasks, func(a, b int) bool {
			return KindRank(l.tasks[a].Kind) < KindRank(l.tasks[b].Kind)
		})
	case SortByDateTime:
		sort.SliceStable(l.tasks, func(a, b int) bool {
			x, y := l.tasks[a], l.tasks[b]
			if x.HasSchedule() != y.HasSchedule() {
				return x.HasSchedule()
			}
			return x.When < y.When
		})
	default:
		return fmt.Errorf("%w: %q (valid: %s, %s, %s)",
			ErrUnknownSortKey, key, SortByName, SortByType, SortByDateTime)
	}
	return nil
}

// PrintMessage renders the whole list as a numbered message.
func (l *List) PrintMessage() string {
	if len(l.tasks) == 0 {
		return "Your list is empty!"
	}
	var msg strings.Builder
	if len(l.tasks) > 1 {
		msg.WriteString("Here are the tasks in your list:\n")
	} else {
		msg.WriteString("Here's your one and only task:\n")
	}
	for i, t := range l.tasks {
		fmt.Fprintf(&msg, "%d. %s", i+1, t)
		if i < len(l.tasks)-1 {
			msg.WriteByte('\n')
		}
	}
	return msg.String()
}

// QueryResultMessage renders the tasks at the given 0-based positions as a
// numbered message. Result lines are renumbered from 1; they do not show
// the tasks' positions in the full list.
func (l *List) QueryResultMessage(indices []int) string {
	if len(indices) == 0 {
		return "Search result is empty!"
	}
	var msg strings.Builder
	for n, i := range indices {
		fmt.Fprintf(&msg, "%d. %s\n", n+1, l.tasks[i])
	}
	return text.TrimTrailingWhitespace(msg.String())
}
