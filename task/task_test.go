package task

import "testing"

func TestTaskString(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{"todo pending", Task{Kind: KindTodo, Description: "Mop the floor"}, "[T][✘] Mop the floor"},
		{"todo done", Task{Kind: KindTodo, Description: "Mop the floor", Done: true}, "[T][✓] Mop the floor"},
		{"deadline", Task{Kind: KindDeadline, Description: "assignment", When: "Aug 26 2020, 11:59 pm"}, "[D][✘] assignment (by: Aug 26 2020, 11:59 pm)"},
		{"event", Task{Kind: KindEvent, Description: "future date", When: "Feb 14 2021, 07:00 pm"}, "[E][✘] future date (at: Feb 14 2021, 07:00 pm)"},
		{"event done", Task{Kind: KindEvent, Description: "lecture", When: "today", Done: true}, "[E][✓] lecture (at: today)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindIsValid(t *testing.T) {
	for _, kind := range ValidKinds() {
		if !kind.IsValid() {
			t.Errorf("%q should be valid", kind)
		}
	}
	for _, kind := range []Kind{"fixed", "chore", ""} {
		if kind.IsValid() {
			t.Errorf("%q should not be valid", kind)
		}
	}
}

func TestHasSchedule(t *testing.T) {
	if (Task{Kind: KindTodo}).HasSchedule() {
		t.Error("todo should not have a schedule")
	}
	if !(Task{Kind: KindDeadline}).HasSchedule() {
		t.Error("deadline should have a schedule")
	}
	if !(Task{Kind: KindEvent}).HasSchedule() {
		t.Error("event should have a schedule")
	}
}
