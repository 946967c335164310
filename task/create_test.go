package task

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		raw     string
		want    Task
		wantErr error
	}{
		{"todo", KindTodo, "read book", Task{Kind: KindTodo, Description: "read book"}, nil},
		{"todo trims", KindTodo, "  read book  ", Task{Kind: KindTodo, Description: "read book"}, nil},
		{"todo empty", KindTodo, "", Task{}, ErrEmptyDescription},
		{"todo whitespace only", KindTodo, "   ", Task{}, ErrEmptyDescription},
		{"deadline", KindDeadline, "assignment /by Aug 26 2020", Task{Kind: KindDeadline, Description: "assignment", When: "Aug 26 2020"}, nil},
		{"deadline missing separator", KindDeadline, "assignment by Aug 26 2020", Task{}, ErrMalformedDescription},
		{"deadline trailing separator", KindDeadline, "assignment /by ", Task{}, ErrMalformedDescription},
		{"deadline repeated separator", KindDeadline, "a /by b /by c", Task{Kind: KindDeadline, Description: "a", When: "b"}, nil},
		{"deadline empty", KindDeadline, "", Task{}, ErrEmptyDescription},
		{"event", KindEvent, "lecture /at today 10:00", Task{Kind: KindEvent, Description: "lecture", When: "today 10:00"}, nil},
		{"event missing separator", KindEvent, "lecture at today 10:00", Task{}, ErrMalformedDescription},
		{"event with deadline separator", KindEvent, "lecture /by today", Task{}, ErrMalformedDescription},
		{"fixed has no factory branch", Kind("fixed"), "laundry", Task{}, ErrUnknownKind},
		{"unknown kind", Kind("chore"), "laundry", Task{}, ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.kind, tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New(%q, %q) error = %v, want %v", tt.kind, tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q, %q) unexpected error: %v", tt.kind, tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("New(%q, %q) = %+v, want %+v", tt.kind, tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewIsDeterministic(t *testing.T) {
	first, err := New(KindDeadline, "assignment /by Aug 26 2020")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := New(KindDeadline, "assignment /by Aug 26 2020")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("identical input rendered differently: %q vs %q", first, second)
	}
}
