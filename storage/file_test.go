package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"toodle/task"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	store := NewFile(path)

	tasks := []task.Task{
		{Kind: task.KindTodo, Description: "Mop the floor"},
		{Kind: task.KindDeadline, Description: "assignment", When: "Aug 26 2020", Done: true},
		{Kind: task.KindEvent, Description: "lecture", When: "today 10:00"},
	}
	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, tasks) {
		t.Errorf("Load = %+v, want %+v", loaded, tasks)
	}
}

func TestFileLoadMissingFile(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "nope", "tasks.jsonl"))

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Load = %+v, want empty", loaded)
	}
}

func TestFileSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "tasks.jsonl")
	store := NewFile(path)

	if err := store.Save([]task.Task{{Kind: task.KindTodo, Description: "x"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("task file missing after save: %v", err)
	}
}

func TestFileSaveReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	store := NewFile(path)

	if err := store.Save([]task.Task{
		{Kind: task.KindTodo, Description: "a"},
		{Kind: task.KindTodo, Description: "b"},
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save([]task.Task{{Kind: task.KindTodo, Description: "c"}}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Description != "c" {
		t.Errorf("Load = %+v, want just c", loaded)
	}
}

func TestFileLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	content := `{"kind":"todo","description":"a","done":false}

{"kind":"todo","description":"b","done":true}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loaded, err := NewFile(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Description != "a" || !loaded[1].Done {
		t.Errorf("Load = %+v", loaded)
	}
}

func TestFileLoadReportsBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	if err := os.WriteFile(path, []byte("not json\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := NewFile(path).Load(); err == nil {
		t.Fatal("expected error for unparseable line")
	}
}
