// Package storage persists the task list to a flat file, one JSON object
// per line.
package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"toodle/task"
)

const maxLineBytes = 1024 * 1024

// File stores the task list in a JSONL file at a fixed path.
type File struct {
	path string
}

// NewFile returns a store backed by the file at path. The file and its
// parent directories are created on first save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file's path.
func (f *File) Path() string {
	return f.path
}

// Load reads the task sequence from the file. A missing file is an empty
// list, not an error.
func (f *File) Load() ([]task.Task, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open task file: %w", err)
	}
	defer file.Close()

	var tasks []task.Task
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var t task.Task
		if err := json.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("parse line %d: %w", lineNum, err)
		}
		tasks = append(tasks, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan task file: %w", err)
	}

	return tasks, nil
}

// Save writes the task sequence to the file, replacing its contents. The
// write goes to a temp file first and lands with an atomic rename.
func (f *File) Save(tasks []task.Task) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	tmpPath := f.path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	encoder := json.NewEncoder(file)
	for i, t := range tasks {
		if err := encoder.Encode(t); err != nil {
			file.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("encode task %d: %w", i, err)
		}
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
