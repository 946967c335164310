package main

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSetFlagAliases(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var file string
	flags.StringVar(&file, "file", "", "")
	setFlagAliases(flags, map[string]string{"data": "file"})

	if err := flags.Parse([]string{"--data", "tasks.jsonl"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if file != "tasks.jsonl" {
		t.Errorf("file = %q, want the aliased value", file)
	}
}

func TestSetFlagAliasesKeepsCanonicalName(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var file string
	flags.StringVar(&file, "file", "", "")
	setFlagAliases(flags, map[string]string{"data": "file"})

	if err := flags.Parse([]string{"--file", "tasks.jsonl"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if file != "tasks.jsonl" {
		t.Errorf("file = %q", file)
	}
}
