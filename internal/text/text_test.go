package text

import "testing"

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\nb", "a\nb"},
	}
	for _, tt := range tests {
		if got := NormalizeNewlines(tt.in); got != tt.want {
			t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("a\n\r\n"); got != "a" {
		t.Errorf("TrimTrailingNewlines = %q, want %q", got, "a")
	}
	if got := TrimTrailingNewlines("a\nb"); got != "a\nb" {
		t.Errorf("TrimTrailingNewlines = %q, want %q", got, "a\nb")
	}
}

func TestTrimTrailingWhitespace(t *testing.T) {
	if got := TrimTrailingWhitespace("1. task \n"); got != "1. task" {
		t.Errorf("TrimTrailingWhitespace = %q, want %q", got, "1. task")
	}
	if got := TrimTrailingWhitespace("  a"); got != "  a" {
		t.Errorf("leading whitespace must be kept, got %q", got)
	}
}
