// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

package splitter

import (
	"strings"
	"testing"
)

func TestSplitWrapsAtWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	l := Split(text, 15)
	if l.Count() < 3 {
		t.Fatalf("got %d lines, want at least 3", l.Count())
	}
	for i, line := range l.Lines() {
		if len(line) > 15 {
			t.Fatalf("line %d exceeds width: %q", i, line)
		}
	}
}

func TestSplitZeroWidthUsesSourceNewlines(t *testing.T) {
	l := Split("one\ntwo\nthree", 0)
	if l.Count() != 3 {
		t.Fatalf("got %d lines, want 3", l.Count())
	}
	if l.Lines()[1] != "two" {
		t.Fatalf("line 1 = %q, want %q", l.Lines()[1], "two")
	}
}

func TestSplitEmptyText(t *testing.T) {
	l := Split("", 40)
	if l.Count() != 0 {
		t.Fatalf("empty text produced %d lines", l.Count())
	}
}

func TestRevertReturnsOriginal(t *testing.T) {
	text := "a paragraph that will be wrapped into several display lines for animation"
	l := Split(text, 10)
	if got := l.Revert(); got != text {
		t.Fatalf("Revert() = %q, want original text", got)
	}
	if strings.Join(l.Lines(), "\n") == text {
		t.Fatalf("expected wrapping to change line structure for this width")
	}
}
