// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package splitter decomposes a rendered text block into display lines so
// the reveal choreography can animate each line independently. Splitting is
// width-dependent and cheap to redo, so callers re-split after a resize and
// call Revert to get the untouched source back.
package splitter

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Lines is the result of splitting one text block at a fixed width.
type Lines struct {
	source string
	width  int
	lines  []string
}

// Split word-wraps text to the given width and decomposes it into lines.
// ANSI escape sequences survive wrapping. A width <= 0 splits on the
// source's own newlines only.
func Split(text string, width int) *Lines {
	wrapped := text
	if width > 0 {
		wrapped = wordwrap.String(text, width)
	}
	l := &Lines{source: text, width: width}
	if wrapped != "" {
		l.lines = strings.Split(wrapped, "\n")
	}
	return l
}

// Lines returns the display lines in order.
func (l *Lines) Lines() []string { return l.lines }

// Count returns the number of display lines.
func (l *Lines) Count() int { return len(l.lines) }

// Width returns the wrap width the split was computed for.
func (l *Lines) Width() int { return l.width }

// Revert returns the original, unsplit text.
func (l *Lines) Revert() string { return l.source }
