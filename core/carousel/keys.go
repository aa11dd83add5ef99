// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package carousel

// Key is a navigation key press forwarded to the controller.
type Key int

const (
	KeyRight Key = iota
	KeyLeft
)

// HandleKey applies the keyboard protocol: navigation keys act only while
// the carousel is in view and never while an editable element has focus.
// It reports whether the key was consumed, in which case the caller should
// suppress its default handling.
func (c *Controller) HandleKey(k Key, editableFocus bool) bool {
	c.mu.Lock()
	if c.inert() || c.closed || !c.inView || editableFocus {
		c.mu.Unlock()
		return false
	}
	c.mu.Unlock()

	switch k {
	case KeyRight:
		c.Next()
	case KeyLeft:
		c.Prev()
	default:
		return false
	}
	return true
}
