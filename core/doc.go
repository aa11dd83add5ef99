// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core groups the deterministic, UI-agnostic parts of Showreel.
// The subpackages hold the carousel state machine, deck loading, slide
// text layout, tween math, the play history store and the remote deck
// fetcher. Nothing in this tree imports the TUI or the CLI; the user
// interfaces drive core through plain types and small interfaces.
package core
