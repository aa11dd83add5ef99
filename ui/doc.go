// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui contains the top-level UI wiring for Showreel.
//
// This package groups the high-level UI entry points used by the application
// to start the different user interfaces (CLI, TUI).
package ui
