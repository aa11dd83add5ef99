// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui implements the terminal player. Presentation and input
// handling live here; carousel semantics are owned by core/carousel.
package tui
