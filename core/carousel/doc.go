// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package carousel implements the slide carousel controller: the single
// authority for which slide is active and when a transition may start.
// It serializes transition requests from every origin (navigation keys,
// autoplay timer, direct GoTo calls) behind one in-flight flag, owns the
// autoplay timer, and delegates all visual work to an Animator.
//
// The controller is UI-agnostic. The terminal front end in ui/tui provides
// the Animator; tests provide a scripted one together with a fake Clock.
package carousel
