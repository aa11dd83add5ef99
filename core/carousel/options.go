// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package carousel

import "time"

const (
	// DefaultInterval is the autoplay advance period used when the
	// configured value is missing or not positive.
	DefaultInterval = 4 * time.Second

	// DefaultTransitionGuard bounds how long a transition may stay
	// unfinished before the controller force-settles it. This keeps a
	// misbehaving animator from locking the carousel permanently.
	DefaultTransitionGuard = 10 * time.Second
)

// Options configure a Controller at construction. All fields are fixed for
// the lifetime of the controller; in particular ReducedMotion is resolved
// once, not re-queried reactively.
type Options struct {
	// Autoplay enables timer-driven advancement to the next slide.
	Autoplay bool

	// AutoplayInterval is the period between automatic advances. Values
	// <= 0 fall back to DefaultInterval.
	AutoplayInterval time.Duration

	// ReducedMotion selects the Fade transition pair instead of the
	// directional Reveal choreography.
	ReducedMotion bool

	// TransitionGuard overrides DefaultTransitionGuard. Zero means the
	// default; a negative value disables the guard entirely.
	TransitionGuard time.Duration
}

func (o Options) interval() time.Duration {
	if o.AutoplayInterval <= 0 {
		return DefaultInterval
	}
	return o.AutoplayInterval
}

func (o Options) guard() time.Duration {
	switch {
	case o.TransitionGuard < 0:
		return 0
	case o.TransitionGuard == 0:
		return DefaultTransitionGuard
	default:
		return o.TransitionGuard
	}
}

func (o Options) mode() Mode {
	if o.ReducedMotion {
		return Fade
	}
	return Reveal
}
