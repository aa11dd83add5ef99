// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package carousel

// VisualState is the non-animated presentation of a slide, applied outside
// of transitions (at initialization and when force-settling).
type VisualState int

const (
	// Hidden slides render nothing and accept no interaction.
	Hidden VisualState = iota
	// Shown slides are fully visible and interactive.
	Shown
)

// Direction is the travel direction of a transition, used by directional
// reveal choreography.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Mode selects the transition choreography pair.
type Mode int

const (
	// Reveal is the full-motion variant: directional line reveal for text,
	// optional mask reveal for the slide image.
	Reveal Mode = iota
	// Fade is the reduced-motion variant: outgoing fades out, incoming
	// fades in, no line splitting.
	Fade
)

// Transition describes one slide swap for the Animator.
type Transition struct {
	From      int
	To        int
	Direction Direction
	Mode      Mode
}

// Animator performs the visual side of slide swaps. Transition must invoke
// done exactly once when the swap has finished; the controller treats itself
// as busy until then. Apply assigns a state immediately, without animation.
type Animator interface {
	Apply(index int, state VisualState)
	Transition(t Transition, done func())
}

// Slide is the controller's per-slide record. Content and Image are opaque
// references handed through to the Animator; the controller never inspects
// them.
type Slide struct {
	Content any
	Image   any
	// Active marks the slide as pre-selected at initialization. At steady
	// state exactly one slide is active; the controller maintains this.
	Active bool
}
