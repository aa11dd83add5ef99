// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package anim

import "time"

// Tween animates a single scalar from 0 to 1 over Duration, shaped by Ease.
// It is driven externally: call Step with the current time on every frame.
// OnUpdate receives eased progress; OnComplete fires exactly once when the
// tween finishes. A zero Ease means Linear.
type Tween struct {
	Duration   time.Duration
	Ease       Ease
	OnUpdate   func(progress float64)
	OnComplete func()

	started  bool
	finished bool
	startAt  time.Time
}

// Start arms the tween at the given time. Starting an already-running tween
// restarts it from zero.
func (tw *Tween) Start(now time.Time) {
	tw.started = true
	tw.finished = false
	tw.startAt = now
}

// Running reports whether the tween has started and not yet completed.
func (tw *Tween) Running() bool {
	return tw.started && !tw.finished
}

// Step advances the tween to now. It returns true while the tween still
// needs further frames. A non-positive Duration completes on the first step.
func (tw *Tween) Step(now time.Time) bool {
	if !tw.started || tw.finished {
		return false
	}

	t := 1.0
	if tw.Duration > 0 {
		t = Clamp01(float64(now.Sub(tw.startAt)) / float64(tw.Duration))
	}

	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	if tw.OnUpdate != nil {
		tw.OnUpdate(ease(t))
	}

	if t >= 1 {
		tw.finished = true
		if tw.OnComplete != nil {
			tw.OnComplete()
		}
		return false
	}
	return true
}

// Skip jumps the tween to its end state, emitting the final update and the
// completion callback. No-op when the tween is not running.
func (tw *Tween) Skip() {
	if !tw.Running() {
		return
	}
	if tw.OnUpdate != nil {
		ease := tw.Ease
		if ease == nil {
			ease = Linear
		}
		tw.OnUpdate(ease(1))
	}
	tw.finished = true
	if tw.OnComplete != nil {
		tw.OnComplete()
	}
}
