// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package anim is a small frame-stepped tween engine. It knows nothing about
// slides or terminals: callers hand it a duration, an easing curve and an
// update callback, then drive it with Step on every frame tick. The carousel
// stage in ui/tui builds its reveal and fade choreography on top of it.
package anim

import "math"

// Ease maps linear progress t in [0,1] to eased progress.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

func EaseInCubic(t float64) float64 { return t * t * t }

func EaseOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// EaseInOutCubic accelerates through the first half and decelerates through
// the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 pins t to [0,1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
