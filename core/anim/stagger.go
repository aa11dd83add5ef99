// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package anim

// StaggerProgress distributes one overall progress value p across n items
// animating with a stagger. Each item's own animation occupies window
// (0 < window <= 1) of the total timeline; the start offsets are spread
// evenly across the remainder. The result is item i's local progress in
// [0,1]. With n <= 1 or window >= 1 every item simply follows p.
func StaggerProgress(p float64, i, n int, window float64) float64 {
	p = Clamp01(p)
	if n <= 1 || window >= 1 {
		return p
	}
	if window <= 0 {
		window = 1.0 / float64(n)
	}
	start := (1 - window) * float64(i) / float64(n-1)
	return Clamp01((p - start) / window)
}
