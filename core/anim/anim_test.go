// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

package anim

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEasingEndpoints(t *testing.T) {
	eases := map[string]Ease{
		"linear":     Linear,
		"outQuad":    EaseOutQuad,
		"inCubic":    EaseInCubic,
		"outCubic":   EaseOutCubic,
		"inOutCubic": EaseInOutCubic,
	}
	for name, ease := range eases {
		if got := ease(0); !almostEqual(got, 0) {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := ease(1); !almostEqual(got, 1) {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEaseInOutCubicMidpoint(t *testing.T) {
	if got := EaseInOutCubic(0.5); !almostEqual(got, 0.5) {
		t.Fatalf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}
}

func TestTweenStepsToCompletion(t *testing.T) {
	var updates []float64
	completed := 0
	tw := &Tween{
		Duration:   100 * time.Millisecond,
		OnUpdate:   func(p float64) { updates = append(updates, p) },
		OnComplete: func() { completed++ },
	}

	start := time.Unix(0, 0)
	tw.Start(start)
	if !tw.Step(start.Add(50 * time.Millisecond)) {
		t.Fatalf("Step at 50%% should request more frames")
	}
	if !almostEqual(updates[0], 0.5) {
		t.Fatalf("progress at 50ms = %v, want 0.5", updates[0])
	}

	if tw.Step(start.Add(200 * time.Millisecond)) {
		t.Fatalf("Step past the end should report done")
	}
	if completed != 1 {
		t.Fatalf("OnComplete ran %d times, want 1", completed)
	}
	if last := updates[len(updates)-1]; !almostEqual(last, 1) {
		t.Fatalf("final progress = %v, want 1", last)
	}

	// Further steps are inert and must not re-fire completion.
	tw.Step(start.Add(time.Second))
	if completed != 1 {
		t.Fatalf("OnComplete re-fired on a finished tween")
	}
}

func TestTweenZeroDurationCompletesImmediately(t *testing.T) {
	completed := 0
	tw := &Tween{OnComplete: func() { completed++ }}
	now := time.Unix(0, 0)
	tw.Start(now)
	if tw.Step(now) {
		t.Fatalf("zero-duration tween should finish on first step")
	}
	if completed != 1 {
		t.Fatalf("OnComplete ran %d times, want 1", completed)
	}
}

func TestTweenSkip(t *testing.T) {
	var last float64
	completed := 0
	tw := &Tween{
		Duration:   time.Second,
		OnUpdate:   func(p float64) { last = p },
		OnComplete: func() { completed++ },
	}
	tw.Start(time.Unix(0, 0))
	tw.Skip()
	if !almostEqual(last, 1) || completed != 1 {
		t.Fatalf("Skip: progress=%v completed=%d, want 1 and 1", last, completed)
	}
	tw.Skip() // idempotent on a finished tween
	if completed != 1 {
		t.Fatalf("Skip re-fired completion")
	}
}

func TestStaggerProgress(t *testing.T) {
	// At p=0 nothing has started; at p=1 everything has finished.
	for i := 0; i < 5; i++ {
		if got := StaggerProgress(0, i, 5, 0.5); got != 0 {
			t.Fatalf("StaggerProgress(0, %d) = %v, want 0", i, got)
		}
		if got := StaggerProgress(1, i, 5, 0.5); got != 1 {
			t.Fatalf("StaggerProgress(1, %d) = %v, want 1", i, got)
		}
	}

	// Earlier items are never behind later ones.
	for p := 0.0; p <= 1.0; p += 0.1 {
		prev := 1.0
		for i := 0; i < 4; i++ {
			got := StaggerProgress(p, i, 4, 0.4)
			if i > 0 && got > prev+1e-9 {
				t.Fatalf("item %d ahead of item %d at p=%v", i, i-1, p)
			}
			prev = got
		}
	}

	// Single item follows the overall progress directly.
	if got := StaggerProgress(0.3, 0, 1, 0.4); !almostEqual(got, 0.3) {
		t.Fatalf("single-item stagger = %v, want 0.3", got)
	}
}
