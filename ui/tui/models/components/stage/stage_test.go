// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package stage

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/showreelio/showreel/core/carousel"
	"github.com/showreelio/showreel/core/deck"
)

func testSlides() []deck.Slide {
	return []deck.Slide{
		{Body: "first slide"},
		{Body: "second slide"},
		{Body: "third slide"},
	}
}

func newTestStage(t *testing.T, reduced bool) *Model {
	t.Helper()
	m := New(testSlides(), reduced, nil)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m
}

func TestViewWithoutSlides(t *testing.T) {
	m := New(nil, false, nil)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.View(), "no slides") {
		t.Fatalf("empty stage should render the placeholder")
	}
}

func TestApplyPinsSlide(t *testing.T) {
	m := newTestStage(t, false)
	m.Apply(1, carousel.Shown)
	if !strings.Contains(m.View(), "second slide") {
		t.Fatalf("expected the shown slide in the view, got:\n%s", m.View())
	}
	if m.Animating() {
		t.Fatalf("Apply must not start an animation")
	}
}

func TestTransitionSettlesOnce(t *testing.T) {
	m := newTestStage(t, true)
	m.Apply(0, carousel.Shown)

	calls := 0
	m.Transition(carousel.Transition{From: 0, To: 1, Mode: carousel.Fade}, func() {
		calls++
	})
	if !m.Animating() {
		t.Fatalf("transition should be in flight")
	}

	// Fade runs for fadeDuration; step frames until the tween completes.
	deadline := time.Now().Add(2 * time.Second)
	for m.Animating() {
		if time.Now().After(deadline) {
			t.Fatalf("transition never settled")
		}
		m.Update(FrameMsg(time.Now()))
		time.Sleep(frameInterval)
	}
	if calls != 1 {
		t.Fatalf("done fired %d times, want 1", calls)
	}
	if !strings.Contains(m.View(), "second slide") {
		t.Fatalf("settled view should show the target slide")
	}
}

func TestTransitionWakes(t *testing.T) {
	woke := make(chan struct{}, 1)
	m := New(testSlides(), false, func() {
		select {
		case woke <- struct{}{}:
		default:
		}
	})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	m.Transition(carousel.Transition{From: 0, To: 1}, func() {})
	select {
	case <-woke:
	default:
		t.Fatalf("Transition should call wake so the tea loop starts ticking")
	}
}

func TestSetSlidesAbandonsPendingTransition(t *testing.T) {
	m := newTestStage(t, false)

	calls := 0
	m.Transition(carousel.Transition{From: 0, To: 2}, func() { calls++ })

	m.SetSlides([]deck.Slide{{Body: "fresh"}})
	if calls != 1 {
		t.Fatalf("abandoning a transition must still settle it, calls = %d", calls)
	}
	if m.Animating() {
		t.Fatalf("no transition should survive a slide swap")
	}
	if !strings.Contains(m.View(), "fresh") {
		t.Fatalf("view should show the new deck")
	}
}

func TestResizeInvalidatesRenderCache(t *testing.T) {
	m := newTestStage(t, false)
	m.Apply(0, carousel.Shown)
	wide := m.View()

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	narrow := m.View()
	if wide == narrow {
		t.Fatalf("view should re-render at the new width")
	}
}
