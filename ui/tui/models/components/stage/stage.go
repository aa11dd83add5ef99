// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stage renders the slide canvas. It doubles as the carousel's
// animator: the controller calls Apply and Transition, the tea loop drives
// frames through FrameMsg ticks, and the stage reports completion back to
// the controller exactly once per transition.
package stage

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/showreelio/showreel/core/anim"
	"github.com/showreelio/showreel/core/carousel"
	"github.com/showreelio/showreel/core/deck"
	"github.com/showreelio/showreel/core/splitter"
	"github.com/showreelio/showreel/ui/tui/util"
)

const (
	frameInterval  = time.Second / 30
	revealDuration = 450 * time.Millisecond
	fadeDuration   = 150 * time.Millisecond
	staggerWindow  = 0.35
)

// FrameMsg advances the in-flight transition by one frame.
type FrameMsg time.Time

// TickCmd schedules the next animation frame.
func TickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

type pendingTransition struct {
	t        carousel.Transition
	done     func()
	tween    *anim.Tween
	progress float64
	finished bool
}

// Model is the slide canvas. Apply and Transition may be called from the
// controller's timer goroutines, so all state is mutex-guarded.
type Model struct {
	mu      sync.Mutex
	size    util.Size
	reduced bool
	wake    func()

	slides   []deck.Slide
	rendered []renderedSlide
	opacity  []float64
	current  int
	pending  *pendingTransition
}

type renderedSlide struct {
	lines []string
	width int
}

// New builds a stage for the given slides. wake is invoked (from arbitrary
// goroutines) whenever a transition starts outside the tea loop, e.g. on an
// autoplay tick; the caller uses it to pump a frame command into the program.
func New(slides []deck.Slide, reducedMotion bool, wake func()) *Model {
	m := &Model{
		reduced: reducedMotion,
		wake:    wake,
	}
	m.setSlidesLocked(slides)
	return m
}

// SetSlides swaps in a fresh slide set, e.g. after a live deck reload. Any
// in-flight transition is abandoned; its completion callback still fires so
// the old controller can settle before being closed.
func (m *Model) SetSlides(slides []deck.Slide) {
	m.mu.Lock()
	p := m.pending
	m.pending = nil
	m.setSlidesLocked(slides)
	m.mu.Unlock()
	if p != nil {
		p.done()
	}
}

func (m *Model) setSlidesLocked(slides []deck.Slide) {
	m.slides = slides
	m.rendered = make([]renderedSlide, len(slides))
	m.opacity = make([]float64, len(slides))
	m.current = 0
}

// Apply pins a slide's visual state, no animation.
func (m *Model) Apply(index int, state carousel.VisualState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.opacity) {
		return
	}
	if state == carousel.Shown {
		m.opacity[index] = 1
		m.current = index
	} else {
		m.opacity[index] = 0
	}
}

// Transition starts an animated switch between two slides. done is stored
// and invoked from the frame loop when the tween completes.
func (m *Model) Transition(t carousel.Transition, done func()) {
	m.mu.Lock()
	d := revealDuration
	ease := anim.EaseOutCubic
	if t.Mode == carousel.Fade {
		d = fadeDuration
		ease = anim.Linear
	}

	p := &pendingTransition{t: t, done: done}
	tw := &anim.Tween{
		Duration:   d,
		Ease:       ease,
		OnUpdate:   func(v float64) { p.progress = v },
		OnComplete: func() { p.finished = true },
	}
	p.tween = tw
	m.pending = p
	tw.Start(time.Now())
	wake := m.wake
	m.mu.Unlock()

	if wake != nil {
		wake()
	}
}

// Animating reports whether a transition is being drawn.
func (m *Model) Animating() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}

// *Model implements carousel.Animator
var _ carousel.Animator = (*Model)(nil)

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.mu.Lock()
		// drop the render cache, slides re-render at the new width
		for i := range m.rendered {
			m.rendered[i] = renderedSlide{}
		}
		m.mu.Unlock()
		return nil
	}

	if _, ok := msg.(FrameMsg); ok {
		return m.stepFrame()
	}
	return nil
}

func (m *Model) stepFrame() tea.Cmd {
	m.mu.Lock()
	p := m.pending
	if p == nil {
		m.mu.Unlock()
		return nil
	}
	p.tween.Step(time.Now())

	m.opacity[p.t.To] = p.progress
	m.opacity[p.t.From] = 1 - p.progress

	if !p.finished {
		m.mu.Unlock()
		return TickCmd()
	}

	m.opacity[p.t.To] = 1
	m.opacity[p.t.From] = 0
	m.current = p.t.To
	m.pending = nil
	done := p.done
	m.mu.Unlock()

	// settle outside the lock; the controller calls back into Apply
	done()
	return nil
}

func (m *Model) View() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.slides) == 0 {
		return lipgloss.Place(
			m.size.Width, m.size.Height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Faint(true).Render("no slides"),
		)
	}

	var lines []string
	if p := m.pending; p != nil {
		lines = m.transitionLinesLocked(p)
	} else {
		lines = m.slideLinesLocked(m.current)
	}

	return lipgloss.Place(
		m.size.Width, m.size.Height,
		lipgloss.Center, lipgloss.Center,
		strings.Join(lines, "\n"),
	)
}

// transitionLinesLocked draws one frame of the in-flight transition.
func (m *Model) transitionLinesLocked(p *pendingTransition) []string {
	switch p.t.Mode {
	case carousel.Fade:
		// reduced motion: a plain switch at the halfway point
		if p.progress < 0.5 {
			return m.slideLinesLocked(p.t.From)
		}
		return m.slideLinesLocked(p.t.To)
	default:
		// staggered reveal of the incoming slide, top to bottom
		in := m.slideLinesLocked(p.t.To)
		out := make([]string, len(in))
		for i := range in {
			if anim.StaggerProgress(p.progress, i, len(in), staggerWindow) > 0 {
				out[i] = in[i]
			} else {
				out[i] = ""
			}
		}
		return out
	}
}

func (m *Model) slideLinesLocked(index int) []string {
	if index < 0 || index >= len(m.slides) {
		return nil
	}
	width := max(m.size.Width-4, 20)
	if m.rendered[index].width != width || m.rendered[index].lines == nil {
		m.rendered[index] = renderSlide(m.slides[index], width)
	}
	return m.rendered[index].lines
}

func renderSlide(s deck.Slide, width int) renderedSlide {
	body := renderMarkdown(s.Body, width)
	lines := strings.Split(strings.Trim(body, "\n"), "\n")

	if s.Attribution != "" {
		attr := splitter.Split("— "+s.Attribution, width)
		style := lipgloss.NewStyle().Faint(true).Italic(true)
		lines = append(lines, "")
		for _, l := range attr.Lines() {
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, style.Render(l)))
		}
	}
	if s.Image != "" {
		lines = append(lines, "", lipgloss.NewStyle().Faint(true).Render(
			fmt.Sprintf("[%s]", filepath.Base(s.Image)),
		))
	}
	return renderedSlide{lines: lines, width: width}
}

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
