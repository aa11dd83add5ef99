// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package carousel

import (
	"sync"
	"time"
)

// Controller owns the active-slide pointer, the in-flight transition flag
// and the autoplay timer for one carousel instance. All mutation of that
// state happens inside GoTo's synchronous entry and its completion path;
// every other operation funnels into those two.
type Controller struct {
	mu       sync.Mutex
	slides   []Slide
	animator Animator
	clock    Clock
	opts     Options

	active    int
	animating bool
	inView    bool
	closed    bool

	// transitionSeq identifies the current transition so that a late
	// completion callback (or the guard firing after a normal completion)
	// settles at most once.
	transitionSeq uint64
	guardTimer    Timer

	// Autoplay timer state. At most one of autoplayTimer / pausedRemaining
	// is meaningful at a time: a live timer while counting down, a stashed
	// remaining duration while paused out of view.
	autoplayTimer    Timer
	autoplayDeadline time.Time
	pausedRemaining  time.Duration

	onChange []func(active, total int)
}

// New builds a controller for the given slides. The first slide pre-marked
// Active wins; with no marker, index 0 is active. Every slide gets its
// initial visual state applied immediately (no animation). Autoplay, when
// enabled and meaningful (two or more slides), starts counting as soon as
// the carousel enters the viewport.
//
// A nil animator or an empty slide list yields an inert controller: every
// operation is a no-op, no timer is ever started.
func New(slides []Slide, opts Options, animator Animator, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock()
	}
	c := &Controller{
		slides:   slides,
		animator: animator,
		clock:    clock,
		opts:     opts,
	}
	if c.inert() {
		return c
	}

	for i := range c.slides {
		if c.slides[i].Active {
			c.active = i
			break
		}
	}
	for i := range c.slides {
		c.slides[i].Active = i == c.active
		if c.slides[i].Active {
			c.animator.Apply(i, Shown)
		} else {
			c.animator.Apply(i, Hidden)
		}
	}

	if c.opts.Autoplay && len(c.slides) > 1 {
		// Carousel starts out of view; stash a full interval so the first
		// EnterViewport begins a fresh countdown.
		c.pausedRemaining = c.opts.interval()
	}
	return c
}

func (c *Controller) inert() bool {
	return len(c.slides) == 0 || c.animator == nil
}

// Active returns the index of the settled active slide.
func (c *Controller) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Animating reports whether a transition is in flight.
func (c *Controller) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animating
}

// InView reports the last viewport signal received.
func (c *Controller) InView() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inView
}

// Len returns the slide count.
func (c *Controller) Len() int { return len(c.slides) }

// Slide returns a copy of the slide record at index i.
func (c *Controller) Slide(i int) Slide {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slides[i]
}

// OnChange registers fn to run after every settled transition, and once
// immediately with the current position. Callbacks run outside the
// controller lock and may call back into the controller.
func (c *Controller) OnChange(fn func(active, total int)) {
	if fn == nil || c.inert() {
		return
	}
	c.mu.Lock()
	c.onChange = append(c.onChange, fn)
	active, total := c.active, len(c.slides)
	c.mu.Unlock()
	fn(active, total)
}

// GoTo requests a transition to target. It is a silent no-op while a
// transition is in flight or when target is already active. Target must be
// a valid index; Next and Prev guarantee that via modular arithmetic, direct
// callers carry the same obligation.
func (c *Controller) GoTo(target int) {
	c.mu.Lock()
	dir := Forward
	if target < c.active {
		dir = Backward
	}
	c.transitionLocked(target, dir)
	c.mu.Unlock()
}

// Next advances to the following slide, wrapping at the end. Manual
// navigation resets a pending autoplay countdown to the full interval.
func (c *Controller) Next() { c.step(1) }

// Prev moves to the preceding slide, wrapping at the start, with the same
// autoplay reset as Next.
func (c *Controller) Prev() { c.step(-1) }

func (c *Controller) step(delta int) {
	c.mu.Lock()
	if c.inert() || c.closed {
		c.mu.Unlock()
		return
	}
	n := len(c.slides)
	target := ((c.active+delta)%n + n) % n
	dir := Forward
	if delta < 0 {
		dir = Backward
	}

	// Reset-on-manual-interaction: cancel any pending countdown and grant
	// a fresh full interval, whether or not the transition below is
	// accepted.
	if c.opts.Autoplay && n > 1 {
		c.resetAutoplayLocked(c.opts.interval())
	}

	c.transitionLocked(target, dir)
	c.mu.Unlock()
}

// transitionLocked is the single entry point for starting a transition.
// Callers hold c.mu.
func (c *Controller) transitionLocked(target int, dir Direction) {
	if c.inert() || c.closed || c.animating || target == c.active {
		return
	}

	from := c.active
	c.animating = true
	seq := c.transitionSeq

	if g := c.opts.guard(); g > 0 {
		c.guardTimer = c.clock.AfterFunc(g, func() {
			c.settle(seq, from, target, true)
		})
	}

	t := Transition{From: from, To: target, Direction: dir, Mode: c.opts.mode()}
	done := func() { c.settle(seq, from, target, false) }

	// The animator call is fire-and-forget; it must not be made under the
	// lock since done may be invoked synchronously.
	c.mu.Unlock()
	c.animator.Transition(t, done)
	c.mu.Lock()
}

// settle completes the transition identified by seq: marks the outgoing
// slide inactive and the target active, clears the in-flight flag and
// reschedules autoplay. Exactly one of the completion callback and the
// guard timer wins; the loser finds a bumped sequence number and returns.
func (c *Controller) settle(seq uint64, from, target int, forced bool) {
	c.mu.Lock()
	if c.closed || !c.animating || seq != c.transitionSeq {
		c.mu.Unlock()
		return
	}
	c.transitionSeq++
	if c.guardTimer != nil {
		c.guardTimer.Stop()
		c.guardTimer = nil
	}

	c.slides[from].Active = false
	c.slides[target].Active = true
	c.active = target
	c.animating = false

	if forced {
		// The animator never reported back; pin both slides to their
		// settled states so the view cannot stay half-transitioned.
		c.animator.Apply(from, Hidden)
		c.animator.Apply(target, Shown)
	}

	if c.opts.Autoplay && len(c.slides) > 1 {
		if c.inView {
			c.scheduleAutoplayLocked(c.opts.interval())
		} else {
			c.resetAutoplayLocked(c.opts.interval())
		}
	}

	observers := make([]func(int, int), len(c.onChange))
	copy(observers, c.onChange)
	active, total := c.active, len(c.slides)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(active, total)
	}
}

// EnterViewport marks the carousel visible and resumes a paused autoplay
// countdown. Resuming continues from the frozen remainder; it does not
// restart the full interval.
func (c *Controller) EnterViewport() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert() || c.closed {
		return
	}
	c.inView = true
	if !c.opts.Autoplay || len(c.slides) < 2 || c.autoplayTimer != nil {
		return
	}
	d := c.pausedRemaining
	if d <= 0 {
		d = c.opts.interval()
	}
	c.pausedRemaining = 0
	c.scheduleAutoplayLocked(d)
}

// LeaveViewport marks the carousel hidden and freezes the autoplay
// countdown, preserving the remaining duration for the next EnterViewport.
func (c *Controller) LeaveViewport() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inert() || c.closed {
		return
	}
	c.inView = false
	if c.autoplayTimer == nil {
		return
	}
	remaining := c.autoplayDeadline.Sub(c.clock.Now())
	if remaining <= 0 {
		// The timer fired already (or is about to); its handler will see
		// inView=false and stash a full interval itself.
		return
	}
	c.autoplayTimer.Stop()
	c.autoplayTimer = nil
	c.pausedRemaining = remaining
}

// AutoplayRemaining reports the time until the next automatic advance and
// whether such an advance is pending (live or paused).
func (c *Controller) AutoplayRemaining() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.closed || !c.opts.Autoplay || len(c.slides) < 2:
		return 0, false
	case c.autoplayTimer != nil:
		return max(c.autoplayDeadline.Sub(c.clock.Now()), 0), true
	case c.pausedRemaining > 0:
		return c.pausedRemaining, true
	default:
		return 0, false
	}
}

// Close cancels timers and detaches observers. It is idempotent; a closed
// controller ignores every subsequent call, including late animator
// completions.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopAutoplayLocked()
	if c.guardTimer != nil {
		c.guardTimer.Stop()
		c.guardTimer = nil
	}
	c.onChange = nil
}

// resetAutoplayLocked cancels any countdown and arms a fresh one of length
// d: live when in view, frozen otherwise.
func (c *Controller) resetAutoplayLocked(d time.Duration) {
	c.stopAutoplayLocked()
	if c.inView {
		c.scheduleAutoplayLocked(d)
	} else {
		c.pausedRemaining = d
	}
}

func (c *Controller) scheduleAutoplayLocked(d time.Duration) {
	c.stopAutoplayLocked()
	c.autoplayDeadline = c.clock.Now().Add(d)
	c.autoplayTimer = c.clock.AfterFunc(d, c.autoplayFire)
}

func (c *Controller) stopAutoplayLocked() {
	if c.autoplayTimer != nil {
		c.autoplayTimer.Stop()
		c.autoplayTimer = nil
	}
	c.pausedRemaining = 0
}

// autoplayFire handles an autoplay tick. A blocked tick (out of view or
// mid-transition) is rescheduled for a full interval without advancing:
// busy-retry, so a blocked tick costs one whole interval before the next
// attempt.
func (c *Controller) autoplayFire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.opts.Autoplay {
		return
	}
	c.autoplayTimer = nil

	if !c.inView {
		c.pausedRemaining = c.opts.interval()
		return
	}
	if c.animating {
		c.scheduleAutoplayLocked(c.opts.interval())
		return
	}

	target := (c.active + 1) % len(c.slides)
	c.transitionLocked(target, Forward)
	// Rescheduling happens in settle; if the transition was rejected as a
	// self-transition (single slide), no timer should be running anyway.
}
