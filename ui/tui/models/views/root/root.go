package root

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/showreelio/showreel/core/carousel"
	"github.com/showreelio/showreel/core/deck"
	"github.com/showreelio/showreel/core/store"
	"github.com/showreelio/showreel/ui/tui/models/components/counter"
	"github.com/showreelio/showreel/ui/tui/models/components/header"
	"github.com/showreelio/showreel/ui/tui/models/components/progress"
	"github.com/showreelio/showreel/ui/tui/models/components/stack"
	"github.com/showreelio/showreel/ui/tui/models/components/stage"
	"github.com/showreelio/showreel/ui/tui/models/views/footer"
	"github.com/showreelio/showreel/ui/tui/util"
)

const pollInterval = 150 * time.Millisecond

// Opts configures a player session.
type Opts struct {
	ReducedMotion bool
	Autoplay      bool
	// Interval overrides the deck's autoplay interval when positive.
	Interval time.Duration
	// ResumeIndex pre-selects a slide; negative means use the deck's own
	// active marker.
	ResumeIndex int
}

// DeckReloadedMsg carries a freshly re-parsed deck after a file change.
type DeckReloadedMsg struct {
	Deck *deck.Deck
}

// wakeMsg pumps the tea loop after a controller event from a timer
// goroutine (autoplay advance, settle).
type wakeMsg struct{}

// pollMsg drives the autoplay progress bar.
type pollMsg time.Time

type Model struct {
	stack     *stack.Model
	stage     *stage.Model
	footerPtr *util.Model

	deck       *deck.Deck
	store      store.Store
	opts       Opts
	keys       KeyMap
	controller *carousel.Controller
	interval   time.Duration

	events     chan struct{}
	paused     bool
	focused    bool
	lastActive int
	advances   int
	startedAt  time.Time
}

func New(d *deck.Deck, st store.Store, opts Opts) *Model {
	m := &Model{
		deck:      d,
		store:     st,
		opts:      opts,
		keys:      newKeyMap(),
		events:    make(chan struct{}, 8),
		focused:   true,
		startedAt: time.Now(),
	}
	m.interval = opts.Interval
	if m.interval <= 0 {
		m.interval = d.Interval()
	}

	m.stage = stage.New(d.Slides, opts.ReducedMotion, m.notify)
	m.controller = m.newController(d, opts.ResumeIndex)
	m.lastActive = m.controller.Active()

	_header := header.New(d.Title)
	_counter := counter.New(len(d.Slides))
	_progress := progress.New()
	_footer := footer.New(&m.keys)
	_footer_ptr := util.ModelPointer(_footer)

	m.footerPtr = _footer_ptr
	m.stack = stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithFocus(stack.FocusAll()),
		stack.WithItem(util.ModelPointer(_header), header.SizeConfig),
		stack.WithItem(util.ModelPointer(m.stage), stack.VariableSize(1)),
		stack.WithItem(util.ModelPointer(_progress), stack.StaticSize(1)),
		stack.WithItem(util.ModelPointer(_counter), stack.StaticSize(1)),
		stack.WithItem(_footer_ptr, footer.SizeConfig),
	)
	return m
}

// notify is handed to the stage and the controller; it is safe to call from
// any goroutine.
func (m *Model) notify() {
	select {
	case m.events <- struct{}{}:
	default:
	}
}

func (m *Model) newController(d *deck.Deck, resume int) *carousel.Controller {
	slides := make([]carousel.Slide, len(d.Slides))
	for i, s := range d.Slides {
		slides[i] = carousel.Slide{Content: s.Body, Image: s.Image, Active: s.Active}
	}
	if resume >= 0 && resume < len(slides) {
		for i := range slides {
			slides[i].Active = i == resume
		}
	}

	c := carousel.New(slides, carousel.Options{
		Autoplay:         m.opts.Autoplay,
		AutoplayInterval: m.interval,
		ReducedMotion:    m.opts.ReducedMotion,
	}, m.stage, nil)
	c.OnChange(func(active, total int) { m.notify() })
	return c
}

// Advances reports the number of settled slide changes this session, for the
// play history.
func (m *Model) Advances() int { return m.advances }

// StartedAt reports when the session began.
func (m *Model) StartedAt() time.Time { return m.startedAt }

func (m *Model) waitEvent() tea.Cmd {
	return func() tea.Msg {
		<-m.events
		return wakeMsg{}
	}
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	m.controller.EnterViewport()

	cmds := []tea.Cmd{initCmd, focusCmd, keyMapCmd, m.waitEvent(), m.positionCmd(), m.statusCmd()}
	if m.opts.Autoplay {
		cmds = append(cmds, pollCmd())
	}
	return tea.Sequence(cmds...)
}

// positionCmd pushes the settled position into counter and resume storage.
func (m *Model) positionCmd() tea.Cmd {
	active := m.controller.Active()
	cmds := []tea.Cmd{
		m.stack.Update(counter.PositionMsg{Active: active, Total: m.controller.Len()}),
	}
	if m.store != nil && m.deck != nil {
		st, fp := m.store, m.deck.Fingerprint()
		cmds = append(cmds, func() tea.Msg {
			_ = st.SetResumeIndex(fp, active)
			return nil
		})
	}
	return tea.Batch(cmds...)
}

func (m *Model) statusCmd() tea.Cmd {
	return m.stack.Update(footer.StatusMsg{
		Autoplay: m.opts.Autoplay,
		Paused:   m.paused || !m.focused,
		Reduced:  m.opts.ReducedMotion,
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.FocusMsg:
		m.focused = true
		if !m.paused {
			m.controller.EnterViewport()
		}
		return m, m.statusCmd()

	case tea.BlurMsg:
		m.focused = false
		m.controller.LeaveViewport()
		return m, m.statusCmd()

	case wakeMsg:
		cmds := []tea.Cmd{m.waitEvent()}
		if active := m.controller.Active(); active != m.lastActive {
			m.lastActive = active
			m.advances++
			cmds = append(cmds, m.positionCmd())
		}
		if m.stage.Animating() {
			cmds = append(cmds, stage.TickCmd())
		}
		return m, tea.Batch(cmds...)

	case pollMsg:
		remaining, pending := m.controller.AutoplayRemaining()
		percent := 0.0
		if pending && m.interval > 0 {
			percent = 1 - float64(remaining)/float64(m.interval)
		}
		return m, tea.Batch(
			m.stack.Update(progress.AutoplayMsg{Percent: percent, Pending: pending}),
			pollCmd(),
		)

	case DeckReloadedMsg:
		return m.reloadDeck(msg.Deck)
	}

	return m, m.stack.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.controller.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		util.BorrowModelFunc(m.footerPtr, func(_footer *footer.Model) {
			_footer.ToggleExpanded()
		})
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.controller.HandleKey(carousel.KeyRight, false) && m.stage.Animating() {
			return m, stage.TickCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if m.controller.HandleKey(carousel.KeyLeft, false) && m.stage.Animating() {
			return m, stage.TickCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if m.paused {
			m.controller.LeaveViewport()
		} else if m.focused {
			m.controller.EnterViewport()
		}
		return m, m.statusCmd()

	case key.Matches(msg, m.keys.Copy):
		if m.deck != nil && m.controller.Len() > 0 {
			body := m.deck.Slides[m.controller.Active()].Body
			return m, func() tea.Msg {
				_ = clipboard.WriteAll(body)
				return nil
			}
		}
		return m, nil
	}

	return m, m.stack.Update(msg)
}

// reloadDeck swaps in a re-parsed deck, keeping the position when it still
// exists.
func (m *Model) reloadDeck(d *deck.Deck) (tea.Model, tea.Cmd) {
	active := m.controller.Active()
	m.controller.Close()

	m.deck = d
	if m.opts.Interval <= 0 {
		m.interval = d.Interval()
	}
	m.stage.SetSlides(d.Slides)

	resume := active
	if resume >= len(d.Slides) {
		resume = max(len(d.Slides)-1, 0)
	}
	m.controller = m.newController(d, resume)
	m.lastActive = m.controller.Active()
	if m.focused && !m.paused {
		m.controller.EnterViewport()
	}

	return m, tea.Batch(m.positionCmd(), m.statusCmd())
}

func (m *Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
