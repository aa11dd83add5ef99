package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/showreelio/showreel/core/deck"
	"github.com/showreelio/showreel/core/store"
	"github.com/showreelio/showreel/logging"
	"github.com/showreelio/showreel/ui/tui/models/views/root"
)

// Options configures one playback session.
type Options struct {
	ReducedMotion bool
	Autoplay      bool
	// Interval overrides the deck's autoplay interval when positive.
	Interval time.Duration
	// Resume restores the last slide position recorded for this deck.
	Resume bool
	// Watch reloads the deck live when its file changes on disk.
	Watch bool
}

// Run plays a deck until the user quits, then records the session in the
// play history.
func Run(d *deck.Deck, st store.Store, opts Options) error {
	resume := -1
	if opts.Resume && st != nil {
		if idx, ok, err := st.ResumeIndex(d.Fingerprint()); err == nil && ok && idx < len(d.Slides) {
			resume = idx
		}
	}

	model := root.New(d, st, root.Opts{
		ReducedMotion: opts.ReducedMotion,
		Autoplay:      opts.Autoplay,
		Interval:      opts.Interval,
		ResumeIndex:   resume,
	})

	// the TUI owns the terminal; stray log lines would corrupt the alt screen
	logging.Silence()
	defer logging.SetOutput(os.Stderr)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	if opts.Watch && d.Path != "" {
		w, err := deck.Watch(d.Path, func(nd *deck.Deck, err error) {
			if err != nil {
				logging.Warnf("deck reload failed: %v", err)
				return
			}
			p.Send(root.DeckReloadedMsg{Deck: nd})
		})
		if err != nil {
			logging.Warnf("deck watching unavailable: %v", err)
		} else {
			defer func() { _ = w.Close() }()
		}
	}

	final, err := p.Run()
	if err != nil {
		return err
	}

	if st != nil {
		if m, ok := final.(*root.Model); ok {
			_ = st.RecordPlay(store.Play{
				Fingerprint: d.Fingerprint(),
				DeckTitle:   d.Title,
				SlideCount:  len(d.Slides),
				Advances:    m.Advances(),
				StartedAt:   m.StartedAt(),
				EndedAt:     time.Now(),
			})
		}
	}
	return nil
}
