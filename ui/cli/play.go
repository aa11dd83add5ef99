// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"os"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/showreelio/showreel/core/deck"
	"github.com/showreelio/showreel/i18n"
	"github.com/showreelio/showreel/ui/tui"
)

func addPlayFlags(cmd *cobra.Command) {
	// NewRootCmd may be called multiple times in tests; pflag panics on
	// duplicate flag definitions, so check first.
	if cmd.Flags().Lookup("reduced-motion") == nil {
		cmd.Flags().Bool("reduced-motion", false, "Use the reduced-motion fade transition")
	}
	if cmd.Flags().Lookup("no-autoplay") == nil {
		cmd.Flags().Bool("no-autoplay", false, "Disable autoplay even if the deck enables it")
	}
	if cmd.Flags().Lookup("interval") == nil {
		cmd.Flags().Duration("interval", 0, "Override the deck's autoplay interval (e.g. 5s)")
	}
	if cmd.Flags().Lookup("no-resume") == nil {
		cmd.Flags().Bool("no-resume", false, "Start at the deck's own active slide instead of the stored position")
	}
	if cmd.Flags().Lookup("no-watch") == nil {
		cmd.Flags().Bool("no-watch", false, "Do not reload the deck when its file changes")
	}
}

// playCmd represents the 'play' command. It loads a deck file and runs the
// interactive player until the user quits.
var playCmd = &cobra.Command{
	Use:     "play <deck-file>",
	Short:   "Play a deck in the terminal",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		runPlay(cmd, args[0])
	},
}

func runPlay(cmd *cobra.Command, path string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("%s", i18n.T("error.not_a_tty"))
	}

	d, err := deck.Load(path)
	if err != nil {
		log.Fatalf("%s", i18n.T("error.load_deck", err))
	}
	if err := d.Validate(); err != nil {
		log.Fatalf("%s", i18n.T("validate.failed", path, err))
	}

	st, err := openStore()
	if err != nil {
		log.Fatalf("%s", i18n.T("error.open_store", err))
	}
	defer func() { _ = st.Close() }()

	reduced, _ := cmd.Flags().GetBool("reduced-motion")
	noAutoplay, _ := cmd.Flags().GetBool("no-autoplay")
	interval, _ := cmd.Flags().GetDuration("interval")
	noResume, _ := cmd.Flags().GetBool("no-resume")
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	opts := tui.Options{
		ReducedMotion: reduced || appConfig.Player.ReducedMotion,
		Autoplay:      d.Autoplay && !noAutoplay,
		Interval:      interval,
		Resume:        appConfig.Player.Resume && !noResume,
		Watch:         !noWatch,
	}

	if interval <= 0 {
		opts.Interval = 0 // the player falls back to the deck's interval
	}

	if err := tui.Run(d, st, opts); err != nil {
		log.Fatalf("%v", err)
	}
}
