// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/showreelio/showreel/core/deck"
	"github.com/showreelio/showreel/core/fetch"
	"github.com/showreelio/showreel/i18n"
	"github.com/showreelio/showreel/util/slicest"
)

// validateCmd represents the 'validate' command. It parses one or more deck
// files and reports problems without playing them.
var validateCmd = &cobra.Command{
	Use:     "validate <deck-file>...",
	Short:   "Validate deck files without playing them",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			d, err := deck.Load(path)
			if err == nil {
				err = d.Validate()
			}
			if err != nil {
				failed = true
				fmt.Printf("%s\n", i18n.T("validate.failed", path, err))
				continue
			}
			fmt.Printf("%s\n", i18n.T("validate.ok", path, len(d.Slides)))
		}
		if failed {
			os.Exit(1)
		}
	},
}

// decksCmd represents the 'decks' command. It lists the deck files found in
// the configured decks directory.
var decksCmd = &cobra.Command{
	Use:     "decks",
	Short:   "List decks in the configured decks directory",
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		paths, err := deck.List(appConfig.DecksDir)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if len(paths) == 0 {
			fmt.Println(i18n.T("decks.none"))
			return
		}

		fmt.Println(i18n.T("decks.header"))
		lines := slicest.Map(paths, func(path string) string {
			d, err := deck.Load(path)
			if err != nil {
				return fmt.Sprintf("  %s (%v)", path, err)
			}
			title := d.Title
			if title == "" {
				title = "-"
			}
			return fmt.Sprintf("  %-40s %s (%d slides)", path, title, len(d.Slides))
		})
		for _, l := range lines {
			fmt.Println(l)
		}
	},
}

// fetchCmd represents the 'fetch' command. It pulls deck files from a remote
// SFTP share into the local decks directory.
var fetchCmd = &cobra.Command{
	Use:     "fetch [user@host:path]",
	Short:   "Fetch decks from a remote share over SFTP",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		specStr := appConfig.Remote.Spec
		if len(args) > 0 {
			specStr = args[0]
		}
		if specStr == "" {
			log.Fatalf("%s", i18n.T("fetch.no_remote"))
		}

		spec, err := fetch.ParseSpec(specStr)
		if err != nil {
			log.Fatalf("%v", err)
		}

		identity, _ := cmd.Flags().GetString("identity")
		knownHosts, _ := cmd.Flags().GetString("known-hosts")
		if identity == "" {
			identity = appConfig.Remote.IdentityFile
		}
		if knownHosts == "" {
			knownHosts = appConfig.Remote.KnownHosts
		}

		f, err := fetch.Connect(spec, fetch.Options{
			IdentityFile:   identity,
			KnownHostsFile: knownHosts,
		})
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()

		written, err := f.Pull(spec.Path, appConfig.DecksDir)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("%s\n", i18n.T("fetch.done", len(written), appConfig.DecksDir))
	},
}
