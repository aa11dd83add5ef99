// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/showreelio/showreel/i18n"
)

// historyCmd represents the 'history' command. It shows the most recent
// playback sessions recorded in the database.
var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "Show recent plays",
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore()
		if err != nil {
			log.Fatalf("%s", i18n.T("error.open_store", err))
		}
		defer func() { _ = st.Close() }()

		plays, err := st.Plays(limit)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if len(plays) == 0 {
			fmt.Println(i18n.T("history.empty"))
			return
		}

		fmt.Println(i18n.T("history.header"))
		for _, p := range plays {
			duration := p.EndedAt.Sub(p.StartedAt).Round(time.Second)
			title := p.DeckTitle
			if title == "" {
				title = p.Fingerprint
			}
			fmt.Printf("  %s  %-30s %2d slides, %3d advances, %s\n",
				p.StartedAt.Local().Format("2006-01-02 15:04"),
				title, p.SlideCount, p.Advances, duration)
		}
	},
}

// historyExportCmd dumps the full play history as zstd-compressed JSON.
var historyExportCmd = &cobra.Command{
	Use:     "export [output-file]",
	Short:   "Export the play history as compressed JSON",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		var outputFile string
		if len(args) == 0 {
			outputFile = fmt.Sprintf("showreel-history-%s.json.zst", time.Now().Format("2006-01-02"))
		} else {
			outputFile = args[0]
			if !strings.HasSuffix(outputFile, ".zst") {
				outputFile += ".zst"
			}
		}

		st, err := openStore()
		if err != nil {
			log.Fatalf("%s", i18n.T("error.open_store", err))
		}
		defer func() { _ = st.Close() }()

		outf, err := os.Create(outputFile)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer func() { _ = outf.Close() }()

		if err := st.ExportPlays(outf); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("%s\n", i18n.T("history.exported", outputFile))
	},
}

func init() {
	historyCmd.AddCommand(historyExportCmd)
}
