// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Showreel using the Cobra
// library. It defines the root command, subcommands (play, validate, decks,
// fetch, history), flags, and the main entry point for execution.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/showreelio/showreel/buildvars"
	"github.com/showreelio/showreel/config"
	"github.com/showreelio/showreel/core/store"
	"github.com/showreelio/showreel/i18n"
	"github.com/showreelio/showreel/logging"
)

var version = buildvars.VersionOrDefault("dev")
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optional_config_path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optional_config_path)
	// A "file not found" error is expected on first run; persist a default
	// config so subsequent runs have a file to inspect.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			log.Warnf("could not write default config file: %v", writeErr)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Fall back to defaults where the user's config file left critical
	// values empty.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.DecksDir == "" {
		appConfig.DecksDir = defaults["decks_dir"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	i18n.Init(appConfig.Language)

	if verbose {
		logging.SetVerbose(true)
		store.SetDebug(true)
	}

	return nil
}

// openStore opens the configured history database.
func openStore() (store.Store, error) {
	return store.New(appConfig.Database.Type, appConfig.Database.Dsn)
}

// Execute runs the CLI entrypoint. The cmd/showreel main package should
// call this function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showreel [deck-file]",
		Short: "Showreel plays slide decks as a carousel in your terminal.",
		Long: `Showreel turns a YAML deck of markdown slides into a terminal
carousel: autoplay with pause on blur, keyboard navigation, live deck
reload and a reduced-motion mode.

Running with a deck file as argument plays it directly.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				v, c, d := resolveBuildVersion(nil)
				compositeVersion := v
				if c != "" && c != "dev" {
					compositeVersion = compositeVersion + " (" + c + ")"
				}
				if d != "" {
					compositeVersion = compositeVersion + " built: " + d
				}
				fmt.Printf("%s\n", compositeVersion)
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				runPlay(cmd, args[0])
				return
			}
			_ = cmd.Help()
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets -v for DB logs)")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (e.g., sqlite, postgres)")
	cmd.PersistentFlags().String("database.dsn", "./showreel.db", "Database connection string (DSN)")
	cmd.PersistentFlags().String("decks_dir", "./decks", "Directory containing deck files")

	addPlayFlags(playCmd)
	addPlayFlags(cmd)

	// NewRootCmd may be called multiple times in tests; pflag panics on
	// duplicate flag definitions, so check first.
	if historyCmd.Flags().Lookup("limit") == nil {
		historyCmd.Flags().IntP("limit", "n", 20, "Number of plays to show")
	}

	if fetchCmd.Flags().Lookup("identity") == nil {
		fetchCmd.Flags().String("identity", "", "Path to an SSH private key")
	}
	if fetchCmd.Flags().Lookup("known-hosts") == nil {
		fetchCmd.Flags().String("known-hosts", "", "Path to a known_hosts file")
	}

	// Add a lightweight `version` subcommand so users and CI can run
	// `showreel version`.
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			resolvedVersion, resolvedCommit, resolvedDate := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", resolvedVersion)
			fmt.Printf("commit: %s\n", resolvedCommit)
			if resolvedDate != "" {
				fmt.Printf("built: %s\n", resolvedDate)
			}
		},
	}

	cmd.AddCommand(
		playCmd,
		validateCmd,
		decksCmd,
		fetchCmd,
		historyCmd,
		versionCmd,
	)

	return cmd
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/showreelio/showreel" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
