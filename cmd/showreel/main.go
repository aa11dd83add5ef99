// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Showreel.
//
// Usage:
//
//	go run ./cmd/showreel [flags]
//	./showreel [flags]
//
// This launches the Showreel CLI. See --help for options.
package main

import (
	"os"

	"github.com/showreelio/showreel/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
