// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Showreel using Cobra.
// It wires configuration and default services and provides commands that
// delegate to the core packages. CLI code should remain thin; carousel and
// deck logic live under core.
package cli
