// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"runtime/debug"
	"testing"
)

func TestResolveBuildVersionPrefersBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc1234"},
			{Key: "vcs.time", Value: "2026-03-01T09:00:00Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("version = %q, want v1.2.3", v)
	}
	if c != "abc1234" {
		t.Fatalf("commit = %q, want abc1234", c)
	}
	if d != "2026-03-01T09:00:00Z" {
		t.Fatalf("date = %q", d)
	}
}

func TestResolveBuildVersionDevelFallsBack(t *testing.T) {
	info := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	v, _, _ := resolveBuildVersion(info)
	if v == "(devel)" {
		t.Fatalf("(devel) should not leak through, got %q", v)
	}
}

func TestNewRootCmdHasExpectedSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	want := []string{"play", "validate", "decks", "fetch", "history", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestGetConfigPathFromCliUnsetFlag(t *testing.T) {
	cmd := NewRootCmd()
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != nil {
		t.Fatalf("expected nil path when --config not set, got %q", *path)
	}
}
