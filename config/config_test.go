// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	cfg "github.com/showreelio/showreel/config"
)

func TestLoadConfigUsesDefaults(t *testing.T) {
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "sqlite" {
		t.Fatalf("expected sqlite default, got %q", got.Database.Type)
	}
	if got.Language != "en" {
		t.Fatalf("expected en default, got %q", got.Language)
	}
	if !got.Player.Resume {
		t.Fatalf("expected resume default true")
	}
}

func TestLoadConfigReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := "database:\n  type: postgres\n  dsn: postgresql://user@/showreel\nlanguage: de\ndecks_dir: /srv/decks\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres, got %q", got.Database.Type)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.DecksDir != "/srv/decks" {
		t.Fatalf("expected /srv/decks, got %q", got.DecksDir)
	}
}

func TestLoadConfigFlagOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "", "UI language")
	if err := cmd.Flags().Set("language", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "en" {
		t.Fatalf("flag should override file, got %q", got.Language)
	}
}

func TestWriteConfigFileCreatesFile(t *testing.T) {
	tmp := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmp)
	defer os.Unsetenv("XDG_CONFIG_HOME")

	c := cfg.Config{}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./showreel.db"
	c.Language = "en"

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
}
