// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

package deck

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleDeck = `
title: Customer voices
autoplay: true
interval_ms: 5000
slides:
  - body: "**Showreel** runs our lobby display."
    attribution: Dana K.
    image: img/dana.png
  - body: Setup took five minutes.
    active: true
  - body: The keyboard controls just work.
`

func TestParseDeck(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Title != "Customer voices" {
		t.Fatalf("Title = %q", d.Title)
	}
	if !d.Autoplay {
		t.Fatalf("Autoplay = false, want true")
	}
	if len(d.Slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(d.Slides))
	}
	if d.Slides[0].Attribution != "Dana K." || d.Slides[0].Image != "img/dana.png" {
		t.Fatalf("slide 0 attributes wrong: %+v", d.Slides[0])
	}
	if got := d.Interval(); got != 5*time.Second {
		t.Fatalf("Interval() = %v, want 5s", got)
	}
	if got := d.ActiveIndex(); got != 1 {
		t.Fatalf("ActiveIndex() = %d, want 1", got)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestIntervalFallsBackToDefault(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want time.Duration
	}{
		{"missing", nil, 4 * time.Second},
		{"garbage string", "soon", 4 * time.Second},
		{"negative", -100, 4 * time.Second},
		{"zero", 0, 4 * time.Second},
		{"numeric string", "2500", 2500 * time.Millisecond},
		{"duration string", "6s", 6 * time.Second},
		{"int", 3000, 3 * time.Second},
		{"float", 1500.0, 1500 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &Deck{IntervalMS: tc.raw}
			if got := d.Interval(); got != tc.want {
				t.Fatalf("Interval() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestActiveIndexDefaultsToZero(t *testing.T) {
	d := &Deck{Slides: []Slide{{Body: "a"}, {Body: "b"}}}
	if got := d.ActiveIndex(); got != 0 {
		t.Fatalf("ActiveIndex() = %d, want 0", got)
	}
}

func TestValidateRejectsEmptyBody(t *testing.T) {
	d := &Deck{Slides: []Slide{{Body: "ok"}, {Body: "   "}}}
	if err := d.Validate(); err == nil {
		t.Fatalf("expected error for blank slide body")
	}
}

func TestValidateRejectsMultipleActiveMarkers(t *testing.T) {
	d := &Deck{Slides: []Slide{
		{Body: "a", Active: true},
		{Body: "b", Active: true},
	}}
	if err := d.Validate(); err == nil {
		t.Fatalf("expected error for two active markers")
	}
}

func TestValidateAllowsEmptyDeck(t *testing.T) {
	if err := (&Deck{}).Validate(); err != nil {
		t.Fatalf("empty deck should validate, got %v", err)
	}
}

func TestFingerprintTracksContentNotPath(t *testing.T) {
	a, err := Parse([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, _ := Parse([]byte(sampleDeck))
	b.Path = "/elsewhere/voices.yaml"
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("fingerprint changed with path")
	}

	b.Slides[0].Body = "edited"
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("fingerprint did not change with content")
	}
}

func TestLoadAndList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voices.yaml")
	if err := os.WriteFile(path, []byte(sampleDeck), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.Path != path {
		t.Fatalf("Path = %q, want %q", d.Path, path)
	}

	decks, err := List(dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(decks) != 1 || decks[0] != path {
		t.Fatalf("List = %v, want just the deck file", decks)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing deck")
	}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(path, []byte(sampleDeck), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}

	reloaded := make(chan *Deck, 1)
	w, err := Watch(path, func(d *Deck, err error) {
		if err == nil {
			select {
			case reloaded <- d:
			default:
			}
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer func() { _ = w.Close() }()

	updated := "title: Updated\nslides:\n  - body: only one\n"
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite deck: %v", err)
	}

	select {
	case d := <-reloaded:
		if d.Title != "Updated" {
			t.Fatalf("reloaded title = %q, want Updated", d.Title)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not reload within 5s")
	}
}
