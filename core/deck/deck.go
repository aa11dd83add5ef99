// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package deck loads and validates slide decks: YAML files describing an
// ordered list of slides (markdown body, optional attribution and image)
// plus playback options. Decks are the unit the carousel plays, the store
// remembers and the fetch command distributes.
package deck

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultIntervalMS is the autoplay interval applied when a deck omits or
// mangles its interval setting.
const DefaultIntervalMS = 4000

// Slide is one carousel panel.
type Slide struct {
	Body        string `yaml:"body"`
	Attribution string `yaml:"attribution,omitempty"`
	Image       string `yaml:"image,omitempty"`
	// Active pre-marks this slide as the one shown first. The first marked
	// slide wins; with no marker the carousel starts at index 0.
	Active bool `yaml:"active,omitempty"`
}

// Deck is a parsed deck file.
type Deck struct {
	Title    string  `yaml:"title"`
	Autoplay bool    `yaml:"autoplay"`
	Slides   []Slide `yaml:"slides"`

	// IntervalMS holds the raw autoplay interval value. It is deliberately
	// untyped: decks written by hand contain things like "4000", 4000 or
	// "4s", and a bad value must degrade to the default rather than refuse
	// the whole deck.
	IntervalMS any `yaml:"interval_ms,omitempty"`

	// Path is where the deck was loaded from; empty for Parse.
	Path string `yaml:"-"`
}

// Load reads and parses a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", filepath.Base(path), err)
	}
	d.Path = path
	return d, nil
}

// Parse decodes deck YAML.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Interval returns the autoplay interval as a duration, falling back to
// DefaultIntervalMS for missing, non-numeric or non-positive values.
func (d *Deck) Interval() time.Duration {
	ms := DefaultIntervalMS
	switch v := d.IntervalMS.(type) {
	case int:
		if v > 0 {
			ms = v
		}
	case int64:
		if v > 0 {
			ms = int(v)
		}
	case float64:
		if v > 0 {
			ms = int(v)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			ms = n
		} else if dur, err := time.ParseDuration(strings.TrimSpace(v)); err == nil && dur > 0 {
			return dur
		}
	}
	return time.Duration(ms) * time.Millisecond
}

// ActiveIndex returns the index of the first slide marked active, or 0.
func (d *Deck) ActiveIndex() int {
	for i := range d.Slides {
		if d.Slides[i].Active {
			return i
		}
	}
	return 0
}

// Validate reports structural problems that would make the deck unplayable
// or confusing. An empty deck is valid; it just plays inert.
func (d *Deck) Validate() error {
	for i, s := range d.Slides {
		if strings.TrimSpace(s.Body) == "" {
			return fmt.Errorf("slide %d has no body", i+1)
		}
	}
	marked := 0
	for _, s := range d.Slides {
		if s.Active {
			marked++
		}
	}
	if marked > 1 {
		return fmt.Errorf("%d slides marked active, want at most one", marked)
	}
	return nil
}

// Fingerprint identifies the deck contents for the resume store. It hashes
// the slide bodies in order, so editing a deck invalidates its remembered
// position while renaming the file does not.
func (d *Deck) Fingerprint() string {
	h := sha256.New()
	for _, s := range d.Slides {
		h.Write([]byte(s.Body))
		h.Write([]byte{0})
		h.Write([]byte(s.Attribution))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// List returns deck files (*.yaml, *.yml) under dir, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
