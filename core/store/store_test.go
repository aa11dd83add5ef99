// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := New("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestResumeIndexRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if _, ok, err := s.ResumeIndex("deadbeef"); err != nil || ok {
		t.Fatalf("ResumeIndex on empty store = ok=%v err=%v, want ok=false", ok, err)
	}

	if err := s.SetResumeIndex("deadbeef", 2); err != nil {
		t.Fatalf("SetResumeIndex failed: %v", err)
	}
	idx, ok, err := s.ResumeIndex("deadbeef")
	if err != nil || !ok || idx != 2 {
		t.Fatalf("ResumeIndex = %d, %v, %v; want 2, true, nil", idx, ok, err)
	}

	// Overwrite keeps one row per fingerprint.
	if err := s.SetResumeIndex("deadbeef", 4); err != nil {
		t.Fatalf("SetResumeIndex overwrite failed: %v", err)
	}
	idx, ok, _ = s.ResumeIndex("deadbeef")
	if !ok || idx != 4 {
		t.Fatalf("ResumeIndex after overwrite = %d, %v; want 4, true", idx, ok)
	}
}

func TestResumeIndexIsPerFingerprint(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetResumeIndex("aaaa", 1); err != nil {
		t.Fatalf("SetResumeIndex: %v", err)
	}
	if err := s.SetResumeIndex("bbbb", 3); err != nil {
		t.Fatalf("SetResumeIndex: %v", err)
	}
	if idx, _, _ := s.ResumeIndex("aaaa"); idx != 1 {
		t.Fatalf("fingerprint aaaa = %d, want 1", idx)
	}
	if idx, _, _ := s.ResumeIndex("bbbb"); idx != 3 {
		t.Fatalf("fingerprint bbbb = %d, want 3", idx)
	}
}

func TestRecordAndListPlays(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		err := s.RecordPlay(Play{
			Fingerprint: "cafe",
			DeckTitle:   "Voices",
			SlideCount:  5,
			Advances:    i,
			StartedAt:   base.Add(time.Duration(i) * time.Hour),
			EndedAt:     base.Add(time.Duration(i)*time.Hour + 10*time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordPlay %d failed: %v", i, err)
		}
	}

	plays, err := s.Plays(2)
	if err != nil {
		t.Fatalf("Plays failed: %v", err)
	}
	if len(plays) != 2 {
		t.Fatalf("got %d plays, want 2 (limited)", len(plays))
	}
	// Newest first.
	if plays[0].Advances != 2 || plays[1].Advances != 1 {
		t.Fatalf("plays not ordered newest first: %+v", plays)
	}
	if plays[0].DeckTitle != "Voices" || plays[0].SlideCount != 5 {
		t.Fatalf("play fields wrong: %+v", plays[0])
	}
}

func TestExportPlaysRoundTrips(t *testing.T) {
	s := newTestStore(t)
	err := s.RecordPlay(Play{
		Fingerprint: "cafe",
		DeckTitle:   "Voices",
		SlideCount:  3,
		Advances:    7,
		StartedAt:   time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		EndedAt:     time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RecordPlay failed: %v", err)
	}

	var buf bytes.Buffer
	if err := s.ExportPlays(&buf); err != nil {
		t.Fatalf("ExportPlays failed: %v", err)
	}

	zr, err := zstd.NewReader(&buf)
	if err != nil {
		t.Fatalf("export is not valid zstd: %v", err)
	}
	defer zr.Close()

	var plays []Play
	if err := json.NewDecoder(zr).Decode(&plays); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(plays) != 1 || plays[0].Advances != 7 {
		t.Fatalf("exported plays = %+v", plays)
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	if _, err := New("oracle", "dsn"); err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
}
