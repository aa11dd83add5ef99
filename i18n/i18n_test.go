// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	wantKeys := []string{"en", "de"}
	for _, k := range wantKeys {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %v", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("footer.paused"); got != "paused" {
		t.Fatalf("expected 'paused', got %q", got)
	}

	// fmt-style formatting via extra args
	got := T("counter.slide", 2, 5)
	if got != "Slide 2 of 5" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	// switch language to German
	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("footer.paused"); got != "pausiert" {
		t.Fatalf("expected German 'pausiert', got %q", got)
	}
}

func TestTUnknownIDFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("nope.missing"); got != "nope.missing" {
		t.Fatalf("expected ID fallback, got %q", got)
	}
}
