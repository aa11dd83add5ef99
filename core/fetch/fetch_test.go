// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

package fetch

import "testing"

func TestParseSpec(t *testing.T) {
	cases := []struct {
		in   string
		want Spec
		ok   bool
	}{
		{"kiosk@decks.example.com:/srv/decks", Spec{"kiosk", "decks.example.com", "/srv/decks"}, true},
		{"kiosk@10.0.0.5:decks/lobby.yaml", Spec{"kiosk", "10.0.0.5", "decks/lobby.yaml"}, true},
		{"decks.example.com:/srv/decks", Spec{}, false},
		{"kiosk@decks.example.com", Spec{}, false},
		{"kiosk@decks.example.com:", Spec{}, false},
		{"@host:/path", Spec{}, false},
		{"", Spec{}, false},
	}
	for _, tc := range cases {
		got, err := ParseSpec(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseSpec(%q) failed: %v", tc.in, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		} else if err == nil {
			t.Errorf("ParseSpec(%q) succeeded, want error", tc.in)
		}
	}
}

func TestOptionsTimeoutDefault(t *testing.T) {
	var o Options
	if o.timeout() <= 0 {
		t.Fatalf("default timeout must be positive, got %v", o.timeout())
	}
}
