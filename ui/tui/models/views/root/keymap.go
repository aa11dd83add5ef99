// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/showreelio/showreel/i18n"
)

type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Pause key.Binding
	Copy  key.Binding
	Help  key.Binding
	Exit  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Pause, km.Help, km.Exit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Next, km.Prev, km.Pause},
		{km.Copy, km.Help, km.Exit},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// newKeyMap is built per model so the help strings pick up the active
// language.
func newKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→", i18n.T("keys.next")),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←", i18n.T("keys.prev")),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", i18n.T("keys.pause")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("keys.copy")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("keys.help")),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", i18n.T("keys.quit")),
		),
	}
}
