// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// polyfill: won't be needed as of go 1.26
func new[T any](v T) *T { return &v }

func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	return new(Model(v))
}

func BorrowModel[T any, PT interface {
	*T
	Model
}](m *Model) (PT, func()) {
	t := (*m).(PT)
	return t, func() { *m = Model(t) }
}

func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t := (*m).(PT)
	fn(t)
	*m = Model(t)
}
