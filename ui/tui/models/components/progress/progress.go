// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package progress renders the autoplay countdown as a thin bar. The bar
// drains as the next automatic advance approaches and disappears entirely
// when no advance is pending.
package progress

import (
	"github.com/charmbracelet/bubbles/help"
	bprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/showreelio/showreel/ui/tui/util"
)

// AutoplayMsg reports the state of the autoplay countdown. Percent is the
// elapsed fraction of the interval, in [0, 1].
type AutoplayMsg struct {
	Percent float64
	Pending bool
}

type Model struct {
	bar     bprogress.Model
	percent float64
	pending bool
	size    util.Size
}

func New() *Model {
	bar := bprogress.New(
		bprogress.WithDefaultGradient(),
		bprogress.WithoutPercentage(),
	)
	return &Model{bar: bar}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.bar.Width = m.size.Width
		return nil
	}
	if msg, ok := msg.(AutoplayMsg); ok {
		m.percent = util.Clamp(0.0, msg.Percent, 1.0)
		m.pending = msg.Pending
	}
	return nil
}

func (m Model) View() string {
	if !m.pending {
		return ""
	}
	return m.bar.ViewAs(m.percent)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
