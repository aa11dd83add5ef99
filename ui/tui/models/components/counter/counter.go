// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package counter renders the "Slide n of N" position indicator.
package counter

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/showreelio/showreel/i18n"
	"github.com/showreelio/showreel/ui/tui/util"
)

// PositionMsg announces a settled slide position.
type PositionMsg struct {
	Active int
	Total  int
}

type Model struct {
	active int
	total  int
	size   util.Size
}

func New(total int) *Model {
	return &Model{total: total}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(PositionMsg); ok {
		m.active = msg.Active
		m.total = msg.Total
	}
	return nil
}

func (m Model) View() string {
	if m.total == 0 {
		return ""
	}
	return lipgloss.PlaceHorizontal(
		m.size.Width,
		lipgloss.Center,
		lipgloss.NewStyle().Faint(true).Render(
			i18n.T("counter.slide", m.active+1, m.total),
		),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
