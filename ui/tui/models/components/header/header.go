// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/showreelio/showreel/ui/tui/util"
)

const logo string = "" +
	"┌─┐┬ ┬┌─┐┬ ┬┬─┐┌─┐┌─┐┬\n" +
	"└─┐├─┤│ │││││├┬┘├┤ ├┤ │\n" +
	"└─┘┴ ┴└─┘└┴┘┴└─└─┘└─┘┴─┘"

type Model struct {
	Title string
	size  util.Size
}

func New(title string) *Model {
	return &Model{Title: title}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	line := m.Title
	if line == "" {
		line = logo
	}
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render(line),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
