// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/showreelio/showreel/i18n"
	"github.com/showreelio/showreel/ui/tui/models/components/keyhelp"
	"github.com/showreelio/showreel/ui/tui/util"
)

// StatusMsg updates the playback state shown on the right of the footer.
type StatusMsg struct {
	Autoplay bool
	Paused   bool
	Reduced  bool
}

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     StatusMsg
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// catch AnnounceKeyMapMsg and inject baseKeyMap
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}
	if msg, ok := msg.(StatusMsg); ok {
		m.status = msg
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) statusView() string {
	var parts []string
	switch {
	case !m.status.Autoplay:
		parts = append(parts, i18n.T("footer.manual"))
	case m.status.Paused:
		parts = append(parts, i18n.T("footer.paused"))
	default:
		parts = append(parts, i18n.T("footer.playing"))
	}
	if m.status.Reduced {
		parts = append(parts, i18n.T("footer.reduced_motion"))
	}
	return lipgloss.NewStyle().Faint(true).Render(strings.Join(parts, " · "))
}

func (m Model) view() string {
	helpView := m.help.View()
	if m.help.Expanded {
		return helpView
	}
	status := m.statusView()
	gap := m.size.Width - lipgloss.Width(helpView) - lipgloss.Width(status)
	if gap < 1 {
		return helpView
	}
	return helpView + strings.Repeat(" ", gap) + status
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, m.size.Height,
			h_pos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.help.Focus()
}

func (m *Model) Blur() {
	m.help.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
