// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package footer shows the key help of the focused input next to a status
// segment naming the active currency and the decimal mark to type.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/i18n"
	"github.com/toeirei/currencyfield/ui/tui/models/components/keyhelp"
	"github.com/toeirei/currencyfield/ui/tui/util"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingLeft(2)

type Model struct {
	baseKeyMap help.KeyMap
	status     string
	size       util.Size
	help       *keyhelp.Model
}

// New builds a footer that always lists baseKeyMap and tells the user which
// currency and decimal mark formatter expects.
func New(baseKeyMap help.KeyMap, formatter amount.Formatter) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		status:     Status(formatter),
		help:       keyhelp.New(),
	}
}

// Status renders the currency code and decimal mark of formatter.
func Status(formatter amount.Formatter) string {
	return i18n.T("footer.status", formatter.Unit().String(), formatter.Separator())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// the focused input announces its own bindings; a nil map means nothing
	// is focused and only the base bindings apply
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		keyMap := m.baseKeyMap
		if msg.KeyMap != nil {
			keyMap = util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap)
		}
		return m.help.Update(util.AnnounceKeyMapMsg{KeyMap: keyMap})
	}

	if m.size.Update(msg) {
		return m.help.Update(tea.WindowSizeMsg{
			Width:  max(m.size.Width-m.statusWidth(), 0),
			Height: m.size.Height,
		})
	}
	return nil
}

func (m Model) View() string {
	var content string
	if m.help.Expanded {
		// full help takes the whole footer, centered
		content = lipgloss.Place(
			m.size.Width, m.size.Height,
			lipgloss.Center, lipgloss.Top,
			m.help.View(),
		)
	} else if sw := m.statusWidth(); sw > 0 {
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.Place(m.size.Width-sw, m.size.Height, lipgloss.Left, lipgloss.Top, m.help.View()),
			statusStyle.Render(m.status),
		)
	} else {
		content = lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Left, lipgloss.Top, m.help.View())
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(content)
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return util.AnnounceKeyMapCmd(baseKeyMap, m.baseKeyMap)
}

func (m *Model) Blur() {
	m.help.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Expanded reports whether the full help is shown.
func (m Model) Expanded() bool {
	return m.help.Expanded
}

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m Model) statusWidth() int {
	// the status is dropped from the width budget on very narrow terminals
	if w := lipgloss.Width(statusStyle.Render(m.status)); w < m.size.Width/2 {
		return w
	}
	return 0
}
