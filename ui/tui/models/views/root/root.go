// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/currencyfield/buildvars"
	"github.com/toeirei/currencyfield/core/amount"
	windowtitle "github.com/toeirei/currencyfield/ui/tui/models/helpers/title"
	"github.com/toeirei/currencyfield/ui/tui/models/views/bill"
	"github.com/toeirei/currencyfield/ui/tui/models/views/footer"
	"github.com/toeirei/currencyfield/ui/tui/util"
)

const (
	title        string = "CurrencyField"
	footerHeight int    = 1
	footerExpand int    = 4
)

type Model struct {
	keyMap       KeyMap
	content      *bill.Model
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
	size         util.Size
}

func New(formatter amount.Formatter) *Model {
	keyMap := NewKeyMap()
	return &Model{
		keyMap:       keyMap,
		content:      bill.New(formatter),
		footer:       footer.New(keyMap, formatter),
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.titleHandler.Init(),
		m.content.Init(),
		m.content.Focus(nil),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		return m, m.resize()
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
			return m, m.resize()
		}
		return m, m.content.Update(msg)
	}

	// key maps announced by the focused input go to the footer
	if _, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m, m.footer.Update(msg)
	}

	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}

	return m, m.content.Update(msg)
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().
			Padding(1, 2).
			Height(max(m.size.Height-m.footerHeight()-1, 0)).
			Render(m.content.View()),
		m.footer.View(),
	)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

func (m Model) footerHeight() int {
	if m.footer.Expanded() {
		return footerExpand
	}
	return footerHeight
}

func (m Model) resize() tea.Cmd {
	return tea.Batch(
		m.content.Update(tea.WindowSizeMsg{
			Width:  max(m.size.Width-4, 0),
			Height: max(m.size.Height-m.footerHeight()-3, 0),
		}),
		m.footer.Update(tea.WindowSizeMsg{
			Width:  m.size.Width,
			Height: m.footerHeight(),
		}),
	)
}
