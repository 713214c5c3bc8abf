// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key bindings of the focused model.
package keyhelp

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders enabled bindings on one line. Items that do not fit
// into m.Width are replaced by the ellipsis. help.Model.ShortHelpView counts
// disabled bindings when placing separators, so it is not used.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	enabled := slices.Filter(bindings, key.Binding.Enabled)
	if len(enabled) == 0 {
		return ""
	}

	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	items := make([]string, len(enabled))
	for i, kb := range enabled {
		var sep string
		if i > 0 {
			sep = separator
		}
		items[i] = sep +
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)
	}

	return strings.Join(fit(m, items), "")
}

// FullHelpView renders each group of bindings as a column.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		enabled := slices.Filter(group, key.Binding.Enabled)
		if len(enabled) == 0 {
			continue
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}

		keys := make([]string, len(enabled))
		descriptions := make([]string, len(enabled))
		for i, binding := range enabled {
			keys[i], descriptions[i] = binding.Help().Key, binding.Help().Desc
		}

		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

// fit keeps the leading parts that fit into m.Width, ending with the
// ellipsis when something had to be cut. A zero width disables the limit.
func fit(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var used int
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+partLen <= m.Width) || (!last && used+partLen+tailLen <= m.Width) {
			used += partLen
			continue
		}
		if used+tailLen <= m.Width {
			return append(parts[:i:i], tail)
		}
		return parts[:i]
	}
	return parts
}
