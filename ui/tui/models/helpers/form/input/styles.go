// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package forminput contains the inputs a form.Form can host.
package forminput

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)
)

func renderLabel(label string, focused bool, width int) string {
	if focused {
		return focusedLabelStyle.Width(width).Render(label)
	}
	return labelStyle.Width(width).Render(label)
}
