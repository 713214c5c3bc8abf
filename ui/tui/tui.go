// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/ui/tui/models/views/root"
)

// Run starts the bill entry program and blocks until it exits.
func Run(formatter amount.Formatter) error {
	_, err := tea.NewProgram(
		root.New(formatter),
		tea.WithAltScreen(),
	).Run()
	return err
}
