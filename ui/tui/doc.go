// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal UI. Presentation and input handling live
// here; amount parsing and formatting are provided by core/amount.
package tui
