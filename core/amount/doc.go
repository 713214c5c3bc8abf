// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package amount contains the UI-agnostic money logic behind the currency
// field: cleaning keystroke input, reading the cleaned string as a number and
// rendering values for a locale. Nothing in here touches the terminal, so the
// TUI and the CLI share it.
package amount
